//go:build unit

package components_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pawsalon/cmd/bootstrap/components"
	"pawsalon/internal/infra/cache"
	"pawsalon/internal/infra/readstore"
	"pawsalon/internal/pkg/config"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewCatalog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{Redis: config.RedisConfig{CatalogCacheTTL: time.Minute}}
	store := &readstore.CatalogReadStore{}

	t.Run("without redis the store is used directly", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)

		catalog := components.NewCatalog(lc, store, nil, cfg, logger)

		assert.Same(t, store, catalog)
		lc.RequireStart().RequireStop()
	})

	t.Run("start flushes stale catalog entries", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		require.NoError(t, mr.Set("pawsalon:catalog:hours:1", `{"stale":true}`))
		require.NoError(t, mr.Set("session:abc", "keep"))
		lc := fxtest.NewLifecycle(t)

		catalog := components.NewCatalog(lc, store, client, cfg, logger)
		assert.IsType(t, &cache.CatalogCache{}, catalog)

		lc.RequireStart()
		assert.Equal(t, []string{"session:abc"}, mr.Keys())
		lc.RequireStop()
	})

	t.Run("unreachable redis does not block startup", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = client.Close() })
		mr.Close()
		lc := fxtest.NewLifecycle(t)

		components.NewCatalog(lc, store, client, cfg, logger)

		lc.RequireStart().RequireStop()
	})
}
