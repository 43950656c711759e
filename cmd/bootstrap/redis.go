package bootstrap

import (
	"context"
	"log/slog"

	"pawsalon/internal/pkg/config"
	"pawsalon/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when REDIS_URL is unset; the catalog is then read
// straight from PostgreSQL.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		logger.Info("redis not configured, catalog cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid REDIS_URL")
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable cache degrades to store reads, so this is not fatal
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", opts.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
