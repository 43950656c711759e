package components

import (
	"context"
	"log/slog"

	"pawsalon/internal/infra/cache"
	"pawsalon/internal/infra/readstore"
	"pawsalon/internal/infra/repository"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/infra/uow"
	"pawsalon/internal/pkg/config"
	"pawsalon/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	catalogModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogViewQueries)),
		),
		readstore.NewCatalogReadStore,
		NewCatalog,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		// Identity commits on the pool, outside the booking transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdentityQueries)),
		),
		fx.Annotate(
			repository.NewIdentityRepository,
			fx.As(new(shared.IdentityResolver)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q)
}

// NewCatalog puts the Redis read-through cache in front of the store when a
// client is configured. Entries left by a previous deploy are flushed on start.
func NewCatalog(lc fx.Lifecycle, store *readstore.CatalogReadStore, client *redis.Client, cfg config.Config, logger *slog.Logger) shared.Catalog {
	if client == nil {
		return store
	}
	c := cache.NewCatalogCache(store, client, cfg.Redis.CatalogCacheTTL)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := c.Invalidate(ctx); err != nil {
				logger.Warn("catalog cache flush failed", "error", err.Error())
			}
			return nil
		},
	})
	return c
}
