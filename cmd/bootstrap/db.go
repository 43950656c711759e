package bootstrap

import (
	"context"
	"log/slog"

	"pawsalon/internal/infra/db"
	"pawsalon/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB fails startup when PostgreSQL is unreachable; the booking engine has
// no degraded mode without its store.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", cfg.DB.MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				"acquired_conns", stat.AcquiredConns(),
				"total_conns", stat.TotalConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
