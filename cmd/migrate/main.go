package main

import (
	"log/slog"
	"os"
	"strconv"

	"pawsalon/internal/infra/db"
	"pawsalon/internal/pkg/config"
	"pawsalon/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
)

// Usage:
//
//	migrate            apply pending migrations
//	migrate down       roll back the latest migration
//	migrate force <v>  mark version v as clean after a failed run
func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	m, err := db.NewMigrator(cfg.BuildDSN())
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	switch {
	case len(args) == 0:
		if err := m.Up(); err != nil && !errs.Is(err, migrate.ErrNoChange) {
			return err
		}
	case args[0] == "down":
		if err := m.Steps(-1); err != nil {
			return err
		}
	case args[0] == "force" && len(args) == 2:
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return errs.Wrap(err, "invalid version")
		}
		if err := m.Force(version); err != nil {
			return err
		}
	default:
		return errs.Newf("unknown command %q", args)
	}

	version, dirty, err := m.Version()
	if err != nil && !errs.Is(err, migrate.ErrNilVersion) {
		return err
	}
	slog.Info("migrations complete", "version", version, "dirty", dirty)
	return nil
}
