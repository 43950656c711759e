package db

import (
	"database/sql"

	"pawsalon/internal/pkg/errs"
	"pawsalon/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
)

// NewMigrator opens the embedded migrations against dsn. The caller closes it.
func NewMigrator(dsn string) (*migrate.Migrate, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errs.Wrap(err, "open db")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(err, "ping db")
	}

	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(err, "db driver")
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(err, "source driver")
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(err, "create migrator")
	}
	return m, nil
}

// MigrateUp applies every pending migration; an up-to-date schema is not an error.
func MigrateUp(dsn string) error {
	m, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errs.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "migrate up")
	}
	return nil
}
