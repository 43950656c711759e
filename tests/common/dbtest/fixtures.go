//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seeder is satisfied by a pool, a connection or an open transaction.
type Seeder interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SalonFixture struct {
	ServiceID uuid.UUID
	AddonID   uuid.UUID
}

// SeedSalon adds one active 60 minute service and one addon.
func SeedSalon(t *testing.T, db Seeder) SalonFixture {
	t.Helper()
	ctx := context.Background()

	f := SalonFixture{ServiceID: uuid.New(), AddonID: uuid.New()}
	_, err := db.Exec(ctx,
		"INSERT INTO services (id, name, duration_minutes, base_price_cents) VALUES ($1, 'Full Groom', 60, 6500)",
		f.ServiceID)
	require.NoError(t, err)
	_, err = db.Exec(ctx,
		"INSERT INTO addons (id, name, price_cents) VALUES ($1, 'Nail Trim', 1500)",
		f.AddonID)
	require.NoError(t, err)
	return f
}

func CreateCustomer(t *testing.T, db Seeder, email string, guest bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, email, first_name, last_name, is_guest) VALUES ($1, $2, 'Sam', 'Lee', $3)",
		id, email, guest)
	require.NoError(t, err)
	return id
}

func CreatePet(t *testing.T, db Seeder, customerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO pets (id, customer_id, name, species) VALUES ($1, $2, $3, 'dog')",
		id, customerID, name)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db Seeder, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// SeedReferenceData opens the salon 09:00-17:00 Monday to Saturday; Sunday is closed.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO business_hours (weekday, open_time, close_time, is_open) VALUES
		    (0, '00:00', '00:00', false),
		    (1, '09:00', '17:00', true),
		    (2, '09:00', '17:00', true),
		    (3, '09:00', '17:00', true),
		    (4, '09:00', '17:00', true),
		    (5, '09:00', '17:00', true),
		    (6, '09:00', '17:00', true)
		ON CONFLICT (weekday) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
