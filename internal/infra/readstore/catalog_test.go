//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/readstore"
	sqlc "pawsalon/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogReadStore_ServiceByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		id := uuid.New()
		mock.ExpectQuery("FROM services").WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "duration_minutes", "base_price_cents", "active"}).
				AddRow(id, "Full Groom", int32(90), int64(6500), true))

		svc, err := store.ServiceByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Full Groom", svc.Name)
		assert.Equal(t, 90*time.Minute, svc.Duration())
		assert.True(t, svc.Active)
	})

	t.Run("unknown service is NOT_FOUND", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		id := uuid.New()
		mock.ExpectQuery("FROM services").WithArgs(id).WillReturnError(pgx.ErrNoRows)

		_, err := store.ServiceByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCatalogReadStore_AddonsByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("result follows the requested order and skips unknown ids", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewCatalogReadStore(sqlc.New(), mock)
		a, b, missing := uuid.New(), uuid.New(), uuid.New()
		ids := []uuid.UUID{b, missing, a}

		mock.ExpectQuery("FROM addons").WithArgs(ids).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price_cents", "active"}).
				AddRow(a, "Nail Trim", int64(1500), true).
				AddRow(b, "Teeth Brushing", int64(1000), false))

		got, err := store.AddonsByIDs(ctx, ids)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, b, got[0].ID)
		assert.False(t, got[0].Active)
		assert.Equal(t, a, got[1].ID)
	})

	t.Run("no ids skips the query", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewCatalogReadStore(sqlc.New(), mock)

		got, err := store.AddonsByIDs(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCatalogReadStore_BusinessHours(t *testing.T) {
	ctx := context.Background()
	columns := []string{"weekday", "open_time", "close_time", "is_open"}

	testCases := []struct {
		name      string
		setup     func(pgxmock.PgxPoolIface)
		expected  schedule.BusinessHours
		expectErr bool
	}{
		{
			name: "open day",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM business_hours").WithArgs(int16(1)).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(int16(1), "09:00:00", "17:00:00", true))
			},
			expected: schedule.BusinessHours{
				Weekday: time.Monday, Open: schedule.NewClockTime(9, 0), Close: schedule.NewClockTime(17, 0), IsOpen: true,
			},
		},
		{
			name: "closed flag",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM business_hours").WithArgs(int16(1)).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(int16(1), "09:00:00", "17:00:00", false))
			},
			expected: schedule.Closed(time.Monday),
		},
		{
			name: "no row means closed",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM business_hours").WithArgs(int16(1)).WillReturnError(pgx.ErrNoRows)
			},
			expected: schedule.Closed(time.Monday),
		},
		{
			name: "query failure",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM business_hours").WithArgs(int16(1)).WillReturnError(errors.New("connection reset"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := newMockPool(t)
			store := readstore.NewCatalogReadStore(sqlc.New(), mock)
			tc.setup(mock)

			got, err := store.BusinessHours(ctx, time.Monday)

			if tc.expectErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
