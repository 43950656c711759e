//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/readstore"
	sqlc "pawsalon/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appointmentColumns = []string{
	"id", "customer_id", "pet_id", "service_id", "scheduled_at", "ends_at",
	"total_price_cents", "status", "reference", "notes", "created_at", "updated_at", "addon_ids",
}

func TestAppointmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC)
	created := time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC)

	t.Run("row is rebuilt into the aggregate", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
		id, addon := uuid.New(), uuid.New()

		mock.ExpectQuery("FROM appointments a").WithArgs(id).
			WillReturnRows(pgxmock.NewRows(appointmentColumns).AddRow(
				id, uuid.New(), uuid.New(), uuid.New(), start, start.Add(90*time.Minute),
				int64(8000), "confirmed", "APT-2030-000042", "Nervous around dryers", created, created,
				[]uuid.UUID{addon},
			))

		appt, err := store.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, appt.ID())
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
		assert.Equal(t, 90, appt.DurationMinutes())
		assert.Equal(t, "APT-2030-000042", appt.Reference().String())
		assert.Equal(t, []uuid.UUID{addon}, appt.AddonIDs())
		assert.Equal(t, int64(8000), appt.TotalPrice().Cents())
	})

	t.Run("missing row is NOT_FOUND", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
		id := uuid.New()
		mock.ExpectQuery("FROM appointments a").WithArgs(id).WillReturnError(pgx.ErrNoRows)

		_, err := store.FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown status in the row is a DB failure", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
		id := uuid.New()
		mock.ExpectQuery("FROM appointments a").WithArgs(id).
			WillReturnRows(pgxmock.NewRows(appointmentColumns).AddRow(
				id, uuid.New(), uuid.New(), uuid.New(), start, start.Add(time.Hour),
				int64(6500), "teleported", "APT-2030-000042", "x", created, created, []uuid.UUID{},
			))

		_, err := store.FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestAppointmentReadStore_OccupanciesBetween(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	t.Run("rows map to occupancies", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
		first, second := uuid.New(), uuid.New()
		at := from.Add(10 * time.Hour)

		mock.ExpectQuery("FROM appointments").WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "scheduled_at", "ends_at", "status"}).
				AddRow(first, at, at.Add(time.Hour), "pending").
				AddRow(second, at.Add(2*time.Hour), at.Add(3*time.Hour), "in_progress"))

		got, err := store.OccupanciesBetween(ctx, from, to)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0].AppointmentID)
		assert.True(t, got[0].Interval.Start().Equal(at))
		assert.Equal(t, appointment.StatusInProgress, got[1].Status)
	})

	t.Run("query failure is a DB failure", func(t *testing.T) {
		mock := newMockPool(t)
		store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
		mock.ExpectQuery("FROM appointments").WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))

		_, err := store.OccupanciesBetween(ctx, from, to)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
