//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"
	"pawsalon/tests/common/salontest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	s := salontest.New(t)
	seeded := s.SeedAppointment(t, salontest.At(salontest.Monday, 9, 0), 60, appointment.StatusConfirmed)
	q := queries.NewAppointmentQueries(s.Store.UnitOfWork(), time.UTC)

	testCases := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{name: "found", id: seeded.ID()},
		{name: "unknown id", id: uuid.New(), wantErr: queries.ErrAppointmentNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := q.GetByID(ctx, tc.id)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr))
				assert.True(t, errs.Is(err, errs.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, seeded.ID(), view.ID)
			assert.Equal(t, "confirmed", view.Status)
			assert.Equal(t, seeded.Reference().String(), view.Reference)
			assert.Equal(t, 60, view.DurationMinutes)
			assert.Equal(t, int64(6500), view.TotalPriceCents)
			assert.NotNil(t, view.AddonIDs)
		})
	}
}

func TestAppointmentQueries_GetWaitlistEntry(t *testing.T) {
	ctx := context.Background()
	s := salontest.New(t)
	wl := commands.NewWaitlistUseCase(s.Store.UnitOfWork(), s.Store.Catalog(), nil, s.Clock, s.BookingSettings())
	q := queries.NewAppointmentQueries(s.Store.UnitOfWork(), time.UTC)

	join := func() *commands.JoinWaitlistResult {
		res, err := wl.JoinWaitlist(ctx, commands.JoinWaitlistRequest{
			CustomerID:     uuid.New(),
			PetID:          uuid.New(),
			ServiceID:      s.Service.ID,
			RequestedDate:  salontest.Monday.String(),
			TimePreference: "any",
		})
		require.NoError(t, err)
		return res
	}
	first := join()
	second := join()

	view, err := q.GetWaitlistEntry(ctx, second.Entry.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, view.Position)
	assert.Equal(t, "active", view.Status)

	require.NoError(t, wl.CancelWaitlistEntry(ctx, first.Entry.ID()))

	view, err = q.GetWaitlistEntry(ctx, second.Entry.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, view.Position)

	view, err = q.GetWaitlistEntry(ctx, first.Entry.ID())
	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)
	assert.Zero(t, view.Position)

	_, err = q.GetWaitlistEntry(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errs.Is(err, queries.ErrWaitlistEntryNotFound))
}
