//go:build unit || e2e

package salontest

import (
	"testing"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/infra/memstore"
	"pawsalon/internal/pkg/clock"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	// Now is a Friday morning; Monday is the default booking day.
	Now    = time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC)
	Monday = schedule.NewDate(2030, time.March, 4)
	Sunday = schedule.NewDate(2030, time.March, 3)
)

type Salon struct {
	Store   *memstore.Store
	Clock   *clock.MockClock
	Service shared.ServiceSnapshot
	Addon   shared.AddonSnapshot
}

// New seeds a salon open 09:00-17:00 Monday to Saturday with one 60 minute
// service and one addon.
func New(t *testing.T) *Salon {
	t.Helper()

	store := memstore.New()
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		h, err := schedule.NewBusinessHours(wd, schedule.NewClockTime(9, 0), schedule.NewClockTime(17, 0), true)
		require.NoError(t, err)
		store.PutBusinessHours(h)
	}
	store.PutBusinessHours(schedule.Closed(time.Sunday))

	svc := shared.ServiceSnapshot{
		ID:              uuid.New(),
		Name:            "Full Groom",
		DurationMinutes: 60,
		BasePriceCents:  6500,
		Active:          true,
	}
	store.PutService(svc)

	addon := shared.AddonSnapshot{ID: uuid.New(), Name: "Nail Trim", PriceCents: 1500, Active: true}
	store.PutAddon(addon)

	return &Salon{
		Store:   store,
		Clock:   clock.NewMockClock(Now),
		Service: svc,
		Addon:   addon,
	}
}

func (s *Salon) BookingSettings() commands.BookingSettings {
	return commands.BookingSettings{
		Location:             time.UTC,
		CommitTimeout:        5 * time.Second,
		ReferenceMaxAttempts: 8,
	}
}

func (s *Salon) AvailabilitySettings() queries.AvailabilitySettings {
	return queries.AvailabilitySettings{
		Location:      time.UTC,
		SlotInterval:  30 * time.Minute,
		SameDayBuffer: 30 * time.Minute,
	}
}

// At returns the instant of hh:mm on date in the salon timezone.
func At(date schedule.Date, hour, minute int) time.Time {
	return date.At(time.UTC, schedule.NewClockTime(hour, minute))
}

// SeedAppointment stores a committed appointment for the service, bypassing the booking flow.
func (s *Salon) SeedAppointment(t *testing.T, start time.Time, minutes int, status appointment.Status) *appointment.Appointment {
	t.Helper()

	price, err := appointment.NewMoney(s.Service.BasePriceCents)
	require.NoError(t, err)
	a, err := appointment.NewAppointment(appointment.NewParams{
		CustomerID:  uuid.New(),
		PetID:       uuid.New(),
		ServiceID:   s.Service.ID,
		ScheduledAt: start,
		Duration:    time.Duration(minutes) * time.Minute,
		TotalPrice:  price,
	}, Now)
	require.NoError(t, err)

	ref, err := appointment.NewRandomReferenceGenerator().Generate(start.Year())
	require.NoError(t, err)
	a.AssignReference(ref)
	if status != appointment.StatusPending {
		a = appointment.ReconstructAppointment(
			a.ID(), a.CustomerID(), a.PetID(), a.ServiceID(),
			a.Interval(), a.AddonIDs(), a.TotalPrice(),
			status, a.Reference(), a.Notes(), a.CreatedAt(), a.UpdatedAt(),
		)
	}
	s.Store.PutAppointment(a)
	return a
}
