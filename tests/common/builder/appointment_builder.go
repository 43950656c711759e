//go:build unit || e2e

package builder

import (
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	PetID       uuid.UUID
	ServiceID   uuid.UUID
	ScheduledAt time.Time
	Duration    time.Duration
	AddonIDs    []uuid.UUID
	PriceCents  int64
	Status      appointment.Status
	Reference   string
	Notes       string
	CreatedAt   time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		PetID:       uuid.New(),
		ServiceID:   uuid.New(),
		ScheduledAt: time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC),
		Duration:    time.Hour,
		PriceCents:  6500,
		Status:      appointment.StatusPending,
		Reference:   "APT-2030-000042",
		Notes:       "Nervous around dryers",
		CreatedAt:   time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	interval, err := appointment.NewInterval(b.ScheduledAt, b.Duration)
	if err != nil {
		panic(err)
	}
	price, err := appointment.NewMoney(b.PriceCents)
	if err != nil {
		panic(err)
	}
	ref, err := appointment.ParseReference(b.Reference)
	if err != nil {
		panic(err)
	}
	return appointment.ReconstructAppointment(
		b.ID, b.CustomerID, b.PetID, b.ServiceID,
		interval, b.AddonIDs, price, b.Status, ref, b.Notes,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *AppointmentBuilder) BuildRow() sqlc.GetAppointmentByIDRow {
	addons := b.AddonIDs
	if addons == nil {
		addons = []uuid.UUID{}
	}
	return sqlc.GetAppointmentByIDRow{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		PetID:           b.PetID,
		ServiceID:       b.ServiceID,
		ScheduledAt:     pgconv.TimeToPgtype(b.ScheduledAt),
		EndsAt:          pgconv.TimeToPgtype(b.ScheduledAt.Add(b.Duration)),
		TotalPriceCents: b.PriceCents,
		Status:          b.Status.String(),
		Reference:       b.Reference,
		Notes:           pgconv.OptionalText(b.Notes),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		AddonIds:        addons,
	}
}

type WaitlistEntryBuilder struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	PetID         uuid.UUID
	ServiceID     uuid.UUID
	RequestedDate schedule.Date
	Preference    waitlist.TimePreference
	Status        waitlist.Status
	CreatedAt     time.Time
	Seq           int64
}

func NewWaitlistEntryBuilder() *WaitlistEntryBuilder {
	return &WaitlistEntryBuilder{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		PetID:         uuid.New(),
		ServiceID:     uuid.New(),
		RequestedDate: schedule.NewDate(2030, time.March, 4),
		Preference:    waitlist.PreferenceMorning,
		Status:        waitlist.StatusActive,
		CreatedAt:     time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC),
		Seq:           1,
	}
}

func (b *WaitlistEntryBuilder) With(mutate func(*WaitlistEntryBuilder)) *WaitlistEntryBuilder {
	mutate(b)
	return b
}

func (b *WaitlistEntryBuilder) BuildDomain() *waitlist.Entry {
	return waitlist.ReconstructEntry(
		b.ID, b.CustomerID, b.PetID, b.ServiceID,
		b.RequestedDate, b.Preference, b.Status, b.CreatedAt, b.Seq,
	)
}

func (b *WaitlistEntryBuilder) BuildRow() sqlc.WaitlistEntries {
	return sqlc.WaitlistEntries{
		ID:             b.ID,
		Seq:            b.Seq,
		CustomerID:     b.CustomerID,
		PetID:          b.PetID,
		ServiceID:      b.ServiceID,
		RequestedDate:  pgconv.DateToPgtype(b.RequestedDate),
		TimePreference: b.Preference.String(),
		Status:         b.Status.String(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
	}
}
