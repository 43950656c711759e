package queries

import (
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/waitlist"

	"github.com/google/uuid"
)

// SlotView is one offerable start time. WaitlistCount is set only on unavailable slots.
type SlotView struct {
	Time          string    `json:"time"`
	StartsAt      time.Time `json:"startsAt"`
	Available     bool      `json:"available"`
	WaitlistCount *int      `json:"waitlistCount,omitempty"`
}

type AvailabilityView struct {
	Date            string     `json:"date"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []SlotView `json:"slots"`
}

// AppointmentView represents read-optimized appointment data
type AppointmentView struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customerId"`
	PetID           uuid.UUID   `json:"petId"`
	ServiceID       uuid.UUID   `json:"serviceId"`
	ScheduledAt     time.Time   `json:"scheduledAt"`
	DurationMinutes int         `json:"durationMinutes"`
	AddonIDs        []uuid.UUID `json:"addonIds"`
	TotalPriceCents int64       `json:"totalPriceCents"`
	Status          string      `json:"status"`
	Reference       string      `json:"reference"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// WaitlistEntryView represents read-optimized waitlist entry data
type WaitlistEntryView struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customerId"`
	PetID          uuid.UUID `json:"petId"`
	ServiceID      uuid.UUID `json:"serviceId"`
	RequestedDate  string    `json:"requestedDate"`
	TimePreference string    `json:"timePreference"`
	Status         string    `json:"status"`
	Position       int       `json:"position,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewAppointmentView(a *appointment.Appointment, loc *time.Location) *AppointmentView {
	addons := a.AddonIDs()
	if addons == nil {
		addons = []uuid.UUID{}
	}
	return &AppointmentView{
		ID:              a.ID(),
		CustomerID:      a.CustomerID(),
		PetID:           a.PetID(),
		ServiceID:       a.ServiceID(),
		ScheduledAt:     a.ScheduledAt().In(loc),
		DurationMinutes: a.DurationMinutes(),
		AddonIDs:        addons,
		TotalPriceCents: a.TotalPrice().Cents(),
		Status:          a.Status().String(),
		Reference:       a.Reference().String(),
		Notes:           a.Notes(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
}

func NewWaitlistEntryView(e *waitlist.Entry, position int) *WaitlistEntryView {
	return &WaitlistEntryView{
		ID:             e.ID(),
		CustomerID:     e.CustomerID(),
		PetID:          e.PetID(),
		ServiceID:      e.ServiceID(),
		RequestedDate:  e.RequestedDate().String(),
		TimePreference: e.Preference().String(),
		Status:         e.Status().String(),
		Position:       position,
		CreatedAt:      e.CreatedAt(),
	}
}
