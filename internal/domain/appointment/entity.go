package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrScheduledInPast = errors.New("appointment must be scheduled in the future")
	ErrMissingParty    = errors.New("customer, pet and service are required")
)

type Appointment struct {
	id         uuid.UUID
	customerID uuid.UUID
	petID      uuid.UUID
	serviceID  uuid.UUID
	interval   Interval
	addonIDs   []uuid.UUID
	totalPrice Money
	status     Status
	reference  Reference
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

type NewParams struct {
	CustomerID  uuid.UUID
	PetID       uuid.UUID
	ServiceID   uuid.UUID
	ScheduledAt time.Time
	Duration    time.Duration
	AddonIDs    []uuid.UUID
	TotalPrice  Money
	Notes       string
}

// NewAppointment builds a pending appointment. The reference is assigned at
// commit time, once the slot is known to be free.
func NewAppointment(p NewParams, now time.Time) (*Appointment, error) {
	if p.CustomerID == uuid.Nil || p.PetID == uuid.Nil || p.ServiceID == uuid.Nil {
		return nil, ErrMissingParty
	}
	if !p.ScheduledAt.After(now) {
		return nil, ErrScheduledInPast
	}
	interval, err := NewInterval(p.ScheduledAt, p.Duration)
	if err != nil {
		return nil, err
	}

	addons := make([]uuid.UUID, len(p.AddonIDs))
	copy(addons, p.AddonIDs)

	return &Appointment{
		id:         uuid.New(),
		customerID: p.CustomerID,
		petID:      p.PetID,
		serviceID:  p.ServiceID,
		interval:   interval,
		addonIDs:   addons,
		totalPrice: p.TotalPrice,
		status:     StatusPending,
		notes:      p.Notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAppointment(
	id, customerID, petID, serviceID uuid.UUID,
	interval Interval,
	addonIDs []uuid.UUID,
	totalPrice Money,
	status Status,
	reference Reference,
	notes string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		customerID: customerID,
		petID:      petID,
		serviceID:  serviceID,
		interval:   interval,
		addonIDs:   addonIDs,
		totalPrice: totalPrice,
		status:     status,
		reference:  reference,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Appointment) AssignReference(ref Reference) {
	a.reference = ref
}

func (a *Appointment) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	a.updatedAt = now
	return nil
}

func (a *Appointment) Occupancy() Occupancy {
	return Occupancy{AppointmentID: a.id, Interval: a.interval, Status: a.status}
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) CustomerID() uuid.UUID  { return a.customerID }
func (a *Appointment) PetID() uuid.UUID       { return a.petID }
func (a *Appointment) ServiceID() uuid.UUID   { return a.serviceID }
func (a *Appointment) Interval() Interval     { return a.interval }
func (a *Appointment) ScheduledAt() time.Time { return a.interval.Start() }
func (a *Appointment) AddonIDs() []uuid.UUID  { return a.addonIDs }
func (a *Appointment) TotalPrice() Money      { return a.totalPrice }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) Reference() Reference   { return a.reference }
func (a *Appointment) Notes() string          { return a.notes }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }

func (a *Appointment) DurationMinutes() int {
	return int(a.interval.Duration() / time.Minute)
}
