package waitlist

import (
	"time"

	"pawsalon/internal/domain/schedule"

	"github.com/google/uuid"
)

type Entry struct {
	id            uuid.UUID
	customerID    uuid.UUID
	petID         uuid.UUID
	serviceID     uuid.UUID
	requestedDate schedule.Date
	preference    TimePreference
	status        Status
	createdAt     time.Time
	seq           int64
}

type NewParams struct {
	CustomerID    uuid.UUID
	PetID         uuid.UUID
	ServiceID     uuid.UUID
	RequestedDate schedule.Date
	Preference    TimePreference
}

// NewEntry builds an active entry. today is the current date in the business timezone.
func NewEntry(p NewParams, today schedule.Date, now time.Time) (*Entry, error) {
	if p.CustomerID == uuid.Nil || p.PetID == uuid.Nil || p.ServiceID == uuid.Nil {
		return nil, ErrMissingParty
	}
	if !p.Preference.IsValid() {
		return nil, ErrInvalidPreference
	}
	if p.RequestedDate.Before(today) {
		return nil, ErrDateInPast
	}
	return &Entry{
		id:            uuid.New(),
		customerID:    p.CustomerID,
		petID:         p.PetID,
		serviceID:     p.ServiceID,
		requestedDate: p.RequestedDate,
		preference:    p.Preference,
		status:        StatusActive,
		createdAt:     now,
	}, nil
}

func ReconstructEntry(
	id, customerID, petID, serviceID uuid.UUID,
	requestedDate schedule.Date,
	preference TimePreference,
	status Status,
	createdAt time.Time,
	seq int64,
) *Entry {
	return &Entry{
		id:            id,
		customerID:    customerID,
		petID:         petID,
		serviceID:     serviceID,
		requestedDate: requestedDate,
		preference:    preference,
		status:        status,
		createdAt:     createdAt,
		seq:           seq,
	}
}

// AssignSeq records the storage insertion sequence, the FIFO tie-breaker for equal createdAt.
func (e *Entry) AssignSeq(seq int64) {
	e.seq = seq
}

func (e *Entry) Cancel() error {
	if e.status != StatusActive {
		return ErrNotActive
	}
	e.status = StatusCancelled
	return nil
}

// QueuedBefore orders entries by (createdAt, seq).
func (e *Entry) QueuedBefore(o *Entry) bool {
	if !e.createdAt.Equal(o.createdAt) {
		return e.createdAt.Before(o.createdAt)
	}
	return e.seq < o.seq
}

func (e *Entry) ID() uuid.UUID                { return e.id }
func (e *Entry) CustomerID() uuid.UUID        { return e.customerID }
func (e *Entry) PetID() uuid.UUID             { return e.petID }
func (e *Entry) ServiceID() uuid.UUID         { return e.serviceID }
func (e *Entry) RequestedDate() schedule.Date { return e.requestedDate }
func (e *Entry) Preference() TimePreference   { return e.preference }
func (e *Entry) Status() Status               { return e.status }
func (e *Entry) CreatedAt() time.Time         { return e.createdAt }
func (e *Entry) Seq() int64                   { return e.seq }
func (e *Entry) IsActive() bool               { return e.status == StatusActive }

// Position is the 1-based FIFO rank of target among the active entries queued on its date.
func Position(target *Entry, active []*Entry) int {
	pos := 0
	for _, e := range active {
		if !e.IsActive() || !e.requestedDate.Equal(target.requestedDate) {
			continue
		}
		if e.id == target.id || e.QueuedBefore(target) {
			pos++
		}
	}
	return pos
}

// CountMatching returns how many active entries would take a slot starting at t.
func CountMatching(active []*Entry, t schedule.ClockTime) int {
	n := 0
	for _, e := range active {
		if e.IsActive() && e.preference.Matches(t) {
			n++
		}
	}
	return n
}
