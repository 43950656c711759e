package shared

import (
	"context"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"

	"github.com/google/uuid"
)

type LockScope string

const (
	LockScopeAppointments LockScope = "appointments"
	LockScopeWaitlist     LockScope = "waitlist"
)

// LockKey names a per-date critical section. ResourceID stays empty while the
// salon runs a single shared calendar.
type LockKey struct {
	Scope      LockScope
	Date       schedule.Date
	ResourceID string
}

func AppointmentsLock(date schedule.Date) LockKey {
	return LockKey{Scope: LockScopeAppointments, Date: date}
}

func WaitlistLock(date schedule.Date) LockKey {
	return LockKey{Scope: LockScopeWaitlist, Date: date}
}

func (k LockKey) String() string {
	s := string(k.Scope) + ":" + k.Date.String()
	if k.ResourceID != "" {
		s += ":" + k.ResourceID
	}
	return s
}

type UnitOfWork interface {
	// Within: write transaction, retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinLocked: Within, holding the key's critical section until commit or rollback
	WithinLocked(ctx context.Context, key LockKey, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot that never waits on writer locks
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Waitlist() WaitlistRepository
	Notifications() NotificationRepository
	Reads() Reads
}

// Reads is the query side shared by transactions and read-only snapshots.
// Lookups by id return an infra NOT_FOUND error when nothing matches.
type Reads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	// OccupanciesBetween lists slot-holding appointments overlapping [from, to).
	OccupanciesBetween(ctx context.Context, from, to time.Time) ([]appointment.Occupancy, error)
	WaitlistEntryByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error)
	ActiveWaitlistEntry(ctx context.Context, customerID uuid.UUID, date schedule.Date) (*waitlist.Entry, error)
	// ActiveWaitlistOn returns the date's active entries in FIFO order.
	ActiveWaitlistOn(ctx context.Context, date schedule.Date) ([]*waitlist.Entry, error)
}

type AppointmentRepository interface {
	// Create inserts the appointment and its addon rows. A reference already
	// taken yields an infra DUPLICATE_KEY error and writes nothing.
	Create(ctx context.Context, appt *appointment.Appointment) error
	UpdateStatus(ctx context.Context, appt *appointment.Appointment) error
}

type WaitlistRepository interface {
	// Create inserts the entry and assigns its insertion sequence.
	Create(ctx context.Context, entry *waitlist.Entry) error
	UpdateStatus(ctx context.Context, entry *waitlist.Entry) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
