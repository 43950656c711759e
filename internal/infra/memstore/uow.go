package memstore

import (
	"context"
	"sort"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) UnitOfWork() shared.UnitOfWork {
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newMemTx(s)
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		tx.rollback()
		return err
	}
	return tx.commit()
}

func (s *Store) WithinLocked(ctx context.Context, key shared.LockKey, fn func(ctx context.Context, tx shared.Tx) error) error {
	unlock, err := s.locks.Lock(ctx, key.String())
	if err != nil {
		return err
	}
	defer unlock()
	return s.Within(ctx, fn)
}

// WithinReadOnly copies the committed rows under a short read lock; the
// callback then works on the copy without holding anything.
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snap := s.snapshot()
	return fn(ctx, &reads{view: func() view { return snap }})
}

type view struct {
	appointments map[uuid.UUID]appointmentRecord
	entries      map[uuid.UUID]waitlistRecord
}

func (s *Store) snapshot() view {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := view{
		appointments: make(map[uuid.UUID]appointmentRecord, len(s.appointments)),
		entries:      make(map[uuid.UUID]waitlistRecord, len(s.entries)),
	}
	for id, rec := range s.appointments {
		v.appointments[id] = rec
	}
	for id, rec := range s.entries {
		v.entries[id] = rec
	}
	return v
}

type memTx struct {
	store        *Store
	appointments map[uuid.UUID]appointmentRecord
	entries      map[uuid.UUID]waitlistRecord
	jobs         []NotificationJob
	reserved     []string
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:        s,
		appointments: make(map[uuid.UUID]appointmentRecord),
		entries:      make(map[uuid.UUID]waitlistRecord),
	}
}

func (t *memTx) Appointments() shared.AppointmentRepository   { return (*appointmentRepo)(t) }
func (t *memTx) Waitlist() shared.WaitlistRepository          { return (*waitlistRepo)(t) }
func (t *memTx) Notifications() shared.NotificationRepository { return (*notificationRepo)(t) }
func (t *memTx) Reads() shared.Reads                          { return &reads{view: t.view} }

// view overlays this transaction's pending rows on the committed ones.
func (t *memTx) view() view {
	v := t.store.snapshot()
	for id, rec := range t.appointments {
		v.appointments[id] = rec
	}
	for id, rec := range t.entries {
		v.entries[id] = rec
	}
	return v
}

func (t *memTx) rollback() {
	if len(t.reserved) == 0 {
		return
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, ref := range t.reserved {
		if id, ok := t.store.references[ref]; ok {
			if _, committed := t.store.appointments[id]; !committed {
				delete(t.store.references, ref)
			}
		}
	}
}

// commit re-checks the storage constraints before publishing the rows, the
// way the database constraints back up the application-level locks.
func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range t.appointments {
		if !rec.Status.OccupiesSlot() {
			continue
		}
		candidate := rec.occupancy().Interval
		for id, other := range s.appointments {
			if id == rec.ID || !other.Status.OccupiesSlot() {
				continue
			}
			if pending, ok := t.appointments[id]; ok && !pending.Status.OccupiesSlot() {
				continue
			}
			if candidate.Overlaps(other.occupancy().Interval) {
				t.releaseLocked()
				return infra.NewRepoErr(infra.KindConflict, "appointment overlaps an existing booking")
			}
		}
	}

	for _, rec := range t.entries {
		if rec.Status != waitlist.StatusActive {
			continue
		}
		for id, other := range s.entries {
			if id == rec.ID || other.Status != waitlist.StatusActive {
				continue
			}
			if other.CustomerID == rec.CustomerID && other.RequestedDate.Equal(rec.RequestedDate) {
				t.releaseLocked()
				return infra.NewRepoErr(infra.KindDuplicateKey, "active waitlist entry already exists")
			}
		}
	}

	for id, rec := range t.appointments {
		s.appointments[id] = rec
	}
	for id, rec := range t.entries {
		s.entries[id] = rec
	}
	s.jobs = append(s.jobs, t.jobs...)
	return nil
}

func (t *memTx) releaseLocked() {
	for _, ref := range t.reserved {
		delete(t.store.references, ref)
	}
}

type appointmentRepo memTx

func (r *appointmentRepo) Create(ctx context.Context, appt *appointment.Appointment) error {
	rec := appointmentToRecord(appt)
	s := r.store

	s.mu.Lock()
	if _, taken := s.references[rec.Reference]; taken {
		s.mu.Unlock()
		return infra.NewRepoErr(infra.KindDuplicateKey, "reference already in use")
	}
	s.references[rec.Reference] = rec.ID
	s.mu.Unlock()

	r.reserved = append(r.reserved, rec.Reference)
	r.appointments[rec.ID] = rec
	return nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, appt *appointment.Appointment) error {
	tx := (*memTx)(r)
	rec, ok := tx.view().appointments[appt.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	rec.Status = appt.Status()
	rec.UpdatedAt = appt.UpdatedAt()
	r.appointments[rec.ID] = rec
	return nil
}

type waitlistRepo memTx

func (r *waitlistRepo) Create(ctx context.Context, entry *waitlist.Entry) error {
	s := r.store
	s.mu.Lock()
	s.waitlistSeq++
	seq := s.waitlistSeq
	s.mu.Unlock()

	entry.AssignSeq(seq)
	r.entries[entry.ID()] = entryToRecord(entry)
	return nil
}

func (r *waitlistRepo) UpdateStatus(ctx context.Context, entry *waitlist.Entry) error {
	tx := (*memTx)(r)
	rec, ok := tx.view().entries[entry.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	rec.Status = entry.Status()
	r.entries[rec.ID] = rec
	return nil
}

type notificationRepo memTx

func (r *notificationRepo) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.jobs = append(r.jobs, NotificationJob{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
		Status:  "queued",
	})
	return nil
}

type reads struct {
	view func() view
}

func (r *reads) AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	rec, ok := r.view().appointments[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return recordToAppointment(rec), nil
}

func (r *reads) OccupanciesBetween(ctx context.Context, from, to time.Time) ([]appointment.Occupancy, error) {
	var out []appointment.Occupancy
	for _, rec := range r.view().appointments {
		if !rec.Status.OccupiesSlot() {
			continue
		}
		if !rec.ScheduledAt.Before(to) || !rec.ScheduledAt.Add(rec.Duration).After(from) {
			continue
		}
		out = append(out, rec.occupancy())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Interval.Start().Before(out[j].Interval.Start())
	})
	return out, nil
}

func (r *reads) WaitlistEntryByID(ctx context.Context, id uuid.UUID) (*waitlist.Entry, error) {
	rec, ok := r.view().entries[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "waitlist entry not found")
	}
	return recordToEntry(rec), nil
}

func (r *reads) ActiveWaitlistEntry(ctx context.Context, customerID uuid.UUID, date schedule.Date) (*waitlist.Entry, error) {
	for _, rec := range r.view().entries {
		if rec.Status == waitlist.StatusActive && rec.CustomerID == customerID && rec.RequestedDate.Equal(date) {
			return recordToEntry(rec), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "no active waitlist entry")
}

func (r *reads) ActiveWaitlistOn(ctx context.Context, date schedule.Date) ([]*waitlist.Entry, error) {
	var out []*waitlist.Entry
	for _, rec := range r.view().entries {
		if rec.Status == waitlist.StatusActive && rec.RequestedDate.Equal(date) {
			out = append(out, recordToEntry(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QueuedBefore(out[j])
	})
	return out, nil
}
