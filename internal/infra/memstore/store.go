// Package memstore is an in-process implementation of the unit of work, the
// catalog and the identity collaborator. It keeps the same contracts as the
// PostgreSQL adapters: per-key critical sections, transactional writes that
// are discarded on error, unique references, one active waitlist entry per
// customer and date, and no overlapping slot-holding appointments.
package memstore

import (
	"sync"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type appointmentRecord struct {
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
	UpdatedAt   time.Time
}

type waitlistRecord struct {
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

type customerRecord struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	IsGuest   bool
}

type petRecord struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Species    string
	Breed      string
}

// NotificationJob is an outbox row as the notification collaborator would see it.
type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

type Store struct {
	mu sync.RWMutex

	appointments map[uuid.UUID]appointmentRecord
	references   map[string]uuid.UUID
	entries      map[uuid.UUID]waitlistRecord
	jobs         []NotificationJob
	waitlistSeq  int64

	services  map[uuid.UUID]shared.ServiceSnapshot
	addons    map[uuid.UUID]shared.AddonSnapshot
	hours     map[time.Weekday]schedule.BusinessHours
	customers map[uuid.UUID]customerRecord
	pets      map[uuid.UUID]petRecord

	locks *keyedMutex
}

func New() *Store {
	return &Store{
		appointments: make(map[uuid.UUID]appointmentRecord),
		references:   make(map[string]uuid.UUID),
		entries:      make(map[uuid.UUID]waitlistRecord),
		services:     make(map[uuid.UUID]shared.ServiceSnapshot),
		addons:       make(map[uuid.UUID]shared.AddonSnapshot),
		hours:        make(map[time.Weekday]schedule.BusinessHours),
		customers:    make(map[uuid.UUID]customerRecord),
		pets:         make(map[uuid.UUID]petRecord),
		locks:        newKeyedMutex(),
	}
}

func (s *Store) PutService(svc shared.ServiceSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
}

func (s *Store) PutAddon(a shared.AddonSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addons[a.ID] = a
}

func (s *Store) PutBusinessHours(h schedule.BusinessHours) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hours[h.Weekday] = h
}

// PutRegisteredCustomer seeds an account-holding customer and returns its id.
func (s *Store) PutRegisteredCustomer(email, firstName, lastName string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.customers[id] = customerRecord{
		ID:        id,
		Email:     shared.NormalizeEmail(email),
		FirstName: firstName,
		LastName:  lastName,
	}
	return id
}

func (s *Store) PutPet(customerID uuid.UUID, name, species string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.pets[id] = petRecord{ID: id, CustomerID: customerID, Name: name, Species: species}
	return id
}

// PutAppointment stores a committed appointment as-is, bypassing the lock.
func (s *Store) PutAppointment(a *appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := appointmentToRecord(a)
	s.appointments[rec.ID] = rec
	if rec.Reference != "" {
		s.references[rec.Reference] = rec.ID
	}
}

func (s *Store) Appointments() []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*appointment.Appointment, 0, len(s.appointments))
	for _, rec := range s.appointments {
		out = append(out, recordToAppointment(rec))
	}
	return out
}

func (s *Store) WaitlistEntries() []*waitlist.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*waitlist.Entry, 0, len(s.entries))
	for _, rec := range s.entries {
		out = append(out, recordToEntry(rec))
	}
	return out
}

func (s *Store) NotificationJobs() []NotificationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]NotificationJob, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Store) CustomerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

func (s *Store) PetCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pets)
}

func appointmentToRecord(a *appointment.Appointment) appointmentRecord {
	addons := make([]uuid.UUID, len(a.AddonIDs()))
	copy(addons, a.AddonIDs())
	return appointmentRecord{
		ID:          a.ID(),
		CustomerID:  a.CustomerID(),
		PetID:       a.PetID(),
		ServiceID:   a.ServiceID(),
		ScheduledAt: a.ScheduledAt(),
		Duration:    a.Interval().Duration(),
		AddonIDs:    addons,
		PriceCents:  a.TotalPrice().Cents(),
		Status:      a.Status(),
		Reference:   a.Reference().String(),
		Notes:       a.Notes(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func recordToAppointment(rec appointmentRecord) *appointment.Appointment {
	interval, _ := appointment.NewInterval(rec.ScheduledAt, rec.Duration)
	price, _ := appointment.NewMoney(rec.PriceCents)
	ref, _ := appointment.ParseReference(rec.Reference)
	addons := make([]uuid.UUID, len(rec.AddonIDs))
	copy(addons, rec.AddonIDs)
	return appointment.ReconstructAppointment(
		rec.ID, rec.CustomerID, rec.PetID, rec.ServiceID,
		interval, addons, price, rec.Status, ref, rec.Notes,
		rec.CreatedAt, rec.UpdatedAt,
	)
}

func (rec appointmentRecord) occupancy() appointment.Occupancy {
	interval, _ := appointment.NewInterval(rec.ScheduledAt, rec.Duration)
	return appointment.Occupancy{AppointmentID: rec.ID, Interval: interval, Status: rec.Status}
}

func entryToRecord(e *waitlist.Entry) waitlistRecord {
	return waitlistRecord{
		ID:            e.ID(),
		CustomerID:    e.CustomerID(),
		PetID:         e.PetID(),
		ServiceID:     e.ServiceID(),
		RequestedDate: e.RequestedDate(),
		Preference:    e.Preference(),
		Status:        e.Status(),
		CreatedAt:     e.CreatedAt(),
		Seq:           e.Seq(),
	}
}

func recordToEntry(rec waitlistRecord) *waitlist.Entry {
	return waitlist.ReconstructEntry(
		rec.ID, rec.CustomerID, rec.PetID, rec.ServiceID,
		rec.RequestedDate, rec.Preference, rec.Status, rec.CreatedAt, rec.Seq,
	)
}
