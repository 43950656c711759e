package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/metrics"
	"pawsalon/internal/pkg/clock"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	maxDurationMinutes  = 480
	compensationTimeout = 5 * time.Second
	identityAttempts    = 3
)

type BookingSettings struct {
	Location             *time.Location
	CommitTimeout        time.Duration
	ReferenceMaxAttempts int
}

type CreateAppointmentRequest struct {
	CustomerID      *uuid.UUID
	Guest           *shared.GuestCustomer
	PetID           *uuid.UUID
	NewPet          *shared.NewPet
	ServiceID       uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	AddonIDs        []uuid.UUID
	TotalPriceCents int64
	Notes           string
}

type CreateAppointmentResult struct {
	AppointmentID uuid.UUID
	Reference     string
	ScheduledAt   time.Time
}

type BookingCommands interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.Catalog
	identity shared.IdentityResolver
	refs     appointment.ReferenceGenerator
	metrics  *metrics.BookingMetrics
	clock    clock.Clock
	settings BookingSettings
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	catalog shared.Catalog,
	identity shared.IdentityResolver,
	refs appointment.ReferenceGenerator,
	m *metrics.BookingMetrics,
	clk clock.Clock,
	settings BookingSettings,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		catalog:  catalog,
		identity: identity,
		refs:     refs,
		metrics:  m,
		clock:    clk,
		settings: settings,
	}
}

// identityRows tracks the customer/pet rows this booking created, so they can be
// removed when the booking does not go through.
type identityRows struct {
	customerID *uuid.UUID
	petID      *uuid.UUID
}

func (uc *bookingUseCaseImpl) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (result *CreateAppointmentResult, err error) {
	defer func() { uc.metrics.ObserveBooking(bookingOutcome(err)) }()

	now := uc.clock.Now()
	if err = validateCreateAppointment(req, now); err != nil {
		return nil, err
	}

	loc := uc.settings.Location
	scheduledAt := req.ScheduledAt.In(loc)
	duration := time.Duration(req.DurationMinutes) * time.Minute
	date := schedule.DateOf(scheduledAt, loc)

	if err = uc.checkCatalog(ctx, req, date, scheduledAt, duration); err != nil {
		return nil, err
	}

	var created identityRows
	defer func() {
		if err != nil {
			uc.compensate(ctx, created)
		}
	}()

	customerID, petID, err := uc.resolveIdentity(ctx, req, &created)
	if err != nil {
		return nil, err
	}

	price, err := appointment.NewMoney(req.TotalPriceCents)
	if err != nil {
		return nil, errs.Invalid("totalPriceCents", err.Error())
	}
	appt, err := appointment.NewAppointment(appointment.NewParams{
		CustomerID:  customerID,
		PetID:       petID,
		ServiceID:   req.ServiceID,
		ScheduledAt: scheduledAt,
		Duration:    duration,
		AddonIDs:    req.AddonIDs,
		TotalPrice:  price,
		Notes:       req.Notes,
	}, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err = uc.commit(ctx, appt, date); err != nil {
		return nil, err
	}

	return &CreateAppointmentResult{
		AppointmentID: appt.ID(),
		Reference:     appt.Reference().String(),
		ScheduledAt:   appt.ScheduledAt(),
	}, nil
}

// resolveIdentity records every row it creates in created. A guest fetched by
// email can be removed by the compensation of a concurrent failed booking
// before our pet is attached; resolving again then recreates the guest.
func (uc *bookingUseCaseImpl) resolveIdentity(ctx context.Context, req CreateAppointmentRequest, created *identityRows) (uuid.UUID, uuid.UUID, error) {
	for attempt := 1; ; attempt++ {
		customer, err := uc.identity.ResolveCustomer(ctx, req.CustomerID, req.Guest)
		if err != nil {
			return uuid.Nil, uuid.Nil, mapIdentityErr(err)
		}
		if customer.Created {
			created.customerID = &customer.ID
		}

		pet, err := uc.identity.ResolvePet(ctx, customer.ID, req.PetID, req.NewPet)
		if err == nil {
			if pet.Created {
				created.petID = &pet.ID
			}
			return customer.ID, pet.ID, nil
		}
		if !errs.Is(err, shared.ErrCustomerRemoved) || req.Guest == nil || attempt == identityAttempts {
			return uuid.Nil, uuid.Nil, mapIdentityErr(err)
		}
		slog.Info("guest customer removed concurrently, resolving again",
			"customer_id", customer.ID.String(),
			"attempt", attempt)
	}
}

func validateCreateAppointment(req CreateAppointmentRequest, now time.Time) error {
	var v errs.ValidationErrors

	switch {
	case req.CustomerID == nil && req.Guest == nil:
		v.Add("customerId", "either customerId or guestInfo is required")
	case req.CustomerID != nil && req.Guest != nil:
		v.Add("customerId", "provide customerId or guestInfo, not both")
	case req.Guest != nil:
		if !strings.Contains(req.Guest.Email, "@") {
			v.Add("guestInfo.email", "must be a valid email address")
		}
		if strings.TrimSpace(req.Guest.FirstName) == "" {
			v.Add("guestInfo.firstName", "is required")
		}
		if strings.TrimSpace(req.Guest.LastName) == "" {
			v.Add("guestInfo.lastName", "is required")
		}
	}

	switch {
	case req.PetID == nil && req.NewPet == nil:
		v.Add("petId", "either petId or newPet is required")
	case req.PetID != nil && req.NewPet != nil:
		v.Add("petId", "provide petId or newPet, not both")
	case req.NewPet != nil:
		if strings.TrimSpace(req.NewPet.Name) == "" {
			v.Add("newPet.name", "is required")
		}
		if strings.TrimSpace(req.NewPet.Species) == "" {
			v.Add("newPet.species", "is required")
		}
	}

	if req.ServiceID == uuid.Nil {
		v.Add("serviceId", "is required")
	}
	if req.ScheduledAt.IsZero() {
		v.Add("scheduledAt", "is required")
	} else if !req.ScheduledAt.After(now) {
		v.Add("scheduledAt", "must be in the future")
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes > maxDurationMinutes {
		v.Add("durationMinutes", "must be between 1 and 480")
	}
	if req.TotalPriceCents <= 0 {
		v.Add("totalPriceCents", "must be positive")
	}

	seen := make(map[uuid.UUID]struct{}, len(req.AddonIDs))
	for _, id := range req.AddonIDs {
		if _, dup := seen[id]; dup {
			v.Add("addonIds", "must not contain duplicates")
			break
		}
		seen[id] = struct{}{}
	}

	return v.Err()
}

func (uc *bookingUseCaseImpl) checkCatalog(
	ctx context.Context,
	req CreateAppointmentRequest,
	date schedule.Date,
	scheduledAt time.Time,
	duration time.Duration,
) error {
	if _, err := shared.ActiveService(ctx, uc.catalog, req.ServiceID); err != nil {
		return err
	}

	if len(req.AddonIDs) > 0 {
		addons, err := uc.catalog.AddonsByIDs(ctx, req.AddonIDs)
		if err != nil {
			return errs.Wrap(err, "failed to look up addons")
		}
		found := make(map[uuid.UUID]bool, len(addons))
		for _, a := range addons {
			found[a.ID] = a.Active
		}
		for _, id := range req.AddonIDs {
			if !found[id] {
				return errs.NotFound(errs.Wrapf(shared.ErrAddonNotFound, "addon %s", id))
			}
		}
	}

	hours, err := uc.catalog.BusinessHours(ctx, date.Weekday())
	if err != nil {
		return errs.Wrap(err, "failed to look up business hours")
	}
	if !hours.Contains(date, uc.settings.Location, scheduledAt, duration) {
		return errs.Invalid("scheduledAt", "appointment must fall within business hours")
	}
	return nil
}

// commit is the critical section: conflict re-check, insert and reference
// allocation all happen while holding the date's appointment lock.
func (uc *bookingUseCaseImpl) commit(ctx context.Context, appt *appointment.Appointment, date schedule.Date) error {
	ctx, cancel := context.WithTimeout(ctx, uc.settings.CommitTimeout)
	defer cancel()

	start := time.Now()
	defer func() { uc.metrics.ObserveCommit(time.Since(start).Seconds()) }()

	loc := uc.settings.Location
	err := uc.uow.WithinLocked(ctx, shared.AppointmentsLock(date), func(ctx context.Context, tx shared.Tx) error {
		occupied, err := tx.Reads().OccupanciesBetween(ctx, date.Start(loc), date.End(loc))
		if err != nil {
			return err
		}
		if existing, found := appointment.FindConflict(appt.Interval(), occupied); found {
			slog.Info("slot conflict",
				"date", date.String(),
				"requested", appt.Interval().String(),
				"existing_appointment_id", existing.AppointmentID.String())
			return errs.Conflict(ErrSlotConflict)
		}

		if err := uc.insertWithReference(ctx, tx, appt); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"appointment_id": appt.ID(),
			"reference":      appt.Reference().String(),
			"scheduled_at":   appt.ScheduledAt(),
		})
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, "email", "appointment.created", payload, uc.clock.Now())
	})
	if err == nil {
		return nil
	}

	switch {
	case errs.Is(err, ErrSlotConflict), errs.Is(err, ErrReferenceExhausted):
		return err
	case infra.IsKind(err, infra.KindConflict):
		// exclusion constraint fired: another writer bypassed the lock
		return errs.Conflict(ErrSlotConflict)
	default:
		slog.Error("booking commit failed",
			"date", date.String(),
			"appointment_id", appt.ID().String(),
			"error", err.Error())
		return errs.Internal(errs.Wrap(err, "booking commit failed"))
	}
}

func (uc *bookingUseCaseImpl) insertWithReference(ctx context.Context, tx shared.Tx, appt *appointment.Appointment) error {
	year := appt.ScheduledAt().In(uc.settings.Location).Year()
	for attempt := 1; attempt <= uc.settings.ReferenceMaxAttempts; attempt++ {
		ref, err := uc.refs.Generate(year)
		if err != nil {
			return err
		}
		appt.AssignReference(ref)

		err = tx.Appointments().Create(ctx, appt)
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return err
		}
		uc.metrics.ObserveReferenceCollision()
		slog.Warn("booking reference collision, regenerating",
			"reference", ref.String(),
			"attempt", attempt)
	}
	slog.Error("booking reference attempts exhausted", "attempts", uc.settings.ReferenceMaxAttempts)
	return errs.Internal(ErrReferenceExhausted)
}

// compensate removes identity rows created for a booking that failed. It runs on
// a context detached from the request, which may already be cancelled.
func (uc *bookingUseCaseImpl) compensate(ctx context.Context, rows identityRows) {
	if rows.customerID == nil && rows.petID == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if rows.petID != nil {
		if err := uc.identity.DeletePet(ctx, *rows.petID); err != nil {
			slog.Error("failed to compensate pet", "pet_id", rows.petID.String(), "error", err.Error())
		}
	}
	if rows.customerID != nil {
		if err := uc.identity.DeleteCustomer(ctx, *rows.customerID); err != nil {
			slog.Error("failed to compensate customer", "customer_id", rows.customerID.String(), "error", err.Error())
		}
	}
}

func mapIdentityErr(err error) error {
	switch {
	case errs.Is(err, shared.ErrEmailRegistered):
		return errs.Conflict(errs.Mark(err, ErrEmailExists))
	case errs.Is(err, shared.ErrCustomerNotFound), errs.Is(err, shared.ErrPetNotFound):
		return errs.NotFound(err)
	default:
		return errs.Wrap(err, "failed to resolve identity")
	}
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errs.Is(err, ErrSlotConflict):
		return "slot_conflict"
	case errs.Is(err, ErrEmailExists):
		return "email_exists"
	case errs.Is(err, errs.ErrValidation):
		return "validation_error"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
