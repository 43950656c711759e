package commands

import (
	"context"
	"encoding/json"
	"log/slog"
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

type StatusChangeResult struct {
	AppointmentID  uuid.UUID
	PreviousStatus appointment.Status
	Status         appointment.Status
	UpdatedAt      time.Time
}

type StatusCommands interface {
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*StatusChangeResult, error)
}

type statusUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.BookingMetrics
	clock   clock.Clock
	loc     *time.Location
}

func NewStatusUseCase(uow shared.UnitOfWork, m *metrics.BookingMetrics, clk clock.Clock, settings BookingSettings) StatusCommands {
	return &statusUseCaseImpl{uow: uow, metrics: m, clock: clk, loc: settings.Location}
}

// UpdateAppointmentStatus applies one state-machine step. It takes the same
// per-date lock as booking so a cancellation and a booking of the freed slot
// are ordered.
func (uc *statusUseCaseImpl) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*StatusChangeResult, error) {
	next, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, errs.Invalid("status", "must be one of pending, confirmed, checked_in, in_progress, completed, cancelled, no_show")
	}

	date, err := uc.appointmentDate(ctx, id)
	if err != nil {
		return nil, err
	}

	var result StatusChangeResult
	err = uc.uow.WithinLocked(ctx, shared.AppointmentsLock(date), func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Reads().AppointmentByID(ctx, id)
		if err != nil {
			return err
		}

		prev := appt.Status()
		if err := appt.TransitionTo(next, uc.clock.Now()); err != nil {
			return errs.Conflict(errs.Wrapf(ErrInvalidTransition, "%s -> %s", prev, next))
		}
		if err := tx.Appointments().UpdateStatus(ctx, appt); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"appointment_id":  appt.ID(),
			"reference":       appt.Reference().String(),
			"previous_status": prev,
			"status":          next,
		})
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, "email", "appointment.status_changed", payload, uc.clock.Now()); err != nil {
			return err
		}

		result = StatusChangeResult{
			AppointmentID:  appt.ID(),
			PreviousStatus: prev,
			Status:         appt.Status(),
			UpdatedAt:      appt.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrInvalidTransition):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.NotFound(ErrAppointmentNotFound)
		default:
			slog.Error("status transition failed", "appointment_id", id.String(), "error", err.Error())
			return nil, errs.Internal(errs.Wrap(err, "status transition failed"))
		}
	}

	uc.metrics.ObserveStatusTransition(result.Status.String())
	return &result, nil
}

func (uc *statusUseCaseImpl) appointmentDate(ctx context.Context, id uuid.UUID) (schedule.Date, error) {
	var date schedule.Date
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		appt, err := reads.AppointmentByID(ctx, id)
		if err != nil {
			return err
		}
		date = schedule.DateOf(appt.ScheduledAt(), uc.loc)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return schedule.Date{}, errs.NotFound(ErrAppointmentNotFound)
		}
		return schedule.Date{}, errs.Internal(errs.Wrap(err, "failed to load appointment"))
	}
	return date, nil
}
