package queries

import (
	"context"
	"time"

	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound   = errs.New("appointment not found")
	ErrWaitlistEntryNotFound = errs.New("waitlist entry not found")
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	GetWaitlistEntry(ctx context.Context, id uuid.UUID) (*WaitlistEntryView, error)
}

type appointmentQueriesImpl struct {
	uow shared.UnitOfWork
	loc *time.Location
}

func NewAppointmentQueries(uow shared.UnitOfWork, loc *time.Location) AppointmentQueries {
	return &appointmentQueriesImpl{uow: uow, loc: loc}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	var view *AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		appt, err := reads.AppointmentByID(ctx, id)
		if err != nil {
			return err
		}
		view = NewAppointmentView(appt, q.loc)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrAppointmentNotFound)
		}
		return nil, errs.Internal(errs.Wrap(err, "failed to load appointment"))
	}
	return view, nil
}

// GetWaitlistEntry includes the FIFO position while the entry is active.
func (q *appointmentQueriesImpl) GetWaitlistEntry(ctx context.Context, id uuid.UUID) (*WaitlistEntryView, error) {
	var view *WaitlistEntryView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		entry, err := reads.WaitlistEntryByID(ctx, id)
		if err != nil {
			return err
		}
		position := 0
		if entry.IsActive() {
			active, err := reads.ActiveWaitlistOn(ctx, entry.RequestedDate())
			if err != nil {
				return err
			}
			position = waitlist.Position(entry, active)
		}
		view = NewWaitlistEntryView(entry, position)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrWaitlistEntryNotFound)
		}
		return nil, errs.Internal(errs.Wrap(err, "failed to load waitlist entry"))
	}
	return view, nil
}
