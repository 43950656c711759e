package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra"
	"pawsalon/internal/infra/metrics"
	"pawsalon/internal/pkg/clock"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	CustomerID     uuid.UUID
	PetID          uuid.UUID
	ServiceID      uuid.UUID
	RequestedDate  string
	TimePreference string
}

type JoinWaitlistResult struct {
	Entry    *waitlist.Entry
	Position int
}

type WaitlistCommands interface {
	JoinWaitlist(ctx context.Context, req JoinWaitlistRequest) (*JoinWaitlistResult, error)
	CancelWaitlistEntry(ctx context.Context, id uuid.UUID) error
}

type waitlistUseCaseImpl struct {
	uow     shared.UnitOfWork
	catalog shared.Catalog
	metrics *metrics.BookingMetrics
	clock   clock.Clock
	loc     *time.Location
}

func NewWaitlistUseCase(
	uow shared.UnitOfWork,
	catalog shared.Catalog,
	m *metrics.BookingMetrics,
	clk clock.Clock,
	settings BookingSettings,
) WaitlistCommands {
	return &waitlistUseCaseImpl{
		uow:     uow,
		catalog: catalog,
		metrics: m,
		clock:   clk,
		loc:     settings.Location,
	}
}

func (uc *waitlistUseCaseImpl) JoinWaitlist(ctx context.Context, req JoinWaitlistRequest) (*JoinWaitlistResult, error) {
	today := schedule.DateOf(uc.clock.Now(), uc.loc)

	var v errs.ValidationErrors
	if req.CustomerID == uuid.Nil {
		v.Add("customerId", "is required")
	}
	if req.PetID == uuid.Nil {
		v.Add("petId", "is required")
	}
	if req.ServiceID == uuid.Nil {
		v.Add("serviceId", "is required")
	}
	date, err := schedule.ParseDate(req.RequestedDate)
	if err != nil {
		v.Add("requestedDate", err.Error())
	} else if date.Before(today) {
		v.Add("requestedDate", "must not be in the past")
	}
	pref, err := waitlist.ParsePreference(req.TimePreference)
	if err != nil {
		v.Add("timePreference", err.Error())
	}
	if err := v.Err(); err != nil {
		uc.metrics.ObserveWaitlistJoin("validation_error")
		return nil, err
	}

	if _, err := shared.ActiveService(ctx, uc.catalog, req.ServiceID); err != nil {
		uc.metrics.ObserveWaitlistJoin("not_found")
		return nil, err
	}

	var (
		entry    *waitlist.Entry
		position int
	)
	err = uc.uow.WithinLocked(ctx, shared.WaitlistLock(date), func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ActiveWaitlistEntry(ctx, req.CustomerID, date)
		switch {
		case err == nil:
			active, err := tx.Reads().ActiveWaitlistOn(ctx, date)
			if err != nil {
				return err
			}
			return duplicateEntry(existing, waitlist.Position(existing, active))
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		// stamped under the lock so queue order matches insertion order
		joinedAt := uc.clock.Now()
		entry, err = waitlist.NewEntry(waitlist.NewParams{
			CustomerID:    req.CustomerID,
			PetID:         req.PetID,
			ServiceID:     req.ServiceID,
			RequestedDate: date,
			Preference:    pref,
		}, today, joinedAt)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Waitlist().Create(ctx, entry); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"waitlist_id":     entry.ID(),
			"customer_id":     entry.CustomerID(),
			"requested_date":  date.String(),
			"time_preference": pref,
		})
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, "email", "waitlist.joined", payload, joinedAt); err != nil {
			return err
		}

		active, err := tx.Reads().ActiveWaitlistOn(ctx, date)
		if err != nil {
			return err
		}
		position = waitlist.Position(entry, active)
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrDuplicateEntry):
			uc.metrics.ObserveWaitlistJoin("duplicate")
			return nil, err
		case errs.Is(err, errs.ErrValidation):
			uc.metrics.ObserveWaitlistJoin("validation_error")
			return nil, err
		case infra.IsKind(err, infra.KindDuplicateKey):
			// partial unique index caught a writer that skipped the lock
			uc.metrics.ObserveWaitlistJoin("duplicate")
			return nil, errs.Conflict(ErrDuplicateEntry)
		default:
			uc.metrics.ObserveWaitlistJoin("error")
			slog.Error("waitlist join failed",
				"customer_id", req.CustomerID.String(),
				"requested_date", date.String(),
				"error", err.Error())
			return nil, errs.Internal(errs.Wrap(err, "waitlist join failed"))
		}
	}

	uc.metrics.ObserveWaitlistJoin("joined")
	return &JoinWaitlistResult{Entry: entry, Position: position}, nil
}

func (uc *waitlistUseCaseImpl) CancelWaitlistEntry(ctx context.Context, id uuid.UUID) error {
	var date schedule.Date
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		entry, err := reads.WaitlistEntryByID(ctx, id)
		if err != nil {
			return err
		}
		date = entry.RequestedDate()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.NotFound(ErrWaitlistEntryNotFound)
		}
		return errs.Internal(errs.Wrap(err, "failed to load waitlist entry"))
	}

	err = uc.uow.WithinLocked(ctx, shared.WaitlistLock(date), func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Reads().WaitlistEntryByID(ctx, id)
		if err != nil {
			return err
		}
		if err := entry.Cancel(); err != nil {
			return errs.Conflict(errs.Wrapf(ErrInvalidTransition, "waitlist entry is %s", entry.Status()))
		}
		return tx.Waitlist().UpdateStatus(ctx, entry)
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrInvalidTransition):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return errs.NotFound(ErrWaitlistEntryNotFound)
		default:
			slog.Error("waitlist cancel failed", "waitlist_id", id.String(), "error", err.Error())
			return errs.Internal(errs.Wrap(err, "waitlist cancel failed"))
		}
	}
	return nil
}
