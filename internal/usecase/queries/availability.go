package queries

import (
	"context"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/infra/metrics"
	"pawsalon/internal/pkg/clock"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilitySettings struct {
	Location      *time.Location
	SlotInterval  time.Duration
	SameDayBuffer time.Duration
}

type AvailabilityRequest struct {
	Date      string
	ServiceID string
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.Catalog
	metrics  *metrics.BookingMetrics
	clock    clock.Clock
	settings AvailabilitySettings
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	catalog shared.Catalog,
	m *metrics.BookingMetrics,
	clk clock.Clock,
	settings AvailabilitySettings,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:      uow,
		catalog:  catalog,
		metrics:  m,
		clock:    clk,
		settings: settings,
	}
}

// GetAvailability never writes and never takes a writer lock; it reads the
// date's appointments and waitlist from one snapshot.
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error) {
	started := time.Now()
	defer func() { q.metrics.ObserveAvailability(time.Since(started).Seconds()) }()

	var v errs.ValidationErrors
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		v.Add("date", err.Error())
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		v.Add("serviceId", "must be a valid UUID")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	svc, err := shared.ActiveService(ctx, q.catalog, serviceID)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Date:            date.String(),
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		Slots:           []SlotView{},
	}

	loc := q.settings.Location
	now := q.clock.Now()
	today := schedule.DateOf(now, loc)
	if date.Before(today) {
		return view, nil
	}

	hours, err := q.catalog.BusinessHours(ctx, date.Weekday())
	if err != nil {
		return nil, errs.Internal(errs.Wrap(err, "failed to look up business hours"))
	}
	starts := schedule.GenerateSlots(date, loc, hours, q.settings.SlotInterval, svc.Duration())
	if len(starts) == 0 {
		return view, nil
	}

	var (
		occupied []appointment.Occupancy
		active   []*waitlist.Entry
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		if occupied, err = reads.OccupanciesBetween(ctx, date.Start(loc), date.End(loc)); err != nil {
			return err
		}
		active, err = reads.ActiveWaitlistOn(ctx, date)
		return err
	})
	if err != nil {
		return nil, errs.Internal(errs.Wrap(err, "failed to read availability snapshot"))
	}

	cutoff := now.Add(q.settings.SameDayBuffer)
	for _, start := range starts {
		if date.Equal(today) && start.Before(cutoff) {
			continue
		}
		interval, err := appointment.NewInterval(start, svc.Duration())
		if err != nil {
			return nil, errs.Internal(err)
		}
		at := schedule.ClockTimeOf(start)
		slot := SlotView{
			Time:      at.String(),
			StartsAt:  start,
			Available: !appointment.HasConflict(interval, occupied),
		}
		if !slot.Available {
			n := waitlist.CountMatching(active, at)
			slot.WaitlistCount = &n
		}
		view.Slots = append(view.Slots, slot)
	}
	return view, nil
}
