//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/shared"
	"pawsalon/tests/common/salontest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWaitlist(s *salontest.Salon) commands.WaitlistCommands {
	return commands.NewWaitlistUseCase(s.Store.UnitOfWork(), s.Store.Catalog(), nil, s.Clock, s.BookingSettings())
}

func joinRequest(s *salontest.Salon, customerID uuid.UUID) commands.JoinWaitlistRequest {
	return commands.JoinWaitlistRequest{
		CustomerID:     customerID,
		PetID:          uuid.New(),
		ServiceID:      s.Service.ID,
		RequestedDate:  salontest.Monday.String(),
		TimePreference: "morning",
	}
}

func TestJoinWaitlist(t *testing.T) {
	ctx := context.Background()

	t.Run("three customers get positions 1, 2, 3", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)

		for want := 1; want <= 3; want++ {
			res, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
			require.NoError(t, err)
			assert.Equal(t, want, res.Position)
			assert.Equal(t, waitlist.StatusActive, res.Entry.Status())
		}

		jobs := s.Store.NotificationJobs()
		require.Len(t, jobs, 3)
		for _, job := range jobs {
			assert.Equal(t, "waitlist.joined", job.Topic)
		}
	})

	t.Run("equal createdAt is ordered by insertion", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)

		first, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
		require.NoError(t, err)
		second, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
		require.NoError(t, err)

		assert.Equal(t, first.Entry.CreatedAt(), second.Entry.CreatedAt())
		assert.True(t, first.Entry.QueuedBefore(second.Entry))
		assert.Equal(t, 2, second.Position)
	})

	t.Run("duplicate join returns the first entry and writes nothing", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)
		customerID := uuid.New()

		_, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
		require.NoError(t, err)
		first, err := uc.JoinWaitlist(ctx, joinRequest(s, customerID))
		require.NoError(t, err)

		_, err = uc.JoinWaitlist(ctx, joinRequest(s, customerID))
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDuplicateEntry))
		assert.True(t, errs.Is(err, errs.ErrConflict))

		var dup *commands.DuplicateEntryError
		require.True(t, errs.As(err, &dup))
		assert.Equal(t, first.Entry.ID(), dup.Entry.ID())
		assert.Equal(t, 2, dup.Position)

		assert.Len(t, s.Store.WaitlistEntries(), 2)
		assert.Len(t, s.Store.NotificationJobs(), 2)
	})

	t.Run("same customer on another date is allowed", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)
		customerID := uuid.New()

		_, err := uc.JoinWaitlist(ctx, joinRequest(s, customerID))
		require.NoError(t, err)
		req := joinRequest(s, customerID)
		req.RequestedDate = schedule.NewDate(2030, time.March, 5).String()
		res, err := uc.JoinWaitlist(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Position)
	})

	t.Run("concurrent duplicate joins leave one active entry", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)
		customerID := uuid.New()

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			joined int
			dups   int
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.JoinWaitlist(context.Background(), joinRequest(s, customerID))
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					joined++
				} else if errs.Is(err, commands.ErrDuplicateEntry) {
					dups++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, joined)
		assert.Equal(t, 7, dups)
		assert.Len(t, s.Store.WaitlistEntries(), 1)
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*commands.JoinWaitlistRequest)
			fields []string
		}{
			{
				name:   "past date",
				mutate: func(r *commands.JoinWaitlistRequest) { r.RequestedDate = "2030-02-28" },
				fields: []string{"requestedDate"},
			},
			{
				name:   "malformed date",
				mutate: func(r *commands.JoinWaitlistRequest) { r.RequestedDate = "next monday" },
				fields: []string{"requestedDate"},
			},
			{
				name:   "unknown preference",
				mutate: func(r *commands.JoinWaitlistRequest) { r.TimePreference = "evening" },
				fields: []string{"timePreference"},
			},
			{
				name: "missing ids",
				mutate: func(r *commands.JoinWaitlistRequest) {
					r.CustomerID = uuid.Nil
					r.PetID = uuid.Nil
				},
				fields: []string{"customerId", "petId"},
			},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				s := salontest.New(t)
				req := joinRequest(s, uuid.New())
				tc.mutate(&req)

				_, err := newWaitlist(s).JoinWaitlist(ctx, req)
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Equal(t, tc.fields, fieldsOf(err))
				assert.Empty(t, s.Store.WaitlistEntries())
			})
		}
	})

	t.Run("today is accepted", func(t *testing.T) {
		s := salontest.New(t)
		req := joinRequest(s, uuid.New())
		req.RequestedDate = schedule.DateOf(salontest.Now, time.UTC).String()
		_, err := newWaitlist(s).JoinWaitlist(ctx, req)
		require.NoError(t, err)
	})

	t.Run("unknown service is not found", func(t *testing.T) {
		s := salontest.New(t)
		req := joinRequest(s, uuid.New())
		req.ServiceID = uuid.New()

		_, err := newWaitlist(s).JoinWaitlist(ctx, req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

// stallingCatalog parks the first ServiceByID call until release is closed.
type stallingCatalog struct {
	shared.Catalog
	once    sync.Once
	reached chan struct{}
	release chan struct{}
}

func (c *stallingCatalog) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	c.once.Do(func() {
		close(c.reached)
		<-c.release
	})
	return c.Catalog.ServiceByID(ctx, id)
}

func TestJoinWaitlist_SlowLookupQueuesByCommitOrder(t *testing.T) {
	ctx := context.Background()
	s := salontest.New(t)
	catalog := &stallingCatalog{
		Catalog: s.Store.Catalog(),
		reached: make(chan struct{}),
		release: make(chan struct{}),
	}
	uc := commands.NewWaitlistUseCase(s.Store.UnitOfWork(), catalog, nil, s.Clock, s.BookingSettings())

	type outcome struct {
		res *commands.JoinWaitlistResult
		err error
	}
	slow := make(chan outcome, 1)
	go func() {
		res, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
		slow <- outcome{res, err}
	}()

	<-catalog.reached
	s.Clock.Add(time.Minute)

	fast, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, 1, fast.Position)

	close(catalog.release)
	late := <-slow
	require.NoError(t, late.err)
	assert.Equal(t, 2, late.res.Position)
	assert.False(t, late.res.Entry.CreatedAt().Before(fast.Entry.CreatedAt()))
	assert.True(t, fast.Entry.QueuedBefore(late.res.Entry))
}

func TestCancelWaitlistEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel frees the customer to join again", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)
		customerID := uuid.New()

		first, err := uc.JoinWaitlist(ctx, joinRequest(s, customerID))
		require.NoError(t, err)
		require.NoError(t, uc.CancelWaitlistEntry(ctx, first.Entry.ID()))

		again, err := uc.JoinWaitlist(ctx, joinRequest(s, customerID))
		require.NoError(t, err)
		assert.Equal(t, 1, again.Position)
		assert.NotEqual(t, first.Entry.ID(), again.Entry.ID())
	})

	t.Run("cancelling twice is an invalid transition", func(t *testing.T) {
		s := salontest.New(t)
		uc := newWaitlist(s)

		res, err := uc.JoinWaitlist(ctx, joinRequest(s, uuid.New()))
		require.NoError(t, err)
		require.NoError(t, uc.CancelWaitlistEntry(ctx, res.Entry.ID()))

		err = uc.CancelWaitlistEntry(ctx, res.Entry.ID())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("unknown entry is not found", func(t *testing.T) {
		s := salontest.New(t)
		err := newWaitlist(s).CancelWaitlistEntry(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrWaitlistEntryNotFound))
	})
}
