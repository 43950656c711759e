//go:build unit

package waitlist_test

import (
	"testing"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/domain/waitlist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today     = schedule.NewDate(2030, time.March, 4)
	requested = schedule.NewDate(2030, time.March, 6)
	createdAt = time.Date(2030, time.March, 4, 9, 0, 0, 0, time.UTC)
)

func newEntry(t *testing.T, pref waitlist.TimePreference, now time.Time) *waitlist.Entry {
	t.Helper()
	e, err := waitlist.NewEntry(waitlist.NewParams{
		CustomerID:    uuid.New(),
		PetID:         uuid.New(),
		ServiceID:     uuid.New(),
		RequestedDate: requested,
		Preference:    pref,
	}, today, now)
	require.NoError(t, err)
	return e
}

func TestNewEntry(t *testing.T) {
	t.Run("starts active", func(t *testing.T) {
		e := newEntry(t, waitlist.PreferenceAny, createdAt)
		assert.Equal(t, waitlist.StatusActive, e.Status())
		assert.Equal(t, requested, e.RequestedDate())
	})

	t.Run("today is accepted, yesterday is not", func(t *testing.T) {
		p := waitlist.NewParams{
			CustomerID: uuid.New(), PetID: uuid.New(), ServiceID: uuid.New(),
			RequestedDate: today, Preference: waitlist.PreferenceMorning,
		}
		_, err := waitlist.NewEntry(p, today, createdAt)
		require.NoError(t, err)

		p.RequestedDate = schedule.NewDate(2030, time.March, 3)
		_, err = waitlist.NewEntry(p, today, createdAt)
		assert.ErrorIs(t, err, waitlist.ErrDateInPast)
	})

	t.Run("unknown preference", func(t *testing.T) {
		_, err := waitlist.NewEntry(waitlist.NewParams{
			CustomerID: uuid.New(), PetID: uuid.New(), ServiceID: uuid.New(),
			RequestedDate: requested, Preference: "evening",
		}, today, createdAt)
		assert.ErrorIs(t, err, waitlist.ErrInvalidPreference)
	})
}

func TestCancel(t *testing.T) {
	e := newEntry(t, waitlist.PreferenceAny, createdAt)
	require.NoError(t, e.Cancel())
	assert.Equal(t, waitlist.StatusCancelled, e.Status())
	assert.ErrorIs(t, e.Cancel(), waitlist.ErrNotActive)
}

func TestPreferenceMatches(t *testing.T) {
	morning := schedule.NewClockTime(11, 30)
	noon := schedule.NewClockTime(12, 0)

	assert.True(t, waitlist.PreferenceMorning.Matches(morning))
	assert.False(t, waitlist.PreferenceMorning.Matches(noon))
	assert.True(t, waitlist.PreferenceAfternoon.Matches(noon))
	assert.False(t, waitlist.PreferenceAfternoon.Matches(morning))
	assert.True(t, waitlist.PreferenceAny.Matches(morning))
	assert.True(t, waitlist.PreferenceAny.Matches(noon))
}

func TestPositionAndCount(t *testing.T) {
	first := newEntry(t, waitlist.PreferenceMorning, createdAt)
	first.AssignSeq(1)
	second := newEntry(t, waitlist.PreferenceAfternoon, createdAt)
	second.AssignSeq(2)
	third := newEntry(t, waitlist.PreferenceAny, createdAt.Add(time.Minute))
	third.AssignSeq(3)
	active := []*waitlist.Entry{third, second, first}

	assert.Equal(t, 1, waitlist.Position(first, active))
	assert.Equal(t, 2, waitlist.Position(second, active), "equal createdAt falls back to seq")
	assert.Equal(t, 3, waitlist.Position(third, active))

	assert.Equal(t, 2, waitlist.CountMatching(active, schedule.NewClockTime(9, 0)))
	assert.Equal(t, 2, waitlist.CountMatching(active, schedule.NewClockTime(14, 0)))

	require.NoError(t, first.Cancel())
	assert.Equal(t, 1, waitlist.Position(second, active))
	assert.Equal(t, 1, waitlist.CountMatching(active, schedule.NewClockTime(9, 0)))
}
