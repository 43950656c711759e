//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"pawsalon/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, weekday time.Weekday, open, closing string) schedule.BusinessHours {
	t.Helper()
	o, err := schedule.ParseClockTime(open)
	require.NoError(t, err)
	c, err := schedule.ParseClockTime(closing)
	require.NoError(t, err)
	h, err := schedule.NewBusinessHours(weekday, o, c, true)
	require.NoError(t, err)
	return h
}

func formatSlots(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = schedule.ClockTimeOf(s).String()
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	date := schedule.NewDate(2030, time.March, 4) // Monday
	loc := time.UTC

	t.Run("nine to five with 60 minute service ends at 16:00", func(t *testing.T) {
		hours := mustHours(t, time.Monday, "09:00", "17:00")

		slots := schedule.GenerateSlots(date, loc, hours, 30*time.Minute, 60*time.Minute)

		require.NotEmpty(t, slots)
		got := formatSlots(slots)
		assert.Equal(t, "09:00", got[0])
		assert.Equal(t, "16:00", got[len(got)-1])
		assert.NotContains(t, got, "16:30")
		assert.Len(t, got, 15)
	})

	t.Run("every slot ends by closing time", func(t *testing.T) {
		hours := mustHours(t, time.Monday, "08:15", "12:40")
		_, closing := hours.Window(date, loc)

		for _, d := range []time.Duration{15 * time.Minute, 45 * time.Minute, 90 * time.Minute, 4 * time.Hour} {
			for _, s := range schedule.GenerateSlots(date, loc, hours, 30*time.Minute, d) {
				assert.False(t, s.Add(d).After(closing), "slot %s with %s passes close", s, d)
				assert.True(t, hours.Contains(date, loc, s, d))
			}
		}
	})

	t.Run("closed day yields no slots", func(t *testing.T) {
		slots := schedule.GenerateSlots(date, loc, schedule.Closed(time.Monday), 30*time.Minute, 60*time.Minute)
		assert.Empty(t, slots)
	})

	t.Run("service longer than the window yields no slots", func(t *testing.T) {
		hours := mustHours(t, time.Monday, "09:00", "10:00")
		assert.Empty(t, schedule.GenerateSlots(date, loc, hours, 30*time.Minute, 90*time.Minute))
	})

	t.Run("non-positive interval or duration yields no slots", func(t *testing.T) {
		hours := mustHours(t, time.Monday, "09:00", "17:00")
		assert.Empty(t, schedule.GenerateSlots(date, loc, hours, 0, time.Hour))
		assert.Empty(t, schedule.GenerateSlots(date, loc, hours, 30*time.Minute, 0))
	})

	t.Run("output is deterministic", func(t *testing.T) {
		hours := mustHours(t, time.Monday, "09:00", "17:00")
		first := schedule.GenerateSlots(date, loc, hours, 30*time.Minute, 45*time.Minute)
		second := schedule.GenerateSlots(date, loc, hours, 30*time.Minute, 45*time.Minute)
		assert.Equal(t, first, second)
	})

	t.Run("slots are placed in the business timezone", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		hours := mustHours(t, time.Monday, "09:00", "10:00")

		slots := schedule.GenerateSlots(date, ny, hours, 30*time.Minute, 30*time.Minute)

		require.Len(t, slots, 2)
		assert.Equal(t, ny, slots[0].Location())
		assert.Equal(t, 9, slots[0].Hour())
	})
}

func TestDate(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := schedule.ParseDate("2030-12-31")
		require.NoError(t, err)
		assert.Equal(t, "2030-12-31", d.String())
		assert.Equal(t, time.Tuesday, d.Weekday())
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		for _, in := range []string{"", "2030-13-01", "31/12/2030", "2030-02-30", "tomorrow"} {
			_, err := schedule.ParseDate(in)
			assert.ErrorIs(t, err, schedule.ErrInvalidDate, in)
		}
	})

	t.Run("date of an instant depends on location", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		instant := time.Date(2030, time.March, 5, 2, 0, 0, 0, time.UTC)

		assert.Equal(t, "2030-03-05", schedule.DateOf(instant, time.UTC).String())
		assert.Equal(t, "2030-03-04", schedule.DateOf(instant, ny).String())
	})

	t.Run("ordering", func(t *testing.T) {
		a := schedule.NewDate(2030, time.January, 31)
		b := schedule.NewDate(2030, time.February, 1)
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.False(t, a.Before(a))
	})
}

func TestClockTime(t *testing.T) {
	c, err := schedule.ParseClockTime("11:59")
	require.NoError(t, err)
	assert.True(t, c.IsMorning())

	c, err = schedule.ParseClockTime("12:00")
	require.NoError(t, err)
	assert.False(t, c.IsMorning())

	_, err = schedule.ParseClockTime("25:00")
	assert.ErrorIs(t, err, schedule.ErrInvalidClockTime)

	_, err = schedule.NewBusinessHours(time.Monday, schedule.NewClockTime(17, 0), schedule.NewClockTime(9, 0), true)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)
}
