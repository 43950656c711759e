package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("time must be formatted as HH:MM")
	ErrInvalidHours     = errors.New("close time must be after open time")
)

const noon ClockTime = 12 * 60

// ClockTime is a wall-clock time expressed as minutes after midnight.
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return NewClockTime(t.Hour(), t.Minute()), nil
}

func ClockTimeOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute())
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) IsMorning() bool {
	return c < noon
}

type BusinessHours struct {
	Weekday time.Weekday
	Open    ClockTime
	Close   ClockTime
	IsOpen  bool
}

func NewBusinessHours(weekday time.Weekday, open, closing ClockTime, isOpen bool) (BusinessHours, error) {
	if isOpen && closing <= open {
		return BusinessHours{}, ErrInvalidHours
	}
	return BusinessHours{Weekday: weekday, Open: open, Close: closing, IsOpen: isOpen}, nil
}

func Closed(weekday time.Weekday) BusinessHours {
	return BusinessHours{Weekday: weekday}
}

// Window returns the open and close instants of the hours on the given date.
func (h BusinessHours) Window(date Date, loc *time.Location) (time.Time, time.Time) {
	return date.At(loc, h.Open), date.At(loc, h.Close)
}

// Contains reports whether [start, start+duration) fits the open window of date.
func (h BusinessHours) Contains(date Date, loc *time.Location, start time.Time, duration time.Duration) bool {
	if !h.IsOpen || duration <= 0 {
		return false
	}
	open, closing := h.Window(date, loc)
	return !start.Before(open) && !start.Add(duration).After(closing)
}
