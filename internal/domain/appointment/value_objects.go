package appointment

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var referencePattern = regexp.MustCompile(`^APT-(\d{4})-(\d{6})$`)

// Interval is the half-open range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start time.Time, duration time.Duration) (Interval, error) {
	if duration <= 0 {
		return Interval{}, ErrInvalidDuration
	}
	return Interval{start: start, end: start.Add(duration)}, nil
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps: [aStart,aEnd) and [bStart,bEnd) conflict iff aStart < bEnd && bStart < aEnd.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.Before(o.end) && o.start.Before(i.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Reference is the customer-facing booking code, APT-YYYY-NNNNNN.
type Reference struct {
	value string
}

func NewReference(year, serial int) (Reference, error) {
	if year < 1000 || year > 9999 || serial < 0 || serial > 999999 {
		return Reference{}, ErrInvalidReference
	}
	return Reference{value: fmt.Sprintf("APT-%04d-%06d", year, serial)}, nil
}

func ParseReference(s string) (Reference, error) {
	if !referencePattern.MatchString(s) {
		return Reference{}, ErrInvalidReference
	}
	return Reference{value: s}, nil
}

func (r Reference) String() string {
	return r.value
}

func (r Reference) IsZero() bool {
	return r.value == ""
}

var (
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidReference  = errors.New("reference must match APT-YYYY-NNNNNN")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("appointment status transition not allowed")
)
