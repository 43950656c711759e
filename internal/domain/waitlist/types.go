package waitlist

import (
	"errors"

	"pawsalon/internal/domain/schedule"
)

type TimePreference string

const (
	PreferenceMorning   TimePreference = "morning"
	PreferenceAfternoon TimePreference = "afternoon"
	PreferenceAny       TimePreference = "any"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusNotified  Status = "notified"
)

var (
	ErrInvalidPreference = errors.New("time preference must be morning, afternoon or any")
	ErrInvalidStatus     = errors.New("invalid waitlist status")
	ErrNotActive         = errors.New("waitlist entry is not active")
	ErrDateInPast        = errors.New("requested date is in the past")
	ErrMissingParty      = errors.New("customer, pet and service are required")
)

func ParsePreference(s string) (TimePreference, error) {
	p := TimePreference(s)
	if !p.IsValid() {
		return "", ErrInvalidPreference
	}
	return p, nil
}

func (p TimePreference) IsValid() bool {
	switch p {
	case PreferenceMorning, PreferenceAfternoon, PreferenceAny:
		return true
	}
	return false
}

func (p TimePreference) String() string {
	return string(p)
}

// Matches reports whether a slot starting at t falls in the preferred half of the day.
func (p TimePreference) Matches(t schedule.ClockTime) bool {
	switch p {
	case PreferenceAny:
		return true
	case PreferenceMorning:
		return t.IsMorning()
	case PreferenceAfternoon:
		return !t.IsMorning()
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusCancelled, StatusNotified:
		return st, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}
