package schedule

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// Date is a calendar day with no location attached; callers pick the business
// timezone when turning it into instants.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func DateOf(t time.Time, loc *time.Location) Date {
	lt := t.In(loc)
	return Date{year: lt.Year(), month: lt.Month(), day: lt.Day()}
}

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Before(o Date) bool {
	return d.key() < o.key()
}

func (d Date) Equal(o Date) bool {
	return d == o
}

// Start is midnight of the day in loc.
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// End is midnight of the following day in loc.
func (d Date) End(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day+1, 0, 0, 0, 0, loc)
}

// At places a wall-clock time on the day; time.Date normalizes DST gaps.
func (d Date) At(loc *time.Location, c ClockTime) time.Time {
	return time.Date(d.year, d.month, d.day, 0, int(c), 0, 0, loc)
}

func (d Date) key() int {
	return d.year*10000 + int(d.month)*100 + d.day
}
