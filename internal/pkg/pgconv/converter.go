package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"pawsalon/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// TextValue flattens a nullable text column; NULL reads as "".
func TextValue(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// OptionalText stores "" as NULL.
func OptionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func DateToPgtype(d schedule.Date) pgtype.Date {
	return pgtype.Date{Time: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) schedule.Date {
	t := pd.Time
	return schedule.NewDate(t.Year(), t.Month(), t.Day())
}

// ClockTimeToPgtype stores a wall-clock time as a PostgreSQL time (microseconds since midnight).
func ClockTimeToPgtype(c schedule.ClockTime) pgtype.Time {
	return pgtype.Time{Microseconds: int64(c) * int64(time.Minute/time.Microsecond), Valid: true}
}

func ClockTimeFromPgtype(pt pgtype.Time) schedule.ClockTime {
	minutes := pt.Microseconds / int64(time.Minute/time.Microsecond)
	return schedule.NewClockTime(int(minutes/60), int(minutes%60))
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
