package types

import (
	"time"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

const (
	// DateFormat is the calendar-date layout used across the API surface.
	DateFormat = "2006-01-02"
	// MonthKeyFormat is the layout of a MonthKey.
	MonthKeyFormat = "2006-01"
)

// MonthKey identifies a calendar month without a day component, e.g. "2024-03".
type MonthKey string

// MonthKeyFromTime derives the month key of t.
func MonthKeyFromTime(t time.Time) MonthKey {
	return MonthKey(t.Format(MonthKeyFormat))
}

// MonthsOfYear returns the 12 month-start dates of the given year in UTC,
// January first.
func MonthsOfYear(year int) []time.Time {
	months := make([]time.Time, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, time.Date(year, m, 1, 0, 0, 0, 0, time.UTC))
	}
	return months
}

// SameMonth reports whether a and b fall in the same calendar year and month.
// The day component is ignored.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AddMonths shifts t by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// StartOfMonth returns the first instant of t's calendar month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's calendar month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfDay returns the first instant of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDate parses a calendar date in YYYY-MM-DD form. Failures are marked
// ErrInvalidDate; callers are expected to validate upstream input before
// handing dates to the schedule or aggregation engines.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("Invalid date %q, expected YYYY-MM-DD", value).
			Mark(ierr.ErrInvalidDate)
	}
	return t.UTC(), nil
}

// ParseDateTime parses an RFC 3339 timestamp, falling back to a plain
// calendar date. Failures are marked ErrInvalidDate.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return ParseDate(value)
}
