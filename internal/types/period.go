package types

import (
	"time"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

// PeriodType selects a logical reporting window.
type PeriodType string

const (
	PeriodTypeAll     PeriodType = "all"
	PeriodTypeCurrent PeriodType = "current"
	PeriodTypeLast    PeriodType = "last"
	PeriodTypeCustom  PeriodType = "custom"
)

// Validate validates the period type
func (p PeriodType) Validate() error {
	switch p {
	case PeriodTypeAll, PeriodTypeCurrent, PeriodTypeLast, PeriodTypeCustom:
		return nil
	default:
		return ierr.NewError("invalid period type").
			WithHintf("Period must be one of all, current, last, custom, got %s", p).
			Mark(ierr.ErrValidation)
	}
}

// allTimeEpoch is the lower bound used for the all-time period. Nothing in
// the data set predates the company.
var allTimeEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ReportingPeriod is an inclusive [Start, End] instant range, normalized so
// Start is never after End.
type ReportingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the period, bounds included.
func (p ReportingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ResolvePeriod maps a logical period selector to a concrete interval
// relative to now. Custom bounds are calendar dates in YYYY-MM-DD form; when
// either bound is missing or unparseable the resolver falls back to the
// current month rather than failing.
func ResolvePeriod(periodType PeriodType, customStart, customEnd string, now time.Time) ReportingPeriod {
	switch periodType {
	case PeriodTypeAll:
		return ReportingPeriod{Start: allTimeEpoch, End: now}
	case PeriodTypeLast:
		// Step back from the month start, not from now: AddDate on a day-31
		// now would normalize into the current month again.
		lastMonth := StartOfMonth(now).AddDate(0, 0, -1)
		return ReportingPeriod{Start: StartOfMonth(lastMonth), End: EndOfMonth(lastMonth)}
	case PeriodTypeCustom:
		start, startErr := ParseDate(customStart)
		end, endErr := ParseDate(customEnd)
		if startErr != nil || endErr != nil {
			return ReportingPeriod{Start: StartOfMonth(now), End: EndOfMonth(now)}
		}
		if start.After(end) {
			start, end = end, start
		}
		return ReportingPeriod{Start: StartOfDay(start), End: EndOfDay(end)}
	default:
		// current, and the safety net for unknown selectors
		return ReportingPeriod{Start: StartOfMonth(now), End: EndOfMonth(now)}
	}
}
