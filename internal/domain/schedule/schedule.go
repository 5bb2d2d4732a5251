// Package schedule derives the renewal calendar of a subscription and
// reconciles it against recorded payments. Everything here is a pure function
// of its inputs: no repositories, no clock, no caching.
package schedule

import (
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	"github.com/chosenhack/toprentbillfinal/internal/types"
)

// RenewalMonths returns the set of candidate months in which the customer's
// subscription is expected to renew.
//
// One-time subscriptions renew only in the activation month. Recurring
// subscriptions renew every MonthStep months starting from the activation
// month. Unrecognized frequencies degrade to the one-time behavior: the
// activation month and nothing after it.
//
// Deactivation does not truncate the result; filtering by active window is
// the aggregation layer's concern.
func RenewalMonths(c *customer.Customer, months []time.Time) map[types.MonthKey]struct{} {
	renewals := make(map[types.MonthKey]struct{})
	if len(months) == 0 {
		return renewals
	}

	cursor := types.StartOfMonth(c.ActivationDate)
	step, recurring := c.PaymentFrequency.MonthStep()
	if !recurring {
		for _, month := range months {
			if types.SameMonth(cursor, month) {
				renewals[types.MonthKeyFromTime(month)] = struct{}{}
			}
		}
		return renewals
	}

	last := months[len(months)-1]
	// Hard iteration bound: the cursor can take at most
	// monthsBetween(cursor, last)/step full steps before passing the window,
	// so anything beyond that means the inputs were malformed.
	maxSteps := monthsBetween(cursor, last)/step + 2
	for i := 0; i < maxSteps && !cursor.After(last) && len(renewals) < len(months); i++ {
		for _, month := range months {
			if types.SameMonth(cursor, month) {
				renewals[types.MonthKeyFromTime(month)] = struct{}{}
			}
		}
		cursor = types.AddMonths(cursor, step)
	}
	return renewals
}

// Reconcile cross-references the customer's renewal schedule with recorded
// payments and returns a status per candidate month.
//
// A month on or after the billing cursor takes the status of the payment
// recorded in it, or pending when none exists. Months before the activation
// month have no entry: absence means no renewal was expected there. When
// several payments land in the same month the most recently created one
// wins.
func Reconcile(c *customer.Customer, months []time.Time, payments []*payment.Payment) map[types.MonthKey]types.PaymentStatus {
	statuses := make(map[types.MonthKey]types.PaymentStatus)
	if len(months) == 0 {
		return statuses
	}

	byMonth := latestPaymentByMonth(payments)
	cursor := types.StartOfMonth(c.ActivationDate)
	step, recurring := c.PaymentFrequency.MonthStep()

	if !recurring {
		for _, month := range months {
			if !types.SameMonth(cursor, month) {
				continue
			}
			key := types.MonthKeyFromTime(month)
			if p, ok := byMonth[key]; ok {
				statuses[key] = p.Status
			} else {
				statuses[key] = types.PaymentStatusPending
			}
		}
		return statuses
	}

	for _, month := range months {
		if month.Before(cursor) && !types.SameMonth(month, cursor) {
			continue
		}
		key := types.MonthKeyFromTime(month)
		if p, ok := byMonth[key]; ok {
			statuses[key] = p.Status
		} else {
			statuses[key] = types.PaymentStatusPending
		}
		if types.SameMonth(month, cursor) {
			cursor = types.AddMonths(cursor, step)
		}
	}
	return statuses
}

// latestPaymentByMonth indexes payments by calendar month, keeping the most
// recently created payment when a month holds more than one. Ties on
// CreatedAt fall back to the higher ID so the pick stays deterministic.
func latestPaymentByMonth(payments []*payment.Payment) map[types.MonthKey]*payment.Payment {
	byMonth := make(map[types.MonthKey]*payment.Payment, len(payments))
	for _, p := range payments {
		key := types.MonthKeyFromTime(p.Date)
		current, ok := byMonth[key]
		if !ok || p.CreatedAt.After(current.CreatedAt) ||
			(p.CreatedAt.Equal(current.CreatedAt) && p.ID > current.ID) {
			byMonth[key] = p
		}
	}
	return byMonth
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
