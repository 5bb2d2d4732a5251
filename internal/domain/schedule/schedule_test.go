package schedule

import (
	"testing"
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(frequency types.PaymentFrequency, activation time.Time) *customer.Customer {
	return &customer.Customer{
		ID:               "cust_test",
		Name:             "Test Rentals",
		SubscriptionType: types.SubscriptionTypeFleetPro,
		PaymentFrequency: frequency,
		Amount:           decimal.NewFromInt(300),
		Active:           true,
		ActivationDate:   activation,
		SalesTeam:        types.SalesTeamIT,
		SalesManager:     "Andrea",
	}
}

func testPayment(id string, date, createdAt time.Time, status types.PaymentStatus) *payment.Payment {
	return &payment.Payment{
		ID:         id,
		CustomerID: "cust_test",
		Amount:     decimal.NewFromInt(300),
		Date:       date,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestRenewalMonths(t *testing.T) {
	months2024 := types.MonthsOfYear(2024)

	t.Run("quarterly subscription renews four times a year", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyQuarterly,
			time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)

		require.Len(t, renewals, 4)
		assert.Contains(t, renewals, types.MonthKey("2024-01"))
		assert.Contains(t, renewals, types.MonthKey("2024-04"))
		assert.Contains(t, renewals, types.MonthKey("2024-07"))
		assert.Contains(t, renewals, types.MonthKey("2024-10"))
	})

	t.Run("monthly subscription activated before the window renews every month", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)
		assert.Len(t, renewals, 12)
	})

	t.Run("monthly subscription activated mid-window renews from the activation month", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)

		assert.Len(t, renewals, 10)
		assert.NotContains(t, renewals, types.MonthKey("2024-01"))
		assert.NotContains(t, renewals, types.MonthKey("2024-02"))
		assert.Contains(t, renewals, types.MonthKey("2024-03"))
		assert.Contains(t, renewals, types.MonthKey("2024-12"))
	})

	t.Run("annual subscription renews once", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyAnnual,
			time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)

		require.Len(t, renewals, 1)
		assert.Contains(t, renewals, types.MonthKey("2024-06"))
	})

	t.Run("one-time subscription yields at most one month", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyOneTime,
			time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)

		require.Len(t, renewals, 1)
		assert.Contains(t, renewals, types.MonthKey("2024-08"))
	})

	t.Run("one-time subscription outside the window yields nothing", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyOneTime,
			time.Date(2023, time.August, 5, 0, 0, 0, 0, time.UTC))

		assert.Empty(t, RenewalMonths(c, months2024))
	})

	t.Run("unknown frequency degrades to the activation month only", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequency("weekly"),
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)

		require.Len(t, renewals, 1)
		assert.Contains(t, renewals, types.MonthKey("2024-02"))
	})

	t.Run("activation after the window yields nothing", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

		assert.Empty(t, RenewalMonths(c, months2024))
	})

	t.Run("empty candidate months yield nothing", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

		assert.Empty(t, RenewalMonths(c, nil))
	})

	t.Run("identical inputs yield identical sets", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyBiannual,
			time.Date(2023, time.September, 12, 0, 0, 0, 0, time.UTC))

		first := RenewalMonths(c, months2024)
		second := RenewalMonths(c, months2024)
		assert.Equal(t, first, second)
	})

	t.Run("terminates for a window far from the activation date", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))

		renewals := RenewalMonths(c, months2024)
		assert.Len(t, renewals, 12)
	})
}

func TestReconcile(t *testing.T) {
	months2024 := types.MonthsOfYear(2024)

	t.Run("months without a payment are pending", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

		statuses := Reconcile(c, months2024, nil)

		require.Len(t, statuses, 10)
		assert.Equal(t, types.PaymentStatusPending, statuses["2024-03"])
		assert.Equal(t, types.PaymentStatusPending, statuses["2024-12"])
	})

	t.Run("no status is reported before activation", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

		statuses := Reconcile(c, months2024, nil)

		assert.NotContains(t, statuses, types.MonthKey("2024-01"))
		assert.NotContains(t, statuses, types.MonthKey("2024-02"))
	})

	t.Run("a recorded payment's status wins over pending", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyQuarterly,
			time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
		payments := []*payment.Payment{
			testPayment("pay_1",
				time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC),
				types.PaymentStatusConfirmed),
			testPayment("pay_2",
				time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.April, 2, 10, 0, 0, 0, time.UTC),
				types.PaymentStatusProblem),
		}

		statuses := Reconcile(c, months2024, payments)

		assert.Equal(t, types.PaymentStatusConfirmed, statuses["2024-01"])
		assert.Equal(t, types.PaymentStatusProblem, statuses["2024-04"])
		assert.Equal(t, types.PaymentStatusPending, statuses["2024-07"])
	})

	t.Run("the most recently created payment wins a shared month", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		payments := []*payment.Payment{
			testPayment("pay_old",
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
				types.PaymentStatusPending),
			testPayment("pay_new",
				time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC),
				types.PaymentStatusConfirmed),
		}

		statuses := Reconcile(c, months2024, payments)
		assert.Equal(t, types.PaymentStatusConfirmed, statuses["2024-03"])

		// order of the input slice must not matter
		reversed := []*payment.Payment{payments[1], payments[0]}
		statuses = Reconcile(c, months2024, reversed)
		assert.Equal(t, types.PaymentStatusConfirmed, statuses["2024-03"])
	})

	t.Run("equal creation times break the tie on payment ID", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		createdAt := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
		payments := []*payment.Payment{
			testPayment("pay_a",
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				createdAt, types.PaymentStatusPending),
			testPayment("pay_b",
				time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
				createdAt, types.PaymentStatusConfirmed),
		}

		first := Reconcile(c, months2024, payments)
		second := Reconcile(c, months2024, []*payment.Payment{payments[1], payments[0]})
		assert.Equal(t, first["2024-03"], second["2024-03"])
		assert.Equal(t, types.PaymentStatusConfirmed, first["2024-03"])
	})

	t.Run("one-time subscription reports only the activation month", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyOneTime,
			time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))
		payments := []*payment.Payment{
			testPayment("pay_1",
				time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.May, 12, 9, 0, 0, 0, time.UTC),
				types.PaymentStatusConfirmed),
		}

		statuses := Reconcile(c, months2024, payments)

		require.Len(t, statuses, 1)
		assert.Equal(t, types.PaymentStatusConfirmed, statuses["2024-05"])
	})

	t.Run("one-time subscription without a payment is pending in its month", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyOneTime,
			time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))

		statuses := Reconcile(c, months2024, nil)

		require.Len(t, statuses, 1)
		assert.Equal(t, types.PaymentStatusPending, statuses["2024-05"])
	})

	t.Run("empty candidate months yield an empty mapping", func(t *testing.T) {
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

		assert.Empty(t, Reconcile(c, nil, nil))
	})

	t.Run("deactivation does not truncate the schedule", func(t *testing.T) {
		deactivation := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		c := testCustomer(types.PaymentFrequencyMonthly,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		c.Active = false
		c.DeactivationDate = &deactivation

		statuses := Reconcile(c, months2024, nil)

		// active-window filtering is the aggregation layer's job
		assert.Len(t, statuses, 12)
		assert.Equal(t, types.PaymentStatusPending, statuses["2024-12"])
	})
}
