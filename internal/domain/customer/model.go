package customer

import (
	"time"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/shopspring/decimal"
)

// BillingInfo holds invoicing details for a customer.
type BillingInfo struct {
	CompanyName string `json:"company_name"`
	VATNumber   string `json:"vat_number"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	SDI         string `json:"sdi"`
	PEC         string `json:"pec"`
}

// Customer is a subscription customer. The schedule and aggregation engines
// treat it as a read-only snapshot; mutation goes through the customer service.
type Customer struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	SubscriptionType types.SubscriptionType `json:"subscription_type"`
	PaymentFrequency types.PaymentFrequency `json:"payment_frequency"`
	Amount           decimal.Decimal        `json:"amount"`
	StripeLink       string                 `json:"stripe_link,omitempty"`
	CRMLink          string                 `json:"crm_link,omitempty"`
	BillingInfo      *BillingInfo           `json:"billing_info,omitempty"`
	Active           bool                   `json:"active"`
	ActivationDate   time.Time              `json:"activation_date"`
	DeactivationDate *time.Time             `json:"deactivation_date,omitempty"`
	SalesTeam        types.SalesTeam        `json:"sales_team"`
	SalesManager     string                 `json:"sales_manager"`
	IsLuxury         bool                   `json:"is_luxury"`
	VehicleCount     int                    `json:"vehicle_count"`
	PaymentMethod    types.PaymentMethod    `json:"payment_method"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// Validate checks the customer's internal invariants.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ierr.NewError("customer name is required").
			WithHint("Name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if err := c.SubscriptionType.Validate(); err != nil {
		return err
	}
	if err := c.PaymentFrequency.Validate(); err != nil {
		return err
	}
	if err := c.SalesTeam.Validate(); err != nil {
		return err
	}
	if err := c.PaymentMethod.OrDefault().Validate(); err != nil {
		return err
	}
	if c.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": c.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if c.VehicleCount < 0 {
		return ierr.NewError("vehicle count cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if c.ActivationDate.IsZero() {
		return ierr.NewError("activation date is required").
			Mark(ierr.ErrValidation)
	}
	if c.DeactivationDate != nil && c.DeactivationDate.Before(c.ActivationDate) {
		return ierr.NewError("deactivation date precedes activation date").
			WithReportableDetails(map[string]interface{}{
				"activation_date":   c.ActivationDate,
				"deactivation_date": *c.DeactivationDate,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ActiveInPeriod reports whether the customer was active at any point within
// the period. A customer deactivated mid-period still counts for that
// period's metrics, which is why this is not the raw Active flag.
func (c *Customer) ActiveInPeriod(period types.ReportingPeriod) bool {
	if c.ActivationDate.After(period.End) {
		return false
	}
	return c.DeactivationDate == nil || !c.DeactivationDate.Before(period.Start)
}

// ActivatedInPeriod reports whether the customer's activation date falls
// within the period.
func (c *Customer) ActivatedInPeriod(period types.ReportingPeriod) bool {
	return period.Contains(c.ActivationDate)
}

// DeactivatedInPeriod reports whether the customer's deactivation date falls
// within the period.
func (c *Customer) DeactivatedInPeriod(period types.ReportingPeriod) bool {
	return c.DeactivationDate != nil && period.Contains(*c.DeactivationDate)
}
