package payment

import (
	"time"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/shopspring/decimal"
)

// Payment is a recorded payment for a customer's renewal. A customer may have
// zero or more payments; the schedule engine tolerates zero or multiple
// payments per renewal month.
type Payment struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Amount     decimal.Decimal     `json:"amount"`
	Date       time.Time           `json:"date"`
	Status     types.PaymentStatus `json:"status"`
	CreatedBy  string              `json:"created_by,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Validate checks the payment's internal invariants.
func (p *Payment) Validate() error {
	if p.CustomerID == "" {
		return ierr.NewError("payment customer id is required").
			WithHint("Payment must reference a customer").
			Mark(ierr.ErrValidation)
	}
	if err := p.Status.Validate(); err != nil {
		return err
	}
	if p.Amount.IsNegative() {
		return ierr.NewError("payment amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": p.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.Date.IsZero() {
		return ierr.NewError("payment date is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsConfirmed reports whether the payment has been confirmed.
func (p *Payment) IsConfirmed() bool {
	return p.Status == types.PaymentStatusConfirmed
}
