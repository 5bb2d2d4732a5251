package dto

import (
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/chosenhack/toprentbillfinal/internal/validator"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	CustomerID string              `json:"customer_id" validate:"required"`
	Amount     decimal.Decimal     `json:"amount"`
	Date       string              `json:"date" validate:"required"`
	Status     types.PaymentStatus `json:"status" validate:"required"`
	CreatedBy  string              `json:"created_by,omitempty"`
}

// Validate validates the create payment request
func (r *CreatePaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("payment amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToPayment converts the request to a payment domain model
func (r *CreatePaymentRequest) ToPayment() (*payment.Payment, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &payment.Payment{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Date:       date,
		Status:     r.Status,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// UpdatePaymentRequest represents a partial update to a payment
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal     `json:"amount,omitempty"`
	Date   *string              `json:"date,omitempty"`
	Status *types.PaymentStatus `json:"status,omitempty"`
}

// Validate validates the update payment request
func (r *UpdatePaymentRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		return ierr.NewError("payment amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if r.Date != nil {
		if _, err := types.ParseDate(*r.Date); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the request into an existing payment
func (r *UpdatePaymentRequest) Apply(p *payment.Payment) {
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	if r.Date != nil {
		// Validate has already checked the date parses
		if date, err := types.ParseDate(*r.Date); err == nil {
			p.Date = date
		}
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	p.UpdatedAt = time.Now().UTC()
}
