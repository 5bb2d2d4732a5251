package dto

import (
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/chosenhack/toprentbillfinal/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest represents the request to create a customer
type CreateCustomerRequest struct {
	Name             string                 `json:"name" validate:"required"`
	Email            string                 `json:"email" validate:"omitempty,email"`
	SubscriptionType types.SubscriptionType `json:"subscription_type" validate:"required"`
	PaymentFrequency types.PaymentFrequency `json:"payment_frequency" validate:"required"`
	Amount           decimal.Decimal        `json:"amount"`
	StripeLink       string                 `json:"stripe_link,omitempty"`
	CRMLink          string                 `json:"crm_link,omitempty"`
	BillingInfo      *customer.BillingInfo  `json:"billing_info,omitempty"`
	ActivationDate   string                 `json:"activation_date" validate:"required"`
	SalesTeam        types.SalesTeam        `json:"sales_team" validate:"required"`
	SalesManager     string                 `json:"sales_manager" validate:"required"`
	IsLuxury         bool                   `json:"is_luxury"`
	VehicleCount     int                    `json:"vehicle_count" validate:"gte=0"`
	PaymentMethod    types.PaymentMethod    `json:"payment_method,omitempty"`
}

// Validate validates the create customer request
func (r *CreateCustomerRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.SubscriptionType.Validate(); err != nil {
		return err
	}
	if err := r.PaymentFrequency.Validate(); err != nil {
		return err
	}
	if err := r.SalesTeam.Validate(); err != nil {
		return err
	}
	if err := r.PaymentMethod.OrDefault().Validate(); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToCustomer converts the request to a customer domain model
func (r *CreateCustomerRequest) ToCustomer() (*customer.Customer, error) {
	activationDate, err := types.ParseDate(r.ActivationDate)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &customer.Customer{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:             r.Name,
		Email:            r.Email,
		SubscriptionType: r.SubscriptionType,
		PaymentFrequency: r.PaymentFrequency,
		Amount:           r.Amount,
		StripeLink:       r.StripeLink,
		CRMLink:          r.CRMLink,
		BillingInfo:      r.BillingInfo,
		Active:           true,
		ActivationDate:   activationDate,
		SalesTeam:        r.SalesTeam,
		SalesManager:     r.SalesManager,
		IsLuxury:         r.IsLuxury,
		VehicleCount:     r.VehicleCount,
		PaymentMethod:    r.PaymentMethod.OrDefault(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// UpdateCustomerRequest represents a partial update to a customer. Nil fields
// are left untouched.
type UpdateCustomerRequest struct {
	Name             *string                 `json:"name,omitempty"`
	Email            *string                 `json:"email,omitempty" validate:"omitempty,email"`
	SubscriptionType *types.SubscriptionType `json:"subscription_type,omitempty"`
	PaymentFrequency *types.PaymentFrequency `json:"payment_frequency,omitempty"`
	Amount           *decimal.Decimal        `json:"amount,omitempty"`
	StripeLink       *string                 `json:"stripe_link,omitempty"`
	CRMLink          *string                 `json:"crm_link,omitempty"`
	BillingInfo      *customer.BillingInfo   `json:"billing_info,omitempty"`
	SalesTeam        *types.SalesTeam        `json:"sales_team,omitempty"`
	SalesManager     *string                 `json:"sales_manager,omitempty"`
	IsLuxury         *bool                   `json:"is_luxury,omitempty"`
	VehicleCount     *int                    `json:"vehicle_count,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod    *types.PaymentMethod    `json:"payment_method,omitempty"`
}

// Validate validates the update customer request
func (r *UpdateCustomerRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.SubscriptionType != nil {
		if err := r.SubscriptionType.Validate(); err != nil {
			return err
		}
	}
	if r.PaymentFrequency != nil {
		if err := r.PaymentFrequency.Validate(); err != nil {
			return err
		}
	}
	if r.SalesTeam != nil {
		if err := r.SalesTeam.Validate(); err != nil {
			return err
		}
	}
	if r.PaymentMethod != nil {
		if err := r.PaymentMethod.Validate(); err != nil {
			return err
		}
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Apply merges the request into an existing customer
func (r *UpdateCustomerRequest) Apply(c *customer.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.SubscriptionType != nil {
		c.SubscriptionType = *r.SubscriptionType
	}
	if r.PaymentFrequency != nil {
		c.PaymentFrequency = *r.PaymentFrequency
	}
	if r.Amount != nil {
		c.Amount = *r.Amount
	}
	if r.StripeLink != nil {
		c.StripeLink = *r.StripeLink
	}
	if r.CRMLink != nil {
		c.CRMLink = *r.CRMLink
	}
	if r.BillingInfo != nil {
		c.BillingInfo = r.BillingInfo
	}
	if r.SalesTeam != nil {
		c.SalesTeam = *r.SalesTeam
	}
	if r.SalesManager != nil {
		c.SalesManager = *r.SalesManager
	}
	if r.IsLuxury != nil {
		c.IsLuxury = *r.IsLuxury
	}
	if r.VehicleCount != nil {
		c.VehicleCount = *r.VehicleCount
	}
	if r.PaymentMethod != nil {
		c.PaymentMethod = *r.PaymentMethod
	}
	c.UpdatedAt = time.Now().UTC()
}
