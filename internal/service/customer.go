package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/api/dto"
	"github.com/chosenhack/toprentbillfinal/internal/domain/activity"
	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
)

// CustomerService manages the customer lifecycle
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*customer.Customer, error)
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
	ListCustomers(ctx context.Context) ([]*customer.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*customer.Customer, error)
	DeactivateCustomer(ctx context.Context, id string, deactivationDate string) (*customer.Customer, error)
	ReactivateCustomer(ctx context.Context, id string, activationDate string) (*customer.Customer, error)
}

type customerService struct {
	ServiceParams
}

// NewCustomerService creates a new customer service
func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

// CreateCustomer creates a new customer
func (s *customerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*customer.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := req.ToCustomer()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, activity.ActivityTypeCustomerCreated, c.ID,
		fmt.Sprintf("customer %s created", c.Name))
	s.Logger.Infow("customer created", "customer_id", c.ID, "name", c.Name)
	return c, nil
}

// GetCustomer fetches a customer by ID
func (s *customerService) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	return s.CustomerRepo.Get(ctx, id)
}

// ListCustomers returns all customers
func (s *customerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	return s.CustomerRepo.List(ctx)
}

// UpdateCustomer applies a partial update to a customer
func (s *customerService) UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*customer.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *c
	req.Apply(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.CustomerRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, activity.ActivityTypeCustomerUpdated, updated.ID,
		fmt.Sprintf("customer %s updated", updated.Name))
	return &updated, nil
}

// DeactivateCustomer marks a customer inactive from the given date
func (s *customerService) DeactivateCustomer(ctx context.Context, id string, deactivationDate string) (*customer.Customer, error) {
	date, err := types.ParseDate(deactivationDate)
	if err != nil {
		return nil, err
	}
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if date.Before(c.ActivationDate) {
		return nil, ierr.NewError("deactivation date precedes activation date").
			WithReportableDetails(map[string]interface{}{
				"activation_date":   c.ActivationDate,
				"deactivation_date": date,
			}).
			Mark(ierr.ErrValidation)
	}

	updated := *c
	updated.Active = false
	updated.DeactivationDate = &date
	updated.UpdatedAt = time.Now().UTC()
	if err := s.CustomerRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, activity.ActivityTypeCustomerDeactivated, updated.ID,
		fmt.Sprintf("customer %s deactivated", updated.Name))
	s.Logger.Infow("customer deactivated", "customer_id", updated.ID, "deactivation_date", date)
	return &updated, nil
}

// ReactivateCustomer restores a deactivated customer with a fresh activation date
func (s *customerService) ReactivateCustomer(ctx context.Context, id string, activationDate string) (*customer.Customer, error) {
	date, err := types.ParseDate(activationDate)
	if err != nil {
		return nil, err
	}
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Active {
		return nil, ierr.NewError("customer is already active").
			WithHint("Only deactivated customers can be reactivated").
			Mark(ierr.ErrInvalidOperation)
	}

	updated := *c
	updated.Active = true
	updated.ActivationDate = date
	updated.DeactivationDate = nil
	updated.UpdatedAt = time.Now().UTC()
	if err := s.CustomerRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, activity.ActivityTypeCustomerReactivated, updated.ID,
		fmt.Sprintf("customer %s reactivated", updated.Name))
	s.Logger.Infow("customer reactivated", "customer_id", updated.ID, "activation_date", date)
	return &updated, nil
}

// recordActivity appends an audit entry. Failures are logged, never surfaced:
// the mutation itself already succeeded.
func (s *customerService) recordActivity(ctx context.Context, activityType activity.ActivityType, customerID, description string) {
	entry := &activity.Activity{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACTIVITY),
		Type:        activityType,
		CustomerID:  customerID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.ActivityRepo.Create(ctx, entry); err != nil {
		s.Logger.Errorw("failed to record activity", "error", err, "type", activityType)
	}
}
