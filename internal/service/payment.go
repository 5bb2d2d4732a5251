package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/api/dto"
	"github.com/chosenhack/toprentbillfinal/internal/domain/activity"
	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
)

// PaymentService records and manages payments
type PaymentService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*payment.Payment, error)
	GetPayment(ctx context.Context, id string) (*payment.Payment, error)
	ListPayments(ctx context.Context) ([]*payment.Payment, error)
	ListPaymentsByCustomer(ctx context.Context, customerID string) ([]*payment.Payment, error)
	UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest) (*payment.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

type paymentService struct {
	ServiceParams
}

// NewPaymentService creates a new payment service
func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{
		ServiceParams: params,
	}
}

// CreatePayment records a payment for an existing customer
func (s *paymentService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*payment.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The payment must belong to a known customer
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("Customer %s does not exist", req.CustomerID).
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}

	p, err := req.ToPayment()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, activity.ActivityTypePaymentRecorded, p.CustomerID,
		fmt.Sprintf("payment of %s recorded with status %s", p.Amount.String(), p.Status))
	s.Logger.Infow("payment recorded",
		"payment_id", p.ID,
		"customer_id", p.CustomerID,
		"amount", p.Amount.String(),
		"status", p.Status)
	return p, nil
}

// GetPayment fetches a payment by ID
func (s *paymentService) GetPayment(ctx context.Context, id string) (*payment.Payment, error) {
	return s.PaymentRepo.Get(ctx, id)
}

// ListPayments returns all payments
func (s *paymentService) ListPayments(ctx context.Context) ([]*payment.Payment, error) {
	return s.PaymentRepo.List(ctx)
}

// ListPaymentsByCustomer returns the payments for a customer
func (s *paymentService) ListPaymentsByCustomer(ctx context.Context, customerID string) ([]*payment.Payment, error) {
	return s.PaymentRepo.ListByCustomer(ctx, customerID)
}

// UpdatePayment applies a partial update to a payment
func (s *paymentService) UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest) (*payment.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *p
	req.Apply(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.PaymentRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, activity.ActivityTypePaymentUpdated, updated.CustomerID,
		fmt.Sprintf("payment %s updated", updated.ID))
	return &updated, nil
}

// DeletePayment removes a payment
func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.PaymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, activity.ActivityTypePaymentDeleted, p.CustomerID,
		fmt.Sprintf("payment %s deleted", p.ID))
	return nil
}

func (s *paymentService) recordActivity(ctx context.Context, activityType activity.ActivityType, customerID, description string) {
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
