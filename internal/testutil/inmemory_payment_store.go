package testutil

import (
	"context"
	"sync"

	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
	mu                 sync.RWMutex
	paymentsByCustomer map[string][]*payment.Payment // map[customerID][]payments
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore:      NewInMemoryStore[*payment.Payment](),
		paymentsByCustomer: make(map[string][]*payment.Payment),
	}
}

// Create creates a new payment
func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment is nil").Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Create(ctx, p.ID, p); err != nil {
		return err
	}
	// Update index
	s.mu.Lock()
	s.paymentsByCustomer[p.CustomerID] = append(s.paymentsByCustomer[p.CustomerID], p)
	s.mu.Unlock()
	return nil
}

// Get retrieves a payment by ID
func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	return s.InMemoryStore.Get(ctx, id)
}

// List returns all payments in insertion order
func (s *InMemoryPaymentStore) List(ctx context.Context) ([]*payment.Payment, error) {
	return s.InMemoryStore.List(ctx), nil
}

// ListByCustomer returns all payments for a customer in insertion order
func (s *InMemoryPaymentStore) ListByCustomer(ctx context.Context, customerID string) ([]*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payments := s.paymentsByCustomer[customerID]
	out := make([]*payment.Payment, len(payments))
	copy(out, payments)
	return out, nil
}

// Update updates an existing payment
func (s *InMemoryPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment is nil").Mark(ierr.ErrValidation)
	}
	oldPayment, err := s.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := s.InMemoryStore.Update(ctx, p.ID, p); err != nil {
		return err
	}
	// Update index
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromIndex(oldPayment.CustomerID, p.ID)
	s.paymentsByCustomer[p.CustomerID] = append(s.paymentsByCustomer[p.CustomerID], p)
	return nil
}

// Delete removes a payment
func (s *InMemoryPaymentStore) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromIndex(p.CustomerID, id)
	return nil
}

// removeFromIndex removes a payment from the customer index. Caller holds the lock.
func (s *InMemoryPaymentStore) removeFromIndex(customerID, paymentID string) {
	payments := s.paymentsByCustomer[customerID]
	for i, existing := range payments {
		if existing.ID == paymentID {
			s.paymentsByCustomer[customerID] = append(payments[:i], payments[i+1:]...)
			break
		}
	}
}
