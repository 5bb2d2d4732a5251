package testutil

import (
	"context"

	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		InMemoryStore: NewInMemoryStore[*customer.Customer](),
	}
}

// Create creates a new customer
func (s *InMemoryCustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return ierr.NewError("customer is nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

// Get retrieves a customer by ID
func (s *InMemoryCustomerStore) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.InMemoryStore.Get(ctx, id)
}

// List returns all customers in insertion order
func (s *InMemoryCustomerStore) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.InMemoryStore.List(ctx), nil
}

// Update updates an existing customer
func (s *InMemoryCustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return ierr.NewError("customer is nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

// Delete removes a customer
func (s *InMemoryCustomerStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}
