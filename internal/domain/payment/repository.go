package payment

import (
	"context"
)

// Repository defines the interface for payment persistence
type Repository interface {
	// Create creates a new payment
	Create(ctx context.Context, payment *Payment) error

	// Get fetches a payment by its ID
	Get(ctx context.Context, id string) (*Payment, error)

	// List returns all payments
	List(ctx context.Context) ([]*Payment, error)

	// ListByCustomer returns all payments belonging to a customer
	ListByCustomer(ctx context.Context, customerID string) ([]*Payment, error)

	// Update updates an existing payment
	Update(ctx context.Context, payment *Payment) error

	// Delete deletes a payment by its ID
	Delete(ctx context.Context, id string) error
}
