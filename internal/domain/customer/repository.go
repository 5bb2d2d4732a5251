package customer

import (
	"context"
)

// Repository defines the interface for customer persistence
type Repository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *Customer) error

	// Get fetches a customer by its ID
	Get(ctx context.Context, id string) (*Customer, error)

	// List returns all customers
	List(ctx context.Context) ([]*Customer, error)

	// Update updates an existing customer
	Update(ctx context.Context, customer *Customer) error

	// Delete deletes a customer by its ID
	Delete(ctx context.Context, id string) error
}
