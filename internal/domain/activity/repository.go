package activity

import (
	"context"
)

// Repository defines the interface for activity log persistence
type Repository interface {
	// Create appends an activity entry
	Create(ctx context.Context, activity *Activity) error

	// List returns all activity entries, newest first
	List(ctx context.Context) ([]*Activity, error)

	// ListByCustomer returns the activity entries for a customer, newest first
	ListByCustomer(ctx context.Context, customerID string) ([]*Activity, error)
}
