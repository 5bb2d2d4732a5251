package activity

import (
	"time"
)

// ActivityType classifies an audit log entry.
type ActivityType string

const (
	ActivityTypeCustomerCreated     ActivityType = "customer_created"
	ActivityTypeCustomerUpdated     ActivityType = "customer_updated"
	ActivityTypeCustomerDeactivated ActivityType = "customer_deactivated"
	ActivityTypeCustomerReactivated ActivityType = "customer_reactivated"
	ActivityTypePaymentRecorded     ActivityType = "payment_recorded"
	ActivityTypePaymentUpdated      ActivityType = "payment_updated"
	ActivityTypePaymentDeleted      ActivityType = "payment_deleted"
)

// Activity is a single audit log entry recorded alongside a mutation.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	CustomerID  string       `json:"customer_id,omitempty"`
	Description string       `json:"description"`
	Actor       string       `json:"actor,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
