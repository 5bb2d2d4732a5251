package dto

import (
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/chosenhack/toprentbillfinal/internal/validator"
	"github.com/shopspring/decimal"
)

// CalendarRequest represents the request for the yearly renewal calendar
type CalendarRequest struct {
	Year       int    `json:"year" validate:"required,gte=2000,lte=2200"`
	CustomerID string `json:"customer_id,omitempty"`
	ActiveOnly bool   `json:"active_only,omitempty"`
}

// Validate validates the calendar request
func (r *CalendarRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CalendarRow is one customer's renewal schedule across the requested year
type CalendarRow struct {
	CustomerID       string                                 `json:"customer_id"`
	Name             string                                 `json:"name"`
	Amount           decimal.Decimal                        `json:"amount"`
	PaymentFrequency types.PaymentFrequency                 `json:"payment_frequency"`
	Statuses         map[types.MonthKey]types.PaymentStatus `json:"statuses"`
}

// CalendarResponse represents the renewal calendar for a year
type CalendarResponse struct {
	Year   int           `json:"year"`
	Months []time.Time   `json:"months"`
	Rows   []CalendarRow `json:"rows"`
}
