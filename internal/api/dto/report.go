package dto

import (
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/chosenhack/toprentbillfinal/internal/validator"
	"github.com/shopspring/decimal"
)

// DefaultTopSpendersLimit bounds the top-spenders ranking when the request
// does not specify one.
const DefaultTopSpendersLimit = 5

// ReportRequest represents the request for aggregated reporting metrics
type ReportRequest struct {
	Period           types.PeriodType `json:"period"`
	StartDate        string           `json:"start_date,omitempty"`
	EndDate          string           `json:"end_date,omitempty"`
	TopSpendersLimit int              `json:"top_spenders_limit,omitempty" validate:"omitempty,gt=0"`
}

// Validate validates the report request
func (r *ReportRequest) Validate() error {
	if r.Period == "" {
		r.Period = types.PeriodTypeCurrent
	}
	if err := r.Period.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

// ManagerPerformance holds per-sales-manager rollups
type ManagerPerformance struct {
	Subscriptions int             `json:"subscriptions"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// TeamPerformance holds per-sales-team rollups
type TeamPerformance struct {
	Subscriptions int             `json:"subscriptions"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// TopSpender is one entry of the top-customers-by-revenue ranking
type TopSpender struct {
	CustomerID       string                 `json:"customer_id"`
	Name             string                 `json:"name"`
	SubscriptionType types.SubscriptionType `json:"subscription_type"`
	Total            decimal.Decimal        `json:"total"`
}

// AggregatedMetrics is the value object produced by the report service. It is
// recomputed per request and never mutated by callers.
type AggregatedMetrics struct {
	Period               types.ReportingPeriod               `json:"period"`
	ActiveSubscriptions  int                                 `json:"active_subscriptions"`
	NewCustomersCount    int                                 `json:"new_customers_count"`
	DeactivatedCount     int                                 `json:"deactivated_count"`
	ChurnRate            decimal.Decimal                     `json:"churn_rate"`
	TotalVehicles        int                                 `json:"total_vehicles"`
	TotalRevenue         decimal.Decimal                     `json:"total_revenue"`
	ExpectedRevenue      decimal.Decimal                     `json:"expected_revenue"`
	LuxuryCustomersCount int                                 `json:"luxury_customers_count"`
	LuxuryRevenue        decimal.Decimal                     `json:"luxury_revenue"`
	PaymentMethods       map[types.PaymentMethod]int         `json:"payment_methods"`
	SalesTeamStats       map[types.SalesTeam]TeamPerformance `json:"sales_team_stats"`
	SalesManagerStats    map[string]ManagerPerformance       `json:"sales_manager_stats"`
	TopSpenders          []TopSpender                        `json:"top_spenders"`
}

// ReportResponse wraps the aggregated metrics for a resolved period
type ReportResponse struct {
	*AggregatedMetrics
}
