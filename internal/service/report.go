package service

import (
	"context"
	"sort"
	"time"

	"github.com/chosenhack/toprentbillfinal/internal/api/dto"
	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ReportService computes aggregated reporting metrics over a period
type ReportService interface {
	GetReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	ServiceParams
}

// NewReportService creates a new report service
func NewReportService(params ServiceParams) ReportService {
	return &reportService{
		ServiceParams: params,
	}
}

// GetReport resolves the requested period and aggregates customers and
// payments into reporting metrics
func (s *reportService) GetReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid report request").
			Mark(ierr.ErrValidation)
	}

	period := types.ResolvePeriod(req.Period, req.StartDate, req.EndDate, time.Now().UTC())

	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	limit := req.TopSpendersLimit
	if limit == 0 {
		limit = dto.DefaultTopSpendersLimit
	}

	metrics := aggregate(customers, payments, period)
	metrics.TopSpenders = topSpenders(customers, payments, limit)

	s.Logger.Debugw("computed report",
		"period", req.Period,
		"active_subscriptions", metrics.ActiveSubscriptions,
		"total_revenue", metrics.TotalRevenue)

	return &dto.ReportResponse{AggregatedMetrics: metrics}, nil
}

// aggregate rolls customers and payments up into period metrics. It is a pure
// function over snapshots of its inputs; sums stay in decimal form so nothing
// is rounded before presentation.
func aggregate(customers []*customer.Customer, payments []*payment.Payment, period types.ReportingPeriod) *dto.AggregatedMetrics {
	activeCustomers := lo.Filter(customers, func(c *customer.Customer, _ int) bool {
		return c.ActiveInPeriod(period)
	})

	totalVehicles := lo.SumBy(activeCustomers, func(c *customer.Customer) int {
		return c.VehicleCount
	})

	paymentMethods := lo.CountValuesBy(activeCustomers, func(c *customer.Customer) types.PaymentMethod {
		return c.PaymentMethod.OrDefault()
	})

	newCustomers := lo.CountBy(customers, func(c *customer.Customer) bool {
		return c.ActivatedInPeriod(period)
	})

	deactivated := lo.CountBy(customers, func(c *customer.Customer) bool {
		return c.DeactivatedInPeriod(period)
	})

	churnRate := decimal.Zero
	if len(activeCustomers) > 0 {
		churnRate = decimal.NewFromInt(int64(deactivated)).
			Div(decimal.NewFromInt(int64(len(activeCustomers)))).
			Mul(decimal.NewFromInt(100))
	}

	// Only confirmed payments dated within the period count as realized revenue
	periodPayments := lo.Filter(payments, func(p *payment.Payment, _ int) bool {
		return period.Contains(p.Date) && p.IsConfirmed()
	})

	totalRevenue := decimal.Zero
	for _, p := range periodPayments {
		totalRevenue = totalRevenue.Add(p.Amount)
	}

	// Expected revenue is the billing run-rate of active subscriptions,
	// independent of whether a payment was actually recorded
	expectedRevenue := decimal.Zero
	for _, c := range activeCustomers {
		expectedRevenue = expectedRevenue.Add(c.Amount)
	}

	customersByID := lo.KeyBy(customers, func(c *customer.Customer) string {
		return c.ID
	})

	luxuryCount := lo.CountBy(activeCustomers, func(c *customer.Customer) bool {
		return c.IsLuxury
	})
	luxuryRevenue := decimal.Zero
	for _, p := range periodPayments {
		if owner, ok := customersByID[p.CustomerID]; ok && owner.IsLuxury {
			luxuryRevenue = luxuryRevenue.Add(p.Amount)
		}
	}

	revenueByCustomer := make(map[string]decimal.Decimal, len(periodPayments))
	for _, p := range periodPayments {
		revenueByCustomer[p.CustomerID] = revenueByCustomer[p.CustomerID].Add(p.Amount)
	}

	teamStats := make(map[types.SalesTeam]dto.TeamPerformance)
	managerStats := make(map[string]dto.ManagerPerformance)
	for _, c := range activeCustomers {
		revenue := revenueByCustomer[c.ID]

		team := teamStats[c.SalesTeam]
		team.Subscriptions++
		team.Revenue = team.Revenue.Add(revenue)
		teamStats[c.SalesTeam] = team

		manager := managerStats[c.SalesManager]
		manager.Subscriptions++
		manager.Revenue = manager.Revenue.Add(revenue)
		managerStats[c.SalesManager] = manager
	}

	return &dto.AggregatedMetrics{
		Period:               period,
		ActiveSubscriptions:  len(activeCustomers),
		NewCustomersCount:    newCustomers,
		DeactivatedCount:     deactivated,
		ChurnRate:            churnRate,
		TotalVehicles:        totalVehicles,
		TotalRevenue:         totalRevenue,
		ExpectedRevenue:      expectedRevenue,
		LuxuryCustomersCount: luxuryCount,
		LuxuryRevenue:        luxuryRevenue,
		PaymentMethods:       paymentMethods,
		SalesTeamStats:       teamStats,
		SalesManagerStats:    managerStats,
	}
}

// topSpenders ranks customers by all-time confirmed revenue, descending,
// limited to the requested count. Ties break on customer ID to keep the
// ranking deterministic.
func topSpenders(customers []*customer.Customer, payments []*payment.Payment, limit int) []dto.TopSpender {
	totals := make(map[string]decimal.Decimal, len(customers))
	for _, p := range payments {
		if p.IsConfirmed() {
			totals[p.CustomerID] = totals[p.CustomerID].Add(p.Amount)
		}
	}

	spenders := lo.Map(customers, func(c *customer.Customer, _ int) dto.TopSpender {
		return dto.TopSpender{
			CustomerID:       c.ID,
			Name:             c.Name,
			SubscriptionType: c.SubscriptionType,
			Total:            totals[c.ID],
		}
	})

	sort.Slice(spenders, func(i, j int) bool {
		if !spenders[i].Total.Equal(spenders[j].Total) {
			return spenders[i].Total.GreaterThan(spenders[j].Total)
		}
		return spenders[i].CustomerID < spenders[j].CustomerID
	})

	if len(spenders) > limit {
		spenders = spenders[:limit]
	}
	return spenders
}
