package service

import (
	"context"

	"github.com/chosenhack/toprentbillfinal/internal/api/dto"
	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	"github.com/chosenhack/toprentbillfinal/internal/domain/schedule"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
)

// CalendarService produces the per-customer renewal calendar for a year
type CalendarService interface {
	GetCalendar(ctx context.Context, req *dto.CalendarRequest) (*dto.CalendarResponse, error)
}

type calendarService struct {
	ServiceParams
}

// NewCalendarService creates a new calendar service
func NewCalendarService(params ServiceParams) CalendarService {
	return &calendarService{
		ServiceParams: params,
	}
}

// GetCalendar reconciles every requested customer's renewal schedule against
// recorded payments across the months of the requested year
func (s *calendarService) GetCalendar(ctx context.Context, req *dto.CalendarRequest) (*dto.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid calendar request").
			Mark(ierr.ErrValidation)
	}

	months := types.MonthsOfYear(req.Year)

	var customers []*customer.Customer
	if req.CustomerID != "" {
		c, err := s.CustomerRepo.Get(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		customers = []*customer.Customer{c}
	} else {
		var err error
		customers, err = s.CustomerRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	rows := make([]dto.CalendarRow, 0, len(customers))
	for _, c := range customers {
		if req.ActiveOnly && !c.Active {
			continue
		}
		if _, recurring := c.PaymentFrequency.MonthStep(); !recurring && c.PaymentFrequency != types.PaymentFrequencyOneTime {
			s.Logger.Warnw("unknown payment frequency, treating as no further renewals",
				"customer_id", c.ID,
				"payment_frequency", c.PaymentFrequency)
		}

		payments, err := s.PaymentRepo.ListByCustomer(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		rows = append(rows, dto.CalendarRow{
			CustomerID:       c.ID,
			Name:             c.Name,
			Amount:           c.Amount,
			PaymentFrequency: c.PaymentFrequency,
			Statuses:         schedule.Reconcile(c, months, payments),
		})
	}

	return &dto.CalendarResponse{
		Year:   req.Year,
		Months: months,
		Rows:   rows,
	}, nil
}
