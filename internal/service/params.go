package service

import (
	"github.com/chosenhack/toprentbillfinal/internal/config"
	"github.com/chosenhack/toprentbillfinal/internal/domain/activity"
	"github.com/chosenhack/toprentbillfinal/internal/domain/customer"
	"github.com/chosenhack/toprentbillfinal/internal/domain/payment"
	"github.com/chosenhack/toprentbillfinal/internal/logger"
)

// ServiceParams holds the dependencies shared by all services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	CustomerRepo customer.Repository
	PaymentRepo  payment.Repository
	ActivityRepo activity.Repository
}
