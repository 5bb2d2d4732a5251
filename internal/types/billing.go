package types

import (
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

// PaymentFrequency is how often a subscription renews.
type PaymentFrequency string

const (
	PaymentFrequencyMonthly   PaymentFrequency = "monthly"
	PaymentFrequencyQuarterly PaymentFrequency = "quarterly"
	PaymentFrequencyBiannual  PaymentFrequency = "biannual"
	PaymentFrequencyAnnual    PaymentFrequency = "annual"
	PaymentFrequencyOneTime   PaymentFrequency = "one_time"
)

// MonthStep returns the renewal step in calendar months for a recurring
// frequency. The second return value is false for one-time and unrecognized
// frequencies, which have no recurring step.
func (f PaymentFrequency) MonthStep() (int, bool) {
	switch f {
	case PaymentFrequencyMonthly:
		return 1, true
	case PaymentFrequencyQuarterly:
		return 3, true
	case PaymentFrequencyBiannual:
		return 6, true
	case PaymentFrequencyAnnual:
		return 12, true
	default:
		return 0, false
	}
}

// Validate validates the payment frequency
func (f PaymentFrequency) Validate() error {
	switch f {
	case PaymentFrequencyMonthly, PaymentFrequencyQuarterly, PaymentFrequencyBiannual,
		PaymentFrequencyAnnual, PaymentFrequencyOneTime:
		return nil
	default:
		return ierr.NewError("invalid payment frequency").
			WithHintf("Payment frequency must be one of monthly, quarterly, biannual, annual, one_time, got %s", f).
			Mark(ierr.ErrValidation)
	}
}

// PaymentStatus is the state of a recorded payment.
type PaymentStatus string

const (
	PaymentStatusConfirmed  PaymentStatus = "confirmed"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProblem    PaymentStatus = "problem"
	PaymentStatusProcessing PaymentStatus = "processing"
)

// Validate validates the payment status
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusConfirmed, PaymentStatusPending, PaymentStatusProblem, PaymentStatusProcessing:
		return nil
	default:
		return ierr.NewError("invalid payment status").
			WithHintf("Payment status must be one of confirmed, pending, problem, processing, got %s", s).
			Mark(ierr.ErrValidation)
	}
}

// PaymentMethod is how a customer settles invoices.
type PaymentMethod string

const (
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCrypto       PaymentMethod = "crypto"
)

// OrDefault returns the method, defaulting to bank transfer when unset.
func (m PaymentMethod) OrDefault() PaymentMethod {
	if m == "" {
		return PaymentMethodBankTransfer
	}
	return m
}

// Validate validates the payment method
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodStripe, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCrypto:
		return nil
	default:
		return ierr.NewError("invalid payment method").
			WithHintf("Payment method must be one of stripe, bank_transfer, cash, crypto, got %s", m).
			Mark(ierr.ErrValidation)
	}
}

// SalesTeam is the regional team that owns a customer relationship.
type SalesTeam string

const (
	SalesTeamIT    SalesTeam = "IT"
	SalesTeamES    SalesTeam = "ES"
	SalesTeamFR    SalesTeam = "FR"
	SalesTeamWorld SalesTeam = "WORLD"
)

// Validate validates the sales team
func (t SalesTeam) Validate() error {
	switch t {
	case SalesTeamIT, SalesTeamES, SalesTeamFR, SalesTeamWorld:
		return nil
	default:
		return ierr.NewError("invalid sales team").
			WithHintf("Sales team must be one of IT, ES, FR, WORLD, got %s", t).
			Mark(ierr.ErrValidation)
	}
}

// SubscriptionType is the product plan a customer subscribes to.
type SubscriptionType string

const (
	SubscriptionTypeSito1                   SubscriptionType = "SITO_1.0"
	SubscriptionTypeSito2                   SubscriptionType = "SITO_2.0"
	SubscriptionTypeFleetSito2              SubscriptionType = "FLEET_SITO_2.0"
	SubscriptionTypeFleetProSito2           SubscriptionType = "FLEET_PRO_SITO_2.0"
	SubscriptionTypeBookingEngine           SubscriptionType = "BOOKING_ENGINE"
	SubscriptionTypeFleetProBookingEngine   SubscriptionType = "FLEET_PRO_BOOKING_ENGINE"
	SubscriptionTypeFleetBasicBookingEngine SubscriptionType = "FLEET_BASIC_BOOKING_ENGINE"
	SubscriptionTypeFleetPro                SubscriptionType = "FLEET_PRO"
	SubscriptionTypeFleetBasic              SubscriptionType = "FLEET_BASIC"
	SubscriptionTypePayAsYouGo              SubscriptionType = "PAY_AS_YOU_GO"
	SubscriptionTypePersonalizzazioni       SubscriptionType = "PERSONALIZZAZIONI"
	SubscriptionTypeCustom                  SubscriptionType = "CUSTOM"
)

// Validate validates the subscription type
func (t SubscriptionType) Validate() error {
	switch t {
	case SubscriptionTypeSito1, SubscriptionTypeSito2, SubscriptionTypeFleetSito2,
		SubscriptionTypeFleetProSito2, SubscriptionTypeBookingEngine,
		SubscriptionTypeFleetProBookingEngine, SubscriptionTypeFleetBasicBookingEngine,
		SubscriptionTypeFleetPro, SubscriptionTypeFleetBasic, SubscriptionTypePayAsYouGo,
		SubscriptionTypePersonalizzazioni, SubscriptionTypeCustom:
		return nil
	default:
		return ierr.NewError("invalid subscription type").
			WithHintf("Unknown subscription type: %s", t).
			Mark(ierr.ErrValidation)
	}
}
