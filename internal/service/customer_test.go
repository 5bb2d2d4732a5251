package service

import (
	"context"
	"testing"

	"github.com/chosenhack/toprentbillfinal/internal/api/dto"
	"github.com/chosenhack/toprentbillfinal/internal/domain/activity"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/chosenhack/toprentbillfinal/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateCustomerRequest() *dto.CreateCustomerRequest {
	return &dto.CreateCustomerRequest{
		Name:             "Roma Rentals",
		Email:            "ops@romarentals.it",
		SubscriptionType: types.SubscriptionTypeFleetPro,
		PaymentFrequency: types.PaymentFrequencyMonthly,
		Amount:           decimal.NewFromInt(250),
		ActivationDate:   "2024-01-15",
		SalesTeam:        types.SalesTeamIT,
		SalesManager:     "Andrea",
		VehicleCount:     12,
	}
}

func TestCreateCustomer(t *testing.T) {
	t.Run("creates a customer and records activity", func(t *testing.T) {
		params, stores := newTestServiceParams()
		svc := NewCustomerService(params)
		ctx := context.Background()

		c, err := svc.CreateCustomer(ctx, validCreateCustomerRequest())
		require.NoError(t, err)
		assert.Contains(t, c.ID, "cust_")
		assert.True(t, c.Active)
		assert.Equal(t, types.PaymentMethodBankTransfer, c.PaymentMethod)
		assert.Equal(t, 15, c.ActivationDate.Day())

		entries, err := stores.activities.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, activity.ActivityTypeCustomerCreated, entries[0].Type)
		assert.Equal(t, c.ID, entries[0].CustomerID)
	})

	t.Run("rejects an unparseable activation date", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)

		req := validCreateCustomerRequest()
		req.ActivationDate = "15/01/2024"
		_, err := svc.CreateCustomer(context.Background(), req)
		require.Error(t, err)
		assert.True(t, ierr.IsInvalidDate(err))
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)

		req := validCreateCustomerRequest()
		req.Amount = decimal.NewFromInt(-1)
		_, err := svc.CreateCustomer(context.Background(), req)
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("rejects an unknown sales team", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)

		req := validCreateCustomerRequest()
		req.SalesTeam = types.SalesTeam("DE")
		_, err := svc.CreateCustomer(context.Background(), req)
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)

		req := validCreateCustomerRequest()
		req.Name = ""
		_, err := svc.CreateCustomer(context.Background(), req)
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)
		ctx := context.Background()

		c, err := svc.CreateCustomer(ctx, validCreateCustomerRequest())
		require.NoError(t, err)

		newAmount := decimal.NewFromInt(300)
		luxury := true
		updated, err := svc.UpdateCustomer(ctx, c.ID, &dto.UpdateCustomerRequest{
			Amount:   &newAmount,
			IsLuxury: &luxury,
		})
		require.NoError(t, err)
		assert.True(t, updated.Amount.Equal(newAmount))
		assert.True(t, updated.IsLuxury)
		assert.Equal(t, c.Name, updated.Name)
	})

	t.Run("unknown customer yields not found", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)

		name := "New Name"
		_, err := svc.UpdateCustomer(context.Background(), "cust_missing", &dto.UpdateCustomerRequest{Name: &name})
		require.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
	})
}

func TestDeactivateReactivateCustomer(t *testing.T) {
	t.Run("deactivation round trip", func(t *testing.T) {
		params, stores := newTestServiceParams()
		svc := NewCustomerService(params)
		ctx := context.Background()

		c, err := svc.CreateCustomer(ctx, validCreateCustomerRequest())
		require.NoError(t, err)

		deactivated, err := svc.DeactivateCustomer(ctx, c.ID, "2024-06-15")
		require.NoError(t, err)
		assert.False(t, deactivated.Active)
		require.NotNil(t, deactivated.DeactivationDate)
		assert.Equal(t, 15, deactivated.DeactivationDate.Day())

		reactivated, err := svc.ReactivateCustomer(ctx, c.ID, "2024-09-01")
		require.NoError(t, err)
		assert.True(t, reactivated.Active)
		assert.Nil(t, reactivated.DeactivationDate)
		assert.Equal(t, 9, int(reactivated.ActivationDate.Month()))

		entries, err := stores.activities.ListByCustomer(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		// newest first
		assert.Equal(t, activity.ActivityTypeCustomerReactivated, entries[0].Type)
		assert.Equal(t, activity.ActivityTypeCustomerDeactivated, entries[1].Type)
		assert.Equal(t, activity.ActivityTypeCustomerCreated, entries[2].Type)
	})

	t.Run("deactivation before activation is rejected", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)
		ctx := context.Background()

		c, err := svc.CreateCustomer(ctx, validCreateCustomerRequest())
		require.NoError(t, err)

		_, err = svc.DeactivateCustomer(ctx, c.ID, "2023-12-31")
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("reactivating an active customer is rejected", func(t *testing.T) {
		params, _ := newTestServiceParams()
		svc := NewCustomerService(params)
		ctx := context.Background()

		c, err := svc.CreateCustomer(ctx, validCreateCustomerRequest())
		require.NoError(t, err)

		_, err = svc.ReactivateCustomer(ctx, c.ID, "2024-09-01")
		require.Error(t, err)
		assert.True(t, ierr.Is(err, ierr.ErrInvalidOperation))
	})
}
