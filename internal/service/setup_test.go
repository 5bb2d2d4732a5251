package service

import (
	"github.com/chosenhack/toprentbillfinal/internal/config"
	"github.com/chosenhack/toprentbillfinal/internal/logger"
	"github.com/chosenhack/toprentbillfinal/internal/testutil"
)

// testStores bundles the in-memory repositories backing a test
type testStores struct {
	customers  *testutil.InMemoryCustomerStore
	payments   *testutil.InMemoryPaymentStore
	activities *testutil.InMemoryActivityStore
}

func newTestServiceParams() (ServiceParams, *testStores) {
	stores := &testStores{
		customers:  testutil.NewInMemoryCustomerStore(),
		payments:   testutil.NewInMemoryPaymentStore(),
		activities: testutil.NewInMemoryActivityStore(),
	}
	params := ServiceParams{
		Logger:       logger.GetLogger(),
		Config:       config.GetDefaultConfig(),
		CustomerRepo: stores.customers,
		PaymentRepo:  stores.payments,
		ActivityRepo: stores.activities,
	}
	return params, stores
}
