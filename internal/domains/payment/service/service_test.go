package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/otel/mocks"
	"dost/internal/domains/payment/service"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
)

func newDemoService() service.Payment {
	cfg := &config.Config{}

	return service.New(nil, cfg, cache.NewMemoryCache(), mocks.NewOtel(), nil)
}

func defaultParams() gDto.QueryParams {
	return gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
}

func TestPaymentService_GetAll_DemoMode(t *testing.T) {
	svc := newDemoService()

	res, err := svc.GetAll(context.Background(), defaultParams(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalData)
	require.Len(t, res.Payments, 3)
	assert.Equal(t, "TXN112233", res.Payments[0].TransactionID)

	byTxn, err := svc.GetAll(context.Background(), defaultParams(), "TXN882211", "")
	require.NoError(t, err)
	require.Len(t, byTxn.Payments, 1)
	assert.Equal(t, "p1", byTxn.Payments[0].ID)

	failed, err := svc.GetAll(context.Background(), defaultParams(), "", constant.PaymentStatusFailed)
	require.NoError(t, err)
	require.Len(t, failed.Payments, 1)
	assert.Equal(t, "p3", failed.Payments[0].ID)
}

func TestPaymentService_Refund_DemoModeRejected(t *testing.T) {
	svc := newDemoService()

	err := svc.Refund(context.Background(), "p1")
	assert.True(t, errors.Is(err, failure.DemoModeError))
}
