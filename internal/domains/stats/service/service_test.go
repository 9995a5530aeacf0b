package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/otel/mocks"
	"dost/internal/domains/stats/service"
	"dost/internal/seed"
	"dost/shared/cache"
)

func TestStatsService_GetDashboard_DemoMode(t *testing.T) {
	cfg := &config.Config{}
	svc := service.New(nil, nil, nil, nil, cfg, cache.NewMemoryCache(), mocks.NewOtel())

	res, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	want := seed.Stats()

	assert.Equal(t, want.TotalRevenue, res.TotalRevenue)
	assert.Equal(t, want.MonthlyRevenue, res.MonthlyRevenue)
	assert.Equal(t, want.ActiveBookings, res.ActiveBookings)
	assert.Equal(t, want.PendingPayments, res.PendingPayments)
	assert.Equal(t, want.FailedPaymentsCount, res.FailedPaymentsCount)
	assert.Equal(t, want.AvailableRooms, res.AvailableRooms)
	assert.Equal(t, want.TotalRooms, res.TotalRooms)
	assert.Equal(t, want.TotalUsers, res.TotalUsers)

	require.Len(t, res.RevenueByMonth, 6)
	assert.Equal(t, "Jul", res.RevenueByMonth[0].Month)
	assert.Equal(t, int64(84000), res.RevenueByMonth[5].Amount)

	require.Len(t, res.BookingTrends, 7)
	assert.Equal(t, "Mon", res.BookingTrends[0].Day)
	assert.Equal(t, 28, res.BookingTrends[6].Count)
}

func TestStatsService_GetDashboard_Stable(t *testing.T) {
	cfg := &config.Config{}
	svc := service.New(nil, nil, nil, nil, cfg, cache.NewMemoryCache(), mocks.NewOtel())

	first, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	second, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
