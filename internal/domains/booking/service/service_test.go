package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/otel/mocks"
	"dost/internal/domains/booking/model/dto"
	"dost/internal/domains/booking/service"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
)

func newDemoService() service.Booking {
	cfg := &config.Config{}

	return service.New(nil, cfg, cache.NewMemoryCache(), mocks.NewOtel(), nil)
}

func defaultParams() gDto.QueryParams {
	return gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
}

func TestBookingService_GetAll_DemoMode(t *testing.T) {
	svc := newDemoService()

	res, err := svc.GetAll(context.Background(), defaultParams(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalData)
	require.Len(t, res.Bookings, 3)
	assert.Equal(t, "b3", res.Bookings[0].ID)

	pending, err := svc.GetAll(context.Background(), defaultParams(), "", constant.BookingStatusPending)
	require.NoError(t, err)
	require.Len(t, pending.Bookings, 1)
	assert.Equal(t, "b2", pending.Bookings[0].ID)

	byGuest, err := svc.GetAll(context.Background(), defaultParams(), "rahul", "")
	require.NoError(t, err)
	require.Len(t, byGuest.Bookings, 1)
	assert.Equal(t, "b1", byGuest.Bookings[0].ID)
}

func TestBookingService_GetRecent(t *testing.T) {
	svc := newDemoService()

	res, err := svc.GetRecent(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "b3", res.Bookings[0].ID)
	assert.Equal(t, "b2", res.Bookings[1].ID)
}

func TestBookingService_UpdateStatus_DemoModeRejected(t *testing.T) {
	svc := newDemoService()

	err := svc.UpdateStatus(context.Background(), "b2", dto.UpdateBookingStatusRequest{
		Status: constant.BookingStatusApproved,
	})

	assert.True(t, errors.Is(err, failure.DemoModeError))
}

func TestBookingService_Export_CSV(t *testing.T) {
	svc := newDemoService()

	export, err := svc.Export(context.Background(), "", "", service.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "bookings.csv", export.Filename)
	assert.Equal(t, constant.ContentTypeCSV, export.ContentType)

	lines := strings.Split(strings.TrimSpace(string(export.Content)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Guest,Room,Check-in,Check-out,Amount,Status,Payment", lines[0])
	assert.Contains(t, lines[1], "b3")
	assert.Contains(t, lines[1], "Priya Patel")
}

func TestBookingService_Export_FilterApplies(t *testing.T) {
	svc := newDemoService()

	export, err := svc.Export(context.Background(), "", constant.BookingStatusApproved, service.FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(export.Content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "b1")
}

func TestBookingService_Export_XLSX(t *testing.T) {
	svc := newDemoService()

	export, err := svc.Export(context.Background(), "", "", service.FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "bookings.xlsx", export.Filename)
	assert.Equal(t, constant.ContentTypeXLSX, export.ContentType)
	assert.NotEmpty(t, export.Content)
}

func TestBookingService_Export_UnknownFormat(t *testing.T) {
	svc := newDemoService()

	_, err := svc.Export(context.Background(), "", "", "pdf")
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
