package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/otel/mocks"
	"dost/internal/domains/user/model/dto"
	"dost/internal/domains/user/service"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
)

func newDemoService() service.User {
	cfg := &config.Config{}

	return service.New(nil, cfg, cache.NewMemoryCache(), mocks.NewOtel(), nil)
}

func defaultParams() gDto.QueryParams {
	return gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
}

func TestUserService_GetAll_DemoMode(t *testing.T) {
	svc := newDemoService()

	res, err := svc.GetAll(context.Background(), defaultParams(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 4, res.TotalData)
	require.Len(t, res.Users, 4)
	assert.Equal(t, "Priya Patel", res.Users[0].FullName)

	blocked, err := svc.GetAll(context.Background(), defaultParams(), "", constant.UserStatusBlocked)
	require.NoError(t, err)
	require.Len(t, blocked.Users, 1)
	assert.Equal(t, "Vikram Singh", blocked.Users[0].FullName)

	byPhone, err := svc.GetAll(context.Background(), defaultParams(), "9876543210", "")
	require.NoError(t, err)
	require.Len(t, byPhone.Users, 1)
	assert.Equal(t, "u1", byPhone.Users[0].ID)
}

func TestUserService_WritesRejectedInDemoMode(t *testing.T) {
	svc := newDemoService()

	err := svc.UpdateStatus(context.Background(), "u1", dto.UpdateUserStatusRequest{
		Status: constant.UserStatusBlocked,
	})
	assert.True(t, errors.Is(err, failure.DemoModeError))

	err = svc.Delete(context.Background(), "u1")
	assert.True(t, errors.Is(err, failure.DemoModeError))
}
