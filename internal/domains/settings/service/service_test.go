package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/otel/mocks"
	"dost/internal/domains/settings/model/dto"
	"dost/internal/domains/settings/service"
	"dost/shared/cache"
	"dost/shared/failure"
)

func newDemoService() service.Settings {
	cfg := &config.Config{}

	return service.New(nil, cfg, cache.NewMemoryCache(), mocks.NewOtel(), nil)
}

func TestSettingsService_Get_DemoMode(t *testing.T) {
	svc := newDemoService()

	res, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dost Stays", res.SiteTitle)
	assert.Equal(t, "hello@dostapp.com", res.ContactEmail)
	assert.NotEmpty(t, res.SocialLinks.Instagram)
}

func TestSettingsService_Update_DemoModeRejected(t *testing.T) {
	svc := newDemoService()

	err := svc.Update(context.Background(), dto.UpdateAppConfigRequest{
		SiteTitle: "New Title",
	})

	assert.True(t, errors.Is(err, failure.DemoModeError))
}
