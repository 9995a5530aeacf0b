package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/jwt"
	"dost/infras/otel/mocks"
	"dost/internal/domains/auth/model/dto"
	"dost/internal/domains/auth/service"
	"dost/internal/session"
	"dost/shared/constant"
	"dost/shared/failure"
)

func newDemoService() (service.Auth, *session.Store) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.JWT.RefreshExpireMin = 120

	sessionStore := session.NewStore()

	return service.New(nil, cfg, mocks.NewOtel(), jwt.New(cfg), sessionStore), sessionStore
}

func TestAuthService_SignIn_DemoMode(t *testing.T) {
	svc, sessionStore := newDemoService()

	res, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    constant.DemoAdminEmail,
		Password: "anything",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.DemoAdminEmail, res.User.Email)
	assert.Equal(t, constant.RoleAdmin, res.User.Role)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	snapshot := sessionStore.Snapshot()
	require.NotNil(t, snapshot.User)
	assert.Equal(t, constant.DemoAdminEmail, snapshot.User.Email)
	assert.False(t, snapshot.Loading)
}

func TestAuthService_SignIn_DemoModeRejectsOtherEmails(t *testing.T) {
	svc, sessionStore := newDemoService()

	for _, email := range []string{"user@dostapp.com", "rahul@example.com", ""} {
		_, err := svc.SignIn(context.Background(), dto.SignInRequest{Email: email})

		assert.True(t, errors.Is(err, failure.InvalidCredentialsError), "email %q should be rejected", email)
	}

	assert.Nil(t, sessionStore.Snapshot().User)
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newDemoService()

	signedIn, err := svc.SignIn(context.Background(), dto.SignInRequest{Email: constant.DemoAdminEmail})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
		RefreshToken: signedIn.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	})
	require.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestAuthService_SignOut(t *testing.T) {
	svc, sessionStore := newDemoService()

	_, err := svc.SignIn(context.Background(), dto.SignInRequest{Email: constant.DemoAdminEmail})
	require.NoError(t, err)
	require.NotNil(t, sessionStore.Snapshot().User)

	svc.SignOut(context.Background())

	assert.Nil(t, sessionStore.Snapshot().User)
}
