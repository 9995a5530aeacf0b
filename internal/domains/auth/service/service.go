package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/jwt"
	"dost/infras/otel"
	"dost/internal/domains/auth/model/dto"
	userModel "dost/internal/domains/user/model"
	userRepo "dost/internal/domains/user/repository"
	"dost/internal/seed"
	"dost/internal/session"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
	"dost/shared/password"
)

type Auth interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.SignInResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	SignOut(ctx context.Context)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	session    *session.Store
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwtService jwt.JWT, session *session.Store) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwtService,
		session:    session,
	}
}

// SignIn authenticates an admin. With a remote backend it looks the user up
// by email constrained to the admin role and verifies the password; in demo
// mode exactly one hardcoded address is accepted and everything else is
// rejected with the same invalid-credentials result.
func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.SignInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.SignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	authUser, err := s.resolveUser(ctx, req)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(authUser.ID, authUser.Email, authUser.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.session.SetUser(authUser)

	res.User = authUser
	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) resolveUser(ctx context.Context, req dto.SignInRequest) (dto.AuthUser, error) {
	var authUser dto.AuthUser

	if !s.cfg.RemoteConfigured() {
		if req.Email != constant.DemoAdminEmail {
			log.Warn().Str("email", req.Email).Msg("demo sign-in rejected")

			return authUser, failure.InvalidCredentialsError
		}

		return seed.AdminUser(), nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleAdmin,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("sign-in lookup failed")

		return authUser, failure.InvalidCredentialsError
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("sign-in attempt for unknown admin")

		return authUser, failure.InvalidCredentialsError
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("sign-in attempt with wrong password")

		return authUser, failure.InvalidCredentialsError
	}

	if user.Status == constant.UserStatusBlocked {
		return authUser, failure.InvalidCredentialsError
	}

	authUser.FromModel(user)

	return authUser, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// SignOut resets the session store.
func (s *serviceImpl) SignOut(ctx context.Context) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.SignOut")
	defer scope.End()

	s.session.Reset()
}
