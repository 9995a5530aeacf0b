package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/otel"
	"dost/internal/domains/user/model"
	"dost/internal/domains/user/model/dto"
	"dost/internal/domains/user/repository"
	"dost/internal/events"
	"dost/internal/seed"
	"dost/shared"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
	"dost/shared/fallback"
)

const (
	cacheGetAllUser = "user:gets"
)

type User interface {
	GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (dto.GetUsersResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateUserStatusRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.User
	cfg    *config.Config
	cache  cache.Cache
	otel   otel.Otel
	events events.Publisher
}

func New(repo repository.User, cfg *config.Config, cache cache.Cache, otel otel.Otel, events events.Publisher) User {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		events: events,
	}
}

func listFilter(term, status string) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if term != "" {
		group.Filters = append(group.Filters, gDto.SearchFilter(term,
			gDto.SearchColumn{Field: model.FieldFullName, Table: model.TableName},
			gDto.SearchColumn{Field: model.FieldEmail, Table: model.TableName},
			gDto.SearchColumn{Field: model.FieldPhone, Table: model.TableName},
		))
	}

	if status != "" && status != constant.FilterAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return group
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()

	filter := listFilter(term, status)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	res, degraded := fallback.Read(ctx, s.cfg.RemoteConfigured(),
		func(ctx context.Context) (dto.GetUsersResponse, error) {
			var remote dto.GetUsersResponse

			models, err := s.repo.GetAll(ctx, params, filter)
			if err != nil {
				return remote, fmt.Errorf("failed to get users: %w", err)
			}

			remote.FromModels(models, len(models))

			return remote, nil
		},
		func() dto.GetUsersResponse {
			users := seed.FilterUsers(seed.Users(), term, status)

			return dto.GetUsersResponse{Users: users, TotalData: len(users)}
		},
	)

	if !degraded {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save users to cache")
			}
		}()
	}

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateUserStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to check if user exists: %w", err)
		}

		if !exist {
			return failure.NotFound("user not found") //nolint:wrapcheck
		}

		if err := s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
			return fmt.Errorf("failed to update user status: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionUserStatusChanged,
		Entity:   model.EntityName,
		EntityID: id,
		Actor:    actor,
		Title:    "User status updated",
		Detail:   fmt.Sprintf("user %s is now %s", id, req.Status),
	})

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to check if user exists: %w", err)
		}

		if !exist {
			return failure.NotFound("user not found") //nolint:wrapcheck
		}

		if err := s.repo.Delete(ctx, filter); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionUserDeleted,
		Entity:   model.EntityName,
		EntityID: id,
		Actor:    actor,
		Title:    "User deleted",
		Detail:   fmt.Sprintf("user %s was removed", id),
	})

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
	}()

	return nil
}
