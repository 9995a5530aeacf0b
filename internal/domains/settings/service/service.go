package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/otel"
	"dost/internal/domains/settings/model"
	"dost/internal/domains/settings/model/dto"
	"dost/internal/domains/settings/repository"
	"dost/internal/events"
	"dost/internal/seed"
	"dost/shared"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/fallback"
)

const (
	cacheAppConfig = "settings:get"
)

type Settings interface {
	Get(ctx context.Context) (dto.AppConfigResponse, error)
	Update(ctx context.Context, req dto.UpdateAppConfigRequest) error
}

type serviceImpl struct {
	repo   repository.Settings
	cfg    *config.Config
	cache  cache.Cache
	otel   otel.Otel
	events events.Publisher
}

func New(repo repository.Settings, cfg *config.Config, cache cache.Cache, otel otel.Otel, events events.Publisher) Settings {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		events: events,
	}
}

func singletonFilter() gDto.FilterGroup {
	return shared.FilterByID(model.SingletonID, model.FieldID, model.TableName)
}

// Get returns the site configuration singleton.
func (s *serviceImpl) Get(ctx context.Context) (res dto.AppConfigResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Get")
	defer scope.End()

	err = s.cache.Get(ctx, cacheAppConfig, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheAppConfig).Msg("cache hit for settings")

		return res, nil
	}

	res, degraded := fallback.Read(ctx, s.cfg.RemoteConfigured(),
		func(ctx context.Context) (dto.AppConfigResponse, error) {
			var remote dto.AppConfigResponse

			appConfig, err := s.repo.Get(ctx, singletonFilter())
			if err != nil {
				return remote, fmt.Errorf("failed to get settings: %w", err)
			}

			if appConfig.ID == constant.Empty {
				return seed.Settings(), nil
			}

			remote.FromModel(appConfig)

			return remote, nil
		},
		seed.Settings,
	)

	if !degraded {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheAppConfig, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save settings to cache")
			}
		}()
	}

	return res, nil
}

// Update patches the configuration singleton, creating the row on first
// write.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppConfigRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, singletonFilter())
		if err != nil {
			return fmt.Errorf("failed to check settings row: %w", err)
		}

		if !exist {
			return fmt.Errorf("settings row is missing, run migrations first")
		}

		if err := s.repo.Update(ctx, shared.TransformFields(req, actor), singletonFilter()); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionSettingsUpdated,
		Entity:   model.EntityName,
		EntityID: model.SingletonID,
		Actor:    actor,
		Title:    "Settings updated",
		Detail:   "site configuration was changed",
	})

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheAppConfig)
	}()

	return nil
}
