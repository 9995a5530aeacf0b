package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/otel"
	"dost/internal/domains/booking/model"
	"dost/internal/domains/booking/model/dto"
	"dost/internal/domains/booking/repository"
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
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (dto.GetBookingsResponse, error)
	GetRecent(ctx context.Context, limit int) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) error
	Export(ctx context.Context, term, status, format string) (Export, error)
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	cache  cache.Cache
	otel   otel.Otel
	events events.Publisher
}

func New(repo repository.Booking, cfg *config.Config, cache cache.Cache, otel otel.Otel, events events.Publisher) Booking {
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
			gDto.SearchColumn{Field: model.FieldID, Table: model.TableName},
			gDto.SearchColumn{Field: "full_name", Table: "users"},
			gDto.SearchColumn{Field: "roomname", Table: "rooms"},
		))
	}

	if status != "" && status != constant.FilterAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return group
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()

	filter := listFilter(term, status)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	res, degraded := fallback.Read(ctx, s.cfg.RemoteConfigured(),
		func(ctx context.Context) (dto.GetBookingsResponse, error) {
			var remote dto.GetBookingsResponse

			models, err := s.repo.GetAll(ctx, params, filter)
			if err != nil {
				return remote, fmt.Errorf("failed to get bookings: %w", err)
			}

			remote.FromModels(models, len(models))

			return remote, nil
		},
		func() dto.GetBookingsResponse {
			bookings := seed.FilterBookings(seed.Bookings(), term, status)

			return dto.GetBookingsResponse{Bookings: bookings, TotalData: len(bookings)}
		},
	)

	if !degraded {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save bookings to cache")
			}
		}()
	}

	return res, nil
}

// GetRecent returns the newest bookings, at most limit of them.
func (s *serviceImpl) GetRecent(ctx context.Context, limit int) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetRecent")
	defer scope.End()

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	res, err = s.GetAll(ctx, params, constant.Empty, constant.Empty)
	if err != nil {
		return res, err
	}

	if limit > 0 && len(res.Bookings) > limit {
		res.Bookings = res.Bookings[:limit]
	}
	res.TotalData = len(res.Bookings)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		booking, err := s.repo.Get(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if err := model.ValidateTransition(booking.BookingStatus, req.Status); err != nil {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		fields := map[string]any{
			model.FieldBookingStatus: req.Status,
			constant.FieldModifiedBy: actor,
		}

		if err := s.repo.Update(ctx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionBookingStatusChanged,
		Entity:   model.EntityName,
		EntityID: id,
		Actor:    actor,
		Title:    "Booking status updated",
		Detail:   fmt.Sprintf("booking %s is now %s", id, req.Status),
	})

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBooking)
	}()

	return nil
}
