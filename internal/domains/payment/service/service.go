package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/otel"
	"dost/internal/domains/payment/model"
	"dost/internal/domains/payment/model/dto"
	"dost/internal/domains/payment/repository"
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
	cacheGetAllPayment = "payment:gets"
)

type Payment interface {
	GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (dto.GetPaymentsResponse, error)
	Refund(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Payment
	cfg    *config.Config
	cache  cache.Cache
	otel   otel.Otel
	events events.Publisher
}

func New(repo repository.Payment, cfg *config.Config, cache cache.Cache, otel otel.Otel, events events.Publisher) Payment {
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
			gDto.SearchColumn{Field: model.FieldTransactionID, Table: model.TableName},
			gDto.SearchColumn{Field: "full_name", Table: "users"},
			gDto.SearchColumn{Field: "roomname", Table: "rooms"},
		))
	}

	if status != "" && status != constant.FilterAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return group
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, term, status string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetAll")
	defer scope.End()

	filter := listFilter(term, status)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	res, degraded := fallback.Read(ctx, s.cfg.RemoteConfigured(),
		func(ctx context.Context) (dto.GetPaymentsResponse, error) {
			var remote dto.GetPaymentsResponse

			models, err := s.repo.GetAll(ctx, params, filter)
			if err != nil {
				return remote, fmt.Errorf("failed to get payments: %w", err)
			}

			remote.FromModels(models, len(models))

			return remote, nil
		},
		func() dto.GetPaymentsResponse {
			payments := seed.FilterPayments(seed.Payments(), term, status)

			return dto.GetPaymentsResponse{Payments: payments, TotalData: len(payments)}
		},
	)

	if !degraded {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save payments to cache")
			}
		}()
	}

	return res, nil
}

// Refund marks a paid payment as refunded. Only Paid payments are
// refundable.
func (s *serviceImpl) Refund(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Refund")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = fallback.Write(ctx, s.cfg.RemoteConfigured(), func(ctx context.Context) error {
		payment, err := s.repo.Get(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to get payment: %w", err)
		}

		if payment.ID == constant.Empty {
			return failure.NotFound("payment not found") //nolint:wrapcheck
		}

		if payment.PaymentStatus != constant.PaymentStatusPaid {
			return failure.BadRequestFromString(fmt.Sprintf("payment with status %s cannot be refunded", payment.PaymentStatus)) //nolint:wrapcheck
		}

		fields := map[string]any{
			model.FieldPaymentStatus: constant.PaymentStatusRefunded,
			constant.FieldModifiedBy: actor,
		}

		if err := s.repo.Update(ctx, fields, filter); err != nil {
			return fmt.Errorf("failed to refund payment: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, events.Activity{
		Action:   events.ActionPaymentRefunded,
		Entity:   model.EntityName,
		EntityID: id,
		Actor:    actor,
		Title:    "Payment refunded",
		Detail:   fmt.Sprintf("payment %s was refunded", id),
	})

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllPayment)
	}()

	return nil
}
