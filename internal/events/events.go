// Package events fans admin activity out to the notification store and, when
// brokers are configured, to a Kafka topic for downstream consumers.
package events

import (
	"context"

	"github.com/rs/zerolog/log"

	"dost/config"
	"dost/infras/kafka"
	"dost/infras/otel"
	"dost/internal/notify"
	"dost/shared/constant"
	"dost/shared/timezone"
)

const (
	ActionBookingStatusChanged = "booking.status_changed"
	ActionPaymentRefunded      = "payment.refunded"
	ActionRoomCreated          = "room.created"
	ActionRoomUpdated          = "room.updated"
	ActionRoomDeleted          = "room.deleted"
	ActionUserStatusChanged    = "user.status_changed"
	ActionUserDeleted          = "user.deleted"
	ActionSettingsUpdated      = "settings.updated"
)

type Activity struct {
	Action     string `json:"action"`
	Entity     string `json:"entity"`
	EntityID   string `json:"entity_id"`
	Actor      string `json:"actor"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, activity Activity)
}

type publisherImpl struct {
	cfg      *config.Config
	client   kafka.Client
	notifier *notify.Store
	otel     otel.Otel
}

func New(cfg *config.Config, client kafka.Client, notifier *notify.Store, otl otel.Otel) Publisher {
	return &publisherImpl{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		otel:     otl,
	}
}

// Publish records the activity in the notification store and ships it to
// Kafka asynchronously. Delivery failures are logged, never surfaced: an
// activity event must not fail the mutation that produced it.
func (p *publisherImpl) Publish(ctx context.Context, activity Activity) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	if activity.OccurredAt == "" {
		activity.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	if activity.Actor == "" {
		activity.Actor = constant.ContextGuest
	}

	p.notifier.Add(activity.Title, activity.Detail, notify.TypeInfo)

	if !p.cfg.KafkaConfigured() || p.client == nil {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   activity.EntityID,
			Value: activity,
		}

		if err := p.client.SendMessages(c, p.cfg.Kafka.ActivityTopic, message); err != nil {
			log.Error().Err(err).Str("action", activity.Action).Msg("failed to publish activity event")
		}
	}()
}
