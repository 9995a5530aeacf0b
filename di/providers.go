package di

import (
	"time"

	"dost/config"
	"dost/infras/kafka"
	"dost/infras/otel"
	"dost/infras/postgres"
	"dost/infras/redis"
	"dost/internal/notify"
	"dost/shared/cache"
)

// ProvidePostgres returns a database connection in remote mode and nil in
// demo mode. The service layer never touches the connection while the remote
// backend is unconfigured, so the nil is safe.
func ProvidePostgres(cfg *config.Config) *postgres.Connection {
	if !cfg.RemoteConfigured() {
		return nil
	}

	return postgres.New(cfg)
}

// ProvideCache prefers Redis and falls back to the in-process cache so demo
// mode runs without external services.
func ProvideCache(cfg *config.Config, ot otel.Otel) cache.Cache {
	if cfg.CacheConfigured() {
		return cache.NewRedisCache(redis.New(cfg), ot)
	}

	return cache.NewMemoryCache()
}

// ProvideKafka returns nil when no brokers are configured; the event
// publisher treats a nil client as "notifications only".
func ProvideKafka(cfg *config.Config) kafka.Client {
	if !cfg.KafkaConfigured() {
		return nil
	}

	return kafka.New(cfg)
}

func ProvideNotifyStore(cfg *config.Config) *notify.Store {
	ttl := time.Duration(cfg.Notifications.ToastTTLSeconds) * time.Second

	return notify.NewStore(ttl, cfg.Notifications.HistoryLimit)
}
