package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	// Remote gates remote mode: both values must be present, otherwise the
	// service runs in fallback ("demo") mode on static data with writes
	// disabled. Their absence is a supported mode, not an error.
	Remote struct {
		ServiceURL string `envconfig:"SERVICE_URL"`
		AnonKey    string `envconfig:"ANON_KEY"`
		MaxRetry   int    `envconfig:"MAX_RETRY" default:"3"`
		RetryWait  int    `envconfig:"RETRY_WAIT_SECONDS" default:"2"`

		MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
	} `envconfig:"REMOTE"`

	Cache struct {
		Redis struct {
			Host     string `envconfig:"HOST"`
			Port     string `envconfig:"PORT"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET" default:"dost-demo-access-secret"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET" default:"dost-demo-refresh-secret"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	Storage struct {
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"STORAGE"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		ActivityTopic string   `envconfig:"ACTIVITY_TOPIC" default:"dost.admin.activity"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Notifications struct {
		ToastTTLSeconds int `envconfig:"TOAST_TTL_SECONDS" default:"4"`
		HistoryLimit    int `envconfig:"HISTORY_LIMIT" default:"50"`
	} `envconfig:"NOTIFICATIONS"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// RemoteConfigured reports whether remote credentials are present. It is the
// single predicate every data operation consults before touching the backend.
func (c *Config) RemoteConfigured() bool {
	return c.Remote.ServiceURL != "" && c.Remote.AnonKey != ""
}

// CacheConfigured reports whether a Redis instance is available; without one
// the service falls back to an in-process cache.
func (c *Config) CacheConfigured() bool {
	return c.Cache.Redis.Host != ""
}

// KafkaConfigured reports whether activity events can be published.
func (c *Config) KafkaConfigured() bool {
	return len(c.Kafka.Brokers) > 0
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		if !conf.RemoteConfigured() {
			log.Info().Msg("Remote backend not configured, running in demo mode with fallback data")
		}

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
