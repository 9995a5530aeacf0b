package redis

import (
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"dost/config"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Cache.Redis.Host, config.Cache.Redis.Port),
		Password: config.Cache.Redis.Password,
		DB:       config.Cache.Redis.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
		panic(err)
	}

	log.Info().
		Int("db", config.Cache.Redis.DB).
		Str("host", config.Cache.Redis.Host).
		Str("port", config.Cache.Redis.Port).
		Msg("Connected to Redis")

	return client
}
