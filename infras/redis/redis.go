package redis

import (
	"context"
	"fmt"
	"net"
	"reziro/config"
	"reziro/infras/otel"
	"reziro/shared/cache"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// Options maps the primary Redis settings onto client options.
func Options(cfg *config.Config) *goRedis.Options {
	primary := cfg.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}
}

// New connects and pings once. The client is closed when the ping fails.
func New(cfg *config.Config) (*goRedis.Client, error) {
	opts := Options(cfg)
	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to reach redis at %s: %w", opts.Addr, err)
	}

	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("Connected to Redis")

	return client, nil
}

// NewCache connects only when CACHE_REDIS_ENABLED is set. An unreachable
// server degrades to the no-op cache: loads go to Postgres and the rate
// limiter lets traffic through.
func NewCache(cfg *config.Config, otl otel.Otel) cache.RedisCache {
	if !cfg.Cache.Redis.Enabled {
		log.Info().Msg("Redis disabled, state cache is a no-op")

		return cache.NewNoopCache()
	}

	client, err := New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Redis unavailable, state cache is a no-op")

		return cache.NewNoopCache()
	}

	return cache.NewRedisCache(client, otl)
}
