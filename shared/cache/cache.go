package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reziro/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	otelCacheTTLAttribute = "cache.ttl_seconds"
	Nil                   = redis.Nil
)

// RedisCache stores JSON snapshots and fixed-window counters. TTLs are seconds.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttl int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Hit(ctx context.Context, key string, window int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func (c *redisCache) scope(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return ctx, scope
}

func (c *redisCache) Save(ctx context.Context, key string, value any, ttl int) (err error) {
	ctx, scope := c.scope(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheTTLAttribute, ttl)

	payload, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache: encode failed")

		return err
	}

	if err = c.client.Set(ctx, key, payload, seconds(ttl)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache: set failed")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	return nil
}

// Get returns Nil (wrapped) on a miss; check with errors.Is.
func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := c.scope(ctx, "Get", key)
	defer scope.End()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if err = decode(payload, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("cache: decode failed")

		return err
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := c.scope(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache: delete failed")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Hit increments the counter at key and starts its window on the first hit.
// INCR and EXPIRE NX run in one transaction so a crashed caller never leaves
// a counter without expiry.
func (c *redisCache) Hit(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := c.scope(ctx, "Hit", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var incr *redis.IntCmd

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, seconds(window))

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count hit: %w", err)
	}

	return incr.Val(), nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// encode stores strings raw so counters and plain values stay readable in redis-cli.
func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return payload, nil
}

func decode(payload []byte, value any) error {
	if s, ok := value.(*string); ok {
		*s = string(payload)

		return nil
	}

	if err := json.Unmarshal(payload, value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

type noopCache struct{}

// NewNoopCache is used when Redis is disabled. Every Get and Hit misses with Nil.
func NewNoopCache() RedisCache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(context.Context, string, any) error { return Nil }

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Hit(context.Context, string, int) (int64, error) { return 0, Nil }
