package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache is a read-through JSON cache over redis. A Cache built with a nil
// client is a pass-through: every call loads from the source.
type Cache struct {
	client *redis.Client
	prefix string
	logger zerolog.Logger
}

// Options configures the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// New connects to redis when opts.Addr is set. A failed ping is logged and the
// cache falls back to pass-through instead of failing startup.
func New(ctx context.Context, opts Options, logger zerolog.Logger) *Cache {
	c := &Cache{prefix: opts.Prefix, logger: logger}
	if opts.Addr == "" {
		logger.Info().Msg("Redis address not configured, statistics cache disabled")
		return c
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", opts.Addr).Msg("Redis unreachable, statistics cache disabled")
		_ = client.Close()
		return c
	}

	logger.Info().Str("addr", opts.Addr).Msg("Redis cache connected")
	c.client = client
	return c
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string, logger zerolog.Logger) *Cache {
	return &Cache{client: client, prefix: prefix, logger: logger}
}

// Enabled reports whether a redis client is attached.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// GetOrLoad returns the cached value for key, or calls load, stores the result
// for ttl and returns it. Redis failures are logged and never returned; only
// load errors reach the caller.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if !c.Enabled() {
		return load(ctx)
	}

	fullKey := c.key(key)
	raw, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		var cached T
		jerr := json.Unmarshal(raw, &cached)
		if jerr == nil {
			return cached, nil
		}
		c.logger.Warn().Err(jerr).Str("key", fullKey).Msg("Discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("key", fullKey).Msg("Cache read failed, loading from source")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", fullKey).Msg("Cache encode failed")
		return value, nil
	}
	if err := c.client.Set(ctx, fullKey, payload, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", fullKey).Msg("Cache write failed")
	}
	return value, nil
}

// Invalidate removes the given keys. Failures are logged.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		c.logger.Warn().Err(err).Strs("keys", full).Msg("Cache invalidation failed")
	}
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// TeacherStatisticsKey is the cache key of a course's cohort statistics.
func TeacherStatisticsKey(courseID int64) string {
	return fmt.Sprintf("stats:teacher:%d", courseID)
}
