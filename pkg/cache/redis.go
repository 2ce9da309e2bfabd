package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"laptopxplorer/pkg/log"
)

type redisCache[V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	l      log.Logger
}

// NewRedis returns a cache that stores JSON-encoded values under prefix+key.
func NewRedis[V any](client *redis.Client, prefix string, ttl time.Duration, l log.Logger) Cache[V] {
	return &redisCache[V]{client: client, prefix: prefix, ttl: ttl, l: l}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *redisCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false
	}
	if err != nil {
		c.l.Warnf(ctx, "pkg.cache.redis.Get %s: %v", key, err)
		return zero, false
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		c.l.Warnf(ctx, "pkg.cache.redis.Get %s decode: %v", key, err)
		return zero, false
	}
	return v, true
}

func (c *redisCache[V]) Set(ctx context.Context, key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.l.Warnf(ctx, "pkg.cache.redis.Set %s encode: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.l.Warnf(ctx, "pkg.cache.redis.Set %s: %v", key, err)
	}
}

func (c *redisCache[V]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.l.Warnf(ctx, "pkg.cache.redis.Delete %s: %v", key, err)
	}
}
