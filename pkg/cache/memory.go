package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryCache[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewMemory returns an in-process cache holding at most size entries, each
// expiring ttl after it was set.
func NewMemory[V any](size int, ttl time.Duration) Cache[V] {
	if size <= 0 {
		size = 128
	}
	return &memoryCache[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

func (c *memoryCache[V]) Get(_ context.Context, key string) (V, bool) {
	return c.lru.Get(key)
}

func (c *memoryCache[V]) Set(_ context.Context, key string, value V) {
	c.lru.Add(key, value)
}

func (c *memoryCache[V]) Delete(_ context.Context, key string) {
	c.lru.Remove(key)
}
