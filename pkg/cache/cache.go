// Package cache holds read-mostly values such as the catalog snapshot,
// either in process or in redis.
package cache

import "context"

// Cache stores values of type V by key. Misses and backend failures are both
// reported as ok == false; callers fall back to the source of truth.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V)
	Delete(ctx context.Context, key string)
}
