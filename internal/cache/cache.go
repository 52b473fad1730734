package cache

import (
	"context"
	"time"
)

// Cache is the JSON read-through cache in front of stored match reads. A miss
// is (false, nil), never an error.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
