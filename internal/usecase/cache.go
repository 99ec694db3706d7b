package usecase

import (
	"context"
	"time"
)

// Cache is the read-through cache the ranking path uses. A nil or
// unavailable backend behaves as a permanent miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
