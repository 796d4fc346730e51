// Package cache defines the TTL key-value cache used for sessions.
package cache

import (
	"context"
	"time"
)

// Cache is a key-value store with per-entry expiry.
type Cache interface {
	// Set stores value under key. A non-positive ttl stores the entry without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns the value or errs.ErrNotFound when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key; errs.ErrNotFound if it did not exist.
	Delete(ctx context.Context, key string) error
	// Alive reports whether the cache can serve requests.
	Alive(ctx context.Context) bool
}
