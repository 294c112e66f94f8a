// Package cache stores serialized analysis reports between CLI runs.
//
// Reports are addressed by a key derived from the content hash of the input
// graph and the options that shaped the report, so an unchanged graph
// analyzed with unchanged options is served from disk instead of being
// recomputed. Two implementations are provided:
//
//   - [FileCache] keeps one JSON file per entry under a directory
//   - [NullCache] stores nothing and is used when caching is disabled
//
// Key construction lives behind the [Keyer] interface so callers can scope
// keys by build version (see [NewScopedKeyer]) without touching the cache.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a report stays valid when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
