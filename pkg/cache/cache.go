// Package cache stores serialized analysis reports keyed by a fingerprint
// of the group's multiplication table, so repeated analysis of the same
// group skips the subgroup enumeration entirely.
//
// Three backends are provided: FileCache for CLI usage, RedisCache for the
// HTTP server, and NullCache to disable caching.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the cache entry lifetime used when callers pass no explicit
// TTL. Reports are deterministic for a given table, so the TTL exists only
// to bound disk usage, not to manage staleness.
const DefaultTTL = 30 * 24 * time.Hour

// Cache stores opaque byte values under string keys with an optional TTL.
// A ttl of zero means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss; an error
	// is returned only for backend failures, never for misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
