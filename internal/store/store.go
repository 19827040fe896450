package store

import (
	"context"
	"time"
)

// Store is the key-value backend used for rate limit counters. Implementations
// must be safe for concurrent use. A Store that cannot answer (degraded or
// disabled backend) reports keys as absent rather than returning errors where
// possible, so callers fail open.
type Store interface {
	// Get returns the value for key and whether the key exists and has not expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key with the given TTL, replacing any previous
	// value and expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// TTL reports the remaining lifetime of key. The second return is false
	// when the key does not exist or the backend cannot report expiry.
	TTL(ctx context.Context, key string) (time.Duration, bool, error)
}
