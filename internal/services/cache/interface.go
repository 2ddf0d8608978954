package cache

import (
	"context"
	"time"
)

// Backend names accepted by New
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Cache stores serialized responses under string keys
type Cache interface {
	// Get returns the stored value and whether it was present and unexpired
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with a TTL; a non-positive TTL uses the backend default
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Close releases background resources
	Close() error
}

// Stats is a snapshot of cache usage
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
	Entries   int64 `json:"entries"`
}

// StatsProvider is implemented by caches that track usage
type StatsProvider interface {
	Stats() Stats
}
