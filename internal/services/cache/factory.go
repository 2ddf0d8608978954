package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Options selects and sizes a cache backend
type Options struct {
	Backend         string
	MaxEntries      int
	CleanupInterval time.Duration
	Redis           RedisConfig
}

// New builds the configured backend
func New(ctx context.Context, opts Options, logger *zerolog.Logger) (Cache, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryCache(opts.MaxEntries, opts.CleanupInterval), nil
	case BackendRedis:
		c, err := ConnectRedis(ctx, opts.Redis, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", opts.Backend)
	}
}
