package cmd

import (
	"context"
	"fmt"

	"github.com/killallgit/secondlife-api/api/types"
	"github.com/killallgit/secondlife-api/internal/services/aggregator"
	"github.com/killallgit/secondlife-api/internal/services/cache"
	"github.com/killallgit/secondlife-api/internal/services/geocoding"
	"github.com/killallgit/secondlife-api/internal/services/places"
	"github.com/killallgit/secondlife-api/internal/services/summary"
	"github.com/killallgit/secondlife-api/pkg/config"
	"github.com/rs/zerolog"
)

// buildDependencies constructs the service graph from configuration. The
// returned closers release the cache; missing keys never fail here.
func buildDependencies(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (*types.Dependencies, []func() error, error) {
	var closers []func() error
	var stats cache.StatsProvider

	geocoder := newGeocoder(cfg, log)
	placesClient := places.NewClient(places.Config{
		APIKey:  cfg.GoogleMaps.APIKey,
		BaseURL: cfg.GoogleMaps.PlacesBaseURL,
		Timeout: cfg.GoogleMaps.Timeout,
	}, log)

	opts := []aggregator.Option{
		aggregator.WithMaxConcurrency(cfg.Search.MaxConcurrency),
		aggregator.WithLogger(log),
	}

	if cfg.Cache.Enabled {
		c, err := cache.New(ctx, cache.Options{
			Backend:         cfg.Cache.Backend,
			MaxEntries:      cfg.Cache.MaxEntries,
			CleanupInterval: cfg.Cache.CleanupInterval,
			Redis: cache.RedisConfig{
				Addr:       cfg.Redis.Addr,
				Password:   cfg.Redis.Password,
				DB:         cfg.Redis.DB,
				KeyPrefix:  cfg.Redis.KeyPrefix,
				MaxRetries: cfg.Redis.MaxRetries,
			},
		}, log)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing %s cache: %w", cfg.Cache.Backend, err)
		}
		closers = append(closers, c.Close)
		opts = append(opts, aggregator.WithCache(c, cfg.Cache.SearchTTL))
		if sp, ok := c.(cache.StatsProvider); ok {
			stats = sp
		}
	}

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		for _, closeFn := range closers {
			_ = closeFn()
		}
		return nil, nil, err
	}

	deps := &types.Dependencies{
		Searcher:   aggregator.NewService(geocoder, placesClient, opts...),
		Summarizer: summary.NewService(generator, cfg.Summary.Timeout, log),
		Client: types.ClientConfigResponse{
			APIBaseURL:     cfg.Client.APIBaseURL,
			MapsBrowserKey: cfg.Client.MapsBrowserKey,
		},
		Build:      buildInfo(),
		CacheStats: stats,
		Logger:     log,
	}
	return deps, closers, nil
}

func newGeocoder(cfg *config.Config, log *zerolog.Logger) *geocoding.Client {
	return geocoding.NewClient(geocoding.Config{
		APIKey:  cfg.GoogleMaps.APIKey,
		BaseURL: cfg.GoogleMaps.GeocodeBaseURL,
		Timeout: cfg.GoogleMaps.Timeout,
	}, log)
}

func newGenerator(ctx context.Context, cfg *config.Config) (summary.Generator, error) {
	generator, err := summary.NewGenerator(ctx, summary.GeneratorConfig{
		Provider:        cfg.Summary.Provider,
		GeminiAPIKey:    cfg.Summary.GeminiAPIKey,
		GeminiModel:     cfg.Summary.GeminiModel,
		AnthropicAPIKey: cfg.Summary.AnthropicAPIKey,
		ClaudeModel:     cfg.Summary.ClaudeModel,
		MaxTokens:       cfg.Summary.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing summary provider: %w", err)
	}
	return generator, nil
}
