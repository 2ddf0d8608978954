package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/killallgit/secondlife-api/internal/services/cache"
	"github.com/killallgit/secondlife-api/internal/services/geocoding"
	"github.com/killallgit/secondlife-api/internal/services/places"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	resultsPerCategory = 20
	languageCode       = "en"
)

// Service geocodes a query and fans the category table out to the places provider
type Service struct {
	geocoder       Geocoder
	searcher       PlaceSearcher
	categories     []models.CategorySpec
	maxConcurrency int
	cache          cache.Cache
	cacheTTL       time.Duration
	logger         *zerolog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithMaxConcurrency bounds the number of in-flight category searches
func WithMaxConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrency = n
		}
	}
}

// WithCache stores merged results under the normalized query
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates the aggregator
func NewService(geocoder Geocoder, searcher PlaceSearcher, opts ...Option) *Service {
	nop := zerolog.Nop()
	s := &Service{
		geocoder:       geocoder,
		searcher:       searcher,
		categories:     models.Categories(),
		maxConcurrency: 4,
		logger:         &nop,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// categoryOutcome is the private accumulator of one category search
type categoryOutcome struct {
	places []places.Place
	err    error
}

// Search resolves the query's center and returns the merged, deduplicated places.
// The view (category filter and sort) is applied after caching.
func (s *Service) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	text := strings.TrimSpace(query.Text)
	if text == "" {
		return nil, models.NewValidationError("q", "Missing q")
	}
	if s.geocoder == nil || !s.geocoder.Configured() {
		return nil, models.NewConfigurationError("google_maps.api_key", "Missing GOOGLE_MAPS_API_KEY in server configuration")
	}
	radius := models.ClampRadius(query.RadiusMeters)

	key := cacheKey(text, radius)
	if result, ok := s.fromCache(ctx, key); ok {
		return withView(result, query), nil
	}

	center, err := s.geocoder.Geocode(ctx, text)
	if err != nil {
		return nil, s.geocodeError(err)
	}

	outcomes := s.fanOut(ctx, text, center, radius)

	merged, failed, err := s.merge(outcomes)
	if err != nil {
		return nil, err
	}

	result := &models.SearchResult{Center: center, Places: merged}
	if failed == 0 {
		s.toCache(ctx, key, result)
	}

	s.logger.Info().
		Str("query", text).
		Int("radius", radius).
		Int("places", len(merged)).
		Int("failed_categories", failed).
		Msg("aggregated search complete")

	return withView(result, query), nil
}

// fanOut runs one search per category. Each goroutine writes only its own slot.
func (s *Service) fanOut(ctx context.Context, text string, center models.GeoCenter, radius int) []categoryOutcome {
	outcomes := make([]categoryOutcome, len(s.categories))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)

	for i, spec := range s.categories {
		g.Go(func() error {
			resp, err := s.searcher.SearchText(ctx, places.TextSearchRequest{
				TextQuery:      fmt.Sprintf("%s near %s", spec.QueryText, text),
				Latitude:       center.Lat,
				Longitude:      center.Lng,
				RadiusMeters:   float64(radius),
				MaxResultCount: resultsPerCategory,
				LanguageCode:   languageCode,
			})
			if err != nil {
				outcomes[i] = categoryOutcome{err: fmt.Errorf("category %q: %w", spec.QueryText, err)}
				return nil
			}
			outcomes[i] = categoryOutcome{places: resp.Places}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// merge walks the outcomes in table order so the first category to return a
// place assigns its label. Failed categories contribute nothing; the call
// fails only when every category failed. It also reports how many categories
// failed so partial results stay out of the cache.
func (s *Service) merge(outcomes []categoryOutcome) ([]models.PlaceResult, int, error) {
	seen := make(map[string]struct{})
	out := make([]models.PlaceResult, 0)
	var failures []error

	for i, outcome := range outcomes {
		if outcome.err != nil {
			s.logger.Warn().Err(outcome.err).Msg("category search failed, skipping")
			failures = append(failures, outcome.err)
			continue
		}

		label := s.categories[i].Label
		for _, p := range outcome.places {
			if p.ID == "" {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}

			if shaped, ok := shapePlace(p, label); ok {
				out = append(out, shaped)
			}
		}
	}

	if len(outcomes) > 0 && len(failures) == len(outcomes) {
		return nil, len(failures), models.NewUpstreamError("places", errors.Join(failures...))
	}
	return out, len(failures), nil
}

func (s *Service) geocodeError(err error) error {
	switch {
	case errors.Is(err, geocoding.ErrMissingAPIKey):
		return models.NewConfigurationError("google_maps.api_key", "Missing GOOGLE_MAPS_API_KEY in server configuration")
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrUpstreamFailed):
		return err
	default:
		return models.NewUpstreamError("geocoding", err)
	}
}

func (s *Service) fromCache(ctx context.Context, key string) (*models.SearchResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}

	var result models.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to delete cache entry")
		}
		return nil, false
	}
	s.logger.Debug().Str("key", key).Msg("search served from cache")
	return &result, true
}

func (s *Service) toCache(ctx context.Context, key string, result *models.SearchResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache search result")
	}
}

func withView(result *models.SearchResult, query models.SearchQuery) *models.SearchResult {
	return &models.SearchResult{
		Center: result.Center,
		Places: ApplyView(result.Places, query.Category, query.Sort),
	}
}

func cacheKey(text string, radius int) string {
	return fmt.Sprintf("search:%s:%d", strings.ToLower(text), radius)
}
