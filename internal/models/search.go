package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Radius bounds for the location bias circle, in meters
const (
	DefaultRadiusMeters = 7000
	MinRadiusMeters     = 1000
	MaxRadiusMeters     = 50000
)

// Sort orders understood by the search endpoint
const (
	SortRelevance = "relevance"
	SortRating    = "rating"
)

// SearchQuery is the validated input of a single aggregated search
type SearchQuery struct {
	Text         string
	RadiusMeters int
	Category     string // optional label filter
	Sort         string // SortRelevance or SortRating
}

// NewSearchQuery trims the text, clamps the radius and normalizes the sort order.
func NewSearchQuery(text string, radiusMeters int) (SearchQuery, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SearchQuery{}, NewValidationError("q", "Missing q")
	}

	return SearchQuery{
		Text:         text,
		RadiusMeters: ClampRadius(radiusMeters),
		Sort:         SortRelevance,
	}, nil
}

// ParseRadius reads a radius query value. An absent value selects
// DefaultRadiusMeters. Numeric values, including 0 and +/-Inf, are clamped
// as floats before the int conversion. NaN is invalid.
func ParseRadius(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRadiusMeters, nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, NewValidationError("radius", "Invalid radius")
	}
	if math.IsNaN(parsed) {
		return 0, NewValidationError("radius", "Invalid radius")
	}

	parsed = math.Max(MinRadiusMeters, math.Min(MaxRadiusMeters, parsed))
	return int(parsed), nil
}

// ClampRadius forces a radius into [MinRadiusMeters, MaxRadiusMeters]
func ClampRadius(radiusMeters int) int {
	return max(MinRadiusMeters, min(MaxRadiusMeters, radiusMeters))
}

// GeoCenter is a resolved coordinate
type GeoCenter struct {
	Lat float64 `json:"lat" example:"37.7726402"`
	Lng float64 `json:"lng" example:"-122.4099154"`
}

// SearchResult is what the aggregator hands back to the search handler
type SearchResult struct {
	Center GeoCenter     `json:"center"`
	Places []PlaceResult `json:"places"`
}
