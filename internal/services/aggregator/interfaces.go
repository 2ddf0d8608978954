package aggregator

import (
	"context"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/killallgit/secondlife-api/internal/services/places"
)

// Geocoder resolves a free-text location to a center coordinate
type Geocoder interface {
	Configured() bool
	Geocode(ctx context.Context, address string) (models.GeoCenter, error)
}

// PlaceSearcher runs one keyword search against the places provider
type PlaceSearcher interface {
	SearchText(ctx context.Context, req places.TextSearchRequest) (*places.SearchTextResponse, error)
}

// Searcher is the contract consumed by the search handler
type Searcher interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error)
}
