package types

import "github.com/killallgit/secondlife-api/internal/services/cache"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string `json:"error" example:"Missing q"`
	Detail string `json:"detail,omitempty" example:"places: status 403"`
}

// LocationNotFoundResponse forwards the geocoder's status and message
type LocationNotFoundResponse struct {
	Error   string  `json:"error" example:"Location not found"`
	Status  string  `json:"status" example:"ZERO_RESULTS"`
	Message *string `json:"message"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"Backend running"`
}

// ClientConfigResponse is the pair the browser client needs at startup
type ClientConfigResponse struct {
	APIBaseURL     string `json:"apiBaseUrl" example:"http://localhost:4000"`
	MapsBrowserKey string `json:"mapsBrowserKey"`
}

// VersionResponse describes the running build
type VersionResponse struct {
	Name    string `json:"name" example:"Second Life API"`
	Version string `json:"version" example:"1.0.0"`
	Commit  string `json:"commit,omitempty"`
	// Cache is present only when the search cache is enabled
	Cache *cache.Stats `json:"cache,omitempty"`
}
