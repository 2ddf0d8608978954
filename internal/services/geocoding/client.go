package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/rs/zerolog"
)

const providerName = "geocoding"

// ErrMissingAPIKey indicates the client was built without a maps key
var ErrMissingAPIKey = errors.New("missing google maps api key")

// Config holds configuration for the geocoding client
type Config struct {
	APIKey  string
	BaseURL string        // Default: https://maps.googleapis.com/maps/api/geocode/json
	Timeout time.Duration // Default: 10s
}

// Client resolves free-text locations through the Google Geocoding API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zerolog.Logger
}

// NewClient creates a new geocoding client
func NewClient(cfg Config, logger *zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// Configured reports whether the client has credentials
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Geocode resolves address to the location of the first result.
// A non-OK status or an empty result list yields models.NotFoundError.
func (c *Client) Geocode(ctx context.Context, address string) (models.GeoCenter, error) {
	if !c.Configured() {
		return models.GeoCenter{}, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.GeoCenter{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GeoCenter{}, models.NewUpstreamError(providerName, fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	// The API reports most failures in the body status, so decode regardless of HTTP code
	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.GeoCenter{}, models.NewUpstreamError(providerName,
			fmt.Errorf("decoding response (http %d): %w", resp.StatusCode, err))
	}

	if result.Status != StatusOK || len(result.Results) == 0 {
		c.logger.Warn().
			Str("address", address).
			Str("status", result.Status).
			Str("message", result.ErrorMessage).
			Msg("geocoding returned no match")
		return models.GeoCenter{}, models.NewNotFoundError(result.Status, result.ErrorMessage)
	}

	loc := result.Results[0].Geometry.Location
	c.logger.Debug().
		Str("address", address).
		Float64("lat", loc.Lat).
		Float64("lng", loc.Lng).
		Msg("geocoded location")

	return models.GeoCenter{Lat: loc.Lat, Lng: loc.Lng}, nil
}
