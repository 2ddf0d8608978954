package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/rs/zerolog"
)

const providerName = "places"

// ErrMissingAPIKey indicates the client was built without a maps key
var ErrMissingAPIKey = errors.New("missing google maps api key")

// Config holds configuration for the Places API client
type Config struct {
	APIKey  string
	BaseURL string        // Default: https://places.googleapis.com/v1
	Timeout time.Duration // Default: 10s
}

// Client issues text searches against the Places API (New)
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zerolog.Logger
}

// NewClient creates a new Places API client
func NewClient(cfg Config, logger *zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://places.googleapis.com/v1"
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

// SearchText runs a single places:searchText call
func (c *Client) SearchText(ctx context.Context, in TextSearchRequest) (*SearchTextResponse, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}

	body := searchTextBody{
		TextQuery:      in.TextQuery,
		MaxResultCount: in.MaxResultCount,
		LanguageCode:   in.LanguageCode,
		LocationBias: locationBias{
			Circle: circle{
				Center: latLng{Latitude: in.Latitude, Longitude: in.Longitude},
				Radius: in.RadiusMeters,
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/places:searchText", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", FieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError(providerName, fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewUpstreamError(providerName, decodeAPIError(resp))
	}

	var result SearchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, models.NewUpstreamError(providerName, fmt.Errorf("decoding response: %w", err))
	}

	c.logger.Debug().
		Str("query", in.TextQuery).
		Int("results", len(result.Places)).
		Msg("places text search complete")

	return &result, nil
}

// decodeAPIError extracts the provider message from a non-200 response
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var apiErr apiErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("API returned status %d (%s): %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
	}
	return fmt.Errorf("API returned status %d", resp.StatusCode)
}
