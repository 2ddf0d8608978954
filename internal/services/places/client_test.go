package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places:searchText", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, FieldMask, r.Header.Get("X-Goog-FieldMask"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body searchTextBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "thrift store near 94103", body.TextQuery)
		assert.Equal(t, 20, body.MaxResultCount)
		assert.Equal(t, "en", body.LanguageCode)
		assert.InDelta(t, 37.77, body.LocationBias.Circle.Center.Latitude, 1e-9)
		assert.InDelta(t, -122.41, body.LocationBias.Circle.Center.Longitude, 1e-9)
		assert.Equal(t, 7000.0, body.LocationBias.Circle.Radius)

		_, _ = w.Write([]byte(`{
			"places": [
				{
					"id": "abc",
					"displayName": {"text": "Thrift Town", "languageCode": "en"},
					"formattedAddress": "2101 Mission St",
					"location": {"latitude": 37.76, "longitude": -122.42},
					"types": ["store", "clothing_store"],
					"rating": 4.3,
					"userRatingCount": 1520
				},
				{"id": "def"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil)

	resp, err := client.SearchText(context.Background(), TextSearchRequest{
		TextQuery:      "thrift store near 94103",
		Latitude:       37.77,
		Longitude:      -122.41,
		RadiusMeters:   7000,
		MaxResultCount: 20,
		LanguageCode:   "en",
	})
	require.NoError(t, err)
	require.Len(t, resp.Places, 2)

	first := resp.Places[0]
	assert.Equal(t, "abc", first.ID)
	require.NotNil(t, first.DisplayName)
	assert.Equal(t, "Thrift Town", first.DisplayName.Text)
	require.NotNil(t, first.Location)
	require.NotNil(t, first.Location.Latitude)
	assert.Equal(t, 37.76, *first.Location.Latitude)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.3, *first.Rating)
	require.NotNil(t, first.UserRatingCount)
	assert.Equal(t, 1520, *first.UserRatingCount)

	second := resp.Places[1]
	assert.Nil(t, second.DisplayName)
	assert.Nil(t, second.Location)
	assert.Nil(t, second.Rating)
}

func TestClient_SearchTextEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil)
	resp, err := client.SearchText(context.Background(), TextSearchRequest{TextQuery: "clothing swap near nowhere"})
	require.NoError(t, err)
	assert.Empty(t, resp.Places)
}

func TestClient_SearchTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "Places API (New) has not been used in project", "status": "PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil)
	_, err := client.SearchText(context.Background(), TextSearchRequest{TextQuery: "thrift store near 94103"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUpstreamFailed)
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
	assert.Contains(t, err.Error(), "403")
}

func TestClient_SearchTextWithoutKey(t *testing.T) {
	client := NewClient(Config{}, nil)
	assert.False(t, client.Configured())

	_, err := client.SearchText(context.Background(), TextSearchRequest{TextQuery: "thrift store"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
