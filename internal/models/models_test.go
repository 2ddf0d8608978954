package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		radius     int
		wantErr    bool
		wantText   string
		wantRadius int
	}{
		{name: "zero radius clamps to minimum", text: "94103", radius: 0, wantText: "94103", wantRadius: 1000},
		{name: "trims text", text: "  Austin, TX \n", radius: 7000, wantText: "Austin, TX", wantRadius: 7000},
		{name: "clamps small radius", text: "94103", radius: 500, wantText: "94103", wantRadius: 1000},
		{name: "clamps negative radius", text: "94103", radius: -20, wantText: "94103", wantRadius: 1000},
		{name: "clamps large radius", text: "94103", radius: 100000, wantText: "94103", wantRadius: 50000},
		{name: "keeps in-range radius", text: "94103", radius: 12345, wantText: "94103", wantRadius: 12345},
		{name: "empty text", text: "", wantErr: true},
		{name: "blank text", text: "   \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewSearchQuery(tt.text, tt.radius)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, q.Text)
			assert.Equal(t, tt.wantRadius, q.RadiusMeters)
			assert.Equal(t, SortRelevance, q.Sort)
		})
	}
}

func TestParseRadius(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "absent", raw: "", want: DefaultRadiusMeters},
		{name: "blank", raw: "  ", want: DefaultRadiusMeters},
		{name: "in range", raw: "12345", want: 12345},
		{name: "fraction truncates", raw: "2500.9", want: 2500},
		{name: "zero", raw: "0", want: MinRadiusMeters},
		{name: "below one", raw: "0.5", want: MinRadiusMeters},
		{name: "negative", raw: "-20", want: MinRadiusMeters},
		{name: "large", raw: "100000", want: MaxRadiusMeters},
		{name: "exponent beyond int", raw: "1e20", want: MaxRadiusMeters},
		{name: "digits beyond int", raw: "99999999999999999999", want: MaxRadiusMeters},
		{name: "overflows float", raw: "1e400", want: MaxRadiusMeters},
		{name: "negative overflow", raw: "-1e400", want: MinRadiusMeters},
		{name: "infinity", raw: "Inf", want: MaxRadiusMeters},
		{name: "negative infinity", raw: "-Inf", want: MinRadiusMeters},
		{name: "not a number", raw: "NaN", wantErr: true},
		{name: "word", raw: "far", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRadius(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampRadiusEquivalence(t *testing.T) {
	assert.Equal(t, ClampRadius(1000), ClampRadius(500))
	assert.Equal(t, ClampRadius(50000), ClampRadius(100000))
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, "thrift store", cats[0].QueryText)
	assert.Equal(t, LabelThriftStore, cats[0].Label)
	assert.Equal(t, LabelExchangeEvent, cats[3].Label)

	// Callers get a copy
	cats[0].Label = "changed"
	assert.Equal(t, LabelThriftStore, Categories()[0].Label)

	assert.True(t, IsKnownLabel(LabelDonationCenter))
	assert.False(t, IsKnownLabel("Restaurant"))
}

func TestPlaceResultRatingOrZero(t *testing.T) {
	rating := 4.5
	assert.Equal(t, 4.5, PlaceResult{Rating: &rating}.RatingOrZero())
	assert.Equal(t, 0.0, PlaceResult{}.RatingOrZero())
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "validation", err: NewValidationError("name", "Missing store name"), target: ErrInvalidInput},
		{name: "configuration", err: NewConfigurationError("google_maps.api_key", "missing key"), target: ErrNotConfigured},
		{name: "not found", err: NewNotFoundError("ZERO_RESULTS", ""), target: ErrNotFound},
		{name: "upstream", err: NewUpstreamError("places", cause), target: ErrUpstreamFailed},
		{name: "wrapped upstream", err: fmt.Errorf("search: %w", NewUpstreamError("places", cause)), target: ErrUpstreamFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}

	assert.ErrorIs(t, NewUpstreamError("geocoding", cause), cause)

	var nf NotFoundError
	require.ErrorAs(t, fmt.Errorf("geocode: %w", NewNotFoundError("REQUEST_DENIED", "The provided API key is invalid.")), &nf)
	assert.Equal(t, "REQUEST_DENIED", nf.Status)
	assert.Equal(t, "The provided API key is invalid.", nf.Message)
}
