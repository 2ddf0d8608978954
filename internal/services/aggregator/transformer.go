package aggregator

import (
	"math"
	"sort"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/killallgit/secondlife-api/internal/services/places"
)

const unknownName = "Unknown"

// shapePlace maps a provider record to a PlaceResult. The second return is
// false when the record lacks a usable latitude or longitude.
func shapePlace(p places.Place, label string) (models.PlaceResult, bool) {
	result := models.PlaceResult{
		ID:          p.ID,
		Name:        unknownName,
		Address:     p.FormattedAddress,
		Types:       p.Types,
		Rating:      p.Rating,
		RatingCount: p.UserRatingCount,
		MapsURL:     optionalString(p.GoogleMapsURI),
		Website:     optionalString(p.WebsiteURI),
		Phone:       optionalString(p.NationalPhoneNumber),
		Category:    label,
	}
	if result.Types == nil {
		result.Types = []string{}
	}
	if p.DisplayName != nil && p.DisplayName.Text != "" {
		result.Name = p.DisplayName.Text
	}

	if p.Location == nil || !isCoordinate(p.Location.Latitude) || !isCoordinate(p.Location.Longitude) {
		return result, false
	}
	result.Lat = *p.Location.Latitude
	result.Lng = *p.Location.Longitude
	return result, true
}

func isCoordinate(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ApplyView filters by category label and orders the list. Relevance keeps
// merge order; rating sorts descending with unrated places last among ties.
func ApplyView(in []models.PlaceResult, category, order string) []models.PlaceResult {
	out := make([]models.PlaceResult, 0, len(in))
	for _, p := range in {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	if order == models.SortRating {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RatingOrZero() > out[j].RatingOrZero()
		})
	}
	return out
}
