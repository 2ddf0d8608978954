package models

// PlaceResult is the stable output shape of a single place.
// Optional fields are nil when the provider did not supply them.
type PlaceResult struct {
	ID          string   `json:"id" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	Name        string   `json:"name" example:"Thrift Town"`
	Address     string   `json:"address" example:"2101 Mission St, San Francisco, CA 94110, USA"`
	Lat         float64  `json:"lat" example:"37.7635"`
	Lng         float64  `json:"lng" example:"-122.4194"`
	Types       []string `json:"types"`
	Rating      *float64 `json:"rating"`
	RatingCount *int     `json:"ratingCount"`
	MapsURL     *string  `json:"mapsUrl"`
	Website     *string  `json:"website"`
	Phone       *string  `json:"phone"`
	Category    string   `json:"category" example:"Thrift Store"`
}

// RatingOrZero is the rating used for ordering; unrated places sort as 0
func (p PlaceResult) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
