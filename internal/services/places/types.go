package places

// FieldMask lists the attributes requested from searchText
const FieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
	"places.types,places.googleMapsUri,places.websiteUri,places.nationalPhoneNumber," +
	"places.rating,places.userRatingCount"

// TextSearchRequest describes one keyword search biased to a circle
type TextSearchRequest struct {
	TextQuery      string
	Latitude       float64
	Longitude      float64
	RadiusMeters   float64
	MaxResultCount int
	LanguageCode   string
}

// searchTextBody is the JSON body of places:searchText
type searchTextBody struct {
	TextQuery      string       `json:"textQuery"`
	MaxResultCount int          `json:"maxResultCount,omitempty"`
	LanguageCode   string       `json:"languageCode,omitempty"`
	LocationBias   locationBias `json:"locationBias"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchTextResponse is the decoded searchText payload
type SearchTextResponse struct {
	Places []Place `json:"places"`
}

// Place is a raw provider record. Pointers distinguish absent attributes.
type Place struct {
	ID                  string         `json:"id"`
	DisplayName         *LocalizedText `json:"displayName,omitempty"`
	FormattedAddress    string         `json:"formattedAddress,omitempty"`
	Location            *Location      `json:"location,omitempty"`
	Types               []string       `json:"types,omitempty"`
	GoogleMapsURI       string         `json:"googleMapsUri,omitempty"`
	WebsiteURI          string         `json:"websiteUri,omitempty"`
	NationalPhoneNumber string         `json:"nationalPhoneNumber,omitempty"`
	Rating              *float64       `json:"rating,omitempty"`
	UserRatingCount     *int           `json:"userRatingCount,omitempty"`
}

// LocalizedText is a provider display string
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// Location holds provider coordinates; either side may be missing
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// apiErrorResponse is the error envelope of the Places API (New)
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
