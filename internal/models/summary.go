package models

// SummaryRequest carries the descriptive fields of a selected place
type SummaryRequest struct {
	Name     string   `json:"name" example:"Thrift Town"`
	Address  string   `json:"address,omitempty" example:"2101 Mission St, San Francisco, CA"`
	Category string   `json:"category,omitempty" example:"Thrift Store"`
	Rating   *float64 `json:"rating,omitempty" example:"4.3"`
	Website  string   `json:"website,omitempty" example:"https://thrifttown.com"`
	Phone    string   `json:"phone,omitempty" example:"(415) 861-1132"`
}

// SummaryResponse echoes the place name next to the generated text
type SummaryResponse struct {
	Name    string `json:"name" example:"Thrift Town"`
	Summary string `json:"summary"`
}
