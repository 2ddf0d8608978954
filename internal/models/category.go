package models

// Category labels attached to results
const (
	LabelThriftStore    = "Thrift Store"
	LabelDonationCenter = "Donation Center"
	LabelExchangeEvent  = "Exchange Event"
)

// CategorySpec pairs a keyword query with the label its results receive
type CategorySpec struct {
	QueryText string
	Label     string
}

// categories drives the aggregated search. Order matters: when a place
// comes back under several queries, the earliest entry assigns its label.
var categories = []CategorySpec{
	{QueryText: "thrift store", Label: LabelThriftStore},
	{QueryText: "donation center", Label: LabelDonationCenter},
	{QueryText: "clothing donation", Label: LabelDonationCenter},
	{QueryText: "clothing swap", Label: LabelExchangeEvent},
}

// Categories returns a copy of the category table
func Categories() []CategorySpec {
	out := make([]CategorySpec, len(categories))
	copy(out, categories)
	return out
}

// IsKnownLabel reports whether label is attached by any category entry
func IsKnownLabel(label string) bool {
	for _, c := range categories {
		if c.Label == label {
			return true
		}
	}
	return false
}
