package models

// CatalogQuery is the fixed predicate set for catalog searches. Absent
// fields add no constraint; the filter is the conjunction of what is set.
type CatalogQuery struct {
	Region       string   `json:"region,omitempty"`
	Style        string   `json:"style,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	FeaturedOnly bool     `json:"featured_only,omitempty"`
}
