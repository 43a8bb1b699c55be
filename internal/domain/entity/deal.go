package entity

import "time"

// Deal is a single scored product offer from one retail platform. Deals are
// value objects: built once per request, never mutated afterwards, never
// persisted.
type Deal struct {
	Platform        string
	Title           string
	Price           float64
	OriginalPrice   *float64
	DiscountPercent *float64
	Rating          *float64
	ReviewsCount    *int
	QualityScore    *float64
	ImageURLs       []string
	ProductURL      string
	Delivery        string
	CreatedAt       time.Time
}
