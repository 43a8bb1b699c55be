package entity

// SortDirective selects the ordering applied to a deal list.
type SortDirective string

const (
	SortBest      SortDirective = "best"
	SortPriceLow  SortDirective = "price_low"
	SortPriceHigh SortDirective = "price_high"
	SortRating    SortDirective = "rating"
	SortReviews   SortDirective = "reviews"
)

// ParseSortDirective maps a raw directive string to a known directive.
// Unknown or empty values fall back to SortBest, so ordering never fails.
func ParseSortDirective(raw string) SortDirective {
	switch directive := SortDirective(raw); directive {
	case SortBest, SortPriceLow, SortPriceHigh, SortRating, SortReviews:
		return directive
	default:
		return SortBest
	}
}
