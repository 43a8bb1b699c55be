// This file should be generated from an openapi specification and be called types.gen.go
package rest

import "time"

// Health is the service identity returned from the root endpoint.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type TestResult struct {
	OK bool `json:"ok"`
}

// Deal is a single scored product offer from one retail platform.
type Deal struct {
	Platform        string    `json:"platform"`
	Title           string    `json:"title"`
	Price           float64   `json:"price"`
	OriginalPrice   *float64  `json:"original_price,omitempty"`
	DiscountPercent *float64  `json:"discount_percent,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
	ReviewsCount    *int      `json:"reviews_count,omitempty"`
	QualityScore    *float64  `json:"quality_score,omitempty"`
	ImageURLs       []string  `json:"image_urls"`
	ProductURL      string    `json:"product_url,omitempty"`
	Delivery        string    `json:"delivery,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SearchQuery is the caller input for the search endpoint.
// SortBy is one of: best | price_low | price_high | rating | reviews.
type SearchQuery struct {
	Query    string   `json:"query" validate:"required"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	SortBy   string   `json:"sort_by,omitempty"`
}

type SearchResponse struct {
	Deals []Deal `json:"deals"`
	Pitch string `json:"pitch"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Error message (for displaying in UI)
	Message string `json:"message"`
}

// ErrorCode Error code
type ErrorCode string
