package config

import "fmt"

// Platform is one synthetic marketplace entry: a price offset from the catalog
// base price plus fixed rating and review figures.
type Platform struct {
	Name         string
	PriceDelta   float64
	Rating       float64
	ReviewsCount int
}

// Catalog drives the synthetic deal generator. The scalar knobs are
// env-overridable; the platform list and image set are code-level defaults
// that tests replace wholesale.
type Catalog struct {
	BasePrice  float64 `env:"CATALOG_BASE_PRICE" envDefault:"999"`
	PriceFloor float64 `env:"CATALOG_PRICE_FLOOR" envDefault:"99"`
	Markup     float64 `env:"CATALOG_MARKUP" envDefault:"1.25"`
	Delivery   string  `env:"CATALOG_DELIVERY" envDefault:"Fast delivery in 2-4 days"`
	Platforms  []Platform
	ImageURLs  []string
}

func DefaultCatalog() Catalog {
	return Catalog{
		BasePrice:  999.0,
		PriceFloor: 99.0,
		Markup:     1.25,
		Delivery:   "Fast delivery in 2-4 days",
		Platforms: []Platform{
			{Name: "amazon", PriceDelta: 0.0, Rating: 4.5, ReviewsCount: 1250},
			{Name: "flipkart", PriceDelta: -50.0, Rating: 4.3, ReviewsCount: 980},
			{Name: "myntra", PriceDelta: 120.0, Rating: 4.6, ReviewsCount: 540},
			{Name: "ajio", PriceDelta: -100.0, Rating: 4.2, ReviewsCount: 330},
		},
		ImageURLs: []string{
			"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9",
			"https://images.unsplash.com/photo-1512499617640-c2f999098c01",
			"https://images.unsplash.com/photo-1517336714731-489689fd1ca8",
			"https://images.unsplash.com/photo-1526178610626-3f118bb11566",
		},
	}
}

func (c Catalog) Validate() error {
	if c.BasePrice <= 0 {
		return fmt.Errorf("base price must be positive, got %v", c.BasePrice)
	}

	if c.PriceFloor <= 0 {
		return fmt.Errorf("price floor must be positive, got %v", c.PriceFloor)
	}

	if c.Markup <= 1 {
		return fmt.Errorf("markup must be greater than 1, got %v", c.Markup)
	}

	if len(c.Platforms) == 0 {
		return fmt.Errorf("at least one platform is required")
	}

	for _, p := range c.Platforms {
		if p.Name == "" {
			return fmt.Errorf("platform name cannot be empty")
		}

		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("platform %s: rating must be within [0,5], got %v", p.Name, p.Rating)
		}

		if p.ReviewsCount < 0 {
			return fmt.Errorf("platform %s: reviews count cannot be negative", p.Name)
		}
	}

	return nil
}
