package config

import "fmt"

// Scoring holds the composite quality score constants. The defaults express
// "price matters most, then rating, then review volume" and must stay at these
// exact values to keep scores output-compatible across deployments.
type Scoring struct {
	PriceWeight    float64 `env:"SCORE_PRICE_WEIGHT" envDefault:"0.5"`
	RatingWeight   float64 `env:"SCORE_RATING_WEIGHT" envDefault:"0.35"`
	ReviewsWeight  float64 `env:"SCORE_REVIEWS_WEIGHT" envDefault:"0.15"`
	PriceRangeLow  float64 `env:"SCORE_PRICE_RANGE_LOW" envDefault:"100"`
	PriceRangeHigh float64 `env:"SCORE_PRICE_RANGE_HIGH" envDefault:"50000"`
}

func DefaultScoring() Scoring {
	return Scoring{
		PriceWeight:    0.5,
		RatingWeight:   0.35,
		ReviewsWeight:  0.15,
		PriceRangeLow:  100.0,
		PriceRangeHigh: 50000.0,
	}
}

func (s Scoring) Validate() error {
	if s.PriceWeight < 0 || s.RatingWeight < 0 || s.ReviewsWeight < 0 {
		return fmt.Errorf("weights cannot be negative")
	}

	if s.PriceRangeHigh <= s.PriceRangeLow {
		return fmt.Errorf("price range high %v must exceed low %v", s.PriceRangeHigh, s.PriceRangeLow)
	}

	return nil
}
