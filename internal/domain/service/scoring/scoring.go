package scoring

import "math"

const scorePrecision = 4

// Weights define the relative importance of each deal signal in the composite
// quality score.
type Weights struct {
	Price   float64
	Rating  float64
	Reviews float64
}

// PriceRange is the assumed catalog price span used to normalize prices.
// Prices outside the span saturate the price score instead of extrapolating.
type PriceRange struct {
	Low  float64
	High float64
}

type Scorer struct {
	weights    Weights
	priceRange PriceRange
}

func New(weights Weights, priceRange PriceRange) Scorer {
	return Scorer{
		weights:    weights,
		priceRange: priceRange,
	}
}

// Score blends price, rating and review volume into a composite quality score
// in [0,1], rounded to 4 decimal places. Lower price is better; review volume
// saturates logarithmically at 1000 reviews. Absent signals contribute 0.
//
// Rating is trusted to lie within [0,5] and is deliberately not clamped, so an
// out-of-range rating can push the score above 1.
func (s Scorer) Score(price, rating *float64, reviewsCount *int) float64 {
	var priceScore float64
	if price != nil {
		priceScore = 1 - normalize(*price, s.priceRange.Low, s.priceRange.High)
	}

	var ratingScore float64
	if rating != nil {
		ratingScore = *rating / 5
	}

	var reviewsScore float64
	if reviewsCount != nil {
		reviewsScore = math.Min(1, math.Log10(math.Max(1, float64(*reviewsCount)))/3)
	}

	composite := s.weights.Price*priceScore +
		s.weights.Rating*ratingScore +
		s.weights.Reviews*reviewsScore

	return round(composite, scorePrecision)
}

func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}

	return math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))

	return math.Round(v*factor) / factor
}
