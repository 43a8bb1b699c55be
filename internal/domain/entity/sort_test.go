package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deals-bot/internal/domain/entity"
)

func TestParseSortDirective(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		raw  string
		want entity.SortDirective
	}{
		{raw: "best", want: entity.SortBest},
		{raw: "price_low", want: entity.SortPriceLow},
		{raw: "price_high", want: entity.SortPriceHigh},
		{raw: "rating", want: entity.SortRating},
		{raw: "reviews", want: entity.SortReviews},
		{raw: "", want: entity.SortBest},
		{raw: "banana", want: entity.SortBest},
		{raw: "PRICE_LOW", want: entity.SortBest},
	}

	for _, tc := range testCases {
		t.Run("raw="+tc.raw, func(*testing.T) {
			rq.Equal(tc.want, entity.ParseSortDirective(tc.raw))
		})
	}
}
