package deals_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"deals-bot/internal/domain/entity"
	"deals-bot/internal/domain/service/deals"
)

func TestComposePitch(t *testing.T) {
	rq := require.New(t)

	ranked := []entity.Deal{
		newTestDeal("amazon", 999, 4.5, 1250, 0.956),
		newTestDeal("myntra", 1119, 4.6, 540, 0.9484),
		newTestDeal("flipkart", 949, 4.3, 980, 0.9421),
		newTestDeal("ajio", 899, 4.2, 330, 0.9119),
	}

	for i := range ranked {
		ranked[i].DiscountPercent = lo.ToPtr(20.0)
	}

	pitch := deals.ComposePitch("laptop", ranked)

	rq.Equal(
		"If you're looking for laptop, my best pick is on Amazon at ₹999 "+
			"with 20.0% off and a solid 4.5★ from 1250+ reviews. "+
			"I can also get you options from Myntra at ₹1119, Flipkart at ₹949. "+
			"Want me to open the best offer for you?",
		pitch,
	)
}

func TestComposePitchFractionalNumbers(t *testing.T) {
	rq := require.New(t)

	ranked := []entity.Deal{
		newTestDeal("amazon", 999.99, 4.5, 1250, 0.956),
	}
	ranked[0].DiscountPercent = lo.ToPtr(12.5)

	pitch := deals.ComposePitch("phone case", ranked)

	// Price is truncated to whole rupees, discount and rating keep their
	// fractional part.
	rq.Contains(pitch, "at ₹999 ")
	rq.Contains(pitch, "with 12.5% off")
	rq.Contains(pitch, "4.5★")
}

func TestComposePitchIntegralNumbers(t *testing.T) {
	rq := require.New(t)

	ranked := []entity.Deal{
		newTestDeal("amazon", 999, 4.0, 1250, 0.956),
	}
	ranked[0].DiscountPercent = lo.ToPtr(25.0)

	pitch := deals.ComposePitch("phone case", ranked)

	// Whole-number discounts and ratings keep a trailing ".0".
	rq.Contains(pitch, "with 25.0% off")
	rq.Contains(pitch, "a solid 4.0★")
}

func TestComposePitchSingleDeal(t *testing.T) {
	rq := require.New(t)

	ranked := []entity.Deal{
		newTestDeal("flipkart", 949, 4.3, 980, 0.9421),
	}
	ranked[0].DiscountPercent = lo.ToPtr(20.0)

	pitch := deals.ComposePitch("laptop", ranked)

	rq.Contains(pitch, "my best pick is on Flipkart at ₹949")
	// With no alternatives the options clause degrades to an empty list.
	rq.Contains(pitch, "options from .")
}

func TestComposePitchAbsentFields(t *testing.T) {
	rq := require.New(t)

	pitch := deals.ComposePitch("laptop", []entity.Deal{{Platform: "amazon", Price: 999}})

	rq.Contains(pitch, "with 0.0% off")
	rq.Contains(pitch, "0.0★ from 0+ reviews")
}

func TestComposePitchNoDeals(t *testing.T) {
	rq := require.New(t)

	pitch := deals.ComposePitch("vintage typewriter", nil)

	rq.Equal(
		"I couldn't find great matches for ‘vintage typewriter’ right now. "+
			"Try refining the product name or category, and I'll hunt for fresh deals.",
		pitch,
	)
}
