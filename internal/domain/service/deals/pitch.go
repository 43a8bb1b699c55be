package deals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"deals-bot/internal/domain/entity"
)

const maxPitchAlternatives = 2

// ComposePitch renders the one-paragraph recommendation for a ranked deal
// list: the first deal is pitched as the best offer, the next two as
// alternatives. An empty list yields an apology that echoes the query.
func ComposePitch(query string, deals []entity.Deal) string {
	if len(deals) == 0 {
		return fmt.Sprintf(
			"I couldn't find great matches for ‘%s’ right now. "+
				"Try refining the product name or category, and I'll hunt for fresh deals.",
			query,
		)
	}

	best := deals[0]

	alternatives := deals[1:min(len(deals), 1+maxPitchAlternatives)]

	options := strings.Join(lo.Map(alternatives, func(deal entity.Deal, _ int) string {
		return fmt.Sprintf("%s at ₹%d", lo.Capitalize(deal.Platform), int(deal.Price))
	}), ", ")

	return fmt.Sprintf(
		"If you're looking for %s, my best pick is on %s at ₹%d "+
			"with %s%% off and a solid %s★ from %d+ reviews. "+
			"I can also get you options from %s. Want me to open the best offer for you?",
		query,
		lo.Capitalize(best.Platform),
		int(best.Price),
		formatNumber(lo.FromPtr(best.DiscountPercent)),
		formatNumber(lo.FromPtr(best.Rating)),
		lo.FromPtr(best.ReviewsCount),
		options,
	)
}

// formatNumber prints a float with at least one decimal (20.0 -> "20.0",
// 4.5 -> "4.5"), so integral discounts and ratings keep their ".0".
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
