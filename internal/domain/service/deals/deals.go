package deals

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"deals-bot/internal/domain/entity"
	"deals-bot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Catalog is the deal source. The synthetic generator implements it today; a
// real search-API or affiliate integration can replace it without touching the
// ranking and pitch logic.
type Catalog interface {
	Search(ctx context.Context, query string) ([]entity.Deal, error)
}

type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{
		catalog: catalog,
	}
}

type SearchParams struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   entity.SortDirective
}

type SearchResult struct {
	Deals []entity.Deal
	Pitch string
}

// Search runs the full pipeline: fetch candidates, apply price filters, order
// by the requested directive, and compose the recommendation pitch over the
// final ordering.
func (s *Service) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	candidates, err := s.catalog.Search(ctx, params.Query)
	if err != nil {
		return SearchResult{}, fmt.Errorf("catalog.Search: %w", err)
	}

	matched := FilterByPrice(candidates, params.MinPrice, params.MaxPrice)

	Sort(matched, params.SortBy)

	logger(ctx).Debug(
		"search completed",
		slog.String("query", params.Query),
		slog.String("sort_by", string(params.SortBy)),
		slog.Int("candidates", len(candidates)),
		slog.Int("matched", len(matched)),
	)

	return SearchResult{
		Deals: matched,
		Pitch: ComposePitch(params.Query, matched),
	}, nil
}

// FilterByPrice keeps deals whose price lies within the inclusive bounds.
// Nil bounds impose no constraint; both bounds compose with AND.
func FilterByPrice(deals []entity.Deal, minPrice, maxPrice *float64) []entity.Deal {
	return lo.Filter(deals, func(deal entity.Deal, _ int) bool {
		if minPrice != nil && deal.Price < *minPrice {
			return false
		}

		if maxPrice != nil && deal.Price > *maxPrice {
			return false
		}

		return true
	})
}

// Sort orders deals in place according to the directive. Every branch is
// stable, so ties keep their prior relative order. Absent optional fields sort
// as zero.
func Sort(deals []entity.Deal, directive entity.SortDirective) {
	switch directive {
	case entity.SortPriceLow:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].Price < deals[j].Price
		})
	case entity.SortPriceHigh:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].Price > deals[j].Price
		})
	case entity.SortRating:
		sort.SliceStable(deals, func(i, j int) bool {
			return lo.FromPtr(deals[i].Rating) > lo.FromPtr(deals[j].Rating)
		})
	case entity.SortReviews:
		sort.SliceStable(deals, func(i, j int) bool {
			return lo.FromPtr(deals[i].ReviewsCount) > lo.FromPtr(deals[j].ReviewsCount)
		})
	default:
		sort.SliceStable(deals, func(i, j int) bool {
			return lo.FromPtr(deals[i].QualityScore) > lo.FromPtr(deals[j].QualityScore)
		})
	}
}
