package server

import (
	"github.com/samber/lo"

	"deals-bot/internal/domain/entity"
	"deals-bot/internal/domain/service/deals"
	"deals-bot/pkg/rest"
)

func newSearchParams(request rest.SearchQuery) deals.SearchParams {
	return deals.SearchParams{
		Query:    request.Query,
		Category: request.Category,
		MinPrice: request.MinPrice,
		MaxPrice: request.MaxPrice,
		SortBy:   entity.ParseSortDirective(request.SortBy),
	}
}

func newRESTSearchResponse(result deals.SearchResult) rest.SearchResponse {
	return rest.SearchResponse{
		Deals: lo.Map(result.Deals, func(deal entity.Deal, _ int) rest.Deal {
			return newRESTDeal(deal)
		}),
		Pitch: result.Pitch,
	}
}

func newRESTDeal(deal entity.Deal) rest.Deal {
	return rest.Deal{
		Platform:        deal.Platform,
		Title:           deal.Title,
		Price:           deal.Price,
		OriginalPrice:   deal.OriginalPrice,
		DiscountPercent: deal.DiscountPercent,
		Rating:          deal.Rating,
		ReviewsCount:    deal.ReviewsCount,
		QualityScore:    deal.QualityScore,
		ImageURLs:       deal.ImageURLs,
		ProductURL:      deal.ProductURL,
		Delivery:        deal.Delivery,
		CreatedAt:       deal.CreatedAt,
	}
}
