package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"deals-bot/internal/config"
	"deals-bot/internal/domain/entity"
	"deals-bot/internal/domain/service/scoring"
)

// Synthetic is the stand-in deal source. It derives one deal per configured
// platform from fixed arithmetic on the catalog base price, so the output
// shape and ordering are fully deterministic for any query — including an
// empty one. A real marketplace integration replaces this whole package.
type Synthetic struct {
	cfg    config.Catalog
	scorer scoring.Scorer
	now    func() time.Time
}

func NewSynthetic(cfg config.Catalog, scorer scoring.Scorer) *Synthetic {
	return &Synthetic{
		cfg:    cfg,
		scorer: scorer,
		now:    time.Now,
	}
}

// WithClock substitutes the timestamp source, for tests.
func (s *Synthetic) WithClock(now func() time.Time) *Synthetic {
	s.now = now

	return s
}

// Search produces exactly one deal per configured platform, ranked by
// descending quality score. Ties keep the configured platform order.
func (s *Synthetic) Search(_ context.Context, query string) ([]entity.Deal, error) {
	createdAt := s.now().UTC()
	title := cases.Title(language.English)

	deals := lo.Map(s.cfg.Platforms, func(platform config.Platform, i int) entity.Deal {
		price := math.Max(s.cfg.PriceFloor, s.cfg.BasePrice+platform.PriceDelta)
		original := price * s.cfg.Markup
		discount := round2((1 - price/original) * 100)

		rating := platform.Rating
		reviewsCount := platform.ReviewsCount

		return entity.Deal{
			Platform:        platform.Name,
			Title:           fmt.Sprintf("%s – Top Pick #%d", title.String(query), i+1),
			Price:           round2(price),
			OriginalPrice:   lo.ToPtr(round2(original)),
			DiscountPercent: lo.ToPtr(discount),
			Rating:          lo.ToPtr(rating),
			ReviewsCount:    lo.ToPtr(reviewsCount),
			QualityScore:    lo.ToPtr(s.scorer.Score(&price, &rating, &reviewsCount)),
			ImageURLs:       s.cfg.ImageURLs,
			ProductURL:      productURL(platform.Name, query),
			Delivery:        s.cfg.Delivery,
			CreatedAt:       createdAt,
		}
	})

	sort.SliceStable(deals, func(i, j int) bool {
		return lo.FromPtr(deals[i].QualityScore) > lo.FromPtr(deals[j].QualityScore)
	})

	return deals, nil
}

func productURL(platform, query string) string {
	return fmt.Sprintf("https://%s.com/s?k=%s", platform, strings.ReplaceAll(query, " ", "+"))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
