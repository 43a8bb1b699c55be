package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deals-bot/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("deals-bot", cfg.App.Name)
	rq.Equal(":8080", cfg.Server.ListenAddress)

	rq.InEpsilon(999.0, cfg.Catalog.BasePrice, 1e-9)
	rq.InEpsilon(99.0, cfg.Catalog.PriceFloor, 1e-9)
	rq.InEpsilon(1.25, cfg.Catalog.Markup, 1e-9)
	rq.Len(cfg.Catalog.Platforms, 4)
	rq.Len(cfg.Catalog.ImageURLs, 4)
	rq.Equal("amazon", cfg.Catalog.Platforms[0].Name)

	rq.InEpsilon(0.5, cfg.Scoring.PriceWeight, 1e-9)
	rq.InEpsilon(0.35, cfg.Scoring.RatingWeight, 1e-9)
	rq.InEpsilon(0.15, cfg.Scoring.ReviewsWeight, 1e-9)
}

func TestLoadEnvOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("CATALOG_BASE_PRICE", "1500")
	t.Setenv("HTTP_LISTEN_ADDRESS", ":9090")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.InEpsilon(1500.0, cfg.Catalog.BasePrice, 1e-9)
	rq.Equal(":9090", cfg.Server.ListenAddress)
}

func TestCatalogValidate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		mutate  func(c *config.Catalog)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Catalog) {},
		},
		{
			name:    "zero base price",
			mutate:  func(c *config.Catalog) { c.BasePrice = 0 },
			wantErr: "base price",
		},
		{
			name:    "markup not above 1",
			mutate:  func(c *config.Catalog) { c.Markup = 1 },
			wantErr: "markup",
		},
		{
			name:    "no platforms",
			mutate:  func(c *config.Catalog) { c.Platforms = nil },
			wantErr: "at least one platform",
		},
		{
			name:    "rating out of range",
			mutate:  func(c *config.Catalog) { c.Platforms[0].Rating = 5.5 },
			wantErr: "rating",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			catalog := config.DefaultCatalog()
			tc.mutate(&catalog)

			err := catalog.Validate()

			if tc.wantErr == "" {
				rq.NoError(err)
			} else {
				rq.ErrorContains(err, tc.wantErr)
			}
		})
	}
}

func TestScoringValidate(t *testing.T) {
	rq := require.New(t)

	scoring := config.DefaultScoring()
	rq.NoError(scoring.Validate())

	scoring.PriceRangeHigh = scoring.PriceRangeLow
	rq.ErrorContains(scoring.Validate(), "price range")
}
