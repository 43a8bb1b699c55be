package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"deals-bot/internal/config"
	"deals-bot/internal/domain/service/deals"
	"deals-bot/internal/domain/service/scoring"
	"deals-bot/internal/infrastructure/catalog"
	"deals-bot/internal/server"
	"deals-bot/pkg/application/modules"
	"deals-bot/pkg/contextx"
	"deals-bot/pkg/logx"
	"deals-bot/pkg/middlewarex"
)

const readHeaderTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	scorer := scoring.New(
		scoring.Weights{
			Price:   cfg.Scoring.PriceWeight,
			Rating:  cfg.Scoring.RatingWeight,
			Reviews: cfg.Scoring.ReviewsWeight,
		},
		scoring.PriceRange{
			Low:  cfg.Scoring.PriceRangeLow,
			High: cfg.Scoring.PriceRangeHigh,
		},
	)

	dealsService := deals.NewService(catalog.NewSynthetic(cfg.Catalog, scorer))

	srv := server.NewServer(server.NewDealsServer(
		dealsService,
		cfg.App.Name,
		server.NewMetrics(prometheus.DefaultRegisterer),
	))

	sensitiveDataMasker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.CORS,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(sensitiveDataMasker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker, cfg.Server.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricsListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
