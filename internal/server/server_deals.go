package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"deals-bot/internal/domain/service/deals"
	"deals-bot/pkg/httpx/reply"
	"deals-bot/pkg/httpx/req"
	"deals-bot/pkg/rest"
)

type searchService interface {
	Search(ctx context.Context, params deals.SearchParams) (deals.SearchResult, error)
}

type DealsServer struct {
	searchService searchService
	serviceName   string
	metrics       *Metrics
}

func NewDealsServer(
	searchService searchService,
	serviceName string,
	metrics *Metrics,
) DealsServer {
	return DealsServer{
		searchService: searchService,
		serviceName:   serviceName,
		metrics:       metrics,
	}
}

func (s DealsServer) getRoot(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		Status:  "ok",
		Service: s.serviceName,
	})

	return nil
}

func (s DealsServer) getTest(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.TestResult{OK: true})

	return nil
}

func (s DealsServer) postSearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	start := time.Now()

	var request rest.SearchQuery

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	params := newSearchParams(request)

	result, err := s.searchService.Search(ctx, params)
	if err != nil {
		return fmt.Errorf("searchService.Search: %w", err)
	}

	s.metrics.ObserveSearch(string(params.SortBy), time.Since(start))

	reply.JSON(ctx, w, http.StatusOK, newRESTSearchResponse(result))

	return nil
}
