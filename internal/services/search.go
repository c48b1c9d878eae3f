// External game-metadata search via the IGDB proxy.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"golang.org/x/time/rate"
)

// SearchService wraps GET /api/igdb/search. The proxy fronts a rate-limited
// third-party API, so every call waits on a local limiter first.
type SearchService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSearchService creates a search client. ratePerSecond bounds outgoing
// requests; non-positive values fall back to 4/s.
func NewSearchService(baseURL string, client *http.Client, ratePerSecond float64) *SearchService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 4.0
	}
	return &SearchService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

// ByName searches external game metadata by title.
func (s *SearchService) ByName(ctx context.Context, query string) ([]models.GameSearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	endpoint := fmt.Sprintf("%s/api/igdb/search?query=%s", s.baseURL, url.QueryEscape(query))

	var results []models.GameSearchResult
	if err := do(ctx, s.httpClient, http.MethodGet, endpoint, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ByBarcode resolves a scanned UPC/EAN code by sending it as the search
// query. Whether the backend matches codes against product data is up to
// the backend; the client makes no distinction beyond the query string.
func (s *SearchService) ByBarcode(ctx context.Context, code string) ([]models.GameSearchResult, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: barcode", shared.ErrMissingArgument)
	}
	return s.ByName(ctx, code)
}
