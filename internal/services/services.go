// package services wraps the catalog backend's HTTP API
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "http://localhost:3000"

// AuthClient returns an HTTP client that stamps the bearer token on every
// request. With an empty token the default client is returned unchanged.
func AuthClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return oauth2.NewClient(ctx, source)
}

// do performs a JSON request against the backend and decodes a 2xx response
// body into result (skipped when result is nil). Non-2xx statuses map onto
// the shared error taxonomy: 401 is surfaced distinctly from everything else.
func do(ctx context.Context, client *http.Client, method, url string, body io.Reader, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: status %d", shared.ErrNotAuthorized, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Catalog is the collection surface consumed by the terminal UI and the
// command layer. Implemented by [CollectionService].
type Catalog interface {
	List(ctx context.Context) ([]models.Collection, error)
	Create(ctx context.Context, name string) (*models.Collection, error)
	Get(ctx context.Context, id int) (*models.CollectionDetail, error)
	Update(ctx context.Context, id int, name string) (*models.Collection, error)
	Delete(ctx context.Context, id int) error
}

// Library is the per-game mutation surface. Implemented by [GameService].
type Library interface {
	Add(ctx context.Context, input models.GameInput) (*models.VideoGame, error)
	Update(ctx context.Context, id int, input models.GameInput) (*models.VideoGame, error)
	Remove(ctx context.Context, id int) error
}

// Searcher proxies the catalog's game database search. Implemented by
// [SearchService].
type Searcher interface {
	ByName(ctx context.Context, query string) ([]models.GameSearchResult, error)
	ByBarcode(ctx context.Context, code string) ([]models.GameSearchResult, error)
}

var (
	_ Catalog  = (*CollectionService)(nil)
	_ Library  = (*GameService)(nil)
	_ Searcher = (*SearchService)(nil)
)
