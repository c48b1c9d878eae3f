// Video game endpoints of the catalog backend.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

// GameService wraps the /api/videogames endpoints. All of them require a
// bearer credential.
type GameService struct {
	baseURL    string
	httpClient *http.Client
}

// NewGameService creates a game client. The http client must already carry
// the bearer credential (see [AuthClient]).
func NewGameService(baseURL string, client *http.Client) *GameService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GameService{baseURL: baseURL, httpClient: client}
}

// Add creates a game record inside a collection and returns the
// server-assigned record.
func (s *GameService) Add(ctx context.Context, input models.GameInput) (*models.VideoGame, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}

	var created models.VideoGame
	if err := do(ctx, s.httpClient, http.MethodPost, s.baseURL+"/api/videogames/add", bytes.NewReader(payload), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies a game record and returns the merged server record.
func (s *GameService) Update(ctx context.Context, id int, input models.GameInput) (*models.VideoGame, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}

	var updated models.VideoGame
	url := fmt.Sprintf("%s/api/videogames/update/%d", s.baseURL, id)
	if err := do(ctx, s.httpClient, http.MethodPut, url, bytes.NewReader(payload), &updated); err != nil {
		return nil, err
	}
	if updated.GameID == 0 {
		updated.GameID = id
	}
	return &updated, nil
}

// Remove deletes a game record by ID.
func (s *GameService) Remove(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/api/videogames/remove/%d", s.baseURL, id)
	return do(ctx, s.httpClient, http.MethodDelete, url, nil, nil)
}
