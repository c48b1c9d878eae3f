// Collection endpoints of the catalog backend.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Alfredofh/game-collector-front/internal/models"
)

// CollectionService wraps the /collection endpoints. All of them require a
// bearer credential.
type CollectionService struct {
	baseURL    string
	httpClient *http.Client
}

// NewCollectionService creates a collection client. The http client must
// already carry the bearer credential (see [AuthClient]).
func NewCollectionService(baseURL string, client *http.Client) *CollectionService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &CollectionService{baseURL: baseURL, httpClient: client}
}

// List retrieves all collections owned by the authenticated user.
func (s *CollectionService) List(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := do(ctx, s.httpClient, http.MethodGet, s.baseURL+"/collection", nil, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// Create creates a new named collection and returns the server-assigned record.
func (s *CollectionService) Create(ctx context.Context, name string) (*models.Collection, error) {
	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}

	var created models.Collection
	if err := do(ctx, s.httpClient, http.MethodPost, s.baseURL+"/collection", bytes.NewReader(payload), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Get retrieves a collection with its contained games.
func (s *CollectionService) Get(ctx context.Context, id int) (*models.CollectionDetail, error) {
	var detail models.CollectionDetail
	url := fmt.Sprintf("%s/collection/%d", s.baseURL, id)
	if err := do(ctx, s.httpClient, http.MethodGet, url, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update renames a collection and returns the merged server record.
func (s *CollectionService) Update(ctx context.Context, id int, name string) (*models.Collection, error) {
	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}

	var updated models.Collection
	url := fmt.Sprintf("%s/collection/%d", s.baseURL, id)
	if err := do(ctx, s.httpClient, http.MethodPut, url, bytes.NewReader(payload), &updated); err != nil {
		return nil, err
	}
	if updated.CollectionID == 0 {
		// Some backend versions confirm without echoing the record.
		updated.CollectionID = id
		updated.Name = name
	}
	return &updated, nil
}

// Delete removes a collection by ID.
func (s *CollectionService) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/collection/%d", s.baseURL, id)
	return do(ctx, s.httpClient, http.MethodDelete, url, nil, nil)
}
