// Account endpoints: registration, login, password reset. None of these
// carry a bearer credential.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

// AccountService wraps the unauthenticated user endpoints.
type AccountService struct {
	baseURL    string
	httpClient *http.Client
}

// NewAccountService creates an account client.
func NewAccountService(baseURL string, client *http.Client) *AccountService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &AccountService{baseURL: baseURL, httpClient: client}
}

// Register creates a user account. Validation failures are rejected
// client-side and never reach the network.
func (s *AccountService) Register(ctx context.Context, input models.RegisterInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to marshal registration: %w", err)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := do(ctx, s.httpClient, http.MethodPost, s.baseURL+"/users", bytes.NewReader(payload), &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login exchanges credentials for a bearer token. Any authentication
// failure is reported as [shared.ErrAuthFailed] with the deliberately
// unspecific "invalid email or password" surface.
func (s *AccountService) Login(ctx context.Context, input models.LoginInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to marshal login: %w", err)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := do(ctx, s.httpClient, http.MethodPost, s.baseURL+"/login", bytes.NewReader(payload), &resp); err != nil {
		if errors.Is(err, shared.ErrNotAuthorized) || errors.Is(err, shared.ErrAPIRequest) {
			return "", fmt.Errorf("%w: %s", shared.ErrAuthFailed, shared.MsgLoginFailed)
		}
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", shared.ErrAuthFailed)
	}
	return resp.Token, nil
}

// RequestPasswordReset asks the backend to start a password reset flow.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	payload, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return "", fmt.Errorf("failed to marshal reset request: %w", err)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := do(ctx, s.httpClient, http.MethodPost, s.baseURL+"/password-reset", bytes.NewReader(payload), &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
