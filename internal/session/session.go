// Package session owns the client's authentication state: the persisted
// bearer token, the identity claims derived from it, and the guard that
// gates protected operations.
//
// The manager is the only writer of session state. Consumers receive
// read-only snapshots and must not hold them across mutations.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"
)

// User is the identity embedded in the bearer token's claims.
type User struct {
	ID    int
	Email string
}

// claims is the decoded, trusted-for-the-session content of a token.
type claims struct {
	user    User
	expires *time.Time // nil when the token carries no expiry
}

// Manager is the single source of truth for "is there a usable credential".
//
// Invariants: IsAuthenticated is true iff a token is held and was unexpired
// at the last check; User is non-nil iff IsAuthenticated.
type Manager struct {
	mu     sync.RWMutex
	store  TokenStore
	logger *log.Logger
	clock  func() time.Time

	token string
	user  *User
}

// NewManager creates a session manager backed by the given store. A nil
// logger falls back to the default shared logger.
func NewManager(store TokenStore, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{
		store:  store,
		logger: logger,
		clock:  time.Now,
	}
}

// Initialize restores the session from the persisted token, once at startup.
// A missing, malformed or expired token leaves the session unauthenticated
// and clears any stale persisted value; it is never an application error.
// No network call is made; expiry is checked against local wall-clock time.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.store.Read()
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if token == "" {
		return nil
	}

	c, err := decodeToken(token, m.clock())
	if err != nil {
		m.logger.Warn("discarding unusable persisted token", "error", err)
		if clearErr := m.store.Clear(); clearErr != nil {
			return fmt.Errorf("failed to clear stale token: %w", clearErr)
		}
		return nil
	}

	m.token = token
	m.user = &c.user
	return nil
}

// Login accepts a freshly issued token, persists it and populates the
// identity claims. A token that cannot be decoded returns a wrapped
// [shared.ErrMalformedCredential] and leaves the session unauthenticated.
func (m *Manager) Login(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := decodeToken(token, m.clock())
	if err != nil {
		m.token = ""
		m.user = nil
		return err
	}

	if err := m.store.Write(token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	m.token = token
	m.user = &c.user
	return nil
}

// Logout clears the persisted token and the in-memory identity. Idempotent.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.user = nil
	return m.store.Clear()
}

// IsAuthenticated reports whether a usable credential is held.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.user != nil
}

// User returns a snapshot of the current identity, or nil when logged out.
func (m *Manager) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the current bearer token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// expired reports whether the held token's embedded expiry has passed.
// Returns false when logged out or when the token carries no expiry.
func (m *Manager) expired() bool {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" {
		return false
	}
	_, err := decodeToken(token, m.clock())
	return err != nil
}

// decodeToken extracts identity claims from a bearer token. The client never
// holds the signing key, so the signature is deliberately not verified; the
// claims are trusted for the session's lifetime or until expiry.
func decodeToken(token string, now time.Time) (*claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedCredential, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims shape", shared.ErrMalformedCredential)
	}

	c := &claims{}

	if exp, err := mapClaims.GetExpirationTime(); err != nil {
		return nil, fmt.Errorf("%w: bad expiry claim: %v", shared.ErrMalformedCredential, err)
	} else if exp != nil {
		if !exp.Time.After(now) {
			return nil, fmt.Errorf("%w: expired at %s", shared.ErrTokenExpired, exp.Time.Format(time.RFC3339))
		}
		t := exp.Time
		c.expires = &t
	}

	switch id := mapClaims["id"].(type) {
	case float64:
		c.user.ID = int(id)
	case nil:
		return nil, fmt.Errorf("%w: missing id claim", shared.ErrMalformedCredential)
	default:
		return nil, fmt.Errorf("%w: unexpected id claim type %T", shared.ErrMalformedCredential, id)
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("%w: missing email claim", shared.ErrMalformedCredential)
	}
	c.user.Email = email

	return c, nil
}
