package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed key under which the bearer token is persisted.
const tokenFileName = "token"

// TokenStore persists the bearer token across runs. Presence or absence of
// the stored value is the entire persistence format.
type TokenStore interface {
	// Read returns the persisted token, or "" when none is stored.
	Read() (string, error)
	// Write persists the token, replacing any previous value.
	Write(token string) error
	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear() error
}

// FileTokenStore stores the token in a single file inside the application
// directory, readable only by the owning user.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store rooted at dir.
func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{path: filepath.Join(dir, tokenFileName)}
}

func (s *FileTokenStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps the token in memory only. Used in tests and for
// one-shot commands where persistence is undesirable.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Read() (string, error) { return s.token, nil }

func (s *MemoryTokenStore) Write(token string) error {
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.token = ""
	return nil
}
