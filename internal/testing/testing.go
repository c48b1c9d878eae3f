// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/Alfredofh/game-collector-front/internal/models"
)

// MockCatalog is a test double for [services.Catalog]. Each method returns
// the configured value, or a zero value when none is set.
type MockCatalog struct {
	Collections []models.Collection
	Detail      *models.CollectionDetail
	Err         error

	CreatedNames []string
	RenamedIDs   []int
	DeletedIDs   []int
}

func (m *MockCatalog) List(ctx context.Context) ([]models.Collection, error) {
	return m.Collections, m.Err
}

func (m *MockCatalog) Create(ctx context.Context, name string) (*models.Collection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.CreatedNames = append(m.CreatedNames, name)
	return &models.Collection{CollectionID: len(m.Collections) + 1, Name: name}, nil
}

func (m *MockCatalog) Get(ctx context.Context, id int) (*models.CollectionDetail, error) {
	return m.Detail, m.Err
}

func (m *MockCatalog) Update(ctx context.Context, id int, name string) (*models.Collection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.RenamedIDs = append(m.RenamedIDs, id)
	return &models.Collection{CollectionID: id, Name: name}, nil
}

func (m *MockCatalog) Delete(ctx context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

// MockLibrary is a test double for [services.Library].
type MockLibrary struct {
	Game *models.VideoGame
	Err  error

	RemovedIDs []int
}

func (m *MockLibrary) Add(ctx context.Context, input models.GameInput) (*models.VideoGame, error) {
	return m.Game, m.Err
}

func (m *MockLibrary) Update(ctx context.Context, id int, input models.GameInput) (*models.VideoGame, error) {
	return m.Game, m.Err
}

func (m *MockLibrary) Remove(ctx context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	m.RemovedIDs = append(m.RemovedIDs, id)
	return nil
}

// MockSearcher is a test double for [services.Searcher].
type MockSearcher struct {
	Results []models.GameSearchResult
	Err     error
	Queries []string
}

func (m *MockSearcher) ByName(ctx context.Context, query string) ([]models.GameSearchResult, error) {
	m.Queries = append(m.Queries, query)
	return m.Results, m.Err
}

func (m *MockSearcher) ByBarcode(ctx context.Context, code string) ([]models.GameSearchResult, error) {
	return m.ByName(ctx, code)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
