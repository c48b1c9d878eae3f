package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

// SearchCacheRepository persists search-proxy responses keyed by query.
type SearchCacheRepository struct {
	db *sql.DB
}

// NewSearchCacheRepository creates a new [SearchCacheRepository] with the given database connection
func NewSearchCacheRepository(db *sql.DB) *SearchCacheRepository {
	return &SearchCacheRepository{db: db}
}

// Create inserts a cache entry with a generated ID.
func (r *SearchCacheRepository) Create(record *models.SearchRecord) error {
	id := shared.GenerateID()
	record.SetID(id)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO search_cache (id, query, payload, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, id, record.Query(), record.Payload(), record.CreatedAt(), record.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}

	return nil
}

// Get retrieves a cache entry by ID.
func (r *SearchCacheRepository) Get(id string) (*models.SearchRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, query, payload, created_at, updated_at FROM search_cache WHERE id = ?
	`, id)
	return scanSearchRecord(row)
}

// GetByQuery retrieves a cache entry by its normalized query string.
// Returns nil without error when nothing is cached for the query.
func (r *SearchCacheRepository) GetByQuery(query string) (*models.SearchRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, query, payload, created_at, updated_at FROM search_cache WHERE query = ?
	`, strings.ToLower(strings.TrimSpace(query)))

	record, err := scanSearchRecord(row)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// Update refreshes the payload and timestamp of an existing cache entry.
func (r *SearchCacheRepository) Update(record *models.SearchRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	record.SetUpdatedAt(now)

	result, err := r.db.Exec(`
		UPDATE search_cache SET payload = ?, updated_at = ? WHERE id = ?
	`, record.Payload(), now, record.ID())
	if err != nil {
		return fmt.Errorf("failed to update cache entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("cache entry not found: %s", record.ID())
	}

	return nil
}

// Delete removes a cache entry by ID.
func (r *SearchCacheRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM search_cache WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// List retrieves cache entries, optionally filtered by an exact query match.
func (r *SearchCacheRepository) List(criteria map[string]any) ([]*models.SearchRecord, error) {
	sqlQuery := "SELECT id, query, payload, created_at, updated_at FROM search_cache"
	var args []any

	if q, ok := criteria["query"]; ok {
		sqlQuery += " WHERE query = ?"
		args = append(args, q)
	}
	sqlQuery += " ORDER BY updated_at DESC"

	rows, err := r.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	var records []*models.SearchRecord
	for rows.Next() {
		record, err := scanSearchRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Prune deletes entries whose payload is older than ttl.
func (r *SearchCacheRepository) Prune(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	result, err := r.db.Exec("DELETE FROM search_cache WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSearchRecord(row rowScanner) (*models.SearchRecord, error) {
	var (
		id        string
		query     string
		payload   []byte
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&id, &query, &payload, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cache entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan cache entry: %w", err)
	}

	record := models.NewSearchRecord(query, payload)
	record.SetID(id)
	record.SetCreatedAt(createdAt)
	record.SetUpdatedAt(updatedAt)
	return record, nil
}
