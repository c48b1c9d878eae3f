package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

// ScanRepository persists the barcode scan history.
type ScanRepository struct {
	db *sql.DB
}

// NewScanRepository creates a new [ScanRepository] with the given database connection
func NewScanRepository(db *sql.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create inserts a scan entry with generated ID and sequence.
func (r *ScanRepository) Create(scan *models.ScanRecord) error {
	sequence, err := NextSequence(r.db, "scans")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	scan.SetID(id)
	scan.SetSequence(sequence)

	if err := scan.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO scans (id, sequence, code, symbology, game_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, scan.Code(), scan.Symbology(), scan.GameName(), scan.CreatedAt(), scan.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}

	return nil
}

// Get retrieves a scan entry by ID.
func (r *ScanRepository) Get(id string) (*models.ScanRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, sequence, code, symbology, game_name, created_at, updated_at FROM scans WHERE id = ?
	`, id)
	return scanScanRecord(row)
}

// Update stores a resolved game name against an existing scan.
func (r *ScanRepository) Update(scan *models.ScanRecord) error {
	if err := scan.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	scan.SetUpdatedAt(now)

	result, err := r.db.Exec(`
		UPDATE scans SET game_name = ?, updated_at = ? WHERE id = ?
	`, scan.GameName(), now, scan.ID())
	if err != nil {
		return fmt.Errorf("failed to update scan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("scan not found: %s", scan.ID())
	}

	return nil
}

// Delete removes a scan entry by ID.
func (r *ScanRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM scans WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	return nil
}

// List retrieves scan entries, newest first, optionally filtered by code.
func (r *ScanRepository) List(criteria map[string]any) ([]*models.ScanRecord, error) {
	query := "SELECT id, sequence, code, symbology, game_name, created_at, updated_at FROM scans"
	var args []any

	if code, ok := criteria["code"]; ok {
		query += " WHERE code = ?"
		args = append(args, code)
	}
	query += " ORDER BY sequence DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var scans []*models.ScanRecord
	for rows.Next() {
		scan, err := scanScanRecord(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}

	return scans, rows.Err()
}

func scanScanRecord(row rowScanner) (*models.ScanRecord, error) {
	var (
		id        string
		sequence  int
		code      string
		symbology string
		gameName  sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&id, &sequence, &code, &symbology, &gameName, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	scan := models.NewScanRecord(sequence, code, symbology, gameName.String)
	scan.SetID(id)
	scan.SetCreatedAt(createdAt)
	scan.SetUpdatedAt(updatedAt)
	return scan, nil
}
