// Locally persisted entities backed by SQLite.
package models

import (
	"fmt"
	"strings"
	"time"
)

var (
	_ Model = (*SearchRecord)(nil)
	_ Model = (*ScanRecord)(nil)
)

// SearchRecord caches one search-proxy response for a query string.
type SearchRecord struct {
	id        string
	query     string
	payload   []byte
	createdAt time.Time
	updatedAt time.Time
}

// NewSearchRecord creates a cache entry for the raw JSON payload returned for query.
func NewSearchRecord(query string, payload []byte) *SearchRecord {
	now := time.Now()
	return &SearchRecord{
		query:     strings.ToLower(strings.TrimSpace(query)),
		payload:   payload,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *SearchRecord) ID() string           { return r.id }
func (r *SearchRecord) Query() string        { return r.query }
func (r *SearchRecord) Payload() []byte      { return r.payload }
func (r *SearchRecord) CreatedAt() time.Time { return r.createdAt }
func (r *SearchRecord) UpdatedAt() time.Time { return r.updatedAt }

func (r *SearchRecord) SetID(id string)           { r.id = id }
func (r *SearchRecord) SetCreatedAt(t time.Time)  { r.createdAt = t }
func (r *SearchRecord) SetUpdatedAt(t time.Time)  { r.updatedAt = t }
func (r *SearchRecord) SetPayload(payload []byte) { r.payload = payload }

// Validate checks if the cache entry is well formed.
func (r *SearchRecord) Validate() error {
	if r.query == "" {
		return fmt.Errorf("search record requires a query")
	}
	if len(r.payload) == 0 {
		return fmt.Errorf("search record requires a payload")
	}
	return nil
}

// Age returns how old the cached payload is at t.
func (r *SearchRecord) Age(t time.Time) time.Duration {
	return t.Sub(r.updatedAt)
}

// ScanRecord is one barcode scan history entry.
type ScanRecord struct {
	id        string
	sequence  int
	code      string
	symbology string
	gameName  string
	createdAt time.Time
	updatedAt time.Time
}

// NewScanRecord creates a scan history entry for a scanned barcode.
// symbology is the barcode format (upc, ean) and gameName the resolved title,
// empty when the lookup found nothing.
func NewScanRecord(sequence int, code, symbology, gameName string) *ScanRecord {
	now := time.Now()
	return &ScanRecord{
		sequence:  sequence,
		code:      strings.TrimSpace(code),
		symbology: strings.ToLower(symbology),
		gameName:  gameName,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *ScanRecord) ID() string           { return s.id }
func (s *ScanRecord) Sequence() int        { return s.sequence }
func (s *ScanRecord) Code() string         { return s.code }
func (s *ScanRecord) Symbology() string    { return s.symbology }
func (s *ScanRecord) GameName() string     { return s.gameName }
func (s *ScanRecord) CreatedAt() time.Time { return s.createdAt }
func (s *ScanRecord) UpdatedAt() time.Time { return s.updatedAt }

func (s *ScanRecord) SetID(id string)          { s.id = id }
func (s *ScanRecord) SetSequence(n int)        { s.sequence = n }
func (s *ScanRecord) SetGameName(name string)  { s.gameName = name }
func (s *ScanRecord) SetCreatedAt(t time.Time) { s.createdAt = t }
func (s *ScanRecord) SetUpdatedAt(t time.Time) { s.updatedAt = t }

// Validate checks if the scan entry is well formed.
func (s *ScanRecord) Validate() error {
	if s.code == "" {
		return fmt.Errorf("scan record requires a barcode")
	}
	switch s.symbology {
	case "upc", "ean":
		return nil
	default:
		return fmt.Errorf("unsupported symbology: %s", s.symbology)
	}
}
