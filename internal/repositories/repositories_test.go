package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestSearchCacheRepository(t *testing.T) {
	t.Run("Create And GetByQuery", func(t *testing.T) {
		repo := NewSearchCacheRepository(newTestDB(t))

		record := models.NewSearchRecord("Chrono Trigger", []byte(`[{"name":"Chrono Trigger"}]`))
		if err := repo.Create(record); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if record.ID() == "" {
			t.Error("expected generated id")
		}

		// Lookup is case-insensitive via query normalization.
		got, err := repo.GetByQuery("chrono trigger")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected a cache hit")
		}
		if string(got.Payload()) != `[{"name":"Chrono Trigger"}]` {
			t.Errorf("unexpected payload: %s", got.Payload())
		}
	})

	t.Run("GetByQuery Miss Returns Nil", func(t *testing.T) {
		repo := NewSearchCacheRepository(newTestDB(t))

		got, err := repo.GetByQuery("nothing here")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if got != nil {
			t.Error("expected nil on a cache miss")
		}
	})

	t.Run("Update Refreshes Payload", func(t *testing.T) {
		repo := NewSearchCacheRepository(newTestDB(t))

		record := models.NewSearchRecord("zelda", []byte("old"))
		if err := repo.Create(record); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		record.SetPayload([]byte("new"))
		if err := repo.Update(record); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, err := repo.Get(record.ID())
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(got.Payload()) != "new" {
			t.Errorf("expected refreshed payload, got %s", got.Payload())
		}
	})

	t.Run("Prune Removes Stale Entries", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewSearchCacheRepository(db)

		record := models.NewSearchRecord("stale", []byte("x"))
		if err := repo.Create(record); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := db.Exec("UPDATE search_cache SET updated_at = ? WHERE id = ?",
			time.Now().Add(-48*time.Hour), record.ID()); err != nil {
			t.Fatalf("failed to backdate entry: %v", err)
		}

		pruned, err := repo.Prune(24 * time.Hour)
		if err != nil {
			t.Fatalf("prune failed: %v", err)
		}
		if pruned != 1 {
			t.Errorf("expected 1 pruned entry, got %d", pruned)
		}
	})

	t.Run("Validation Failure", func(t *testing.T) {
		repo := NewSearchCacheRepository(newTestDB(t))

		if err := repo.Create(models.NewSearchRecord("", nil)); err == nil {
			t.Error("expected validation error for empty record")
		}
	})
}

func TestScanRepository(t *testing.T) {
	t.Run("Create Assigns Sequence", func(t *testing.T) {
		repo := NewScanRepository(newTestDB(t))

		first := models.NewScanRecord(0, "045496830434", "ean", "Mario Kart 8")
		second := models.NewScanRecord(0, "712725024420", "upc", "")

		if err := repo.Create(first); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Create(second); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		scans, err := repo.List(nil)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(scans) != 2 {
			t.Fatalf("expected 2 scans, got %d", len(scans))
		}
		// Newest first.
		if scans[0].Sequence() != 2 || scans[1].Sequence() != 1 {
			t.Errorf("unexpected sequences: %d, %d", scans[0].Sequence(), scans[1].Sequence())
		}
	})

	t.Run("List By Code", func(t *testing.T) {
		repo := NewScanRepository(newTestDB(t))

		if err := repo.Create(models.NewScanRecord(0, "111111111111", "upc", "A")); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Create(models.NewScanRecord(0, "222222222222", "upc", "B")); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		scans, err := repo.List(map[string]any{"code": "222222222222"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(scans) != 1 || scans[0].GameName() != "B" {
			t.Errorf("unexpected scans: %+v", scans)
		}
	})

	t.Run("Update Resolves Game Name", func(t *testing.T) {
		repo := NewScanRepository(newTestDB(t))

		scan := models.NewScanRecord(0, "045496830434", "ean", "")
		if err := repo.Create(scan); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		scan.SetGameName("Mario Kart 8 Deluxe")
		if err := repo.Update(scan); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, err := repo.Get(scan.ID())
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.GameName() != "Mario Kart 8 Deluxe" {
			t.Errorf("unexpected game name: %s", got.GameName())
		}
	})

	t.Run("Invalid Symbology Rejected", func(t *testing.T) {
		repo := NewScanRepository(newTestDB(t))

		if err := repo.Create(models.NewScanRecord(0, "123", "qr", "")); err == nil {
			t.Error("expected validation error for unsupported symbology")
		}
	})
}
