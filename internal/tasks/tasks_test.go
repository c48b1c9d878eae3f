package tasks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alfredofh/game-collector-front/internal/models"
	th "github.com/Alfredofh/game-collector-front/internal/testing"
)

// stubCatalog serves per-ID collection details for engine tests.
type stubCatalog struct {
	details map[int]*models.CollectionDetail
}

func (s *stubCatalog) List(ctx context.Context) ([]models.Collection, error) {
	return nil, nil
}

func (s *stubCatalog) Create(ctx context.Context, name string) (*models.Collection, error) {
	return nil, nil
}

func (s *stubCatalog) Get(ctx context.Context, id int) (*models.CollectionDetail, error) {
	detail, ok := s.details[id]
	if !ok {
		return nil, fmt.Errorf("collection %d not found", id)
	}
	return detail, nil
}

func (s *stubCatalog) Update(ctx context.Context, id int, name string) (*models.Collection, error) {
	return nil, nil
}

func (s *stubCatalog) Delete(ctx context.Context, id int) error {
	return nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{details: map[int]*models.CollectionDetail{
		1: {
			CollectionID: 1,
			Name:         "Retro Shelf",
			VideoGames: []models.VideoGame{
				{GameID: 10, Name: "Chrono Trigger", Platform: "SNES", ReleaseYear: 1995, Value: 120.50},
			},
		},
		2: {
			CollectionID: 2,
			Name:         "Modern",
			VideoGames: []models.VideoGame{
				{GameID: 11, Name: "Elden Ring", Platform: "PS5", ReleaseYear: 2022, Value: 39.99},
			},
		},
	}}
}

func TestBulkExport(t *testing.T) {
	t.Run("JSON Format", func(t *testing.T) {
		engine := NewExportEngine(testCatalog())
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := engine.BulkExport(context.Background(), nil, []int{1, 2}, BulkExportOpts{
			Format:    "json",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("BulkExport failed: %v", err)
		}

		if result.TotalCollections != 2 {
			t.Errorf("Expected 2 total, got %d", result.TotalCollections)
		}
		if result.SuccessfulExports != 2 {
			t.Errorf("Expected 2 successful, got %d", result.SuccessfulExports)
		}
		if result.FailedExports != 0 {
			t.Errorf("Expected 0 failed, got %d", result.FailedExports)
		}

		th.AssertFileExists(t, filepath.Join(outputDir, "1.json"))
		th.AssertFileExists(t, filepath.Join(outputDir, "2.json"))
		th.AssertFileExists(t, result.ManifestPath)

		manifest := th.MustReadFile(t, result.ManifestPath)
		if !strings.Contains(manifest, `"successful": 2`) {
			t.Errorf("Manifest missing success count, got: %s", manifest)
		}
	})

	t.Run("CSV Format", func(t *testing.T) {
		engine := NewExportEngine(testCatalog())
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := engine.BulkExport(context.Background(), nil, []int{1}, BulkExportOpts{
			Format:    "csv",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("BulkExport failed: %v", err)
		}

		if result.SuccessfulExports != 1 {
			t.Fatalf("Expected 1 successful, got %d", result.SuccessfulExports)
		}
		if len(result.Results[0].Files) != 2 {
			t.Errorf("Expected games and metadata files, got %v", result.Results[0].Files)
		}
		th.AssertFileExists(t, filepath.Join(outputDir, "1_games.csv"))
	})

	t.Run("Text Format", func(t *testing.T) {
		engine := NewExportEngine(testCatalog())
		outputDir := filepath.Join(t.TempDir(), "export")

		_, err := engine.BulkExport(context.Background(), nil, []int{2}, BulkExportOpts{
			Format:    "txt",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("BulkExport failed: %v", err)
		}

		content := th.MustReadFile(t, filepath.Join(outputDir, "2_games.txt"))
		if !strings.Contains(content, "Elden Ring") {
			t.Errorf("Text export missing game, got: %s", content)
		}
	})

	t.Run("Partial Failure", func(t *testing.T) {
		engine := NewExportEngine(testCatalog())
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := engine.BulkExport(context.Background(), nil, []int{1, 99}, BulkExportOpts{
			Format:    "json",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("BulkExport failed: %v", err)
		}

		if result.SuccessfulExports != 1 {
			t.Errorf("Expected 1 successful, got %d", result.SuccessfulExports)
		}
		if result.FailedExports != 1 {
			t.Errorf("Expected 1 failed, got %d", result.FailedExports)
		}

		manifest := th.MustReadFile(t, result.ManifestPath)
		if !strings.Contains(manifest, "Unknown (99)") {
			t.Errorf("Manifest missing failed entry, got: %s", manifest)
		}
	})

	t.Run("Backend Error", func(t *testing.T) {
		catalog := &th.MockCatalog{Err: errors.New("boom")}
		engine := NewExportEngine(catalog)
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := engine.BulkExport(context.Background(), nil, []int{1}, BulkExportOpts{
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("BulkExport failed: %v", err)
		}
		if result.FailedExports != 1 {
			t.Errorf("Expected 1 failed, got %d", result.FailedExports)
		}
	})

	t.Run("Nil Catalog", func(t *testing.T) {
		engine := NewExportEngine(nil)
		if _, err := engine.BulkExport(context.Background(), nil, []int{1}, BulkExportOpts{}); err == nil {
			t.Error("Expected error for nil catalog")
		}
	})

	t.Run("Progress Updates", func(t *testing.T) {
		engine := NewExportEngine(testCatalog())
		outputDir := filepath.Join(t.TempDir(), "export")
		prog := make(chan ProgressUpdate, 32)

		_, err := engine.BulkExport(context.Background(), prog, []int{1, 2}, BulkExportOpts{
			Format:    "json",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("BulkExport failed: %v", err)
		}
		close(prog)

		var phases []Phase
		for update := range prog {
			phases = append(phases, update.Phase)
		}
		if len(phases) == 0 {
			t.Fatal("Expected progress updates")
		}
		if phases[0] != FetchCollections {
			t.Errorf("Expected first update to be fetch_collections, got %s", phases[0])
		}
	})
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{
		FetchCollections: "fetch_collections",
		FetchDetail:      "fetch_detail",
		ExportCollection: "export_collection",
		Phase(99):        "",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
