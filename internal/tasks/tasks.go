package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/formatter"
	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/services"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"golang.org/x/time/rate"
)

// ExportJob carries one fetched collection through the worker pool.
type ExportJob struct {
	CollectionID int
	Detail       *models.CollectionDetail
}

// CollectionExportResult describes the outcome of exporting one collection.
type CollectionExportResult struct {
	CollectionID   int
	CollectionName string
	Success        bool
	Files          []string
	Error          error
}

// BulkExportResult summarizes a bulk export run.
type BulkExportResult struct {
	TotalCollections  int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []CollectionExportResult
}

// BulkExportOpts contains configuration for bulk collection exports.
type BulkExportOpts struct {
	Format        string                                            // Export format: json, csv, markdown, txt
	OutputDir     string                                            // Base output directory (default: catalog_export_{epoch})
	NumWorkers    int                                               // Concurrent workers (default: 5)
	RateLimit     float64                                           // Requests per second (default: 5)
	GetCoverImage func(ctx context.Context, id int) (string, error) // Fetcher function
}

// ExportEngine runs long-running catalog operations against the backend.
type ExportEngine struct {
	catalog services.Catalog
}

// NewExportEngine creates an engine backed by the given catalog client.
func NewExportEngine(catalog services.Catalog) *ExportEngine {
	return &ExportEngine{catalog: catalog}
}

// sendProgress delivers an update without blocking when nobody is listening.
func (e *ExportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// BulkExport exports multiple collections concurrently with rate limiting and progress tracking.
//
// This method implements a worker pool pattern to efficiently export multiple collections.
// It respects API rate limits, handles partial failures gracefully, and generates a manifest file summarizing the export results.
func (e *ExportEngine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	ids []int,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog client not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("catalog_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalCollections: len(ids),
		OutputDirectory:  opts.OutputDir,
		Results:          make([]CollectionExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan ExportJob, len(ids))
	results := make(chan CollectionExportResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		e.sendProgress(prog, fetchingCollectionsUpdate(1, len(ids)))
		for i, collectionID := range ids {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				close(jobs)
				return
			}

			detail, err := e.catalog.Get(ctx, collectionID)
			if err != nil {
				results <- CollectionExportResult{
					CollectionID:   collectionID,
					CollectionName: fmt.Sprintf("Unknown (%d)", collectionID),
					Success:        false,
					Error:          fmt.Errorf("failed to fetch collection: %w", err),
				}
				continue
			}

			jobs <- ExportJob{
				CollectionID: collectionID,
				Detail:       detail,
			}

			e.sendProgress(prog, fetchDetailUpdate(i+1, len(ids), detail))
			e.sendProgress(prog, exportingCollectionUpdate(i+1, len(ids), detail.Name))
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(
				completed,
				len(ids),
				res.CollectionName,
				len(res.Files),
			))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(
				completed,
				len(ids),
				res.CollectionName,
				res.Error,
			))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := writeManifest(result, opts.Format, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that exports collections from the jobs channel.
func (e *ExportEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan ExportJob,
	results chan<- CollectionExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res := e.exportSingleCollection(ctx, job, opts)
		results <- res
	}
}

// exportSingleCollection exports a single collection to the appropriate format.
func (e *ExportEngine) exportSingleCollection(
	ctx context.Context,
	j ExportJob,
	opts BulkExportOpts,
) CollectionExportResult {
	result := CollectionExportResult{
		CollectionID:   j.CollectionID,
		CollectionName: j.Detail.Name,
		Success:        false,
		Files:          []string{},
	}

	base := strconv.Itoa(j.Detail.CollectionID)

	switch opts.Format {
	case "csv":
		baseFilepath := filepath.Join(opts.OutputDir, base)
		csvRes, err := formatter.WriteCSVExport(j.Detail, baseFilepath)
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		result.Files = []string{csvRes.GamesFile, csvRes.MetadataFile}
		result.Success = true

	case "markdown":
		outputDir := filepath.Join(opts.OutputDir, base)

		var imageURL string
		if opts.GetCoverImage != nil {
			if url, err := opts.GetCoverImage(ctx, j.CollectionID); err == nil {
				imageURL = url
			}
		}

		mdRes, err := formatter.WriteMarkdownExport(j.Detail, outputDir, imageURL)
		if err != nil {
			result.Error = fmt.Errorf("markdown export failed: %w", err)
			return result
		}
		result.Files = mdRes.Files
		result.Success = true

	case "txt":
		txtPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_games.txt", base))
		path, err := formatter.WriteTextExport(j.Detail, txtPath)
		if err != nil {
			result.Error = fmt.Errorf("text export failed: %w", err)
			return result
		}
		result.Files = []string{path}
		result.Success = true
	case "json":
		fallthrough
	default:
		jsonPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.json", base))
		data, err := shared.MarshalJSON(j.Detail, true)
		if err != nil {
			result.Error = fmt.Errorf("JSON marshal failed: %w", err)
			return result
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			result.Error = fmt.Errorf("JSON write failed: %w", err)
			return result
		}
		result.Files = []string{jsonPath}
		result.Success = true
	}
	return result
}

type manifestEntry struct {
	CollectionID int      `json:"collection_id"`
	Name         string   `json:"name"`
	Success      bool     `json:"success"`
	Files        []string `json:"files,omitempty"`
	Error        string   `json:"error,omitempty"`
}

type exportManifest struct {
	ExportedAt  time.Time       `json:"exported_at"`
	Format      string          `json:"format"`
	Total       int             `json:"total"`
	Successful  int             `json:"successful"`
	Failed      int             `json:"failed"`
	Collections []manifestEntry `json:"collections"`
}

// writeManifest records the outcome of a bulk export next to its artifacts.
func writeManifest(result *BulkExportResult, format, path string) error {
	if format == "" {
		format = "json"
	}

	manifest := exportManifest{
		ExportedAt: time.Now(),
		Format:     format,
		Total:      result.TotalCollections,
		Successful: result.SuccessfulExports,
		Failed:     result.FailedExports,
	}

	for _, res := range result.Results {
		entry := manifestEntry{
			CollectionID: res.CollectionID,
			Name:         res.CollectionName,
			Success:      res.Success,
			Files:        res.Files,
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		manifest.Collections = append(manifest.Collections, entry)
	}

	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
