package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/repositories"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// openCacheDB opens the local cache database, running migrations on first use.
func (r *Runner) openCacheDB() (*sql.DB, error) {
	path, err := cacheDatabasePath(r.config)
	if err != nil {
		return nil, err
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}
	return db, nil
}

func (r *Runner) cacheTTL() time.Duration {
	hours := r.config.Search.CacheTTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// cachedSearch looks the query up locally before going to the search proxy,
// refreshing the cache entry on a miss or when the payload has gone stale.
func (r *Runner) cachedSearch(ctx context.Context, repo *repositories.SearchCacheRepository, query string) ([]models.GameSearchResult, error) {
	if cached, err := repo.GetByQuery(query); err == nil && cached != nil && cached.Age(time.Now()) < r.cacheTTL() {
		var results []models.GameSearchResult
		if err := json.Unmarshal(cached.Payload(), &results); err == nil {
			r.logger.Debug("search cache hit", "query", query)
			return results, nil
		}
		r.logger.Warn("discarding unreadable cache entry", "query", query)
	}

	results, err := r.search.ByName(ctx, query)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(results)
	if err != nil {
		return results, nil
	}

	if existing, err := repo.GetByQuery(query); err == nil && existing != nil {
		existing.SetPayload(payload)
		if err := repo.Update(existing); err != nil {
			r.logger.Warn("failed to refresh search cache", "error", err)
		}
	} else if err := repo.Create(models.NewSearchRecord(query, payload)); err != nil {
		r.logger.Warn("failed to cache search results", "error", err)
	}

	return results, nil
}

// Search queries the IGDB proxy for games by name.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	if err := r.requireSession("/search"); err != nil {
		return err
	}

	db, err := r.openCacheDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSearchCacheRepository(db)
	if pruned, err := repo.Prune(r.cacheTTL()); err == nil && pruned > 0 {
		r.logger.Debug("pruned stale cache entries", "count", pruned)
	}

	r.logger.Info("searching", "query", query)

	results, err := r.cachedSearch(ctx, repo, query)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(results, pretty)
	}

	if len(results) == 0 {
		r.writePlain("No results for %q\n", query)
		return nil
	}

	r.writePlain("Found %d results:\n\n", len(results))
	for i, result := range results {
		r.writePlain("%d. %s", i+1, result.Name)
		if year := result.ReleaseYear(); year != 0 {
			r.writePlain(" (%d)", year)
		}
		r.writePlain("\n")
		if len(result.Platforms) > 0 {
			r.writePlain("   Platforms:")
			for _, platform := range result.Platforms {
				r.writePlain(" %s", platform.Name)
			}
			r.writePlain("\n")
		}
		if result.Summary != "" {
			r.writePlain("   %s\n", result.Summary)
		}
		r.writePlain("\n")
	}
	return nil
}

// Scan records a barcode scan and resolves it against the search proxy.
func (r *Runner) Scan(ctx context.Context, cmd *cli.Command) error {
	code := cmd.StringArg("code")
	symbology := cmd.String("symbology")

	if code == "" {
		return fmt.Errorf("%w: a barcode is required", shared.ErrMissingArgument)
	}

	if err := r.requireSession("/scanner"); err != nil {
		return err
	}

	db, err := r.openCacheDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewScanRepository(db)
	scan := models.NewScanRecord(0, code, symbology, "")
	if err := repo.Create(scan); err != nil {
		return err
	}

	r.logger.Info("scanned", "code", code, "symbology", symbology)

	results, err := r.search.ByBarcode(ctx, code)
	if err != nil {
		r.writePlain("Scan #%d recorded: %s (lookup failed)\n", scan.Sequence(), code)
		return err
	}

	if len(results) == 0 {
		r.writePlain("Scan recorded: %s, no match found\n", code)
		return nil
	}

	scan.SetGameName(results[0].Name)
	if err := repo.Update(scan); err != nil {
		r.logger.Warn("failed to store resolved title", "error", err)
	}

	r.writePlain("✓ %s\n", results[0].Name)
	if year := results[0].ReleaseYear(); year != 0 {
		r.writePlain("  Released: %d\n", year)
	}
	return nil
}

// ScanHistory lists recorded scans, newest first.
func (r *Runner) ScanHistory(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	code := cmd.String("code")

	db, err := r.openCacheDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewScanRepository(db)

	criteria := map[string]any{}
	if code != "" {
		criteria["code"] = code
	}

	scans, err := repo.List(criteria)
	if err != nil {
		return err
	}

	if useJSON {
		type entry struct {
			Sequence  int       `json:"sequence"`
			Code      string    `json:"code"`
			Symbology string    `json:"symbology"`
			GameName  string    `json:"game_name,omitempty"`
			ScannedAt time.Time `json:"scanned_at"`
		}
		entries := make([]entry, len(scans))
		for i, scan := range scans {
			entries[i] = entry{
				Sequence:  scan.Sequence(),
				Code:      scan.Code(),
				Symbology: scan.Symbology(),
				GameName:  scan.GameName(),
				ScannedAt: scan.CreatedAt(),
			}
		}
		return r.writeJSON(entries, true)
	}

	if len(scans) == 0 {
		r.writePlain("No scans recorded\n")
		return nil
	}

	r.writePlain("%d scans:\n\n", len(scans))
	for _, scan := range scans {
		name := scan.GameName()
		if name == "" {
			name = "(unresolved)"
		}
		r.writePlain("#%d %s [%s] %s\n", scan.Sequence(), scan.Code(), scan.Symbology(), name)
	}
	return nil
}
