package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/Alfredofh/game-collector-front/internal/tasks"
	"github.com/urfave/cli/v3"
)

// CollectionList lists the authenticated user's collections.
func (r *Runner) CollectionList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	r.logger.Info("listing collections")

	collections, err := r.catalog.List(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(collections, pretty)
	}

	if len(collections) == 0 {
		r.writePlain("No collections yet. Create one with 'gcf collection create <name>'\n")
		return nil
	}

	r.writePlain("Found %d collections:\n\n", len(collections))
	for i, collection := range collections {
		r.writePlain("%d. %s\n", i+1, collection.Name)
		r.writePlain("   ID: %d\n", collection.CollectionID)
		r.writePlain("   Created: %s\n\n", collection.Created.Format("2006-01-02"))
	}
	return nil
}

// CollectionShow displays one collection and its games.
func (r *Runner) CollectionShow(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	r.logger.Info("fetching collection", "id", id)

	detail, err := r.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}

	r.writePlainHeader(detail.Name)
	r.writePlain("Games: %d\n\n", len(detail.VideoGames))
	for i, game := range detail.VideoGames {
		r.writePlain("%d. %s\n", i+1, game.Name)
		r.writePlain("   Platform: %s\n", game.Platform)
		if game.ReleaseYear != 0 {
			r.writePlain("   Released: %d\n", game.ReleaseYear)
		}
		if game.Value != 0 {
			r.writePlain("   Value: %s\n", shared.FormatValue(game.Value))
		}
		r.writePlain("\n")
	}
	return nil
}

// CollectionCreate creates a named collection.
func (r *Runner) CollectionCreate(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.StringArg("name"))
	if name == "" {
		return fmt.Errorf("%w: a collection name is required", shared.ErrMissingArgument)
	}

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	r.logger.Info("creating collection", "name", name)

	created, err := r.catalog.Create(ctx, name)
	if err != nil {
		return err
	}

	r.writePlain("✓ Collection created: %s (ID: %d)\n", created.Name, created.CollectionID)
	return nil
}

// CollectionRename renames a collection.
func (r *Runner) CollectionRename(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))
	name := strings.TrimSpace(cmd.StringArg("name"))
	if name == "" {
		return fmt.Errorf("%w: a new name is required", shared.ErrMissingArgument)
	}

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	r.logger.Info("renaming collection", "id", id, "name", name)

	updated, err := r.catalog.Update(ctx, id, name)
	if err != nil {
		return err
	}

	r.writePlain("✓ Collection renamed: %s\n", updated.Name)
	return nil
}

// CollectionDelete removes a collection after confirmation.
func (r *Runner) CollectionDelete(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	if !cmd.Bool("yes") {
		r.writePlain("Deleting collection %d removes all of its games.\n", id)
		r.writePlain("Re-run with --yes to confirm.\n")
		return nil
	}

	r.logger.Info("deleting collection", "id", id)

	if err := r.catalog.Delete(ctx, id); err != nil {
		return err
	}

	r.writePlain("✓ Collection %d deleted\n", id)
	return nil
}

// CollectionExport exports one or more collections to files on disk.
func (r *Runner) CollectionExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	ids := make([]int, 0)
	for _, raw := range cmd.IntSlice("id") {
		ids = append(ids, int(raw))
	}

	if len(ids) == 0 {
		r.logger.Info("no IDs given, exporting every collection")
		collections, err := r.catalog.List(ctx)
		if err != nil {
			return err
		}
		for _, collection := range collections {
			ids = append(ids, collection.CollectionID)
		}
	}

	if len(ids) == 0 {
		r.writePlain("Nothing to export\n")
		return nil
	}

	opts := tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  r.config.Search.RatePerSecond,
	}

	prog := make(chan tasks.ProgressUpdate, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range prog {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := r.engine.BulkExport(ctx, prog, ids, opts)
	close(prog)
	<-done
	if err != nil {
		return err
	}

	r.writePlainln("✓ Exported %d/%d collections to %s", result.SuccessfulExports, result.TotalCollections, result.OutputDirectory)
	if result.FailedExports > 0 {
		r.writePlain("✗ %d exports failed, see %s\n", result.FailedExports, result.ManifestPath)
	}
	return nil
}
