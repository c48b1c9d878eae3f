package main

import (
	"context"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/urfave/cli/v3"
)

func gameInputFromFlags(cmd *cli.Command) models.GameInput {
	return models.GameInput{
		Name:         cmd.String("name"),
		Platform:     cmd.String("platform"),
		ReleaseYear:  int(cmd.Int("year")),
		Value:        cmd.Float("value"),
		UPC:          cmd.String("upc"),
		EAN:          cmd.String("ean"),
		Description:  cmd.String("description"),
		ImageURL:     cmd.String("image-url"),
		CollectionID: int(cmd.Int("collection-id")),
	}
}

// GameAdd adds a game to a collection. Input is validated locally before
// anything goes over the wire.
func (r *Runner) GameAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	input := gameInputFromFlags(cmd)

	r.logger.Info("adding game", "name", input.Name, "collection", input.CollectionID)

	game, err := r.library.Add(ctx, input)
	if err != nil {
		return err
	}

	r.writePlain("✓ Game added: %s (ID: %d)\n", game.Name, game.GameID)
	return nil
}

// GameUpdate updates an existing game's details.
func (r *Runner) GameUpdate(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	input := gameInputFromFlags(cmd)

	r.logger.Info("updating game", "id", id)

	game, err := r.library.Update(ctx, id, input)
	if err != nil {
		return err
	}

	r.writePlain("✓ Game updated: %s\n", game.Name)
	return nil
}

// GameRemove removes a game from its collection.
func (r *Runner) GameRemove(ctx context.Context, cmd *cli.Command) error {
	id := int(cmd.Int("id"))

	if err := r.requireSession("/collections"); err != nil {
		return err
	}

	if !cmd.Bool("yes") {
		r.writePlain("Re-run with --yes to remove game %d.\n", id)
		return nil
	}

	r.logger.Info("removing game", "id", id)

	if err := r.library.Remove(ctx, id); err != nil {
		return err
	}

	r.writePlain("✓ Game %d removed\n", id)
	return nil
}

// GameCover opens a game's cover art in the default browser.
func (r *Runner) GameCover(ctx context.Context, cmd *cli.Command) error {
	url := cmd.StringArg("url")
	if url == "" {
		return shared.ErrMissingArgument
	}

	r.logger.Info("opening cover art", "url", url)
	return shared.OpenBrowser(url)
}
