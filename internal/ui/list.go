package ui

import (
	"fmt"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = collectionItem{}
	_ list.Item = gameItem{}
)

// collectionItem wraps [models.Collection] to implement [list.Item].
type collectionItem struct {
	collection models.Collection
}

func (i collectionItem) FilterValue() string { return i.collection.Name }
func (i collectionItem) Title() string       { return i.collection.Name }
func (i collectionItem) Description() string {
	return fmt.Sprintf("created %s", i.collection.Created.Format("2006-01-02"))
}

// gameItem wraps [models.VideoGame] to implement [list.Item].
type gameItem struct {
	game models.VideoGame
}

func (i gameItem) FilterValue() string { return i.game.Name }
func (i gameItem) Title() string       { return i.game.Name }
func (i gameItem) Description() string {
	desc := i.game.Platform
	if i.game.ReleaseYear != 0 {
		desc = fmt.Sprintf("%s • %d", desc, i.game.ReleaseYear)
	}
	if i.game.Value != 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatValue(i.game.Value))
	}
	return desc
}
