package ui

import (
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/reconcile"
)

// collectionsFetchedMsg carries the collection list fetched from the backend.
type collectionsFetchedMsg struct {
	collections []models.Collection
	err         error
}

// gamesFetchedMsg carries the detail view of a selected collection.
type gamesFetchedMsg struct {
	detail *models.CollectionDetail
	err    error
}

// collectionSavedMsg carries the server-confirmed result of a create or
// rename, already shaped as a reconciliation operation.
type collectionSavedMsg struct {
	op  reconcile.Op[models.Collection]
	err error
}

// collectionDeletedMsg carries the server-confirmed removal of a collection.
type collectionDeletedMsg struct {
	id  int
	err error
}

// gameRemovedMsg carries the server-confirmed removal of a game.
type gameRemovedMsg struct {
	id  int
	err error
}

// notifyTickMsg prompts a re-render so expired notifications disappear.
type notifyTickMsg time.Time
