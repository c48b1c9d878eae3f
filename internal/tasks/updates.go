package tasks

import (
	"fmt"

	"github.com/Alfredofh/game-collector-front/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchCollections Phase = iota
	FetchDetail
	ExportCollection
)

func (p Phase) String() string {
	switch p {
	case FetchCollections:
		return "fetch_collections"
	case FetchDetail:
		return "fetch_detail"
	case ExportCollection:
		return "export_collection"
	default:
		return ""
	}
}

func fetchingCollectionsUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchCollections,
		Step:    step,
		Total:   total,
		Message: "Fetching collections from the catalog...",
	}
}

func fetchDetailUpdate(step, total int, detail *models.CollectionDetail) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchDetail,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Found collection: %s (%d games)", detail.Name, len(detail.VideoGames)),
		Data:    detail,
	}
}

func exportingCollectionUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCollection,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, name),
	}
}

func exportCompletedUpdate(step, total int, name string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCollection,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, name, filesCount),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCollection,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
