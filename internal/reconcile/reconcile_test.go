package reconcile

import (
	"testing"

	"github.com/Alfredofh/game-collector-front/internal/models"
)

func namedCollections(pairs ...any) []models.Collection {
	var out []models.Collection
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, models.Collection{CollectionID: pairs[i].(int), Name: pairs[i+1].(string)})
	}
	return out
}

func TestApply(t *testing.T) {
	t.Run("Create Appends Server Record", func(t *testing.T) {
		list := namedCollections(1, "Retro")

		got := Apply(list, Created(models.Collection{CollectionID: 2, Name: "Modern"}))

		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
		if got[0].Name != "Retro" || got[1].Name != "Modern" {
			t.Errorf("unexpected list: %+v", got)
		}
		if len(list) != 1 {
			t.Error("input list must not be mutated")
		}
	})

	t.Run("Update Replaces Exactly The Matching Record", func(t *testing.T) {
		list := namedCollections(1, "Retro", 2, "Modern")

		got := Apply(list, Updated(models.Collection{CollectionID: 1, Name: "Classic"}))

		if got[0].Name != "Classic" || got[0].CollectionID != 1 {
			t.Errorf("expected record 1 renamed to Classic, got %+v", got[0])
		}
		if got[1].Name != "Modern" || got[1].CollectionID != 2 {
			t.Errorf("unaffected record changed: %+v", got[1])
		}
		if list[0].Name != "Retro" {
			t.Error("input list must not be mutated")
		}
	})

	t.Run("Update With Unknown ID Leaves List Unchanged", func(t *testing.T) {
		list := namedCollections(1, "Retro", 2, "Modern")

		got := Apply(list, Updated(models.Collection{CollectionID: 99, Name: "Ghost"}))

		if len(got) != 2 || got[0].Name != "Retro" || got[1].Name != "Modern" {
			t.Errorf("expected list unchanged, got %+v", got)
		}
	})

	t.Run("Remove Filters By Identifier", func(t *testing.T) {
		list := namedCollections(1, "Retro", 2, "Modern")

		got := Apply(list, Removed[models.Collection](2))

		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got))
		}
		if got[0].CollectionID != 1 || got[0].Name != "Retro" {
			t.Errorf("unexpected survivor: %+v", got[0])
		}
		if len(list) != 2 {
			t.Error("input list must not be mutated")
		}
	})

	t.Run("Remove With Unknown ID Leaves N Records", func(t *testing.T) {
		list := namedCollections(1, "Retro", 2, "Modern", 3, "Handheld")

		got := Apply(list, Removed[models.Collection](42))

		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got))
		}
	})

	t.Run("Relative Order Of Unaffected Records Survives", func(t *testing.T) {
		list := namedCollections(5, "A", 3, "B", 9, "C", 1, "D")

		got := Apply(list, Removed[models.Collection](9))

		wantIDs := []int{5, 3, 1}
		if len(got) != len(wantIDs) {
			t.Fatalf("expected %d records, got %d", len(wantIDs), len(got))
		}
		for i, id := range wantIDs {
			if got[i].CollectionID != id {
				t.Errorf("position %d: expected id %d, got %d", i, id, got[i].CollectionID)
			}
		}
	})

	t.Run("Works For Video Games", func(t *testing.T) {
		list := []models.VideoGame{
			{GameID: 10, Name: "Outrun", Platform: "Mega Drive"},
			{GameID: 11, Name: "F-Zero", Platform: "SNES"},
		}

		got := Apply(list, Updated(models.VideoGame{GameID: 11, Name: "F-Zero", Platform: "Super Famicom"}))

		if got[1].Platform != "Super Famicom" {
			t.Errorf("expected platform updated, got %+v", got[1])
		}
		if got[0].Platform != "Mega Drive" {
			t.Errorf("unaffected game changed: %+v", got[0])
		}
	})
}
