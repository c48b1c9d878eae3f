package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/shared"
)

func TestGameService(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		t.Run("Posts Input And Returns Server Record", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/api/videogames/add" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				var input models.GameInput
				json.NewDecoder(r.Body).Decode(&input)
				if input.Name != "Outrun" || input.CollectionID != 3 {
					t.Errorf("unexpected payload: %+v", input)
				}
				json.NewEncoder(w).Encode(models.VideoGame{GameID: 10, Name: "Outrun", CollectionID: 3})
			}))
			defer server.Close()

			srv := NewGameService(server.URL, nil)

			created, err := srv.Add(context.Background(), models.GameInput{Name: "Outrun", CollectionID: 3})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if created.GameID != 10 {
				t.Errorf("expected server-assigned id 10, got %d", created.GameID)
			}
		})

		t.Run("Missing Name Rejected Client-Side", func(t *testing.T) {
			srv := NewGameService("http://127.0.0.1:1", nil)

			_, err := srv.Add(context.Background(), models.GameInput{CollectionID: 3})
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("Update Targets ID Path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/api/videogames/update/10" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(models.VideoGame{GameID: 10, Name: "Outrun", Platform: "Saturn", CollectionID: 3})
		}))
		defer server.Close()

		srv := NewGameService(server.URL, nil)

		updated, err := srv.Update(context.Background(), 10, models.GameInput{Name: "Outrun", Platform: "Saturn", CollectionID: 3})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Platform != "Saturn" {
			t.Errorf("unexpected record: %+v", updated)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		t.Run("Issues DELETE", func(t *testing.T) {
			var gotMethod, gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath = r.Method, r.URL.Path
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			srv := NewGameService(server.URL, nil)

			if err := srv.Remove(context.Background(), 10); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotMethod != http.MethodDelete || gotPath != "/api/videogames/remove/10" {
				t.Errorf("unexpected request: %s %s", gotMethod, gotPath)
			}
		})

		t.Run("401 Is Surfaced As ErrNotAuthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			srv := NewGameService(server.URL, nil)

			if err := srv.Remove(context.Background(), 10); !errors.Is(err, shared.ErrNotAuthorized) {
				t.Errorf("expected ErrNotAuthorized, got %v", err)
			}
		})
	})
}
