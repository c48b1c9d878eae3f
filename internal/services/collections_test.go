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

func TestCollectionService(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		t.Run("Sends Bearer Token And Decodes Records", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/collection" {
					t.Errorf("expected path '/collection', got %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
					t.Errorf("expected bearer header, got %q", got)
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode([]models.Collection{
					{CollectionID: 1, Name: "Retro", UserID: 7},
					{CollectionID: 2, Name: "Modern", UserID: 7},
				})
			}))
			defer server.Close()

			ctx := context.Background()
			srv := NewCollectionService(server.URL, AuthClient(ctx, "tok-123"))

			collections, err := srv.List(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(collections) != 2 {
				t.Fatalf("expected 2 collections, got %d", len(collections))
			}
			if collections[0].Name != "Retro" || collections[1].Name != "Modern" {
				t.Errorf("unexpected collections: %+v", collections)
			}
		})

		t.Run("401 Is Surfaced As ErrNotAuthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			srv := NewCollectionService(server.URL, nil)

			_, err := srv.List(context.Background())
			if !errors.Is(err, shared.ErrNotAuthorized) {
				t.Errorf("expected ErrNotAuthorized, got %v", err)
			}
			if errors.Is(err, shared.ErrAPIRequest) {
				t.Error("authorization failures must be distinct from generic failures")
			}
		})

		t.Run("Server Error Is Surfaced As ErrAPIRequest", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			srv := NewCollectionService(server.URL, nil)

			_, err := srv.List(context.Background())
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("Create Posts Name And Returns Record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/collection" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}

			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["name"] != "Handheld" {
				t.Errorf("expected name 'Handheld', got %q", body["name"])
			}

			json.NewEncoder(w).Encode(models.Collection{CollectionID: 5, Name: "Handheld"})
		}))
		defer server.Close()

		srv := NewCollectionService(server.URL, nil)

		created, err := srv.Create(context.Background(), "Handheld")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.CollectionID != 5 {
			t.Errorf("expected server-assigned id 5, got %d", created.CollectionID)
		}
	})

	t.Run("Get Decodes Nested Games", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collection/3" {
				t.Errorf("expected path '/collection/3', got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id":   3,
				"name": "Retro",
				"video_games": []map[string]any{
					{"id": 10, "name": "Outrun", "platform": "Mega Drive", "release_year": 1986},
				},
			})
		}))
		defer server.Close()

		srv := NewCollectionService(server.URL, nil)

		detail, err := srv.Get(context.Background(), 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(detail.VideoGames) != 1 || detail.VideoGames[0].Name != "Outrun" {
			t.Errorf("unexpected games: %+v", detail.VideoGames)
		}
	})

	t.Run("Update Falls Back When Server Confirms Without Echo", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/collection/1" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
		}))
		defer server.Close()

		srv := NewCollectionService(server.URL, nil)

		updated, err := srv.Update(context.Background(), 1, "Classic")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.CollectionID != 1 || updated.Name != "Classic" {
			t.Errorf("unexpected record: %+v", updated)
		}
	})

	t.Run("Delete Issues DELETE", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		srv := NewCollectionService(server.URL, nil)

		if err := srv.Delete(context.Background(), 9); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotMethod != http.MethodDelete || gotPath != "/collection/9" {
			t.Errorf("unexpected request: %s %s", gotMethod, gotPath)
		}
	})
}
