// Remote catalog DTOs mirroring the collection backend's JSON shapes.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Collection represents a named, user-owned grouping of game records as
// returned by GET /collection.
type Collection struct {
	CollectionID int       `json:"id"`
	Name         string    `json:"name"`
	UserID       int       `json:"user_id"`
	Created      time.Time `json:"created_at"`
}

// EntityID returns the stable identifier used for list reconciliation.
func (c Collection) EntityID() int { return c.CollectionID }

// CollectionDetail is a collection with its contained games, as returned by
// GET /collection/:id.
type CollectionDetail struct {
	CollectionID int         `json:"id"`
	Name         string      `json:"name"`
	Created      time.Time   `json:"created_at"`
	VideoGames   []VideoGame `json:"video_games"`
}

// VideoGame represents a game record inside a collection.
type VideoGame struct {
	GameID       int     `json:"id"`
	Name         string  `json:"name"`
	Platform     string  `json:"platform"`
	ReleaseYear  int     `json:"release_year"`
	Value        float64 `json:"value"`
	UPC          string  `json:"upc"`
	EAN          string  `json:"ean"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	CollectionID int     `json:"collection_id"`
}

// EntityID returns the stable identifier used for list reconciliation.
func (g VideoGame) EntityID() int { return g.GameID }

// GameInput is the payload for creating or updating a game record. The
// backend assigns the record ID on create.
type GameInput struct {
	Name         string  `json:"name"`
	Platform     string  `json:"platform"`
	ReleaseYear  int     `json:"release_year,omitempty"`
	Value        float64 `json:"value,omitempty"`
	UPC          string  `json:"upc,omitempty"`
	EAN          string  `json:"ean,omitempty"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	CollectionID int     `json:"collection_id"`
}

// Validate checks required game fields before any network call is made.
func (g GameInput) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("game name is required")
	}
	if g.CollectionID <= 0 {
		return fmt.Errorf("collection id is required")
	}
	return nil
}

// Platform is a platform option from external game metadata.
type Platform struct {
	PlatformID int    `json:"id"`
	Name       string `json:"name"`
}

// Cover is a cover image reference from external game metadata.
type Cover struct {
	URL string `json:"url"`
}

// GameSearchResult represents external game metadata returned by the search
// proxy (GET /api/igdb/search).
type GameSearchResult struct {
	Name             string     `json:"name"`
	Platforms        []Platform `json:"platforms"`
	Cover            *Cover     `json:"cover"`
	Summary          string     `json:"summary"`
	FirstReleaseDate int64      `json:"first_release_date"` // unix seconds
}

// ReleaseYear derives the release year from FirstReleaseDate, or 0 when the
// metadata source did not report one.
func (r GameSearchResult) ReleaseYear() int {
	if r.FirstReleaseDate == 0 {
		return 0
	}
	return time.Unix(r.FirstReleaseDate, 0).UTC().Year()
}

// CoverURL returns the cover image URL, or "" when absent.
func (r GameSearchResult) CoverURL() string {
	if r.Cover == nil {
		return ""
	}
	return r.Cover.URL
}

// RegisterInput is the payload for POST /users.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate rejects incomplete or malformed registrations client-side.
func (i RegisterInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if err := validateEmail(i.Email); err != nil {
		return err
	}
	return validatePassword(i.Password)
}

// LoginInput is the payload for POST /login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate rejects incomplete credentials client-side.
func (i LoginInput) Validate() error {
	if err := validateEmail(i.Email); err != nil {
		return err
	}
	if i.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("malformed email address: %s", email)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}
