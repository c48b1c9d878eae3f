package session

import (
	"testing"
	"time"
)

func TestGuard(t *testing.T) {
	t.Run("Authenticated Session Proceeds", func(t *testing.T) {
		m, _ := newFileManager(t)
		if err := m.Login(signToken(t, 1, "a@example.com", time.Now().Add(time.Hour))); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		decision := NewGuard(m).Check("/collections")
		if !decision.Allow {
			t.Fatal("expected guard to allow an authenticated session")
		}
		if decision.Origin != "/collections" {
			t.Errorf("unexpected origin: %s", decision.Origin)
		}
	})

	t.Run("Unauthenticated Session Redirects With Origin", func(t *testing.T) {
		m, _ := newFileManager(t)

		decision := NewGuard(m).Check("/collection/3")
		if decision.Allow {
			t.Fatal("expected guard to deny an unauthenticated session")
		}
		if decision.RedirectTo != LoginRoute {
			t.Errorf("expected redirect to %s, got %s", LoginRoute, decision.RedirectTo)
		}
		if decision.Origin != "/collection/3" {
			t.Errorf("expected origin to be remembered, got %s", decision.Origin)
		}
	})

	t.Run("Token Expiring Mid-Session Forces Logout", func(t *testing.T) {
		m, store := newFileManager(t)
		if err := m.Login(signToken(t, 1, "a@example.com", time.Now().Add(time.Minute))); err != nil {
			t.Fatalf("login failed: %v", err)
		}

		// Advance the manager's clock past the token's expiry.
		m.clock = func() time.Time { return time.Now().Add(2 * time.Minute) }

		decision := NewGuard(m).Check("/dashboard")
		if decision.Allow {
			t.Fatal("expected guard to deny once the token expired")
		}
		if m.IsAuthenticated() {
			t.Error("expected session to be logged out")
		}
		persisted, _ := store.Read()
		if persisted != "" {
			t.Error("expected persisted token to be cleared")
		}
	})
}
