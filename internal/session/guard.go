package session

// LoginRoute is the entry point unauthenticated visitors are redirected to.
const LoginRoute = "/login"

// Decision is the outcome of evaluating a protected view's guard: either
// proceed, or redirect to the login entry point remembering the origin so
// the caller can return there after a successful login.
type Decision struct {
	Allow      bool
	RedirectTo string
	Origin     string
}

// Guard gates protected views on the current session state. The check is
// synchronous and re-evaluates token expiry, so an expired token encountered
// mid-session forces logout at the next protected-view entry rather than
// only on the next restart.
type Guard struct {
	manager *Manager
}

// NewGuard creates a guard over the given session manager.
func NewGuard(manager *Manager) *Guard {
	return &Guard{manager: manager}
}

// Check evaluates whether the view at origin may be entered.
func (g *Guard) Check(origin string) Decision {
	if g.manager.IsAuthenticated() && g.manager.expired() {
		// The credential went stale mid-session. Treat it exactly like
		// never having had one.
		_ = g.manager.Logout()
	}

	if g.manager.IsAuthenticated() {
		return Decision{Allow: true, Origin: origin}
	}
	return Decision{RedirectTo: LoginRoute, Origin: origin}
}
