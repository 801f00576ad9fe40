// Package guard decides whether the current session may open a view, playing
// the role of per-route access control in the client.
package guard

import (
	"github.com/printflow/printflow/internal/client/models"
	"github.com/printflow/printflow/internal/client/session"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Loading: session restore is still in progress, show nothing yet.
	Loading Decision = iota
	// RedirectLogin: no live session, go to the login view. The requested
	// view is remembered so it can be reopened after login.
	RedirectLogin
	// Denied: authenticated but the role is not allowed. The caller should
	// fall back to the default landing view, never to login.
	Denied
	// Allow: proceed to the view.
	Allow
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case Denied:
		return "denied"
	case Allow:
		return "allow"
	}
	return "unknown"
}

// Guard checks view access against the session manager.
type Guard struct {
	sessions *session.Manager

	// pending is the view the user tried to open before being sent to
	// login, so it can be resumed afterwards.
	pending string
}

func New(sessions *session.Manager) *Guard {
	return &Guard{sessions: sessions}
}

// Check decides whether the view may open for the current session. An empty
// required set means any authenticated role is allowed.
func (g *Guard) Check(view string, required []models.Role) Decision {
	switch g.sessions.State() {
	case session.Restoring:
		return Loading
	case session.Unauthenticated, session.Expired:
		g.pending = view
		return RedirectLogin
	}

	if len(required) == 0 {
		return Allow
	}

	user := g.sessions.Current()
	if user == nil {
		g.pending = view
		return RedirectLogin
	}
	for _, r := range required {
		if user.Role == r {
			return Allow
		}
	}
	return Denied
}

// ConsumePending returns the view remembered at the last RedirectLogin and
// forgets it.
func (g *Guard) ConsumePending() string {
	v := g.pending
	g.pending = ""
	return v
}
