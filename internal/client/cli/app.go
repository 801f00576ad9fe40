// Package cli implements the interactive PrintFlow terminal client: a REPL
// with login, role-gated views over the REST API, and session housekeeping.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/printflow/printflow/internal/client/api"
	"github.com/printflow/printflow/internal/client/config"
	"github.com/printflow/printflow/internal/client/guard"
	"github.com/printflow/printflow/internal/client/models"
	"github.com/printflow/printflow/internal/client/ratelimit"
	"github.com/printflow/printflow/internal/client/services"
	"github.com/printflow/printflow/internal/client/session"
)

// Role sets gating each view. Inventory and orders are open to any
// authenticated user; suppliers and reports need manager or admin; user and
// activity administration is admin only.
var (
	rolesAny        []models.Role
	rolesManagement = []models.Role{models.RoleAdmin, models.RoleManager}
	rolesAdmin      = []models.Role{models.RoleAdmin}
)

type App struct {
	config   *config.Config
	client   api.Client
	sessions *session.Manager
	guard    *guard.Guard
	auth     *services.AuthService
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	sessions := session.NewManager(session.NewMemoryStore(), c.InactivityTimeout)
	client := api.NewHTTPClient(c.ServerURL, sessions, c.RequestTimeout)
	auth := services.NewAuthService(client, sessions, ratelimit.NewLimiter())

	sessions.OnExpired(func(notice string) {
		printlnFn(notice + ". Please log in again.")
	})

	return &App{
		config:   c,
		client:   client,
		sessions: sessions,
		guard:    guard.New(sessions),
		auth:     auth,
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	a.sessions.Restore()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if user := a.sessions.Current(); user != nil {
		return user.Email + " (" + string(user.Role) + ")"
	}
	return "not logged in"
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State() == session.Authenticated
}

func (a *App) touch() {
	a.sessions.Touch()
}

// checkAccess runs the route guard for a view and reports whether the caller
// may proceed, printing the appropriate notice when it may not.
func (a *App) checkAccess(view string, required []models.Role) bool {
	switch a.guard.Check(view, required) {
	case guard.Allow:
		return true
	case guard.Loading:
		printlnFn("Still restoring your session, try again in a moment.")
	case guard.RedirectLogin:
		printlnFn("Please log in first.")
	case guard.Denied:
		printlnFn("Access denied. Returning to dashboard.")
	}
	return false
}
