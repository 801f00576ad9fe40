// Package services contains application services for the PrintFlow client.
// This file defines the authentication service: the rate-limited, validated
// login flow plus registration and logout.
package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/printflow/printflow/internal/client/api"
	"github.com/printflow/printflow/internal/client/models"
	"github.com/printflow/printflow/internal/client/ratelimit"
	"github.com/printflow/printflow/internal/client/session"
	"github.com/printflow/printflow/internal/common"
)

const (
	loginAttemptsKey = "login_attempts"
	maxLoginAttempts = 5
	loginWindow      = time.Minute

	// sessionValidity mirrors the server's access token lifetime.
	sessionValidity = 30 * time.Minute
)

// Result is the outcome of a login or register attempt. Error holds a
// user-presentable message; no raw error ever reaches the caller.
type Result struct {
	Success bool
	Error   string
}

func failure(msg string) Result {
	return Result{Error: msg}
}

// AuthService runs the client-side login flow: local rate limiting, input
// validation, the API call, and session establishment — in that order, so
// invalid or throttled input never reaches the network.
type AuthService struct {
	client   api.Client
	sessions *session.Manager
	limiter  *ratelimit.Limiter
	now      func() time.Time

	inFlight atomic.Bool
}

func NewAuthService(client api.Client, sessions *session.Manager, limiter *ratelimit.Limiter) *AuthService {
	return &AuthService{client: client, sessions: sessions, limiter: limiter, now: time.Now}
}

// Login authenticates against the server and establishes the session.
func (a *AuthService) Login(ctx context.Context, email, password string) Result {
	if !a.inFlight.CompareAndSwap(false, true) {
		return failure("A login attempt is already in progress.")
	}
	defer a.inFlight.Store(false)

	if a.limiter.Check(loginAttemptsKey, maxLoginAttempts, loginWindow) {
		return failure("Too many login attempts. Please wait 1 minute.")
	}

	if msg := validateLoginInput(email, password); msg != "" {
		return failure(msg)
	}

	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			return failure("Invalid email or password")
		case errors.Is(err, common.ErrUnavailable):
			return failure("Cannot connect to the server. Please check your connection.")
		default:
			return failure("Login failed. Please try again.")
		}
	}

	a.limiter.Clear(loginAttemptsKey)

	err = a.sessions.Establish(models.Session{
		User:      resp.User,
		Token:     resp.Token,
		ExpiresAt: a.now().Add(sessionValidity),
	})
	if err != nil {
		return failure("Login failed. Please try again.")
	}

	return Result{Success: true}
}

// Register creates a new user on the server. The caller must already hold an
// admin session; the server enforces that independently.
func (a *AuthService) Register(ctx context.Context, name, email, password string, role models.Role) Result {
	if msg := validateRegisterInput(name, email, password, role); msg != "" {
		return failure(msg)
	}

	_, err := a.client.Register(ctx, name, email, password, role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrConflict):
			return failure("A user with this email already exists")
		case errors.Is(err, common.ErrForbidden):
			return failure("Only administrators can register users")
		case errors.Is(err, common.ErrUnavailable):
			return failure("Cannot connect to the server. Please check your connection.")
		case errors.Is(err, common.ErrValidation):
			return failure(err.Error())
		default:
			return failure("Registration failed. Please try again.")
		}
	}

	return Result{Success: true}
}

// Logout drops the session. Always succeeds locally.
func (a *AuthService) Logout() {
	a.sessions.Logout()
}
