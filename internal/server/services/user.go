// Package services contains server-side business logic. This file implements
// UserService, which verifies credentials against the credential store and
// issues signed access tokens, plus administrative user registration.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/auth"
	"github.com/printflow/printflow/internal/server/config"
	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/users"
)

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so a miss costs the same as a wrong password and the two cases
// stay indistinguishable to callers.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// LoginResult bundles the access token with the redacted user projection.
type LoginResult struct {
	Token string
	User  models.Profile
}

// UserService provides authentication-related operations:
//   - Login: verify credentials and mint an access token
//   - Register: create users (administrative, not self-service)
type UserService struct {
	users         users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using the credential store and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		users:         repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// NormalizeEmail trims whitespace and lowercases the address. All lookups and
// stores go through this so email uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login looks up the credential record by normalized email and verifies the
// password against the stored hash. Unknown email and wrong password both
// yield common.ErrUnauthorized. On success it returns a token whose expiry is
// fixed at issuance plus the configured validity.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Burn a compare anyway so the miss is not observable by timing.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	// Best effort; a failed timestamp update must not fail the login.
	_ = s.users.TouchLastLogin(ctx, user.ID, time.Now())

	return &LoginResult{Token: token, User: user.Profile()}, nil
}

// Register validates required fields and the role enumeration, hashes the
// password, and stores the new credential record. A missing role defaults to
// the least-privileged "staff". Duplicate emails yield common.ErrConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	case password == "":
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	if role == "" {
		role = models.RoleStaff
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", common.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	profile := user.Profile()
	return &profile, nil
}

// Authenticate resolves a verified token's user id back to its current
// record. Used by the HTTP auth middleware.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// List returns the redacted projections of all users.
func (s *UserService) List(ctx context.Context) ([]models.Profile, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	profiles := make([]models.Profile, 0, len(all))
	for i := range all {
		profiles = append(profiles, all[i].Profile())
	}
	return profiles, nil
}
