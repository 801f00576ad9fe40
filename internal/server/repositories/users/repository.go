// Package users implements the credential store: persisted user records with
// hashed passwords and roles.
package users

import (
	"context"
	"time"

	"github.com/printflow/printflow/internal/server/models"
)

// Repository is the credential store interface. Emails are stored normalized
// (trimmed, lowercased) and unique; Create returns common.ErrConflict on a
// duplicate and lookups return common.ErrNotFound when no record matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
