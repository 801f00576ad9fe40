// Package activity persists the audit trail of user actions.
package activity

import (
	"context"

	"github.com/printflow/printflow/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, entry *models.ActivityLog) error
	// List returns the most recent entries, newest first, up to limit.
	List(ctx context.Context, limit int) ([]models.ActivityLog, error)
}
