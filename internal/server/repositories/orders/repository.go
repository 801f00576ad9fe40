// Package orders persists customer print jobs and their line items.
package orders

import (
	"context"
	"time"

	"github.com/printflow/printflow/internal/server/models"
)

type Repository interface {
	// Create stores the order and its items atomically.
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status models.OrderStatus) (int, error)
	CountDeliveredSince(ctx context.Context, since time.Time) (int, error)
}
