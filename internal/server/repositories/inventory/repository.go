// Package inventory persists the shop's stock items.
package inventory

import (
	"context"

	"github.com/printflow/printflow/internal/server/models"
)

// Stats is the aggregate snapshot used by the dashboard.
type Stats struct {
	TotalItems int
	LowStock   int
	TotalValue float64
}

type Repository interface {
	Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	Stats(ctx context.Context) (*Stats, error)
}
