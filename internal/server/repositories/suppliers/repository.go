// Package suppliers persists the shop's vendor records.
package suppliers

import (
	"context"

	"github.com/printflow/printflow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Supplier) (*models.Supplier, error)
	Update(ctx context.Context, s *models.Supplier) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
}
