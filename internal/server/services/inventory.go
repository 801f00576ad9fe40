package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/inventory"
)

// InventoryService manages stock items.
type InventoryService struct {
	items inventory.Repository
}

func NewInventoryService(repo inventory.Repository) *InventoryService {
	return &InventoryService{items: repo}
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating inventory item: %w", err)
	}
	return created, nil
}

func (s *InventoryService) Update(ctx context.Context, item *models.InventoryItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: id is required", common.ErrValidation)
	}
	if err := validateItem(item); err != nil {
		return err
	}
	return s.items.Update(ctx, item)
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *InventoryService) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.items.List(ctx)
}

// LowStock returns the items at or below their minimum stock level.
func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	all, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	var low []models.InventoryItem
	for _, item := range all {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func validateItem(item *models.InventoryItem) error {
	switch {
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	case strings.TrimSpace(item.SKU) == "":
		return fmt.Errorf("%w: sku is required", common.ErrValidation)
	case !item.Category.Valid():
		return fmt.Errorf("%w: invalid category %q", common.ErrValidation, item.Category)
	case item.Quantity < 0:
		return fmt.Errorf("%w: quantity cannot be negative", common.ErrValidation)
	case item.MinStock < 0:
		return fmt.Errorf("%w: min stock cannot be negative", common.ErrValidation)
	case item.UnitPrice < 0:
		return fmt.Errorf("%w: price cannot be negative", common.ErrValidation)
	}
	return nil
}
