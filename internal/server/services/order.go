package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/orders"
)

// OrderService manages customer print jobs.
type OrderService struct {
	orders orders.Repository
}

func NewOrderService(repo orders.Repository) *OrderService {
	return &OrderService{orders: repo}
}

// Create validates and stores a new order. The order number, if absent, is
// derived from the current time; the total is always recomputed from the
// items, never trusted from the caller.
func (s *OrderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	switch {
	case strings.TrimSpace(order.CustomerName) == "":
		return nil, fmt.Errorf("%w: customer name is required", common.ErrValidation)
	case strings.TrimSpace(order.CustomerContact) == "":
		return nil, fmt.Errorf("%w: customer contact is required", common.ErrValidation)
	case len(order.Items) == 0:
		return nil, fmt.Errorf("%w: at least one item is required", common.ErrValidation)
	case order.DueDate.Before(time.Now()):
		return nil, fmt.Errorf("%w: due date must be in the future", common.ErrValidation)
	}

	for _, item := range order.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return nil, fmt.Errorf("%w: product name is required", common.ErrValidation)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", common.ErrValidation)
		}
		if item.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: unit price must be positive", common.ErrValidation)
		}
	}

	if order.OrderNumber == "" {
		order.OrderNumber = fmt.Sprintf("ORD-%d", time.Now().UnixNano())
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if !order.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", common.ErrValidation, order.Status)
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

// SetStatus moves an order to the given status.
func (s *OrderService) SetStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", common.ErrValidation, status)
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
