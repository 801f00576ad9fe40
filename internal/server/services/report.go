package services

import (
	"context"
	"fmt"
	"time"

	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/activity"
	"github.com/printflow/printflow/internal/server/repositories/inventory"
	"github.com/printflow/printflow/internal/server/repositories/orders"
)

// ReportService assembles the dashboard statistics from the other stores.
type ReportService struct {
	inventory inventory.Repository
	orders    orders.Repository
	activity  activity.Repository
}

func NewReportService(inv inventory.Repository, ord orders.Repository, act activity.Repository) *ReportService {
	return &ReportService{inventory: inv, orders: ord, activity: act}
}

// Dashboard returns the aggregate numbers shown on the dashboard landing view.
func (s *ReportService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	invStats, err := s.inventory.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading inventory stats: %w", err)
	}

	pending, err := s.orders.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error counting pending orders: %w", err)
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	completedToday, err := s.orders.CountDeliveredSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("error counting completed orders: %w", err)
	}

	recent, err := s.activity.List(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("error loading recent activity: %w", err)
	}

	return &models.DashboardStats{
		TotalInventoryItems:  invStats.TotalItems,
		LowStockItems:        invStats.LowStock,
		PendingOrders:        pending,
		CompletedOrdersToday: completedToday,
		TotalInventoryValue:  invStats.TotalValue,
		RecentActivities:     recent,
	}, nil
}
