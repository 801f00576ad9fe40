package models

import "time"

// ActivityLog records a single audited user action.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ipAddress"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardStats aggregates the numbers shown on the dashboard.
type DashboardStats struct {
	TotalInventoryItems  int           `json:"totalInventoryItems"`
	LowStockItems        int           `json:"lowStockItems"`
	PendingOrders        int           `json:"pendingOrders"`
	CompletedOrdersToday int           `json:"completedOrdersToday"`
	TotalInventoryValue  float64       `json:"totalInventoryValue"`
	RecentActivities     []ActivityLog `json:"recentActivities"`
}
