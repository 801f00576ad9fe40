// Package models holds the client-side view of the PrintFlow API payloads.
package models

import "time"

// Role mirrors the server-side user roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// User is the redacted user profile returned by the API.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// InventoryItem mirrors the server inventory payload.
type InventoryItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	MinStock  int     `json:"minStock"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	Supplier  string  `json:"supplier,omitempty"`
	Location  string  `json:"location,omitempty"`
}

// LowStock reports whether the item is at or below its minimum stock level.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStock
}

// Order mirrors the server order payload.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	DueDate      time.Time   `json:"dueDate"`
}

type OrderItem struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Supplier mirrors the server supplier payload.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// ActivityLog mirrors the server activity payload.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ipAddress"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardStats mirrors the server dashboard payload.
type DashboardStats struct {
	TotalInventoryItems  int           `json:"totalInventoryItems"`
	LowStockItems        int           `json:"lowStockItems"`
	PendingOrders        int           `json:"pendingOrders"`
	CompletedOrdersToday int           `json:"completedOrdersToday"`
	TotalInventoryValue  float64       `json:"totalInventoryValue"`
	RecentActivities     []ActivityLog `json:"recentActivities"`
}
