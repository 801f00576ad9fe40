package models

import "time"

// OrderStatus tracks a print job through the shop.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusPrinting   OrderStatus = "printing"
	StatusFinishing  OrderStatus = "finishing"
	StatusReady      OrderStatus = "ready"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusPrinting, StatusFinishing,
		StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a customer print job with its line items.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	CustomerName    string      `json:"customerName"`
	CustomerContact string      `json:"customerContact"`
	Items           []OrderItem `json:"items"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	DueDate         time.Time   `json:"dueDate"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID             string  `json:"id"`
	ProductName    string  `json:"productName"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	Specifications string  `json:"specifications,omitempty"`
}

// Total returns the sum of quantity × unit price over all items.
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}
