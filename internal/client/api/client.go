// Package api is the client's gateway to the PrintFlow REST API. It defines
// the Client interface the rest of the CLI depends on plus the concrete HTTP
// implementation.
package api

import (
	"context"

	"github.com/printflow/printflow/internal/client/models"
)

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Client is the surface of the backend the CLI talks to. Implementations
// attach the bearer token from the TokenSource to every authenticated call.
type Client interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error)

	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListActivity(ctx context.Context) ([]models.ActivityLog, error)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)

	Close() error
}
