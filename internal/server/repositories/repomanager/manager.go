// Package repomanager bundles construction of the concrete repositories and
// database migrations behind one interface so services and the app wiring do
// not depend on the storage backend directly.
package repomanager

import (
	"context"

	"github.com/printflow/printflow/internal/server/repositories/activity"
	"github.com/printflow/printflow/internal/server/repositories/inventory"
	"github.com/printflow/printflow/internal/server/repositories/orders"
	"github.com/printflow/printflow/internal/server/repositories/suppliers"
	"github.com/printflow/printflow/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Inventory() inventory.Repository
	Orders() orders.Repository
	Suppliers() suppliers.Repository
	Activity() activity.Repository
}
