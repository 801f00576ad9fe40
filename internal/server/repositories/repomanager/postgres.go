package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/printflow/printflow/internal/server/migrations"
	"github.com/printflow/printflow/internal/server/repositories/activity"
	"github.com/printflow/printflow/internal/server/repositories/inventory"
	"github.com/printflow/printflow/internal/server/repositories/orders"
	"github.com/printflow/printflow/internal/server/repositories/suppliers"
	"github.com/printflow/printflow/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Inventory() inventory.Repository {
	return inventory.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Orders() orders.Repository {
	return orders.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Suppliers() suppliers.Repository {
	return suppliers.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Activity() activity.Repository {
	return activity.NewPostgresRepository(m.db)
}
