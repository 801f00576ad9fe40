package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/dbx"
	"github.com/printflow/printflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `id, name, sku, category, quantity, min_stock, unit, unit_price,
	supplier, location, description, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO inventory_items
		   (id, name, sku, category, quantity, min_stock, unit, unit_price, supplier, location, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.Name, item.SKU, item.Category, item.Quantity, item.MinStock,
		item.Unit, item.UnitPrice, item.Supplier, item.Location, item.Description).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	query :=
		`UPDATE inventory_items SET
		   name = $2, sku = $3, category = $4, quantity = $5, min_stock = $6,
		   unit = $7, unit_price = $8, supplier = $9, location = $10,
		   description = $11, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.SKU, item.Category, item.Quantity, item.MinStock,
		item.Unit, item.UnitPrice, item.Supplier, item.Location, item.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`

	item := &models.InventoryItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.SKU, &item.Category, &item.Quantity, &item.MinStock,
		&item.Unit, &item.UnitPrice, &item.Supplier, &item.Location, &item.Description,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.SKU, &item.Category, &item.Quantity, &item.MinStock,
			&item.Unit, &item.UnitPrice, &item.Supplier, &item.Location, &item.Description,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Stats(ctx context.Context) (*Stats, error) {
	query :=
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE quantity <= min_stock),
		        COALESCE(SUM(quantity * unit_price), 0)
		 FROM inventory_items
		 `

	s := &Stats{}
	if err := r.db.QueryRowContext(ctx, query).Scan(&s.TotalItems, &s.LowStock, &s.TotalValue); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
