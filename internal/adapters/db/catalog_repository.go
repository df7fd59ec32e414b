// internal/adapters/db/catalog_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// CatalogRepository resolves catalog references. The warehouse treats
// the catalog as read-only; rows are maintained by the seeder or an
// upstream system.
type CatalogRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.CatalogLookup = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *Database, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "catalog")),
	}
}

// GetItemMaster retrieves a catalog entry by id
func (r *CatalogRepository) GetItemMaster(ctx context.Context, itemMasterID uuid.UUID) (*domain.ItemMaster, error) {
	query := `
		SELECT item_master_id, item_name, category_name, min_stock_level, max_stock_level, created_at, updated_at
		FROM item_masters
		WHERE item_master_id = $1`

	item := &domain.ItemMaster{}
	var category sql.NullString
	err := r.db.QueryRow(ctx, query, itemMasterID).Scan(
		&item.ItemMasterID, &item.ItemName, &category,
		&item.MinStockLevel, &item.MaxStockLevel,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &domain.NotFoundError{Resource: "item_master", ID: itemMasterID.String()}
		}
		return nil, fmt.Errorf("failed to find item master: %w", err)
	}
	item.CategoryName = category.String
	return item, nil
}

// GetSupplier retrieves a supplier by id
func (r *CatalogRepository) GetSupplier(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error) {
	query := `SELECT supplier_id, name FROM suppliers WHERE supplier_id = $1`

	supplier := &domain.Supplier{}
	err := r.db.QueryRow(ctx, query, supplierID).Scan(&supplier.SupplierID, &supplier.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &domain.NotFoundError{Resource: "supplier", ID: supplierID.String()}
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return supplier, nil
}
