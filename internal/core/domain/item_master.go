// internal/core/domain/item_master.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemMaster is a read-only view of a catalog entry. The warehouse core
// never mutates the catalog; it only resolves ids and reads the stock
// thresholds used in low-stock reporting.
type ItemMaster struct {
	ItemMasterID  uuid.UUID `json:"item_master_id"`
	ItemName      string    `json:"item_name"`
	CategoryName  string    `json:"category_name,omitempty"`
	MinStockLevel *int      `json:"min_stock_level,omitempty"`
	MaxStockLevel *int      `json:"max_stock_level,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Supplier is a read-only reference carried on import receipts
type Supplier struct {
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
}
