// internal/core/ports/warehouse_service.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/clinic-stock/internal/core/domain"
)

// WarehouseService defines the application service port for warehouse
// stock movements and queries. This interface is implemented by the
// application service.
type WarehouseService interface {
	ImportStock(ctx context.Context, req ImportRequest) (*ImportResult, error)
	ExportStock(ctx context.Context, req ExportRequest) (*ExportResult, error)
	AdjustStock(ctx context.Context, req AdjustRequest) (*MovementResult, error)
	DestroyStock(ctx context.Context, req DestroyRequest) (*MovementResult, error)

	GetStockSummary(ctx context.Context, itemMasterID uuid.UUID) (*StockSummary, error)
	GetBatch(ctx context.Context, batchID uuid.UUID) (*domain.ItemBatch, error)
	ListBatchesByItem(ctx context.Context, itemMasterID uuid.UUID, includeEmpty bool) ([]domain.ItemBatch, error)
	ListExpiringBatches(ctx context.Context, days int) ([]domain.ItemBatch, error)

	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.StorageTransaction, error)
	ListTransactions(ctx context.Context, params HistoryParams) (*HistoryResult, error)

	Stats(ctx context.Context) (*InventoryStats, error)
	LossReport(ctx context.Context, from, to time.Time) (*LossReport, error)
}

// ImportLine is one received lot within an import request. A line may
// carry its own note; lines without one inherit the request note.
type ImportLine struct {
	ItemMasterID uuid.UUID       `json:"item_master_id"`
	LotNumber    string          `json:"lot_number"`
	Quantity     int             `json:"quantity"`
	ImportPrice  decimal.Decimal `json:"import_price"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// ImportRequest records goods received into the warehouse
type ImportRequest struct {
	Items           []ImportLine `json:"items"`
	SupplierID      *uuid.UUID   `json:"supplier_id,omitempty"`
	PerformedBy     string       `json:"performed_by"`
	Notes           string       `json:"notes,omitempty"`
	TransactionDate time.Time    `json:"transaction_date,omitempty"`
}

// ExportLine names what to issue. Either ItemMasterID (automatic
// first-expired-first-out picking) or BatchID (explicit lot) must be
// set, never both.
type ExportLine struct {
	ItemMasterID *uuid.UUID `json:"item_master_id,omitempty"`
	BatchID      *uuid.UUID `json:"batch_id,omitempty"`
	Quantity     int        `json:"quantity"`
}

// ExportRequest issues stock out of the warehouse
type ExportRequest struct {
	Items           []ExportLine      `json:"items"`
	ExportType      domain.ExportType `json:"export_type"`
	AllowExpired    bool              `json:"allow_expired,omitempty"`
	PerformedBy     string            `json:"performed_by"`
	Notes           string            `json:"notes,omitempty"`
	TransactionDate time.Time         `json:"transaction_date,omitempty"`
}

// AdjustRequest overwrites a batch's counted quantity after a stock
// take. Notes are mandatory.
type AdjustRequest struct {
	BatchID     uuid.UUID `json:"batch_id"`
	NewQuantity int       `json:"new_quantity"`
	PerformedBy string    `json:"performed_by"`
	Notes       string    `json:"notes"`
}

// DestroyRequest writes off damaged or expired stock. Notes are
// mandatory.
type DestroyRequest struct {
	BatchID     uuid.UUID `json:"batch_id"`
	Quantity    int       `json:"quantity"`
	PerformedBy string    `json:"performed_by"`
	Notes       string    `json:"notes"`
}

// Allocation is one batch-level movement produced by a request
type Allocation struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	BatchID       uuid.UUID       `json:"batch_id"`
	LotNumber     string          `json:"lot_number"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	Remaining     int             `json:"remaining_quantity"`
}

// ImportResult reports the batches touched by an import
type ImportResult struct {
	Allocations []Allocation    `json:"allocations"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

// ExportResult reports the per-batch picking of an export
type ExportResult struct {
	Allocations []Allocation    `json:"allocations"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

// MovementResult reports a single-batch adjustment or destruction
type MovementResult struct {
	Transaction *domain.StorageTransaction `json:"transaction"`
	Batch       *domain.ItemBatch          `json:"batch"`
}

// StockSummary aggregates an item's position across its batches
type StockSummary struct {
	ItemMasterID   uuid.UUID       `json:"item_master_id"`
	ItemName       string          `json:"item_name,omitempty"`
	TotalQuantity  int             `json:"total_quantity"`
	BatchCount     int             `json:"batch_count"`
	EarliestExpiry *time.Time      `json:"earliest_expiry,omitempty"`
	TotalValue     decimal.Decimal `json:"total_value"`
	MinStockLevel  *int            `json:"min_stock_level,omitempty"`
	BelowMinimum   bool            `json:"below_minimum"`
}

// HistoryResult is a page of the transaction ledger
type HistoryResult struct {
	Transactions []domain.StorageTransaction `json:"transactions"`
	Page         int                         `json:"page"`
	PageSize     int                         `json:"page_size"`
	TotalCount   int64                       `json:"total_count"`
	TotalPages   int                         `json:"total_pages"`
}

// InventoryStats is the warehouse-wide dashboard aggregate
type InventoryStats struct {
	TotalItems        int64           `json:"total_items"`
	TotalBatches      int64           `json:"total_batches"`
	ActiveBatches     int64           `json:"active_batches"`
	ExpiredBatches    int64           `json:"expired_batches"`
	DepletedBatches   int64           `json:"depleted_batches"`
	ExpiringSoon      int64           `json:"expiring_soon"`
	LowStockItems     int64           `json:"low_stock_items"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	TransactionsToday int64           `json:"transactions_today"`
}

// LossLine is one item's write-off total within a loss report
type LossLine struct {
	ItemMasterID uuid.UUID       `json:"item_master_id"`
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
}

// LossReport totals DESTROY movements in a period
type LossReport struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	DestroyedQty   int             `json:"destroyed_quantity"`
	DestroyedValue decimal.Decimal `json:"destroyed_value"`
	Lines          []LossLine      `json:"lines"`
}
