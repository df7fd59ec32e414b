// internal/core/ports/warehouse_repository.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/google/uuid"
)

// TxStore is the persistence surface available inside a warehouse
// transaction. Every mutation the service performs goes through this
// interface so that batch updates and ledger appends commit or roll
// back together.
//
// The ledger is append-only: there is deliberately no update or delete
// for storage transactions.
type TxStore interface {
	// GetBatchForUpdate loads a batch by id under a row lock.
	GetBatchForUpdate(ctx context.Context, batchID uuid.UUID) (*domain.ItemBatch, error)

	// GetBatchByItemAndLotForUpdate loads a batch by its natural key
	// under a row lock. Returns NotFoundError when the lot has never
	// been received.
	GetBatchByItemAndLotForUpdate(ctx context.Context, itemMasterID uuid.UUID, lotNumber string) (*domain.ItemBatch, error)

	// LockExportCandidates locks and returns, in a single statement,
	// every stocked batch of the given items plus the explicitly named
	// batches, ordered expiry ASC NULLS LAST then batch id. One
	// statement means one lock acquisition order for the whole request,
	// which keeps concurrent exports deadlock-free regardless of how
	// their lines overlap. Either slice may be empty.
	LockExportCandidates(ctx context.Context, itemMasterIDs, batchIDs []uuid.UUID) ([]domain.ItemBatch, error)

	InsertBatch(ctx context.Context, batch *domain.ItemBatch) error
	UpdateBatchQuantity(ctx context.Context, batchID uuid.UUID, quantity int) error
	AppendTransaction(ctx context.Context, txn *domain.StorageTransaction) error
}

// UnitOfWork runs a function within a single database transaction
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, store TxStore) error) error
}

// WarehouseReader is the read-side persistence port. Reads run outside
// the unit of work and take no locks.
type WarehouseReader interface {
	GetBatchByID(ctx context.Context, batchID uuid.UUID) (*domain.ItemBatch, error)
	FindBatchesByItem(ctx context.Context, itemMasterID uuid.UUID, includeEmpty bool) ([]domain.ItemBatch, error)
	FindExpiringBatches(ctx context.Context, cutoff time.Time) ([]domain.ItemBatch, error)
	FindExpiredBatches(ctx context.Context, asOf time.Time) ([]domain.ItemBatch, error)

	GetStockSummary(ctx context.Context, itemMasterID uuid.UUID) (*StockSummary, error)
	FindLowStockItems(ctx context.Context) ([]StockSummary, error)

	GetTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.StorageTransaction, error)
	FindTransactions(ctx context.Context, params HistoryParams) ([]domain.StorageTransaction, int64, error)

	Stats(ctx context.Context) (*InventoryStats, error)
	LossReport(ctx context.Context, from, to time.Time) (*LossReport, error)
}

// CatalogLookup resolves catalog references. The warehouse never writes
// to the catalog.
type CatalogLookup interface {
	GetItemMaster(ctx context.Context, itemMasterID uuid.UUID) (*domain.ItemMaster, error)
	GetSupplier(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error)
}

// HistoryParams filters the transaction history listing
type HistoryParams struct {
	ItemMasterID *uuid.UUID
	BatchID      *uuid.UUID
	Type         *domain.TransactionType
	PerformedBy  string
	From         *time.Time
	To           *time.Time
	SortOrder    string
	Page         int
	PageSize     int
}
