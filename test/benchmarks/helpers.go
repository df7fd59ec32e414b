// test/benchmarks/helpers.go
package benchmarks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// benchStore is an in-memory TxStore so benchmarks measure the service
// and allocation logic, not the database.
type benchStore struct {
	batches map[uuid.UUID]domain.ItemBatch
	ledger  []domain.StorageTransaction
}

func newBenchStore() *benchStore {
	return &benchStore{batches: make(map[uuid.UUID]domain.ItemBatch)}
}

func (s *benchStore) GetBatchForUpdate(_ context.Context, batchID uuid.UUID) (*domain.ItemBatch, error) {
	b, ok := s.batches[batchID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
	}
	copied := b
	return &copied, nil
}

func (s *benchStore) GetBatchByItemAndLotForUpdate(_ context.Context, itemMasterID uuid.UUID, lotNumber string) (*domain.ItemBatch, error) {
	for _, b := range s.batches {
		if b.ItemMasterID == itemMasterID && b.LotNumber == lotNumber {
			copied := b
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Resource: "batch", ID: lotNumber}
}

func (s *benchStore) LockExportCandidates(_ context.Context, itemMasterIDs, batchIDs []uuid.UUID) ([]domain.ItemBatch, error) {
	items := make(map[uuid.UUID]struct{}, len(itemMasterIDs))
	for _, id := range itemMasterIDs {
		items[id] = struct{}{}
	}
	named := make(map[uuid.UUID]struct{}, len(batchIDs))
	for _, id := range batchIDs {
		named[id] = struct{}{}
	}

	var out []domain.ItemBatch
	for _, b := range s.batches {
		_, stocked := items[b.ItemMasterID]
		_, explicit := named[b.BatchID]
		if (stocked && b.QuantityOnHand > 0) || explicit {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ei, ej := out[i].ExpiryDate, out[j].ExpiryDate
		switch {
		case ei == nil && ej == nil:
			return out[i].BatchID.String() < out[j].BatchID.String()
		case ei == nil:
			return false
		case ej == nil:
			return true
		case !ei.Equal(*ej):
			return ei.Before(*ej)
		default:
			return out[i].BatchID.String() < out[j].BatchID.String()
		}
	})
	return out, nil
}

func (s *benchStore) InsertBatch(_ context.Context, batch *domain.ItemBatch) error {
	s.batches[batch.BatchID] = *batch
	return nil
}

func (s *benchStore) UpdateBatchQuantity(_ context.Context, batchID uuid.UUID, quantity int) error {
	b, ok := s.batches[batchID]
	if !ok {
		return &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
	}
	b.QuantityOnHand = quantity
	s.batches[batchID] = b
	return nil
}

func (s *benchStore) AppendTransaction(_ context.Context, txn *domain.StorageTransaction) error {
	s.ledger = append(s.ledger, *txn)
	return nil
}

type benchUoW struct {
	store *benchStore
}

func (u *benchUoW) WithinTransaction(ctx context.Context, fn func(context.Context, ports.TxStore) error) error {
	return fn(ctx, u.store)
}

// benchCatalog resolves every lookup to the same item so catalog access
// never dominates the measurement.
type benchCatalog struct {
	item *domain.ItemMaster
}

func newBenchCatalog() *benchCatalog {
	minStock := 10
	return &benchCatalog{item: &domain.ItemMaster{
		ItemMasterID:  uuid.New(),
		ItemName:      "Dental Composite Resin A2",
		CategoryName:  "Restorative",
		MinStockLevel: &minStock,
	}}
}

func (c *benchCatalog) GetItemMaster(_ context.Context, itemMasterID uuid.UUID) (*domain.ItemMaster, error) {
	item := *c.item
	item.ItemMasterID = itemMasterID
	return &item, nil
}

func (c *benchCatalog) GetSupplier(_ context.Context, supplierID uuid.UUID) (*domain.Supplier, error) {
	return &domain.Supplier{SupplierID: supplierID, Name: "Bench Supplier"}, nil
}

// benchReader satisfies the reader port; query benchmarks use the
// database-backed integration tests instead.
type benchReader struct{}

func (benchReader) GetBatchByID(context.Context, uuid.UUID) (*domain.ItemBatch, error) {
	return nil, nil
}

func (benchReader) FindBatchesByItem(context.Context, uuid.UUID, bool) ([]domain.ItemBatch, error) {
	return nil, nil
}

func (benchReader) FindExpiringBatches(context.Context, time.Time) ([]domain.ItemBatch, error) {
	return nil, nil
}

func (benchReader) FindExpiredBatches(context.Context, time.Time) ([]domain.ItemBatch, error) {
	return nil, nil
}

func (benchReader) GetStockSummary(context.Context, uuid.UUID) (*ports.StockSummary, error) {
	return nil, nil
}

func (benchReader) FindLowStockItems(context.Context) ([]ports.StockSummary, error) {
	return nil, nil
}

func (benchReader) GetTransactionByID(context.Context, uuid.UUID) (*domain.StorageTransaction, error) {
	return nil, nil
}

func (benchReader) FindTransactions(context.Context, ports.HistoryParams) ([]domain.StorageTransaction, int64, error) {
	return nil, 0, nil
}

func (benchReader) Stats(context.Context) (*ports.InventoryStats, error) {
	return nil, nil
}

func (benchReader) LossReport(context.Context, time.Time, time.Time) (*ports.LossReport, error) {
	return nil, nil
}

// seedBatches fills the store with n batches of one item, each holding
// effectively unlimited stock with staggered expiry dates.
func seedBatches(store *benchStore, itemID uuid.UUID, n int) {
	base := time.Now().AddDate(0, 1, 0)
	for i := 0; i < n; i++ {
		expiry := base.AddDate(0, 0, i)
		id := uuid.New()
		store.batches[id] = domain.ItemBatch{
			BatchID:        id,
			ItemMasterID:   itemID,
			LotNumber:      fmt.Sprintf("LOT-%05d", i),
			ExpiryDate:     &expiry,
			QuantityOnHand: 1 << 30,
			ImportPrice:    decimal.NewFromFloat(4.50),
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
	}
}
