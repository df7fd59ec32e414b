// internal/core/services/warehouse_workflow_test.go
package services_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
	"github.com/ammerola/clinic-stock/internal/core/services"
	"github.com/ammerola/clinic-stock/test/helpers"
	"github.com/ammerola/clinic-stock/test/mocks"
)

// memStore is an in-memory TxStore used to exercise full movement
// workflows without a database.
type memStore struct {
	batches map[uuid.UUID]domain.ItemBatch
	ledger  []domain.StorageTransaction
}

func newMemStore() *memStore {
	return &memStore{batches: make(map[uuid.UUID]domain.ItemBatch)}
}

func (s *memStore) GetBatchForUpdate(_ context.Context, batchID uuid.UUID) (*domain.ItemBatch, error) {
	b, ok := s.batches[batchID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
	}
	copied := b
	return &copied, nil
}

func (s *memStore) GetBatchByItemAndLotForUpdate(_ context.Context, itemMasterID uuid.UUID, lotNumber string) (*domain.ItemBatch, error) {
	for _, b := range s.batches {
		if b.ItemMasterID == itemMasterID && b.LotNumber == lotNumber {
			copied := b
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Resource: "batch", ID: lotNumber}
}

func (s *memStore) LockExportCandidates(_ context.Context, itemMasterIDs, batchIDs []uuid.UUID) ([]domain.ItemBatch, error) {
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

func (s *memStore) InsertBatch(_ context.Context, batch *domain.ItemBatch) error {
	s.batches[batch.BatchID] = *batch
	return nil
}

func (s *memStore) UpdateBatchQuantity(_ context.Context, batchID uuid.UUID, quantity int) error {
	b, ok := s.batches[batchID]
	if !ok {
		return &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
	}
	b.QuantityOnHand = quantity
	s.batches[batchID] = b
	return nil
}

func (s *memStore) AppendTransaction(_ context.Context, txn *domain.StorageTransaction) error {
	s.ledger = append(s.ledger, *txn)
	return nil
}

// memUoW snapshots state before running the function and restores it
// on error, mimicking transactional rollback.
type memUoW struct {
	store *memStore
}

func (u *memUoW) WithinTransaction(ctx context.Context, fn func(context.Context, ports.TxStore) error) error {
	snapshotBatches := make(map[uuid.UUID]domain.ItemBatch, len(u.store.batches))
	for k, v := range u.store.batches {
		snapshotBatches[k] = v
	}
	snapshotLedger := make([]domain.StorageTransaction, len(u.store.ledger))
	copy(snapshotLedger, u.store.ledger)

	if err := fn(ctx, u.store); err != nil {
		u.store.batches = snapshotBatches
		u.store.ledger = snapshotLedger
		return err
	}
	return nil
}

// assertConservation checks that every batch's quantity equals the
// signed sum of its ledger entries.
func assertConservation(t *testing.T, store *memStore) {
	t.Helper()

	sums := make(map[uuid.UUID]int)
	for _, txn := range store.ledger {
		sums[txn.BatchID] += txn.SignedQuantity()
	}
	for id, batch := range store.batches {
		assert.Equal(t, batch.QuantityOnHand, sums[id],
			"batch %s (lot %s): quantity %d does not match ledger sum %d",
			id, batch.LotNumber, batch.QuantityOnHand, sums[id])
	}
}

func TestWarehouseWorkflow_LedgerConservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newMemStore()
	uow := &memUoW{store: store}
	reader := mocks.NewMockWarehouseReader(ctrl)
	catalog := mocks.NewMockCatalogLookup(ctrl)
	catalog.EXPECT().
		GetItemMaster(gomock.Any(), gomock.Any()).
		Return(helpers.CreateTestItemMaster(), nil).
		AnyTimes()

	svc := services.NewWarehouseService(uow, reader, catalog, helpers.TestLogger())
	ctx := context.Background()
	itemID := uuid.New()
	soon := time.Now().AddDate(0, 2, 0)
	later := time.Now().AddDate(0, 8, 0)

	// Receive two deliveries of the same lot and one of another lot.
	_, err := svc.ImportStock(ctx, ports.ImportRequest{
		Items: []ports.ImportLine{{
			ItemMasterID: itemID, LotNumber: "LOT-A", Quantity: 20,
			ImportPrice: decimal.NewFromFloat(4.50), ExpiryDate: &soon,
		}},
		PerformedBy: "nurse.kim",
	})
	require.NoError(t, err)

	_, err = svc.ImportStock(ctx, ports.ImportRequest{
		Items: []ports.ImportLine{
			{
				ItemMasterID: itemID, LotNumber: "LOT-A", Quantity: 15,
				ImportPrice: decimal.NewFromFloat(4.50), ExpiryDate: &soon,
			},
			{
				ItemMasterID: itemID, LotNumber: "LOT-B", Quantity: 40,
				ImportPrice: decimal.NewFromFloat(5.00), ExpiryDate: &later,
			},
		},
		PerformedBy: "nurse.kim",
	})
	require.NoError(t, err)
	assertConservation(t, store)

	// The merged lot holds 35 units.
	merged, err := store.GetBatchByItemAndLotForUpdate(ctx, itemID, "LOT-A")
	require.NoError(t, err)
	assert.Equal(t, 35, merged.QuantityOnHand)

	// Issue 38 units: drains LOT-A (earlier expiry) then LOT-B.
	exportResult, err := svc.ExportStock(ctx, ports.ExportRequest{
		Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 38}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})
	require.NoError(t, err)
	require.Len(t, exportResult.Allocations, 2)
	assert.Equal(t, "LOT-A", exportResult.Allocations[0].LotNumber)
	assert.Equal(t, 35, exportResult.Allocations[0].Quantity)
	assert.Equal(t, "LOT-B", exportResult.Allocations[1].LotNumber)
	assert.Equal(t, 3, exportResult.Allocations[1].Quantity)
	assertConservation(t, store)

	// A failing export must roll back entirely.
	before := len(store.ledger)
	_, err = svc.ExportStock(ctx, ports.ExportRequest{
		Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 1000}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})
	require.Error(t, err)
	assert.Len(t, store.ledger, before, "failed export must not leave ledger entries")
	assertConservation(t, store)

	// Cycle count on LOT-B, then write off the difference's remainder.
	lotB, err := store.GetBatchByItemAndLotForUpdate(ctx, itemID, "LOT-B")
	require.NoError(t, err)

	_, err = svc.AdjustStock(ctx, ports.AdjustRequest{
		BatchID:     lotB.BatchID,
		NewQuantity: 30,
		PerformedBy: "nurse.kim",
		Notes:       "cycle count",
	})
	require.NoError(t, err)
	assertConservation(t, store)

	_, err = svc.DestroyStock(ctx, ports.DestroyRequest{
		BatchID:     lotB.BatchID,
		Quantity:    5,
		PerformedBy: "nurse.kim",
		Notes:       "damaged packaging",
	})
	require.NoError(t, err)
	assertConservation(t, store)

	final, err := store.GetBatchForUpdate(ctx, lotB.BatchID)
	require.NoError(t, err)
	assert.Equal(t, 25, final.QuantityOnHand)
}
