// internal/core/services/warehouse_service_test.go
package services_test

import (
	"context"
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

type serviceMocks struct {
	uow     *mocks.MockUnitOfWork
	store   *mocks.MockTxStore
	reader  *mocks.MockWarehouseReader
	catalog *mocks.MockCatalogLookup
}

func newWarehouseService(t *testing.T) (*services.WarehouseService, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		uow:     mocks.NewMockUnitOfWork(ctrl),
		store:   mocks.NewMockTxStore(ctrl),
		reader:  mocks.NewMockWarehouseReader(ctrl),
		catalog: mocks.NewMockCatalogLookup(ctrl),
	}
	svc := services.NewWarehouseService(m.uow, m.reader, m.catalog, helpers.TestLogger())
	return svc, m
}

// passThroughUoW makes the mock unit of work run the transactional
// function against the mock store.
func (m *serviceMocks) passThroughUoW() {
	m.uow.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, ports.TxStore) error) error {
			return fn(ctx, m.store)
		})
}

func notFound(resource, id string) error {
	return &domain.NotFoundError{Resource: resource, ID: id}
}

func TestWarehouseService_ImportStock_NewLot(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()
	expiry := time.Now().AddDate(1, 0, 0)

	m.catalog.EXPECT().
		GetItemMaster(gomock.Any(), itemID).
		Return(helpers.CreateTestItemMaster(), nil)
	m.passThroughUoW()

	m.store.EXPECT().
		GetBatchByItemAndLotForUpdate(gomock.Any(), itemID, "LOT-A").
		Return(nil, notFound("batch", "LOT-A"))

	var created *domain.ItemBatch
	m.store.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.ItemBatch) error {
			created = b
			assert.Equal(t, itemID, b.ItemMasterID)
			assert.Equal(t, "LOT-A", b.LotNumber)
			assert.Equal(t, 0, b.QuantityOnHand)
			return nil
		})
	m.store.EXPECT().
		UpdateBatchQuantity(gomock.Any(), gomock.Any(), 20).
		Return(nil)
	m.store.EXPECT().
		AppendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.StorageTransaction) error {
			assert.Equal(t, domain.TransactionImport, txn.Type)
			assert.Equal(t, 20, txn.Quantity)
			assert.Equal(t, 1, txn.Direction)
			assert.True(t, txn.UnitPrice.Equal(decimal.NewFromFloat(4.50)))
			return nil
		})

	result, err := svc.ImportStock(context.Background(), ports.ImportRequest{
		Items: []ports.ImportLine{{
			ItemMasterID: itemID,
			LotNumber:    "LOT-A",
			Quantity:     20,
			ImportPrice:  decimal.NewFromFloat(4.50),
			ExpiryDate:   &expiry,
		}},
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, created.BatchID, result.Allocations[0].BatchID)
	assert.Equal(t, 20, result.Allocations[0].Remaining)
	assert.True(t, result.TotalValue.Equal(decimal.NewFromFloat(90.00)))
}

func TestWarehouseService_ImportStock_MergesExistingLot(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	existing := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "LOT-A"
		b.QuantityOnHand = 20
		b.ImportPrice = decimal.NewFromFloat(4.50)
	})

	m.catalog.EXPECT().
		GetItemMaster(gomock.Any(), itemID).
		Return(helpers.CreateTestItemMaster(), nil)
	m.passThroughUoW()

	m.store.EXPECT().
		GetBatchByItemAndLotForUpdate(gomock.Any(), itemID, "LOT-A").
		Return(existing, nil)
	m.store.EXPECT().
		UpdateBatchQuantity(gomock.Any(), existing.BatchID, 35).
		Return(nil)
	m.store.EXPECT().
		AppendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.StorageTransaction) error {
			// merged lots keep their original import price
			assert.True(t, txn.UnitPrice.Equal(decimal.NewFromFloat(4.50)))
			assert.Equal(t, 15, txn.Quantity)
			return nil
		})

	result, err := svc.ImportStock(context.Background(), ports.ImportRequest{
		Items: []ports.ImportLine{{
			ItemMasterID: itemID,
			LotNumber:    "LOT-A",
			Quantity:     15,
			ImportPrice:  decimal.NewFromFloat(5.00), // ignored for existing lot
		}},
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, 35, result.Allocations[0].Remaining)
}

func TestWarehouseService_ImportStock_PerLineNotes(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	withNote := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "LOT-A"
		b.QuantityOnHand = 10
	})
	withoutNote := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "LOT-B"
		b.QuantityOnHand = 10
	})

	m.catalog.EXPECT().
		GetItemMaster(gomock.Any(), itemID).
		Return(helpers.CreateTestItemMaster(), nil).
		Times(2)
	m.passThroughUoW()

	m.store.EXPECT().
		GetBatchByItemAndLotForUpdate(gomock.Any(), itemID, "LOT-A").
		Return(withNote, nil)
	m.store.EXPECT().
		GetBatchByItemAndLotForUpdate(gomock.Any(), itemID, "LOT-B").
		Return(withoutNote, nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	notesByLot := make(map[uuid.UUID]string)
	m.store.EXPECT().
		AppendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.StorageTransaction) error {
			notesByLot[txn.BatchID] = txn.Notes
			return nil
		}).
		Times(2)

	_, err := svc.ImportStock(context.Background(), ports.ImportRequest{
		Items: []ports.ImportLine{
			{ItemMasterID: itemID, LotNumber: "LOT-A", Quantity: 5, Notes: "short-dated, use first"},
			{ItemMasterID: itemID, LotNumber: "LOT-B", Quantity: 5},
		},
		PerformedBy: "nurse.kim",
		Notes:       "delivery 2026-08-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "short-dated, use first", notesByLot[withNote.BatchID])
	assert.Equal(t, "delivery 2026-08-31", notesByLot[withoutNote.BatchID], "lines without a note inherit the request note")
}

func TestWarehouseService_ImportStock_Validation(t *testing.T) {
	svc, _ := newWarehouseService(t)
	itemID := uuid.New()

	tests := []struct {
		name          string
		req           ports.ImportRequest
		errorContains string
	}{
		{
			name:          "empty_items",
			req:           ports.ImportRequest{PerformedBy: "nurse.kim"},
			errorContains: "items cannot be empty",
		},
		{
			name: "missing_performed_by",
			req: ports.ImportRequest{
				Items: []ports.ImportLine{{ItemMasterID: itemID, LotNumber: "L", Quantity: 1}},
			},
			errorContains: "performed_by is required",
		},
		{
			name: "blank_lot",
			req: ports.ImportRequest{
				Items:       []ports.ImportLine{{ItemMasterID: itemID, LotNumber: " ", Quantity: 1}},
				PerformedBy: "nurse.kim",
			},
			errorContains: "lot_number cannot be blank",
		},
		{
			name: "zero_quantity",
			req: ports.ImportRequest{
				Items:       []ports.ImportLine{{ItemMasterID: itemID, LotNumber: "L", Quantity: 0}},
				PerformedBy: "nurse.kim",
			},
			errorContains: "quantity must be positive",
		},
		{
			name: "negative_price",
			req: ports.ImportRequest{
				Items: []ports.ImportLine{{
					ItemMasterID: itemID, LotNumber: "L", Quantity: 1,
					ImportPrice: decimal.NewFromFloat(-1),
				}},
				PerformedBy: "nurse.kim",
			},
			errorContains: "import_price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportStock(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestWarehouseService_ImportStock_UnknownItem(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	m.catalog.EXPECT().
		GetItemMaster(gomock.Any(), itemID).
		Return(nil, notFound("item_master", itemID.String()))

	_, err := svc.ImportStock(context.Background(), ports.ImportRequest{
		Items:       []ports.ImportLine{{ItemMasterID: itemID, LotNumber: "L", Quantity: 5}},
		PerformedBy: "nurse.kim",
	})

	require.Error(t, err)
	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestWarehouseService_ExportStock_FEFOPicksEarliestFirst(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	soon := time.Now().AddDate(0, 1, 0)
	later := time.Now().AddDate(0, 6, 0)
	l1 := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "L1"
		b.ExpiryDate = &soon
		b.QuantityOnHand = 10
	})
	l2 := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "L2"
		b.ExpiryDate = &later
		b.QuantityOnHand = 20
	})

	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), []uuid.UUID{itemID}, nil).
		Return([]domain.ItemBatch{*l1, *l2}, nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), l1.BatchID, 0).Return(nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), l2.BatchID, 15).Return(nil)
	m.store.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 15}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
	require.Len(t, result.Allocations, 2)
	assert.Equal(t, "L1", result.Allocations[0].LotNumber)
	assert.Equal(t, 10, result.Allocations[0].Quantity)
	assert.Equal(t, "L2", result.Allocations[1].LotNumber)
	assert.Equal(t, 5, result.Allocations[1].Quantity)
}

func TestWarehouseService_ExportStock_InsufficientIsAllOrNothing(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	l1 := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.QuantityOnHand = 12
	})

	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), []uuid.UUID{itemID}, nil).
		Return([]domain.ItemBatch{*l1}, nil)
	// no UpdateBatchQuantity or AppendTransaction expected

	_, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 15}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})

	require.Error(t, err)
	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 15, insufficientErr.Requested)
	assert.Equal(t, 12, insufficientErr.Available)
}

func TestWarehouseService_ExportStock_SkipsExpiredBatches(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	expired := time.Now().AddDate(0, 0, -10)
	fresh := time.Now().AddDate(0, 6, 0)
	old := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "OLD"
		b.ExpiryDate = &expired
		b.QuantityOnHand = 50
	})
	good := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "GOOD"
		b.ExpiryDate = &fresh
		b.QuantityOnHand = 8
	})

	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), []uuid.UUID{itemID}, nil).
		Return([]domain.ItemBatch{*old, *good}, nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), good.BatchID, 3).Return(nil)
	m.store.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 5}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, "GOOD", result.Allocations[0].LotNumber)
}

func TestWarehouseService_ExportStock_DisposalAllowsExpired(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	expired := time.Now().AddDate(0, 0, -10)
	old := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "OLD"
		b.ExpiryDate = &expired
		b.QuantityOnHand = 50
	})

	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), []uuid.UUID{itemID}, nil).
		Return([]domain.ItemBatch{*old}, nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), old.BatchID, 45).Return(nil)
	m.store.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 5}},
		ExportType:  domain.ExportDisposal,
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
}

func TestWarehouseService_ExportStock_ExplicitBatch(t *testing.T) {
	svc, m := newWarehouseService(t)

	batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.QuantityOnHand = 10
	})

	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), nil, []uuid.UUID{batch.BatchID}).
		Return([]domain.ItemBatch{*batch}, nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), batch.BatchID, 6).Return(nil)
	m.store.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items:       []ports.ExportLine{{BatchID: &batch.BatchID, Quantity: 4}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, batch.BatchID, result.Allocations[0].BatchID)
	assert.Equal(t, 6, result.Allocations[0].Remaining)
}

func TestWarehouseService_ExportStock_ExplicitExpiredRejected(t *testing.T) {
	svc, m := newWarehouseService(t)

	expired := time.Now().AddDate(0, 0, -1)
	batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ExpiryDate = &expired
		b.QuantityOnHand = 10
	})

	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), nil, []uuid.UUID{batch.BatchID}).
		Return([]domain.ItemBatch{*batch}, nil)

	_, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items:       []ports.ExportLine{{BatchID: &batch.BatchID, Quantity: 4}},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})

	require.Error(t, err)
	var expiredErr *domain.ExpiredStockError
	require.ErrorAs(t, err, &expiredErr)
	assert.Equal(t, batch.BatchID, expiredErr.BatchID)
}

func TestWarehouseService_ExportStock_MixedLinesLockOnce(t *testing.T) {
	svc, m := newWarehouseService(t)
	itemID := uuid.New()

	soon := time.Now().AddDate(0, 1, 0)
	later := time.Now().AddDate(0, 6, 0)
	fefoBatch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = "L-FEFO"
		b.ExpiryDate = &soon
		b.QuantityOnHand = 10
	})
	explicit := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.LotNumber = "L-EXPLICIT"
		b.ExpiryDate = &later
		b.QuantityOnHand = 10
	})

	// All candidates must come from a single ordered lock call, so
	// concurrent exports with overlapping lines cannot acquire row
	// locks in opposite order.
	m.passThroughUoW()
	m.store.EXPECT().
		LockExportCandidates(gomock.Any(), []uuid.UUID{itemID}, []uuid.UUID{explicit.BatchID}).
		Return([]domain.ItemBatch{*fefoBatch, *explicit}, nil).
		Times(1)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), fefoBatch.BatchID, 4).Return(nil)
	m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), explicit.BatchID, 7).Return(nil)
	m.store.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := svc.ExportStock(context.Background(), ports.ExportRequest{
		Items: []ports.ExportLine{
			{ItemMasterID: &itemID, Quantity: 6},
			{BatchID: &explicit.BatchID, Quantity: 3},
		},
		ExportType:  domain.ExportUsage,
		PerformedBy: "nurse.kim",
	})

	require.NoError(t, err)
	require.Len(t, result.Allocations, 2)
	assert.Equal(t, "L-FEFO", result.Allocations[0].LotNumber)
	assert.Equal(t, 6, result.Allocations[0].Quantity)
	assert.Equal(t, "L-EXPLICIT", result.Allocations[1].LotNumber)
	assert.Equal(t, 3, result.Allocations[1].Quantity)
}

func TestWarehouseService_ExportStock_Validation(t *testing.T) {
	svc, _ := newWarehouseService(t)
	itemID := uuid.New()
	batchID := uuid.New()

	tests := []struct {
		name          string
		req           ports.ExportRequest
		errorContains string
	}{
		{
			name: "empty_items",
			req: ports.ExportRequest{
				ExportType:  domain.ExportUsage,
				PerformedBy: "nurse.kim",
			},
			errorContains: "items cannot be empty",
		},
		{
			name: "unknown_export_type",
			req: ports.ExportRequest{
				Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 1}},
				ExportType:  domain.ExportType("GIFT"),
				PerformedBy: "nurse.kim",
			},
			errorContains: "unknown export type",
		},
		{
			name: "both_item_and_batch",
			req: ports.ExportRequest{
				Items:       []ports.ExportLine{{ItemMasterID: &itemID, BatchID: &batchID, Quantity: 1}},
				ExportType:  domain.ExportUsage,
				PerformedBy: "nurse.kim",
			},
			errorContains: "exactly one of item_master_id or batch_id",
		},
		{
			name: "neither_item_nor_batch",
			req: ports.ExportRequest{
				Items:       []ports.ExportLine{{Quantity: 1}},
				ExportType:  domain.ExportUsage,
				PerformedBy: "nurse.kim",
			},
			errorContains: "exactly one of item_master_id or batch_id",
		},
		{
			name: "zero_quantity",
			req: ports.ExportRequest{
				Items:       []ports.ExportLine{{ItemMasterID: &itemID, Quantity: 0}},
				ExportType:  domain.ExportUsage,
				PerformedBy: "nurse.kim",
			},
			errorContains: "quantity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ExportStock(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestWarehouseService_AdjustStock(t *testing.T) {
	t.Run("count_down_writes_negative_delta", func(t *testing.T) {
		svc, m := newWarehouseService(t)
		batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
			b.QuantityOnHand = 30
		})

		m.passThroughUoW()
		m.store.EXPECT().GetBatchForUpdate(gomock.Any(), batch.BatchID).Return(batch, nil)
		m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), batch.BatchID, 27).Return(nil)
		m.store.EXPECT().
			AppendTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *domain.StorageTransaction) error {
				assert.Equal(t, domain.TransactionAdjust, txn.Type)
				assert.Equal(t, 3, txn.Quantity)
				assert.Equal(t, -1, txn.Direction)
				return nil
			})

		result, err := svc.AdjustStock(context.Background(), ports.AdjustRequest{
			BatchID:     batch.BatchID,
			NewQuantity: 27,
			PerformedBy: "nurse.kim",
			Notes:       "cycle count found 3 missing",
		})

		require.NoError(t, err)
		assert.Equal(t, -3, result.Transaction.SignedQuantity())
		assert.Equal(t, 27, result.Batch.QuantityOnHand)
	})

	t.Run("count_up_writes_positive_delta", func(t *testing.T) {
		svc, m := newWarehouseService(t)
		batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
			b.QuantityOnHand = 30
		})

		m.passThroughUoW()
		m.store.EXPECT().GetBatchForUpdate(gomock.Any(), batch.BatchID).Return(batch, nil)
		m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), batch.BatchID, 34).Return(nil)
		m.store.EXPECT().
			AppendTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *domain.StorageTransaction) error {
				assert.Equal(t, 4, txn.Quantity)
				assert.Equal(t, 1, txn.Direction)
				return nil
			})

		result, err := svc.AdjustStock(context.Background(), ports.AdjustRequest{
			BatchID:     batch.BatchID,
			NewQuantity: 34,
			PerformedBy: "nurse.kim",
			Notes:       "found misplaced box",
		})

		require.NoError(t, err)
		assert.Equal(t, 4, result.Transaction.SignedQuantity())
	})

	t.Run("blank_notes_rejected", func(t *testing.T) {
		svc, _ := newWarehouseService(t)

		_, err := svc.AdjustStock(context.Background(), ports.AdjustRequest{
			BatchID:     uuid.New(),
			NewQuantity: 5,
			PerformedBy: "nurse.kim",
			Notes:       "   ",
		})

		require.Error(t, err)
		var auditErr *domain.AuditRequirementError
		require.ErrorAs(t, err, &auditErr)
	})

	t.Run("unchanged_quantity_rejected", func(t *testing.T) {
		svc, m := newWarehouseService(t)
		batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
			b.QuantityOnHand = 30
		})

		m.passThroughUoW()
		m.store.EXPECT().GetBatchForUpdate(gomock.Any(), batch.BatchID).Return(batch, nil)

		_, err := svc.AdjustStock(context.Background(), ports.AdjustRequest{
			BatchID:     batch.BatchID,
			NewQuantity: 30,
			PerformedBy: "nurse.kim",
			Notes:       "recount",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "matches current quantity")
	})
}

func TestWarehouseService_DestroyStock(t *testing.T) {
	t.Run("writes_off_quantity", func(t *testing.T) {
		svc, m := newWarehouseService(t)
		batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
			b.QuantityOnHand = 10
			b.ImportPrice = decimal.NewFromFloat(2.00)
		})

		m.passThroughUoW()
		m.store.EXPECT().GetBatchForUpdate(gomock.Any(), batch.BatchID).Return(batch, nil)
		m.store.EXPECT().UpdateBatchQuantity(gomock.Any(), batch.BatchID, 7).Return(nil)
		m.store.EXPECT().
			AppendTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *domain.StorageTransaction) error {
				assert.Equal(t, domain.TransactionDestroy, txn.Type)
				assert.Equal(t, -1, txn.Direction)
				assert.True(t, txn.TotalValue.Equal(decimal.NewFromFloat(6.00)))
				return nil
			})

		result, err := svc.DestroyStock(context.Background(), ports.DestroyRequest{
			BatchID:     batch.BatchID,
			Quantity:    3,
			PerformedBy: "nurse.kim",
			Notes:       "water damage",
		})

		require.NoError(t, err)
		assert.Equal(t, 7, result.Batch.QuantityOnHand)
	})

	t.Run("insufficient_stock", func(t *testing.T) {
		svc, m := newWarehouseService(t)
		batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
			b.QuantityOnHand = 2
		})

		m.passThroughUoW()
		m.store.EXPECT().GetBatchForUpdate(gomock.Any(), batch.BatchID).Return(batch, nil)

		_, err := svc.DestroyStock(context.Background(), ports.DestroyRequest{
			BatchID:     batch.BatchID,
			Quantity:    5,
			PerformedBy: "nurse.kim",
			Notes:       "expired",
		})

		require.Error(t, err)
		var insufficientErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
	})

	t.Run("blank_notes_rejected", func(t *testing.T) {
		svc, _ := newWarehouseService(t)

		_, err := svc.DestroyStock(context.Background(), ports.DestroyRequest{
			BatchID:     uuid.New(),
			Quantity:    1,
			PerformedBy: "nurse.kim",
		})

		require.Error(t, err)
		var auditErr *domain.AuditRequirementError
		require.ErrorAs(t, err, &auditErr)
	})
}

func TestWarehouseService_GetStockSummary(t *testing.T) {
	svc, m := newWarehouseService(t)

	minStock := 25
	item := helpers.CreateTestItemMaster(func(i *domain.ItemMaster) {
		i.MinStockLevel = &minStock
	})

	m.catalog.EXPECT().
		GetItemMaster(gomock.Any(), item.ItemMasterID).
		Return(item, nil)
	m.reader.EXPECT().
		GetStockSummary(gomock.Any(), item.ItemMasterID).
		Return(&ports.StockSummary{
			ItemMasterID:  item.ItemMasterID,
			TotalQuantity: 18,
			BatchCount:    2,
			TotalValue:    decimal.NewFromFloat(81.00),
		}, nil)

	summary, err := svc.GetStockSummary(context.Background(), item.ItemMasterID)

	require.NoError(t, err)
	assert.Equal(t, item.ItemName, summary.ItemName)
	assert.True(t, summary.BelowMinimum)
}

func TestWarehouseService_ListTransactions_PaginationDefaults(t *testing.T) {
	svc, m := newWarehouseService(t)

	m.reader.EXPECT().
		FindTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.HistoryParams) ([]domain.StorageTransaction, int64, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 50, params.PageSize)
			return []domain.StorageTransaction{*helpers.CreateTestTransaction()}, 101, nil
		})

	result, err := svc.ListTransactions(context.Background(), ports.HistoryParams{})

	require.NoError(t, err)
	assert.Equal(t, int64(101), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
}

func TestWarehouseService_ListExpiringBatches_NegativeDays(t *testing.T) {
	svc, _ := newWarehouseService(t)

	_, err := svc.ListExpiringBatches(context.Background(), -1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "days cannot be negative")
}
