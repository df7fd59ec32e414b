//go:build integration
// +build integration

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/clinic-stock/internal/adapters/db"
	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
	"github.com/ammerola/clinic-stock/test/helpers"
)

type WarehouseRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	repo   *db.WarehouseRepository
	ctx    context.Context
}

func (s *WarehouseRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewWarehouseRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *WarehouseRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

// seedItem inserts a catalog entry and returns its id
func (s *WarehouseRepositorySuite) seedItem(overrides ...func(*domain.ItemMaster)) *domain.ItemMaster {
	item := helpers.CreateTestItemMaster(overrides...)
	helpers.SeedItemMaster(s.T(), s.testDB.PgxPool, item)
	return item
}

// seedStockedBatch inserts a batch for the item with the given lot,
// quantity and expiry
func (s *WarehouseRepositorySuite) seedStockedBatch(itemID uuid.UUID, lot string, qty int, expiry *time.Time) *domain.ItemBatch {
	batch := helpers.CreateTestBatch(func(b *domain.ItemBatch) {
		b.ItemMasterID = itemID
		b.LotNumber = lot
		b.QuantityOnHand = qty
		b.ExpiryDate = expiry
	})
	helpers.SeedBatch(s.T(), s.testDB.PgxPool, batch)
	return batch
}

func (s *WarehouseRepositorySuite) daysFromNow(days int) *time.Time {
	d := time.Now().AddDate(0, 0, days)
	return &d
}

func (s *WarehouseRepositorySuite) TestWithinTransaction_ImportFlow() {
	item := s.seedItem()

	batch := domain.NewItemBatch(item.ItemMasterID, "LOT-IT-001", decimal.NewFromFloat(4.50), s.daysFromNow(180))
	batch.QuantityOnHand = 100

	var txnID uuid.UUID
	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		if err := store.InsertBatch(ctx, batch); err != nil {
			return err
		}
		txn, err := domain.NewStorageTransaction(batch.BatchID, domain.TransactionImport, 100, 1,
			batch.ImportPrice, "integration.test", "", time.Time{})
		if err != nil {
			return err
		}
		txnID = txn.TransactionID
		return store.AppendTransaction(ctx, txn)
	})
	s.NoError(err)

	saved, err := s.repo.GetBatchByID(s.ctx, batch.BatchID)
	s.NoError(err)
	s.Equal("LOT-IT-001", saved.LotNumber)
	s.Equal(100, saved.QuantityOnHand)
	s.True(saved.ImportPrice.Equal(decimal.NewFromFloat(4.50)))

	txn, err := s.repo.GetTransactionByID(s.ctx, txnID)
	s.NoError(err)
	s.Equal(domain.TransactionImport, txn.Type)
	s.Equal(100, txn.SignedQuantity())
	s.True(txn.TotalValue.Equal(decimal.NewFromFloat(450.00)))
}

func (s *WarehouseRepositorySuite) TestWithinTransaction_RollsBackOnError() {
	item := s.seedItem()

	batch := domain.NewItemBatch(item.ItemMasterID, "LOT-RB-001", decimal.NewFromFloat(1.00), nil)
	batch.QuantityOnHand = 10

	sentinel := errors.New("boom")
	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		if err := store.InsertBatch(ctx, batch); err != nil {
			return err
		}
		return sentinel
	})
	s.ErrorIs(err, sentinel)

	_, err = s.repo.GetBatchByID(s.ctx, batch.BatchID)
	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *WarehouseRepositorySuite) TestGetBatchForUpdate_NotFound() {
	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		_, err := store.GetBatchForUpdate(ctx, uuid.New())
		return err
	})

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
	s.Equal("batch", notFound.Resource)
}

func (s *WarehouseRepositorySuite) TestGetBatchByItemAndLotForUpdate() {
	item := s.seedItem()
	seeded := s.seedStockedBatch(item.ItemMasterID, "LOT-NK-001", 25, s.daysFromNow(90))

	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		found, err := store.GetBatchByItemAndLotForUpdate(ctx, item.ItemMasterID, "LOT-NK-001")
		if err != nil {
			return err
		}
		s.Equal(seeded.BatchID, found.BatchID)
		s.Equal(25, found.QuantityOnHand)

		_, err = store.GetBatchByItemAndLotForUpdate(ctx, item.ItemMasterID, "LOT-NEVER-SEEN")
		var notFound *domain.NotFoundError
		s.ErrorAs(err, &notFound)
		return nil
	})
	s.NoError(err)
}

func (s *WarehouseRepositorySuite) TestLockExportCandidates_ExpiryOrder() {
	item := s.seedItem()

	far := s.seedStockedBatch(item.ItemMasterID, "LOT-FAR", 50, s.daysFromNow(365))
	near := s.seedStockedBatch(item.ItemMasterID, "LOT-NEAR", 30, s.daysFromNow(7))
	noExpiry := s.seedStockedBatch(item.ItemMasterID, "LOT-NOEXP", 20, nil)
	s.seedStockedBatch(item.ItemMasterID, "LOT-EMPTY", 0, s.daysFromNow(1))

	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		batches, err := store.LockExportCandidates(ctx, []uuid.UUID{item.ItemMasterID}, nil)
		if err != nil {
			return err
		}

		s.Len(batches, 3, "depleted batches must not be offered for picking")
		s.Equal(near.BatchID, batches[0].BatchID, "earliest expiry picked first")
		s.Equal(far.BatchID, batches[1].BatchID)
		s.Equal(noExpiry.BatchID, batches[2].BatchID, "undated batches sort last")
		return nil
	})
	s.NoError(err)
}

func (s *WarehouseRepositorySuite) TestLockExportCandidates_NamedBatchesInGlobalOrder() {
	item := s.seedItem()

	far := s.seedStockedBatch(item.ItemMasterID, "LOT-FAR", 50, s.daysFromNow(365))
	near := s.seedStockedBatch(item.ItemMasterID, "LOT-NEAR", 30, s.daysFromNow(7))
	s.seedStockedBatch(item.ItemMasterID, "LOT-OTHER", 10, s.daysFromNow(30))

	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		batches, err := store.LockExportCandidates(ctx, nil, []uuid.UUID{far.BatchID, near.BatchID})
		if err != nil {
			return err
		}

		s.Len(batches, 2)
		s.Equal(near.BatchID, batches[0].BatchID)
		s.Equal(far.BatchID, batches[1].BatchID)
		return nil
	})
	s.NoError(err)
}

func (s *WarehouseRepositorySuite) TestLockExportCandidates_MixedLinesOneOrderedSet() {
	itemA := s.seedItem()
	itemB := s.seedItem()

	aNear := s.seedStockedBatch(itemA.ItemMasterID, "LOT-A-NEAR", 30, s.daysFromNow(7))
	aFar := s.seedStockedBatch(itemA.ItemMasterID, "LOT-A-FAR", 50, s.daysFromNow(365))
	bMid := s.seedStockedBatch(itemB.ItemMasterID, "LOT-B-MID", 40, s.daysFromNow(90))
	bDrained := s.seedStockedBatch(itemB.ItemMasterID, "LOT-B-EMPTY", 0, s.daysFromNow(14))

	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		batches, err := store.LockExportCandidates(ctx,
			[]uuid.UUID{itemA.ItemMasterID},
			[]uuid.UUID{bMid.BatchID, bDrained.BatchID})
		if err != nil {
			return err
		}

		// FEFO candidates and explicitly named batches come back as one
		// set in expiry order. A named batch is returned even when it
		// holds no stock, so explicit lines can report it as such.
		s.Len(batches, 4)
		s.Equal(aNear.BatchID, batches[0].BatchID)
		s.Equal(bDrained.BatchID, batches[1].BatchID)
		s.Equal(bMid.BatchID, batches[2].BatchID)
		s.Equal(aFar.BatchID, batches[3].BatchID)
		return nil
	})
	s.NoError(err)
}

func (s *WarehouseRepositorySuite) TestUpdateBatchQuantity() {
	item := s.seedItem()
	batch := s.seedStockedBatch(item.ItemMasterID, "LOT-UQ-001", 40, s.daysFromNow(60))

	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		return store.UpdateBatchQuantity(ctx, batch.BatchID, 15)
	})
	s.NoError(err)

	saved, err := s.repo.GetBatchByID(s.ctx, batch.BatchID)
	s.NoError(err)
	s.Equal(15, saved.QuantityOnHand)
	s.True(saved.UpdatedAt.After(batch.UpdatedAt))

	err = s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		return store.UpdateBatchQuantity(ctx, uuid.New(), 5)
	})
	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *WarehouseRepositorySuite) TestLedgerRejectsUpdateAndDelete() {
	item := s.seedItem()
	batch := s.seedStockedBatch(item.ItemMasterID, "LOT-AO-001", 20, s.daysFromNow(30))

	txn := helpers.CreateTestTransaction(func(t *domain.StorageTransaction) {
		t.BatchID = batch.BatchID
	})
	helpers.SeedTransaction(s.T(), s.testDB.PgxPool, txn)

	_, err := s.testDB.PgxPool.Exec(s.ctx,
		`UPDATE storage_transactions SET quantity = 999 WHERE transaction_id = $1`, txn.TransactionID)
	s.Error(err)
	s.Contains(err.Error(), "append-only")

	_, err = s.testDB.PgxPool.Exec(s.ctx,
		`DELETE FROM storage_transactions WHERE transaction_id = $1`, txn.TransactionID)
	s.Error(err)
	s.Contains(err.Error(), "append-only")

	// The row is untouched
	saved, err := s.repo.GetTransactionByID(s.ctx, txn.TransactionID)
	s.NoError(err)
	s.Equal(txn.Quantity, saved.Quantity)
}

func (s *WarehouseRepositorySuite) TestFindBatchesByItem() {
	item := s.seedItem()
	other := s.seedItem(func(i *domain.ItemMaster) { i.ItemName = "Gauze Pads 4x4" })

	s.seedStockedBatch(item.ItemMasterID, "LOT-A", 10, s.daysFromNow(10))
	s.seedStockedBatch(item.ItemMasterID, "LOT-B", 0, s.daysFromNow(20))
	s.seedStockedBatch(other.ItemMasterID, "LOT-C", 5, s.daysFromNow(5))

	stocked, err := s.repo.FindBatchesByItem(s.ctx, item.ItemMasterID, false)
	s.NoError(err)
	s.Len(stocked, 1)
	s.Equal("LOT-A", stocked[0].LotNumber)

	all, err := s.repo.FindBatchesByItem(s.ctx, item.ItemMasterID, true)
	s.NoError(err)
	s.Len(all, 2)
	s.Equal("LOT-A", all[0].LotNumber, "picking order even when empties are included")
}

func (s *WarehouseRepositorySuite) TestFindExpiringAndExpiredBatches() {
	item := s.seedItem()

	expired := s.seedStockedBatch(item.ItemMasterID, "LOT-EXPIRED", 5, s.daysFromNow(-3))
	soon := s.seedStockedBatch(item.ItemMasterID, "LOT-SOON", 10, s.daysFromNow(10))
	s.seedStockedBatch(item.ItemMasterID, "LOT-LATER", 10, s.daysFromNow(120))
	s.seedStockedBatch(item.ItemMasterID, "LOT-NOEXP", 10, nil)
	s.seedStockedBatch(item.ItemMasterID, "LOT-DRAINED", 0, s.daysFromNow(-1))

	expiring, err := s.repo.FindExpiringBatches(s.ctx, time.Now().AddDate(0, 0, 30))
	s.NoError(err)
	s.Len(expiring, 2, "already-expired stock still needs attention")
	s.Equal(expired.BatchID, expiring[0].BatchID)
	s.Equal(soon.BatchID, expiring[1].BatchID)

	expiredBatches, err := s.repo.FindExpiredBatches(s.ctx, time.Now())
	s.NoError(err)
	s.Len(expiredBatches, 1)
	s.Equal(expired.BatchID, expiredBatches[0].BatchID)
}

func (s *WarehouseRepositorySuite) TestGetStockSummary() {
	item := s.seedItem()

	near := s.seedStockedBatch(item.ItemMasterID, "LOT-A", 30, s.daysFromNow(7))
	s.seedStockedBatch(item.ItemMasterID, "LOT-B", 70, s.daysFromNow(90))
	s.seedStockedBatch(item.ItemMasterID, "LOT-C", 0, s.daysFromNow(1))

	summary, err := s.repo.GetStockSummary(s.ctx, item.ItemMasterID)
	s.NoError(err)
	s.Equal(item.ItemMasterID, summary.ItemMasterID)
	s.Equal(100, summary.TotalQuantity)
	s.Equal(2, summary.BatchCount, "empty batches do not count as positions")
	s.NotNil(summary.EarliestExpiry)
	s.Equal(near.ExpiryDate.Format("2006-01-02"), summary.EarliestExpiry.Format("2006-01-02"))
	s.True(summary.TotalValue.Equal(decimal.NewFromFloat(450.00)), "100 units at 4.50")

	empty, err := s.repo.GetStockSummary(s.ctx, uuid.New())
	s.NoError(err)
	s.Equal(0, empty.TotalQuantity)
	s.Equal(0, empty.BatchCount)
	s.Nil(empty.EarliestExpiry)
}

func (s *WarehouseRepositorySuite) TestFindLowStockItems() {
	low := s.seedItem(func(i *domain.ItemMaster) {
		i.ItemName = "Anesthetic Cartridge"
		min := 50
		i.MinStockLevel = &min
	})
	healthy := s.seedItem(func(i *domain.ItemMaster) {
		i.ItemName = "Gauze Pads 4x4"
		min := 5
		i.MinStockLevel = &min
	})
	s.seedItem(func(i *domain.ItemMaster) {
		i.ItemName = "Untracked Item"
		i.MinStockLevel = nil
	})

	s.seedStockedBatch(low.ItemMasterID, "LOT-LOW", 20, s.daysFromNow(60))
	s.seedStockedBatch(healthy.ItemMasterID, "LOT-OK", 100, s.daysFromNow(60))

	summaries, err := s.repo.FindLowStockItems(s.ctx)
	s.NoError(err)
	s.Len(summaries, 1)
	s.Equal(low.ItemMasterID, summaries[0].ItemMasterID)
	s.Equal("Anesthetic Cartridge", summaries[0].ItemName)
	s.Equal(20, summaries[0].TotalQuantity)
	s.NotNil(summaries[0].MinStockLevel)
	s.Equal(50, *summaries[0].MinStockLevel)
	s.True(summaries[0].BelowMinimum)
}

func (s *WarehouseRepositorySuite) TestFindTransactions_FiltersAndPagination() {
	item := s.seedItem()
	batch := s.seedStockedBatch(item.ItemMasterID, "LOT-TX-001", 100, s.daysFromNow(180))
	otherBatch := s.seedStockedBatch(item.ItemMasterID, "LOT-TX-002", 50, s.daysFromNow(90))

	base := time.Now().Add(-96 * time.Hour)
	seed := func(target uuid.UUID, typ domain.TransactionType, direction int, hoursAfter int, notes string) {
		txn := helpers.CreateTestTransaction(func(t *domain.StorageTransaction) {
			t.BatchID = target
			t.Type = typ
			t.Direction = direction
			t.Notes = notes
			t.TransactionDate = base.Add(time.Duration(hoursAfter) * time.Hour)
		})
		helpers.SeedTransaction(s.T(), s.testDB.PgxPool, txn)
	}

	seed(batch.BatchID, domain.TransactionImport, 1, 0, "")
	seed(batch.BatchID, domain.TransactionExport, -1, 24, "")
	seed(batch.BatchID, domain.TransactionExport, -1, 48, "")
	seed(otherBatch.BatchID, domain.TransactionImport, 1, 60, "")
	seed(otherBatch.BatchID, domain.TransactionDestroy, -1, 72, "expired on shelf")

	// No filters, newest first
	all, total, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{Page: 1, PageSize: 50})
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(all, 5)
	s.Equal(domain.TransactionDestroy, all[0].Type)

	// Filter by type
	exportType := domain.TransactionExport
	exports, total, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{
		Type: &exportType, Page: 1, PageSize: 50,
	})
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(exports, 2)

	// Filter by batch
	byBatch, total, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{
		BatchID: &otherBatch.BatchID, Page: 1, PageSize: 50,
	})
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(byBatch, 2)

	// Filter by item joins through batches
	byItem, total, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{
		ItemMasterID: &item.ItemMasterID, Page: 1, PageSize: 50,
	})
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(byItem, 5)

	// Date window
	from := base.Add(12 * time.Hour)
	to := base.Add(50 * time.Hour)
	windowed, total, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{
		From: &from, To: &to, Page: 1, PageSize: 50,
	})
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(windowed, 2)

	// Pagination preserves the unpaginated total
	page2, total, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{Page: 2, PageSize: 2})
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(page2, 2)

	// Ascending order starts at the oldest entry
	asc, _, err := s.repo.FindTransactions(s.ctx, ports.HistoryParams{
		SortOrder: "asc", Page: 1, PageSize: 1,
	})
	s.NoError(err)
	s.Len(asc, 1)
	s.Equal(domain.TransactionImport, asc[0].Type)
	s.Equal(batch.BatchID, asc[0].BatchID)
}

func (s *WarehouseRepositorySuite) TestStats() {
	item := s.seedItem()

	s.seedStockedBatch(item.ItemMasterID, "LOT-ACTIVE", 40, s.daysFromNow(120))
	s.seedStockedBatch(item.ItemMasterID, "LOT-SOON", 10, s.daysFromNow(15))
	s.seedStockedBatch(item.ItemMasterID, "LOT-EXPIRED", 5, s.daysFromNow(-10))
	drained := s.seedStockedBatch(item.ItemMasterID, "LOT-DRAINED", 0, s.daysFromNow(30))

	txn := helpers.CreateTestTransaction(func(t *domain.StorageTransaction) {
		t.BatchID = drained.BatchID
	})
	helpers.SeedTransaction(s.T(), s.testDB.PgxPool, txn)

	stats, err := s.repo.Stats(s.ctx)
	s.NoError(err)
	s.EqualValues(1, stats.TotalItems)
	s.EqualValues(4, stats.TotalBatches)
	s.EqualValues(2, stats.ActiveBatches)
	s.EqualValues(1, stats.ExpiredBatches)
	s.EqualValues(1, stats.DepletedBatches)
	s.EqualValues(2, stats.ExpiringSoon, "expired stock still inside the 30-day window counts")
	s.EqualValues(0, stats.LowStockItems, "55 on hand against a minimum of 10")
	s.True(stats.TotalStockValue.Equal(decimal.NewFromFloat(247.50)), "55 units at 4.50")
	s.EqualValues(1, stats.TransactionsToday)
}

func (s *WarehouseRepositorySuite) TestLossReport() {
	item := s.seedItem(func(i *domain.ItemMaster) { i.ItemName = "Anesthetic Cartridge" })
	batch := s.seedStockedBatch(item.ItemMasterID, "LOT-LR-001", 100, s.daysFromNow(30))

	seed := func(typ domain.TransactionType, direction, qty int, notes string) {
		txn := helpers.CreateTestTransaction(func(t *domain.StorageTransaction) {
			t.BatchID = batch.BatchID
			t.Type = typ
			t.Direction = direction
			t.Quantity = qty
			t.TotalValue = decimal.NewFromFloat(4.50).Mul(decimal.NewFromInt(int64(qty)))
			t.Notes = notes
		})
		helpers.SeedTransaction(s.T(), s.testDB.PgxPool, txn)
	}

	seed(domain.TransactionDestroy, -1, 8, "expired on shelf")
	seed(domain.TransactionDestroy, -1, 2, "dropped tray")
	seed(domain.TransactionExport, -1, 30, "")

	report, err := s.repo.LossReport(s.ctx, time.Now().AddDate(0, -1, 0), time.Now().AddDate(0, 0, 1))
	s.NoError(err)
	s.Equal(10, report.DestroyedQty, "exports are consumption, not loss")
	s.True(report.DestroyedValue.Equal(decimal.NewFromFloat(45.00)))
	s.Len(report.Lines, 1)
	s.Equal("Anesthetic Cartridge", report.Lines[0].ItemName)

	// Outside the window nothing is counted
	empty, err := s.repo.LossReport(s.ctx, time.Now().AddDate(0, -2, 0), time.Now().AddDate(0, -1, 0))
	s.NoError(err)
	s.Equal(0, empty.DestroyedQty)
	s.Empty(empty.Lines)
}

// TestConservation drives an import and an export through the store and
// checks that the batch quantity always equals the signed ledger sum.
func (s *WarehouseRepositorySuite) TestConservation() {
	item := s.seedItem()

	batch := domain.NewItemBatch(item.ItemMasterID, "LOT-CONS-001", decimal.NewFromFloat(2.25), s.daysFromNow(90))
	batch.QuantityOnHand = 80

	err := s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		if err := store.InsertBatch(ctx, batch); err != nil {
			return err
		}
		txn, err := domain.NewStorageTransaction(batch.BatchID, domain.TransactionImport, 80, 1,
			batch.ImportPrice, "integration.test", "", time.Time{})
		if err != nil {
			return err
		}
		return store.AppendTransaction(ctx, txn)
	})
	s.NoError(err)

	err = s.repo.WithinTransaction(s.ctx, func(ctx context.Context, store ports.TxStore) error {
		locked, err := store.GetBatchForUpdate(ctx, batch.BatchID)
		if err != nil {
			return err
		}
		if err := store.UpdateBatchQuantity(ctx, locked.BatchID, locked.QuantityOnHand-30); err != nil {
			return err
		}
		txn, err := domain.NewStorageTransaction(locked.BatchID, domain.TransactionExport, 30, -1,
			locked.ImportPrice, "integration.test", "", time.Time{})
		if err != nil {
			return err
		}
		return store.AppendTransaction(ctx, txn)
	})
	s.NoError(err)

	var onHand, ledgerSum int
	err = s.testDB.PgxPool.QueryRow(s.ctx, `
		SELECT b.quantity_on_hand, COALESCE(SUM(t.quantity * t.direction), 0)
		FROM item_batches b
		LEFT JOIN storage_transactions t ON t.batch_id = b.batch_id
		WHERE b.batch_id = $1
		GROUP BY b.quantity_on_hand
	`, batch.BatchID).Scan(&onHand, &ledgerSum)
	s.NoError(err)
	s.Equal(50, onHand)
	s.Equal(onHand, ledgerSum)
}

func TestWarehouseRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(WarehouseRepositorySuite))
}
