// internal/adapters/db/warehouse_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

const batchColumns = `batch_id, item_master_id, lot_number, expiry_date, quantity_on_hand, import_price, created_at, updated_at`

const transactionColumns = `transaction_id, batch_id, type, quantity, direction, unit_price, total_value, performed_by, notes, transaction_date, created_at`

// WarehouseRepository implements the warehouse persistence ports on
// PostgreSQL. Writes go through WithinTransaction; reads run on the
// pool without locks.
type WarehouseRepository struct {
	db     *Database
	logger *slog.Logger
}

var (
	_ ports.UnitOfWork      = (*WarehouseRepository)(nil)
	_ ports.WarehouseReader = (*WarehouseRepository)(nil)
)

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *Database, logger *slog.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "warehouse")),
	}
}

// WithinTransaction runs fn inside a single database transaction,
// handing it a TxStore bound to that transaction.
func (r *WarehouseRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store ports.TxStore) error) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(ctx, &txStore{tx: tx, logger: r.logger})
	})
}

// txStore implements ports.TxStore on a pgx transaction
type txStore struct {
	tx     pgx.Tx
	logger *slog.Logger
}

func (s *txStore) GetBatchForUpdate(ctx context.Context, batchID uuid.UUID) (*domain.ItemBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM item_batches WHERE batch_id = $1 FOR UPDATE`

	batch, err := scanBatch(s.tx.QueryRow(ctx, query, batchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
		}
		return nil, fmt.Errorf("failed to lock batch: %w", err)
	}
	return batch, nil
}

func (s *txStore) GetBatchByItemAndLotForUpdate(ctx context.Context, itemMasterID uuid.UUID, lotNumber string) (*domain.ItemBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM item_batches WHERE item_master_id = $1 AND lot_number = $2 FOR UPDATE`

	batch, err := scanBatch(s.tx.QueryRow(ctx, query, itemMasterID, lotNumber))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &domain.NotFoundError{Resource: "batch", ID: lotNumber}
		}
		return nil, fmt.Errorf("failed to lock batch by lot: %w", err)
	}
	return batch, nil
}

// LockExportCandidates locks every batch an export request may touch
// in FEFO order. A single statement means a single lock acquisition
// order across the whole candidate set, so concurrent exports cannot
// acquire overlapping row locks in opposite order.
func (s *txStore) LockExportCandidates(ctx context.Context, itemMasterIDs, batchIDs []uuid.UUID) ([]domain.ItemBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM item_batches
		WHERE (item_master_id = ANY($1) AND quantity_on_hand > 0)
		   OR batch_id = ANY($2)
		ORDER BY expiry_date ASC NULLS LAST, batch_id
		FOR UPDATE`

	rows, err := s.tx.Query(ctx, query, itemMasterIDs, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock export candidates: %w", err)
	}
	defer rows.Close()

	return scanBatches(rows)
}

func (s *txStore) InsertBatch(ctx context.Context, batch *domain.ItemBatch) error {
	query := `
		INSERT INTO item_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.tx.Exec(ctx, query,
		batch.BatchID, batch.ItemMasterID, batch.LotNumber, batch.ExpiryDate,
		batch.QuantityOnHand, batch.ImportPrice, batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	s.logger.DebugContext(ctx, "batch created",
		slog.String("batch_id", batch.BatchID.String()),
		slog.String("lot_number", batch.LotNumber))

	return nil
}

func (s *txStore) UpdateBatchQuantity(ctx context.Context, batchID uuid.UUID, quantity int) error {
	query := `UPDATE item_batches SET quantity_on_hand = $2, updated_at = $3 WHERE batch_id = $1`

	tag, err := s.tx.Exec(ctx, query, batchID, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update batch quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
	}
	return nil
}

// AppendTransaction writes one ledger entry. There is no matching
// update or delete; the storage_transactions table also carries a
// trigger rejecting both.
func (s *txStore) AppendTransaction(ctx context.Context, txn *domain.StorageTransaction) error {
	query := `
		INSERT INTO storage_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.tx.Exec(ctx, query,
		txn.TransactionID, txn.BatchID, txn.Type, txn.Quantity, txn.Direction,
		txn.UnitPrice, txn.TotalValue, txn.PerformedBy, nullableString(txn.Notes),
		txn.TransactionDate, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	s.logger.DebugContext(ctx, "ledger entry appended",
		slog.String("transaction_id", txn.TransactionID.String()),
		slog.String("type", string(txn.Type)),
		slog.Int("signed_quantity", txn.SignedQuantity()))

	return nil
}

// GetBatchByID retrieves a batch without locking
func (r *WarehouseRepository) GetBatchByID(ctx context.Context, batchID uuid.UUID) (*domain.ItemBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM item_batches WHERE batch_id = $1`

	batch, err := scanBatch(r.db.QueryRow(ctx, query, batchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &domain.NotFoundError{Resource: "batch", ID: batchID.String()}
		}
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}
	return batch, nil
}

// FindBatchesByItem returns an item's batches in picking order
func (r *WarehouseRepository) FindBatchesByItem(ctx context.Context, itemMasterID uuid.UUID, includeEmpty bool) ([]domain.ItemBatch, error) {
	qb := squirrel.Select(
		"batch_id", "item_master_id", "lot_number", "expiry_date",
		"quantity_on_hand", "import_price", "created_at", "updated_at",
	).From("item_batches").
		Where(squirrel.Eq{"item_master_id": itemMasterID}).
		OrderBy("expiry_date ASC NULLS LAST", "batch_id").
		PlaceholderFormat(squirrel.Dollar)

	if !includeEmpty {
		qb = qb.Where("quantity_on_hand > 0")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	return scanBatches(rows)
}

// FindExpiringBatches returns stocked batches expiring on or before
// the cutoff date, including any already expired.
func (r *WarehouseRepository) FindExpiringBatches(ctx context.Context, cutoff time.Time) ([]domain.ItemBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM item_batches
		WHERE expiry_date IS NOT NULL
		  AND expiry_date <= $1
		  AND quantity_on_hand > 0
		ORDER BY expiry_date ASC, batch_id`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query expiring batches: %w", err)
	}
	defer rows.Close()

	return scanBatches(rows)
}

// FindExpiredBatches returns stocked batches whose expiry date lies
// strictly before the given day.
func (r *WarehouseRepository) FindExpiredBatches(ctx context.Context, asOf time.Time) ([]domain.ItemBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM item_batches
		WHERE expiry_date IS NOT NULL
		  AND expiry_date < $1::date
		  AND quantity_on_hand > 0
		ORDER BY expiry_date ASC, batch_id`

	rows, err := r.db.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired batches: %w", err)
	}
	defer rows.Close()

	return scanBatches(rows)
}

// GetStockSummary aggregates an item's position across its batches
func (r *WarehouseRepository) GetStockSummary(ctx context.Context, itemMasterID uuid.UUID) (*ports.StockSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity_on_hand), 0),
			COUNT(*) FILTER (WHERE quantity_on_hand > 0),
			MIN(expiry_date) FILTER (WHERE quantity_on_hand > 0),
			COALESCE(SUM(quantity_on_hand * import_price), 0)
		FROM item_batches
		WHERE item_master_id = $1`

	summary := &ports.StockSummary{ItemMasterID: itemMasterID}
	err := r.db.QueryRow(ctx, query, itemMasterID).Scan(
		&summary.TotalQuantity,
		&summary.BatchCount,
		&summary.EarliestExpiry,
		&summary.TotalValue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize stock: %w", err)
	}
	return summary, nil
}

// FindLowStockItems returns catalog items whose total stock sits below
// their configured minimum.
func (r *WarehouseRepository) FindLowStockItems(ctx context.Context) ([]ports.StockSummary, error) {
	query := `
		SELECT
			im.item_master_id,
			im.item_name,
			im.min_stock_level,
			COALESCE(SUM(b.quantity_on_hand), 0) AS total_quantity,
			COUNT(b.batch_id) FILTER (WHERE b.quantity_on_hand > 0),
			COALESCE(SUM(b.quantity_on_hand * b.import_price), 0)
		FROM item_masters im
		LEFT JOIN item_batches b ON b.item_master_id = im.item_master_id
		WHERE im.min_stock_level IS NOT NULL
		GROUP BY im.item_master_id, im.item_name, im.min_stock_level
		HAVING COALESCE(SUM(b.quantity_on_hand), 0) < im.min_stock_level
		ORDER BY im.item_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock items: %w", err)
	}
	defer rows.Close()

	var summaries []ports.StockSummary
	for rows.Next() {
		s := ports.StockSummary{BelowMinimum: true}
		if err := rows.Scan(
			&s.ItemMasterID, &s.ItemName, &s.MinStockLevel,
			&s.TotalQuantity, &s.BatchCount, &s.TotalValue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan low stock row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return summaries, nil
}

// GetTransactionByID retrieves a single ledger entry
func (r *WarehouseRepository) GetTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.StorageTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM storage_transactions WHERE transaction_id = $1`

	txn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &domain.NotFoundError{Resource: "transaction", ID: transactionID.String()}
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return txn, nil
}

// FindTransactions returns a filtered, paginated slice of the ledger
// together with the unpaginated total.
func (r *WarehouseRepository) FindTransactions(ctx context.Context, params ports.HistoryParams) ([]domain.StorageTransaction, int64, error) {
	base := squirrel.Select().
		From("storage_transactions t").
		PlaceholderFormat(squirrel.Dollar)

	if params.ItemMasterID != nil {
		base = base.Join("item_batches b ON b.batch_id = t.batch_id").
			Where(squirrel.Eq{"b.item_master_id": *params.ItemMasterID})
	}
	if params.BatchID != nil {
		base = base.Where(squirrel.Eq{"t.batch_id": *params.BatchID})
	}
	if params.Type != nil {
		base = base.Where(squirrel.Eq{"t.type": *params.Type})
	}
	if params.PerformedBy != "" {
		base = base.Where(squirrel.Eq{"t.performed_by": params.PerformedBy})
	}
	if params.From != nil {
		base = base.Where(squirrel.GtOrEq{"t.transaction_date": *params.From})
	}
	if params.To != nil {
		base = base.Where(squirrel.LtOrEq{"t.transaction_date": *params.To})
	}

	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	direction := "DESC"
	if params.SortOrder == "asc" {
		direction = "ASC"
	}

	qb := base.Columns(
		"t.transaction_id", "t.batch_id", "t.type", "t.quantity", "t.direction",
		"t.unit_price", "t.total_value", "t.performed_by", "t.notes",
		"t.transaction_date", "t.created_at",
	).
		OrderBy(fmt.Sprintf("t.transaction_date %s, t.created_at %s", direction, direction)).
		Limit(uint64(params.PageSize)).
		Offset(uint64((params.Page - 1) * params.PageSize))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.StorageTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return transactions, totalCount, nil
}

// Stats returns the warehouse-wide dashboard aggregate
func (r *WarehouseRepository) Stats(ctx context.Context) (*ports.InventoryStats, error) {
	query := `
		SELECT
			(SELECT COUNT(DISTINCT item_master_id) FROM item_batches),
			(SELECT COUNT(*) FROM item_batches),
			(SELECT COUNT(*) FROM item_batches
				WHERE quantity_on_hand > 0 AND (expiry_date IS NULL OR expiry_date >= CURRENT_DATE)),
			(SELECT COUNT(*) FROM item_batches
				WHERE quantity_on_hand > 0 AND expiry_date < CURRENT_DATE),
			(SELECT COUNT(*) FROM item_batches WHERE quantity_on_hand = 0),
			(SELECT COUNT(*) FROM item_batches
				WHERE quantity_on_hand > 0 AND expiry_date IS NOT NULL
				  AND expiry_date <= CURRENT_DATE + INTERVAL '30 days'),
			(SELECT COUNT(*) FROM item_masters im
				WHERE im.min_stock_level IS NOT NULL
				  AND (SELECT COALESCE(SUM(quantity_on_hand), 0)
				       FROM item_batches b WHERE b.item_master_id = im.item_master_id) < im.min_stock_level),
			(SELECT COALESCE(SUM(quantity_on_hand * import_price), 0) FROM item_batches),
			(SELECT COUNT(*) FROM storage_transactions WHERE transaction_date::date = CURRENT_DATE)`

	stats := &ports.InventoryStats{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalItems,
		&stats.TotalBatches,
		&stats.ActiveBatches,
		&stats.ExpiredBatches,
		&stats.DepletedBatches,
		&stats.ExpiringSoon,
		&stats.LowStockItems,
		&stats.TotalStockValue,
		&stats.TransactionsToday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return stats, nil
}

// LossReport totals DESTROY write-offs per item over a period
func (r *WarehouseRepository) LossReport(ctx context.Context, from, to time.Time) (*ports.LossReport, error) {
	query := `
		SELECT
			b.item_master_id,
			im.item_name,
			COALESCE(SUM(t.quantity), 0),
			COALESCE(SUM(t.total_value), 0)
		FROM storage_transactions t
		JOIN item_batches b ON b.batch_id = t.batch_id
		JOIN item_masters im ON im.item_master_id = b.item_master_id
		WHERE t.type = 'DESTROY'
		  AND t.transaction_date >= $1
		  AND t.transaction_date <= $2
		GROUP BY b.item_master_id, im.item_name
		ORDER BY 4 DESC`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query loss report: %w", err)
	}
	defer rows.Close()

	report := &ports.LossReport{From: from, To: to}
	for rows.Next() {
		var line ports.LossLine
		if err := rows.Scan(&line.ItemMasterID, &line.ItemName, &line.Quantity, &line.Value); err != nil {
			return nil, fmt.Errorf("failed to scan loss line: %w", err)
		}
		report.Lines = append(report.Lines, line)
		report.DestroyedQty += line.Quantity
		report.DestroyedValue = report.DestroyedValue.Add(line.Value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return report, nil
}

// scan helpers

func scanBatch(row pgx.Row) (*domain.ItemBatch, error) {
	batch := &domain.ItemBatch{}
	err := row.Scan(
		&batch.BatchID, &batch.ItemMasterID, &batch.LotNumber, &batch.ExpiryDate,
		&batch.QuantityOnHand, &batch.ImportPrice, &batch.CreatedAt, &batch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func scanBatches(rows pgx.Rows) ([]domain.ItemBatch, error) {
	var batches []domain.ItemBatch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, *batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return batches, nil
}

func scanTransaction(row pgx.Row) (*domain.StorageTransaction, error) {
	txn := &domain.StorageTransaction{}
	var notes sql.NullString
	err := row.Scan(
		&txn.TransactionID, &txn.BatchID, &txn.Type, &txn.Quantity, &txn.Direction,
		&txn.UnitPrice, &txn.TotalValue, &txn.PerformedBy, &notes,
		&txn.TransactionDate, &txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn.Notes = notes.String
	return txn, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
