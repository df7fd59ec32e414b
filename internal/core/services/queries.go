// internal/core/services/queries.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// GetStockSummary returns an item's position aggregated across its
// batches, with the catalog's min-stock threshold applied.
func (s *WarehouseService) GetStockSummary(ctx context.Context, itemMasterID uuid.UUID) (*ports.StockSummary, error) {
	item, err := s.catalog.GetItemMaster(ctx, itemMasterID)
	if err != nil {
		return nil, fmt.Errorf("resolving item %s: %w", itemMasterID, err)
	}

	summary, err := s.reader.GetStockSummary(ctx, itemMasterID)
	if err != nil {
		return nil, fmt.Errorf("summarizing stock for item %s: %w", itemMasterID, err)
	}

	summary.ItemName = item.ItemName
	summary.MinStockLevel = item.MinStockLevel
	if item.MinStockLevel != nil {
		summary.BelowMinimum = summary.TotalQuantity < *item.MinStockLevel
	}
	return summary, nil
}

// GetBatch returns a single batch by id
func (s *WarehouseService) GetBatch(ctx context.Context, batchID uuid.UUID) (*domain.ItemBatch, error) {
	return s.reader.GetBatchByID(ctx, batchID)
}

// ListBatchesByItem returns an item's batches in picking order
func (s *WarehouseService) ListBatchesByItem(ctx context.Context, itemMasterID uuid.UUID, includeEmpty bool) ([]domain.ItemBatch, error) {
	if _, err := s.catalog.GetItemMaster(ctx, itemMasterID); err != nil {
		return nil, fmt.Errorf("resolving item %s: %w", itemMasterID, err)
	}
	return s.reader.FindBatchesByItem(ctx, itemMasterID, includeEmpty)
}

// ListExpiringBatches returns stocked batches expiring within the
// given number of days, soonest first. Already-expired batches are
// included so nothing slips through the scan.
func (s *WarehouseService) ListExpiringBatches(ctx context.Context, days int) ([]domain.ItemBatch, error) {
	if days < 0 {
		return nil, &domain.ValidationError{Field: "days", Reason: "cannot be negative"}
	}
	cutoff := s.now().AddDate(0, 0, days)
	return s.reader.FindExpiringBatches(ctx, cutoff)
}

// GetTransaction returns a single ledger entry by id
func (s *WarehouseService) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.StorageTransaction, error) {
	return s.reader.GetTransactionByID(ctx, transactionID)
}

// ListTransactions returns a filtered, paginated page of the ledger
func (s *WarehouseService) ListTransactions(ctx context.Context, params ports.HistoryParams) (*ports.HistoryResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 200 {
		params.PageSize = 50
	}
	if params.Type != nil && !params.Type.Valid() {
		return nil, &domain.ValidationError{Field: "type", Reason: "unknown transaction type " + string(*params.Type)}
	}

	transactions, totalCount, err := s.reader.FindTransactions(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	totalPages := int(totalCount) / params.PageSize
	if int(totalCount)%params.PageSize > 0 {
		totalPages++
	}

	return &ports.HistoryResult{
		Transactions: transactions,
		Page:         params.Page,
		PageSize:     params.PageSize,
		TotalCount:   totalCount,
		TotalPages:   totalPages,
	}, nil
}

// Stats returns the warehouse-wide dashboard aggregate
func (s *WarehouseService) Stats(ctx context.Context) (*ports.InventoryStats, error) {
	return s.reader.Stats(ctx)
}

// LossReport totals written-off stock over a period
func (s *WarehouseService) LossReport(ctx context.Context, from, to time.Time) (*ports.LossReport, error) {
	if to.Before(from) {
		return nil, &domain.ValidationError{Field: "to", Reason: "cannot precede from"}
	}
	return s.reader.LossReport(ctx, from, to)
}
