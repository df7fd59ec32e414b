// internal/core/services/export.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// ExportStock issues stock out of the warehouse. Lines naming an item
// are picked first-expired-first-out across that item's batches; lines
// naming a batch draw from that exact lot. The whole request is
// all-or-nothing: if any line cannot be satisfied in full, nothing is
// deducted and no ledger entries are written.
//
// Expired batches are skipped (and rejected in explicit mode) unless
// AllowExpired is set. DISPOSAL exports imply AllowExpired, since
// disposing of expired stock is their main use.
func (s *WarehouseService) ExportStock(ctx context.Context, req ports.ExportRequest) (*ports.ExportResult, error) {
	if err := validateExportRequest(req); err != nil {
		return nil, err
	}

	allowExpired := req.AllowExpired || req.ExportType == domain.ExportDisposal
	result := &ports.ExportResult{TotalValue: decimal.Zero}

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, store ports.TxStore) error {
		// Lock every batch the request may touch, explicit lots and
		// FEFO candidates alike, in one ordered statement. One
		// statement means one lock acquisition order, so two exports
		// with overlapping lines cannot deadlock on each other.
		itemIDs := fefoItemIDs(req.Items)
		explicitIDs := explicitBatchIDs(req.Items)

		batches, err := store.LockExportCandidates(ctx, itemIDs, explicitIDs)
		if err != nil {
			return fmt.Errorf("locking export candidates: %w", err)
		}

		fefoItems := make(map[uuid.UUID]struct{}, len(itemIDs))
		for _, id := range itemIDs {
			fefoItems[id] = struct{}{}
		}

		locked := make(map[uuid.UUID]*domain.ItemBatch, len(batches))
		candidates := make(map[uuid.UUID][]*domain.ItemBatch)
		for i := range batches {
			b := &batches[i]
			locked[b.BatchID] = b
			if _, ok := fefoItems[b.ItemMasterID]; ok {
				candidates[b.ItemMasterID] = append(candidates[b.ItemMasterID], b)
			}
		}

		now := s.now()
		for _, line := range req.Items {
			if line.BatchID != nil {
				if err := s.exportFromBatch(ctx, store, locked, line, req, allowExpired, now, result); err != nil {
					return err
				}
				continue
			}
			if err := s.exportFEFO(ctx, store, candidates[*line.ItemMasterID], line, req, allowExpired, now, result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "exported stock",
		slog.Int("lines", len(req.Items)),
		slog.String("export_type", string(req.ExportType)),
		slog.String("performed_by", req.PerformedBy),
		slog.String("total_value", result.TotalValue.String()))

	return result, nil
}

// exportFromBatch satisfies one explicit-lot line
func (s *WarehouseService) exportFromBatch(ctx context.Context, store ports.TxStore,
	locked map[uuid.UUID]*domain.ItemBatch, line ports.ExportLine, req ports.ExportRequest,
	allowExpired bool, now time.Time, result *ports.ExportResult) error {

	batch, ok := locked[*line.BatchID]
	if !ok {
		return &domain.NotFoundError{Resource: "batch", ID: line.BatchID.String()}
	}
	if batch.IsExpired(now) && !allowExpired {
		return &domain.ExpiredStockError{
			BatchID:    batch.BatchID,
			LotNumber:  batch.LotNumber,
			ExpiryDate: *batch.ExpiryDate,
		}
	}
	return s.deduct(ctx, store, batch, line.Quantity, domain.TransactionExport, req.PerformedBy, req.Notes, req.TransactionDate, result)
}

// exportFEFO satisfies one item-level line by greedy depletion of the
// item's candidate batches, earliest expiry first.
func (s *WarehouseService) exportFEFO(ctx context.Context, store ports.TxStore,
	candidates []*domain.ItemBatch, line ports.ExportLine, req ports.ExportRequest,
	allowExpired bool, now time.Time, result *ports.ExportResult) error {

	var usable []*domain.ItemBatch
	available := 0
	for _, b := range candidates {
		if !b.HasStock() {
			continue
		}
		if b.IsExpired(now) && !allowExpired {
			continue
		}
		usable = append(usable, b)
		available += b.QuantityOnHand
	}

	if available < line.Quantity {
		return &domain.InsufficientStockError{
			ItemMasterID: *line.ItemMasterID,
			Requested:    line.Quantity,
			Available:    available,
		}
	}

	remaining := line.Quantity
	for _, batch := range usable {
		take := remaining
		if take > batch.QuantityOnHand {
			take = batch.QuantityOnHand
		}
		if err := s.deduct(ctx, store, batch, take, domain.TransactionExport, req.PerformedBy, req.Notes, req.TransactionDate, result); err != nil {
			return err
		}
		remaining -= take
		if remaining == 0 {
			break
		}
	}
	return nil
}

// deduct applies one batch-level outbound movement: quantity update
// plus its matching ledger entry, costed at the batch's import price.
func (s *WarehouseService) deduct(ctx context.Context, store ports.TxStore, batch *domain.ItemBatch,
	quantity int, typ domain.TransactionType, performedBy, notes string, txnDate time.Time, result *ports.ExportResult) error {

	if err := batch.DeductStock(quantity); err != nil {
		return err
	}
	if err := store.UpdateBatchQuantity(ctx, batch.BatchID, batch.QuantityOnHand); err != nil {
		return fmt.Errorf("updating batch %s: %w", batch.BatchID, err)
	}

	txn, err := domain.NewStorageTransaction(batch.BatchID, typ, quantity, -1,
		batch.ImportPrice, performedBy, notes, txnDate)
	if err != nil {
		return err
	}
	if err := store.AppendTransaction(ctx, txn); err != nil {
		return fmt.Errorf("appending %s transaction: %w", typ, err)
	}

	result.Allocations = append(result.Allocations, ports.Allocation{
		TransactionID: txn.TransactionID,
		BatchID:       batch.BatchID,
		LotNumber:     batch.LotNumber,
		Quantity:      quantity,
		UnitPrice:     batch.ImportPrice,
		ExpiryDate:    batch.ExpiryDate,
		Remaining:     batch.QuantityOnHand,
	})
	result.TotalValue = result.TotalValue.Add(txn.TotalValue)
	return nil
}

func explicitBatchIDs(lines []ports.ExportLine) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, line := range lines {
		if line.BatchID == nil {
			continue
		}
		if _, ok := seen[*line.BatchID]; ok {
			continue
		}
		seen[*line.BatchID] = struct{}{}
		ids = append(ids, *line.BatchID)
	}
	return ids
}

func fefoItemIDs(lines []ports.ExportLine) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, line := range lines {
		if line.ItemMasterID == nil {
			continue
		}
		if _, ok := seen[*line.ItemMasterID]; ok {
			continue
		}
		seen[*line.ItemMasterID] = struct{}{}
		ids = append(ids, *line.ItemMasterID)
	}
	return ids
}

func validateExportRequest(req ports.ExportRequest) error {
	if len(req.Items) == 0 {
		return &domain.ValidationError{Field: "items", Reason: "cannot be empty"}
	}
	if !req.ExportType.Valid() {
		return &domain.ValidationError{Field: "export_type", Reason: "unknown export type " + string(req.ExportType)}
	}
	if strings.TrimSpace(req.PerformedBy) == "" {
		return &domain.ValidationError{Field: "performed_by", Reason: "is required"}
	}
	for i, line := range req.Items {
		hasItem := line.ItemMasterID != nil && *line.ItemMasterID != uuid.Nil
		hasBatch := line.BatchID != nil && *line.BatchID != uuid.Nil
		if hasItem == hasBatch {
			return &domain.ValidationError{
				Field:  fmt.Sprintf("items[%d]", i),
				Reason: "must set exactly one of item_master_id or batch_id",
			}
		}
		if line.Quantity <= 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be positive"}
		}
	}
	return nil
}
