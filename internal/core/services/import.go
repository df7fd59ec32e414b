// internal/core/services/import.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// ImportStock records goods received into the warehouse. Each line
// lands on the batch identified by (item, lot number): an unseen lot
// creates a batch, a repeat delivery of a known lot grows the existing
// one and keeps its original import price and expiry.
func (s *WarehouseService) ImportStock(ctx context.Context, req ports.ImportRequest) (*ports.ImportResult, error) {
	if err := validateImportRequest(req); err != nil {
		return nil, err
	}

	for _, line := range req.Items {
		if _, err := s.catalog.GetItemMaster(ctx, line.ItemMasterID); err != nil {
			return nil, fmt.Errorf("resolving item %s: %w", line.ItemMasterID, err)
		}
	}
	if req.SupplierID != nil {
		if _, err := s.catalog.GetSupplier(ctx, *req.SupplierID); err != nil {
			return nil, fmt.Errorf("resolving supplier %s: %w", *req.SupplierID, err)
		}
	}

	// Lock batches in a stable natural-key order so concurrent imports
	// sharing lots cannot deadlock.
	lines := make([]ports.ImportLine, len(req.Items))
	copy(lines, req.Items)
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].ItemMasterID != lines[j].ItemMasterID {
			return lines[i].ItemMasterID.String() < lines[j].ItemMasterID.String()
		}
		return lines[i].LotNumber < lines[j].LotNumber
	})

	result := &ports.ImportResult{TotalValue: decimal.Zero}

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, store ports.TxStore) error {
		for _, line := range lines {
			batch, err := store.GetBatchByItemAndLotForUpdate(ctx, line.ItemMasterID, strings.TrimSpace(line.LotNumber))
			if err != nil {
				var notFound *domain.NotFoundError
				if !errors.As(err, &notFound) {
					return fmt.Errorf("locking batch for lot %s: %w", line.LotNumber, err)
				}
				batch = domain.NewItemBatch(line.ItemMasterID, line.LotNumber, line.ImportPrice, line.ExpiryDate)
				if err := batch.Validate(); err != nil {
					return err
				}
				if err := store.InsertBatch(ctx, batch); err != nil {
					return fmt.Errorf("creating batch for lot %s: %w", line.LotNumber, err)
				}
			}

			if err := batch.AddStock(line.Quantity); err != nil {
				return err
			}
			if err := store.UpdateBatchQuantity(ctx, batch.BatchID, batch.QuantityOnHand); err != nil {
				return fmt.Errorf("updating batch %s: %w", batch.BatchID, err)
			}

			notes := line.Notes
			if strings.TrimSpace(notes) == "" {
				notes = req.Notes
			}
			txn, err := domain.NewStorageTransaction(batch.BatchID, domain.TransactionImport,
				line.Quantity, 1, batch.ImportPrice, req.PerformedBy, notes, req.TransactionDate)
			if err != nil {
				return err
			}
			if err := store.AppendTransaction(ctx, txn); err != nil {
				return fmt.Errorf("appending import transaction: %w", err)
			}

			result.Allocations = append(result.Allocations, ports.Allocation{
				TransactionID: txn.TransactionID,
				BatchID:       batch.BatchID,
				LotNumber:     batch.LotNumber,
				Quantity:      line.Quantity,
				UnitPrice:     batch.ImportPrice,
				ExpiryDate:    batch.ExpiryDate,
				Remaining:     batch.QuantityOnHand,
			})
			result.TotalValue = result.TotalValue.Add(txn.TotalValue)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "imported stock",
		slog.Int("lines", len(lines)),
		slog.String("performed_by", req.PerformedBy),
		slog.String("total_value", result.TotalValue.String()))

	return result, nil
}

func validateImportRequest(req ports.ImportRequest) error {
	if len(req.Items) == 0 {
		return &domain.ValidationError{Field: "items", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(req.PerformedBy) == "" {
		return &domain.ValidationError{Field: "performed_by", Reason: "is required"}
	}
	for i, line := range req.Items {
		if line.ItemMasterID == uuid.Nil {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].item_master_id", i), Reason: "is required"}
		}
		if strings.TrimSpace(line.LotNumber) == "" {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].lot_number", i), Reason: "cannot be blank"}
		}
		if line.Quantity <= 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be positive"}
		}
		if line.ImportPrice.IsNegative() {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].import_price", i), Reason: "cannot be negative"}
		}
	}
	return nil
}
