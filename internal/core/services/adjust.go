// internal/core/services/adjust.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// AdjustStock overwrites a batch's quantity to a counted value after a
// stock take. The ledger entry carries the absolute delta with its
// direction, so the signed ledger sum still reconstructs the on-hand
// quantity. Adjustments are server-stamped; back-dating a correction
// would let it masquerade as history.
func (s *WarehouseService) AdjustStock(ctx context.Context, req ports.AdjustRequest) (*ports.MovementResult, error) {
	if req.BatchID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "batch_id", Reason: "is required"}
	}
	if req.NewQuantity < 0 {
		return nil, &domain.ValidationError{Field: "new_quantity", Reason: "cannot be negative"}
	}
	if strings.TrimSpace(req.PerformedBy) == "" {
		return nil, &domain.ValidationError{Field: "performed_by", Reason: "is required"}
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, &domain.AuditRequirementError{Type: domain.TransactionAdjust}
	}

	result := &ports.MovementResult{}

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, store ports.TxStore) error {
		batch, err := store.GetBatchForUpdate(ctx, req.BatchID)
		if err != nil {
			return err
		}

		delta, err := batch.SetQuantity(req.NewQuantity)
		if err != nil {
			return err
		}
		if delta == 0 {
			return &domain.ValidationError{Field: "new_quantity", Reason: "matches current quantity, nothing to adjust"}
		}

		if err := store.UpdateBatchQuantity(ctx, batch.BatchID, batch.QuantityOnHand); err != nil {
			return fmt.Errorf("updating batch %s: %w", batch.BatchID, err)
		}

		direction := 1
		quantity := delta
		if delta < 0 {
			direction = -1
			quantity = -delta
		}

		txn, err := domain.NewStorageTransaction(batch.BatchID, domain.TransactionAdjust,
			quantity, direction, batch.ImportPrice, req.PerformedBy, req.Notes, s.now())
		if err != nil {
			return err
		}
		if err := store.AppendTransaction(ctx, txn); err != nil {
			return fmt.Errorf("appending adjustment transaction: %w", err)
		}

		result.Transaction = txn
		result.Batch = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "adjusted stock",
		slog.String("batch_id", req.BatchID.String()),
		slog.Int("new_quantity", req.NewQuantity),
		slog.Int("delta", result.Transaction.SignedQuantity()),
		slog.String("performed_by", req.PerformedBy))

	return result, nil
}

// DestroyStock writes off damaged or expired stock from a specific
// batch. Unlike exports, destruction never checks expiry: destroying
// expired stock is the common case.
func (s *WarehouseService) DestroyStock(ctx context.Context, req ports.DestroyRequest) (*ports.MovementResult, error) {
	if req.BatchID == uuid.Nil {
		return nil, &domain.ValidationError{Field: "batch_id", Reason: "is required"}
	}
	if req.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if strings.TrimSpace(req.PerformedBy) == "" {
		return nil, &domain.ValidationError{Field: "performed_by", Reason: "is required"}
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, &domain.AuditRequirementError{Type: domain.TransactionDestroy}
	}

	result := &ports.MovementResult{}

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, store ports.TxStore) error {
		batch, err := store.GetBatchForUpdate(ctx, req.BatchID)
		if err != nil {
			return err
		}

		if err := batch.DeductStock(req.Quantity); err != nil {
			return err
		}
		if err := store.UpdateBatchQuantity(ctx, batch.BatchID, batch.QuantityOnHand); err != nil {
			return fmt.Errorf("updating batch %s: %w", batch.BatchID, err)
		}

		txn, err := domain.NewStorageTransaction(batch.BatchID, domain.TransactionDestroy,
			req.Quantity, -1, batch.ImportPrice, req.PerformedBy, req.Notes, s.now())
		if err != nil {
			return err
		}
		if err := store.AppendTransaction(ctx, txn); err != nil {
			return fmt.Errorf("appending destroy transaction: %w", err)
		}

		result.Transaction = txn
		result.Batch = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "destroyed stock",
		slog.String("batch_id", req.BatchID.String()),
		slog.Int("quantity", req.Quantity),
		slog.String("performed_by", req.PerformedBy))

	return result, nil
}
