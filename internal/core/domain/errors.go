// internal/core/domain/errors.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports malformed input (non-positive quantity, blank
// lot number, unknown enum value).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown item, batch, or transaction
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InsufficientStockError reports an export or destruction that exceeds
// available quantity. Carries requested-vs-available context; nothing is
// ever silently clamped.
type InsufficientStockError struct {
	BatchID      uuid.UUID
	ItemMasterID uuid.UUID
	LotNumber    string
	Requested    int
	Available    int
}

func (e *InsufficientStockError) Error() string {
	if e.BatchID != uuid.Nil {
		return fmt.Sprintf("insufficient stock in batch %s (lot %s): requested %d, available %d",
			e.BatchID, e.LotNumber, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d",
		e.ItemMasterID, e.Requested, e.Available)
}

// ExpiredStockError reports an export targeting an expired batch without
// the allow-expired override.
type ExpiredStockError struct {
	BatchID    uuid.UUID
	LotNumber  string
	ExpiryDate time.Time
}

func (e *ExpiredStockError) Error() string {
	return fmt.Sprintf("batch %s (lot %s) expired on %s", e.BatchID, e.LotNumber,
		e.ExpiryDate.Format("2006-01-02"))
}

// AuditRequirementError reports a missing or blank mandatory note on an
// ADJUSTMENT or DESTROY transaction.
type AuditRequirementError struct {
	Type TransactionType
}

func (e *AuditRequirementError) Error() string {
	return fmt.Sprintf("%s transactions require non-blank notes", e.Type)
}
