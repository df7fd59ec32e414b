// internal/core/domain/transaction.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionImport  TransactionType = "IMPORT"
	TransactionExport  TransactionType = "EXPORT"
	TransactionAdjust  TransactionType = "ADJUSTMENT"
	TransactionDestroy TransactionType = "DESTROY"
)

// Valid reports whether t is one of the four known transaction types
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionImport, TransactionExport, TransactionAdjust, TransactionDestroy:
		return true
	}
	return false
}

// RequiresNotes reports whether the type demands a non-blank audit note.
// ADJUSTMENT and DESTROY have no other paper trail for "why".
func (t TransactionType) RequiresNotes() bool {
	return t == TransactionAdjust || t == TransactionDestroy
}

// ExportType classifies the business reason of an export
type ExportType string

const (
	ExportUsage    ExportType = "USAGE"
	ExportDisposal ExportType = "DISPOSAL"
	ExportReturn   ExportType = "RETURN"
)

// Valid reports whether e is a known export type
func (e ExportType) Valid() bool {
	switch e {
	case ExportUsage, ExportDisposal, ExportReturn:
		return true
	}
	return false
}

// StorageTransaction is one append-only ledger entry. Once created it is
// never updated or deleted; corrections are expressed as new ADJUSTMENT
// entries. Quantity is always positive; for adjustments it carries the
// absolute delta, with the sign recoverable from Direction.
type StorageTransaction struct {
	TransactionID   uuid.UUID       `json:"transaction_id"`
	BatchID         uuid.UUID       `json:"batch_id"`
	Type            TransactionType `json:"type"`
	Quantity        int             `json:"quantity"`
	Direction       int             `json:"direction"` // +1 or -1; sign of the stock change
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalValue      decimal.Decimal `json:"total_value"`
	PerformedBy     string          `json:"performed_by"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewStorageTransaction builds a ledger entry, stamping its identity and
// timestamps and fixing TotalValue = UnitPrice × Quantity at creation.
// UnitPrice must be the owning batch's import price so export and
// destruction are costed at the exact lot they were drawn from.
func NewStorageTransaction(batchID uuid.UUID, typ TransactionType, quantity, direction int,
	unitPrice decimal.Decimal, performedBy, notes string, transactionDate time.Time) (*StorageTransaction, error) {

	if !typ.Valid() {
		return nil, &ValidationError{Field: "type", Reason: "unknown transaction type " + string(typ)}
	}
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if direction != 1 && direction != -1 {
		return nil, &ValidationError{Field: "direction", Reason: "must be +1 or -1"}
	}
	if strings.TrimSpace(performedBy) == "" {
		return nil, &ValidationError{Field: "performed_by", Reason: "is required"}
	}
	if typ.RequiresNotes() && strings.TrimSpace(notes) == "" {
		return nil, &AuditRequirementError{Type: typ}
	}

	now := time.Now()
	if transactionDate.IsZero() {
		transactionDate = now
	}

	return &StorageTransaction{
		TransactionID:   uuid.New(),
		BatchID:         batchID,
		Type:            typ,
		Quantity:        quantity,
		Direction:       direction,
		UnitPrice:       unitPrice,
		TotalValue:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		PerformedBy:     strings.TrimSpace(performedBy),
		Notes:           strings.TrimSpace(notes),
		TransactionDate: transactionDate,
		CreatedAt:       now,
	}, nil
}

// SignedQuantity returns the stock delta this entry applied to its batch
func (t *StorageTransaction) SignedQuantity() int {
	return t.Direction * t.Quantity
}
