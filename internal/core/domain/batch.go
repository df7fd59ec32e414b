// internal/core/domain/batch.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus is the derived lifecycle state of a batch. It is computed
// from quantity and expiry, never stored.
type BatchStatus string

const (
	BatchStatusActive   BatchStatus = "ACTIVE"
	BatchStatusDepleted BatchStatus = "DEPLETED"
	BatchStatusExpired  BatchStatus = "EXPIRED"
)

// ItemBatch represents one physical lot of a catalog item. The pair
// (ItemMasterID, LotNumber) is the natural key: re-importing the same
// lot grows the existing batch instead of creating a second one.
//
// ImportPrice is fixed at first import and is the unit price copied onto
// every EXPORT/DESTROY transaction drawn from this batch (specific-lot
// costing). ExpiryDate is nil for non-perishable items and sorts last in
// FEFO order.
type ItemBatch struct {
	BatchID        uuid.UUID       `json:"batch_id"`
	ItemMasterID   uuid.UUID       `json:"item_master_id"`
	LotNumber      string          `json:"lot_number"`
	ExpiryDate     *time.Time      `json:"expiry_date,omitempty"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	ImportPrice    decimal.Decimal `json:"import_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewItemBatch creates an empty batch for a lot that has never been
// received before. Quantity starts at zero; the first IMPORT transaction
// adds to it.
func NewItemBatch(itemMasterID uuid.UUID, lotNumber string, importPrice decimal.Decimal, expiryDate *time.Time) *ItemBatch {
	now := time.Now()
	return &ItemBatch{
		BatchID:        uuid.New(),
		ItemMasterID:   itemMasterID,
		LotNumber:      strings.TrimSpace(lotNumber),
		ExpiryDate:     expiryDate,
		QuantityOnHand: 0,
		ImportPrice:    importPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate performs domain validation on the batch
func (b *ItemBatch) Validate() error {
	if b.ItemMasterID == uuid.Nil {
		return &ValidationError{Field: "item_master_id", Reason: "is required"}
	}
	if strings.TrimSpace(b.LotNumber) == "" {
		return &ValidationError{Field: "lot_number", Reason: "cannot be blank"}
	}
	if b.QuantityOnHand < 0 {
		return &ValidationError{Field: "quantity_on_hand", Reason: "cannot be negative"}
	}
	if b.ImportPrice.IsNegative() {
		return &ValidationError{Field: "import_price", Reason: "cannot be negative"}
	}
	return nil
}

// IsExpired reports whether the batch's expiry date is strictly before
// today. Batches without an expiry date never expire.
func (b *ItemBatch) IsExpired(now time.Time) bool {
	if b.ExpiryDate == nil {
		return false
	}
	return dateOnly(*b.ExpiryDate).Before(dateOnly(now))
}

// ExpiresWithin reports whether the batch expires on or before
// now+days. Already-expired batches also satisfy this.
func (b *ItemBatch) ExpiresWithin(now time.Time, days int) bool {
	if b.ExpiryDate == nil {
		return false
	}
	threshold := dateOnly(now).AddDate(0, 0, days)
	return !dateOnly(*b.ExpiryDate).After(threshold)
}

// HasStock reports whether any quantity remains on hand
func (b *ItemBatch) HasStock() bool {
	return b.QuantityOnHand > 0
}

// Status derives the informational batch state. EXPIRED overrides
// ACTIVE but not DEPLETED: an empty lot is DEPLETED regardless of
// expiry.
func (b *ItemBatch) Status(now time.Time) BatchStatus {
	if b.QuantityOnHand == 0 {
		return BatchStatusDepleted
	}
	if b.IsExpired(now) {
		return BatchStatusExpired
	}
	return BatchStatusActive
}

// AddStock grows the on-hand quantity. Used by the import path only.
func (b *ItemBatch) AddStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	b.QuantityOnHand += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// DeductStock shrinks the on-hand quantity, guarding the non-negative
// invariant. Callers decide the transaction type (EXPORT or DESTROY).
func (b *ItemBatch) DeductStock(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if quantity > b.QuantityOnHand {
		return &InsufficientStockError{
			BatchID:   b.BatchID,
			LotNumber: b.LotNumber,
			Requested: quantity,
			Available: b.QuantityOnHand,
		}
	}
	b.QuantityOnHand -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// SetQuantity overwrites the on-hand quantity and returns the signed
// delta. Used by the adjustment path (cycle counts).
func (b *ItemBatch) SetQuantity(newQuantity int) (int, error) {
	if newQuantity < 0 {
		return 0, &ValidationError{Field: "new_quantity", Reason: "cannot be negative"}
	}
	delta := newQuantity - b.QuantityOnHand
	b.QuantityOnHand = newQuantity
	b.UpdatedAt = time.Now()
	return delta, nil
}

// dateOnly truncates a timestamp to its calendar date in UTC. Expiry
// comparisons are date-granular.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
