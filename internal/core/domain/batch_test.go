package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/clinic-stock/internal/core/domain"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestItemBatch_Validate(t *testing.T) {
	tests := []struct {
		name      string
		batch     *domain.ItemBatch
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_batch",
			batch: &domain.ItemBatch{
				ItemMasterID:   uuid.New(),
				LotNumber:      "L-2026-001",
				QuantityOnHand: 20,
				ImportPrice:    decimal.NewFromFloat(4.50),
			},
			wantError: false,
		},
		{
			name: "missing_item_master_id",
			batch: &domain.ItemBatch{
				LotNumber:   "L-2026-001",
				ImportPrice: decimal.NewFromFloat(4.50),
			},
			wantError: true,
			errorMsg:  "item_master_id is required",
		},
		{
			name: "blank_lot_number",
			batch: &domain.ItemBatch{
				ItemMasterID: uuid.New(),
				LotNumber:    "   ",
				ImportPrice:  decimal.NewFromFloat(4.50),
			},
			wantError: true,
			errorMsg:  "lot_number cannot be blank",
		},
		{
			name: "negative_quantity",
			batch: &domain.ItemBatch{
				ItemMasterID:   uuid.New(),
				LotNumber:      "L-2026-001",
				QuantityOnHand: -1,
				ImportPrice:    decimal.NewFromFloat(4.50),
			},
			wantError: true,
			errorMsg:  "quantity_on_hand cannot be negative",
		},
		{
			name: "negative_import_price",
			batch: &domain.ItemBatch{
				ItemMasterID: uuid.New(),
				LotNumber:    "L-2026-001",
				ImportPrice:  decimal.NewFromFloat(-1),
			},
			wantError: true,
			errorMsg:  "import_price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.batch.Validate()

			if tt.wantError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewItemBatch(t *testing.T) {
	itemID := uuid.New()
	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	batch := domain.NewItemBatch(itemID, "  L-2027-A  ", decimal.NewFromFloat(2.25), &expiry)

	assert.NotEqual(t, uuid.Nil, batch.BatchID)
	assert.Equal(t, itemID, batch.ItemMasterID)
	assert.Equal(t, "L-2027-A", batch.LotNumber)
	assert.Equal(t, 0, batch.QuantityOnHand)
	require.NotNil(t, batch.ExpiryDate)
	assert.Equal(t, expiry, *batch.ExpiryDate)
	assert.NotZero(t, batch.CreatedAt)
	assert.NotZero(t, batch.UpdatedAt)
}

func TestItemBatch_IsExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expiry  *time.Time
		expired bool
	}{
		{
			name:    "no_expiry_never_expires",
			expiry:  nil,
			expired: false,
		},
		{
			name:    "expired_yesterday",
			expiry:  datePtr(now.AddDate(0, 0, -1)),
			expired: true,
		},
		{
			name:    "expires_today_still_usable",
			expiry:  datePtr(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)),
			expired: false,
		},
		{
			name:    "expires_tomorrow",
			expiry:  datePtr(now.AddDate(0, 0, 1)),
			expired: false,
		},
		{
			name:    "expired_earlier_today_by_clock_but_same_date",
			expiry:  datePtr(time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)),
			expired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := &domain.ItemBatch{ExpiryDate: tt.expiry}
			assert.Equal(t, tt.expired, batch.IsExpired(now))
		})
	}
}

func TestItemBatch_ExpiresWithin(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry *time.Time
		days   int
		want   bool
	}{
		{"no_expiry", nil, 30, false},
		{"inside_window", datePtr(now.AddDate(0, 0, 10)), 30, true},
		{"on_window_edge", datePtr(now.AddDate(0, 0, 30)), 30, true},
		{"outside_window", datePtr(now.AddDate(0, 0, 31)), 30, false},
		{"already_expired", datePtr(now.AddDate(0, 0, -5)), 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := &domain.ItemBatch{ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, batch.ExpiresWithin(now, tt.days))
		})
	}
}

func TestItemBatch_Status(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		quantity int
		expiry   *time.Time
		want     domain.BatchStatus
	}{
		{"active_with_stock", 10, datePtr(now.AddDate(1, 0, 0)), domain.BatchStatusActive},
		{"active_no_expiry", 10, nil, domain.BatchStatusActive},
		{"expired_with_stock", 5, datePtr(now.AddDate(0, 0, -1)), domain.BatchStatusExpired},
		{"depleted_wins_over_expired", 0, datePtr(now.AddDate(0, 0, -1)), domain.BatchStatusDepleted},
		{"depleted_fresh", 0, datePtr(now.AddDate(1, 0, 0)), domain.BatchStatusDepleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := &domain.ItemBatch{QuantityOnHand: tt.quantity, ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, batch.Status(now))
		})
	}
}

func TestItemBatch_AddStock(t *testing.T) {
	t.Run("grows_quantity", func(t *testing.T) {
		batch := &domain.ItemBatch{QuantityOnHand: 20}

		require.NoError(t, batch.AddStock(15))
		assert.Equal(t, 35, batch.QuantityOnHand)
	})

	t.Run("rejects_zero", func(t *testing.T) {
		batch := &domain.ItemBatch{QuantityOnHand: 20}

		err := batch.AddStock(0)
		require.Error(t, err)
		assert.Equal(t, 20, batch.QuantityOnHand)
	})

	t.Run("rejects_negative", func(t *testing.T) {
		batch := &domain.ItemBatch{QuantityOnHand: 20}

		err := batch.AddStock(-5)
		require.Error(t, err)
		assert.Equal(t, 20, batch.QuantityOnHand)
	})
}

func TestItemBatch_DeductStock(t *testing.T) {
	t.Run("shrinks_quantity", func(t *testing.T) {
		batch := &domain.ItemBatch{QuantityOnHand: 10}

		require.NoError(t, batch.DeductStock(4))
		assert.Equal(t, 6, batch.QuantityOnHand)
	})

	t.Run("exact_depletion", func(t *testing.T) {
		batch := &domain.ItemBatch{QuantityOnHand: 10}

		require.NoError(t, batch.DeductStock(10))
		assert.Equal(t, 0, batch.QuantityOnHand)
	})

	t.Run("insufficient_stock_leaves_quantity_untouched", func(t *testing.T) {
		batch := &domain.ItemBatch{
			BatchID:        uuid.New(),
			LotNumber:      "L-001",
			QuantityOnHand: 3,
		}

		err := batch.DeductStock(5)
		require.Error(t, err)

		var insufficientErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 5, insufficientErr.Requested)
		assert.Equal(t, 3, insufficientErr.Available)
		assert.Equal(t, "L-001", insufficientErr.LotNumber)
		assert.Equal(t, 3, batch.QuantityOnHand)
	})

	t.Run("rejects_non_positive", func(t *testing.T) {
		batch := &domain.ItemBatch{QuantityOnHand: 3}

		require.Error(t, batch.DeductStock(0))
		require.Error(t, batch.DeductStock(-1))
	})
}

func TestItemBatch_SetQuantity(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		newQuantity int
		wantDelta   int
		wantError   bool
	}{
		{"count_up", 10, 14, 4, false},
		{"count_down", 10, 7, -3, false},
		{"no_change", 10, 10, 0, false},
		{"count_to_zero", 10, 0, -10, false},
		{"negative_rejected", 10, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := &domain.ItemBatch{QuantityOnHand: tt.current}

			delta, err := batch.SetQuantity(tt.newQuantity)

			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, tt.current, batch.QuantityOnHand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelta, delta)
			assert.Equal(t, tt.newQuantity, batch.QuantityOnHand)
		})
	}
}
