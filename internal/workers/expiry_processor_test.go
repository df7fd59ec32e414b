// internal/workers/expiry_processor_test.go
package workers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
	"github.com/ammerola/clinic-stock/internal/workers"
	"github.com/ammerola/clinic-stock/test/helpers"
	"github.com/ammerola/clinic-stock/test/mocks"
)

func TestExpiryProcessor_ScanExpiring(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockWarehouseReader)
		expectedError bool
		errorContains string
	}{
		{
			name: "clean_scan_sends_no_digest",
			setupMocks: func(m *mocks.MockWarehouseReader) {
				m.EXPECT().
					FindExpiringBatches(gomock.Any(), gomock.Any()).
					Return([]domain.ItemBatch{}, nil)
				m.EXPECT().
					FindExpiredBatches(gomock.Any(), gomock.Any()).
					Return([]domain.ItemBatch{}, nil)
			},
		},
		{
			name: "expiring_query_failure_propagates",
			setupMocks: func(m *mocks.MockWarehouseReader) {
				m.EXPECT().
					FindExpiringBatches(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedError: true,
			errorContains: "failed to find expiring batches",
		},
		{
			name: "expired_query_failure_propagates",
			setupMocks: func(m *mocks.MockWarehouseReader) {
				m.EXPECT().
					FindExpiringBatches(gomock.Any(), gomock.Any()).
					Return([]domain.ItemBatch{}, nil)
				m.EXPECT().
					FindExpiredBatches(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedError: true,
			errorContains: "failed to find expired batches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := mocks.NewMockWarehouseReader(ctrl)
			tt.setupMocks(mockReader)

			// The scan only touches the queue when there is something to
			// report, so these paths run without a broker.
			processor := workers.NewExpiryProcessor(mockReader, nil, helpers.LoadTestConfig(), helpers.TestLogger())

			err := processor.ScanExpiring(context.Background(), asynq.NewTask(workers.TypeExpiryScan, nil))

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpiryProcessor_ScanLowStock(t *testing.T) {
	t.Run("disabled_alerts_skip_the_scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := helpers.LoadTestConfig()
		cfg.Warehouse.LowStockAlerts = false

		// No reader expectations: the scan must not run at all
		mockReader := mocks.NewMockWarehouseReader(ctrl)
		processor := workers.NewExpiryProcessor(mockReader, nil, cfg, helpers.TestLogger())

		err := processor.ScanLowStock(context.Background(), asynq.NewTask(workers.TypeLowStockScan, nil))
		assert.NoError(t, err)
	})

	t.Run("healthy_stock_sends_no_alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := mocks.NewMockWarehouseReader(ctrl)
		mockReader.EXPECT().
			FindLowStockItems(gomock.Any()).
			Return([]ports.StockSummary{}, nil)

		processor := workers.NewExpiryProcessor(mockReader, nil, helpers.LoadTestConfig(), helpers.TestLogger())

		err := processor.ScanLowStock(context.Background(), asynq.NewTask(workers.TypeLowStockScan, nil))
		assert.NoError(t, err)
	})

	t.Run("query_failure_propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := mocks.NewMockWarehouseReader(ctrl)
		mockReader.EXPECT().
			FindLowStockItems(gomock.Any()).
			Return(nil, errors.New("database connection failed"))

		processor := workers.NewExpiryProcessor(mockReader, nil, helpers.LoadTestConfig(), helpers.TestLogger())

		err := processor.ScanLowStock(context.Background(), asynq.NewTask(workers.TypeLowStockScan, nil))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find low stock items")
	})
}
