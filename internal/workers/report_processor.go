// internal/workers/report_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	redis_a "github.com/ammerola/clinic-stock/internal/adapters/redis_adapter"
	"github.com/ammerola/clinic-stock/internal/adapters/storage"
	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
	"github.com/ammerola/clinic-stock/internal/pkg/config"
)

const reportPageSize = 500

// ReportProcessor builds Excel ledger exports and publishes them to
// object storage.
type ReportProcessor struct {
	reader  ports.WarehouseReader
	storage storage.StorageClient
	cache   ports.CacheRepository
	config  *config.Config
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(
	reader ports.WarehouseReader,
	storageClient storage.StorageClient,
	cache ports.CacheRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *ReportProcessor {
	return &ReportProcessor{
		reader:  reader,
		storage: storageClient,
		cache:   cache,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// GenerateLedgerReport processes a ledger Excel export task
func (p *ReportProcessor) GenerateLedgerReport(ctx context.Context, t *asynq.Task) error {
	var payload LedgerReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "generating ledger report",
		slog.String("job_id", payload.JobID))

	p.setStatus(ctx, ReportStatus{JobID: payload.JobID, Status: ReportStatusRunning})

	transactions, err := p.fetchTransactions(ctx, payload)
	if err != nil {
		p.setStatus(ctx, ReportStatus{
			JobID:  payload.JobID,
			Status: ReportStatusFailed,
			Error:  err.Error(),
		})
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	data, err := p.buildExcelFile(transactions)
	if err != nil {
		p.setStatus(ctx, ReportStatus{
			JobID:  payload.JobID,
			Status: ReportStatusFailed,
			Error:  err.Error(),
		})
		return fmt.Errorf("failed to build Excel file: %w", err)
	}

	key := storage.ReportKey("ledger", "xlsx")
	if _, err := p.storage.Upload(ctx, key, bytes.NewReader(data),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"); err != nil {
		p.setStatus(ctx, ReportStatus{
			JobID:  payload.JobID,
			Status: ReportStatusFailed,
			Error:  err.Error(),
		})
		return fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := p.storage.GetPresignedURL(ctx, key, p.config.Reports.PresignTTL)
	if err != nil {
		return fmt.Errorf("failed to presign report URL: %w", err)
	}

	now := time.Now().UTC()
	p.setStatus(ctx, ReportStatus{
		JobID:       payload.JobID,
		Status:      ReportStatusCompleted,
		URL:         url,
		RowCount:    len(transactions),
		GeneratedAt: &now,
	})

	p.logger.InfoContext(ctx, "ledger report generated",
		slog.String("job_id", payload.JobID),
		slog.String("key", key),
		slog.Int("rows", len(transactions)))

	return nil
}

// fetchTransactions pages through the ledger matching the payload filter
func (p *ReportProcessor) fetchTransactions(ctx context.Context, payload LedgerReportPayload) ([]domain.StorageTransaction, error) {
	params := ports.HistoryParams{
		ItemMasterID: payload.ItemMasterID,
		From:         payload.From,
		To:           payload.To,
		SortOrder:    "asc",
		Page:         1,
		PageSize:     reportPageSize,
	}

	var all []domain.StorageTransaction
	for {
		page, total, err := p.reader.FindTransactions(ctx, params)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if int64(len(all)) >= total || len(page) == 0 {
			break
		}
		params.Page++
	}

	return all, nil
}

// buildExcelFile renders the ledger rows as a workbook
func (p *ReportProcessor) buildExcelFile(transactions []domain.StorageTransaction) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Ledger")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Transaction ID", "Batch ID", "Type", "Quantity", "Signed Quantity",
		"Unit Price", "Total Value", "Performed By", "Notes", "Transaction Date",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, txn := range transactions {
		row := sheet.AddRow()
		for _, value := range []string{
			txn.TransactionID.String(),
			txn.BatchID.String(),
			string(txn.Type),
			strconv.Itoa(txn.Quantity),
			strconv.Itoa(txn.SignedQuantity()),
			txn.UnitPrice.StringFixed(2),
			txn.TotalValue.StringFixed(2),
			txn.PerformedBy,
			txn.Notes,
			txn.TransactionDate.Format("2006-01-02 15:04:05"),
		} {
			row.AddCell().Value = value
		}
	}

	for i := range headers {
		sheet.SetColWidth(i, i, 20)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func (p *ReportProcessor) setStatus(ctx context.Context, status ReportStatus) {
	key := redis_a.BuildKey(redis_a.PrefixReport, status.JobID)
	if err := p.cache.SetWithTTL(ctx, key, status, 24*time.Hour); err != nil {
		p.logger.WarnContext(ctx, "failed to store report status",
			slog.String("job_id", status.JobID),
			slog.String("error", err.Error()))
	}
}
