// internal/workers/expiry_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
	"github.com/ammerola/clinic-stock/internal/pkg/config"
)

// ExpiryProcessor runs the periodic expiry and low-stock scans
type ExpiryProcessor struct {
	reader      ports.WarehouseReader
	asynqClient *asynq.Client
	config      *config.Config
	logger      *slog.Logger
}

// NewExpiryProcessor creates a new expiry processor
func NewExpiryProcessor(
	reader ports.WarehouseReader,
	asynqClient *asynq.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *ExpiryProcessor {
	return &ExpiryProcessor{
		reader:      reader,
		asynqClient: asynqClient,
		config:      cfg,
		logger:      logger.With(slog.String("processor", "expiry")),
	}
}

// ScanExpiring finds batches expiring within the configured window and
// notifies warehouse staff. Already-expired batches are reported
// separately so they can be destroyed or exported for disposal.
func (p *ExpiryProcessor) ScanExpiring(ctx context.Context, t *asynq.Task) error {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, p.config.Warehouse.ExpiryScanDays)

	expiring, err := p.reader.FindExpiringBatches(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to find expiring batches: %w", err)
	}

	expired, err := p.reader.FindExpiredBatches(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to find expired batches: %w", err)
	}

	p.logger.InfoContext(ctx, "expiry scan completed",
		slog.Int("expiring", len(expiring)),
		slog.Int("expired", len(expired)),
		slog.Int("window_days", p.config.Warehouse.ExpiryScanDays))

	if len(expiring) == 0 && len(expired) == 0 {
		return nil
	}

	body := p.buildExpiryDigest(expiring, expired)
	return p.enqueueEmail(ctx, "Stock expiry digest", body)
}

// ScanLowStock finds items below their minimum stock level
func (p *ExpiryProcessor) ScanLowStock(ctx context.Context, t *asynq.Task) error {
	if !p.config.Warehouse.LowStockAlerts {
		return nil
	}

	low, err := p.reader.FindLowStockItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to find low stock items: %w", err)
	}

	p.logger.InfoContext(ctx, "low stock scan completed",
		slog.Int("items", len(low)))

	if len(low) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Items below minimum stock level:\n\n")
	for _, item := range low {
		fmt.Fprintf(&b, "- %s: %d on hand", item.ItemName, item.TotalQuantity)
		if item.MinStockLevel != nil {
			fmt.Fprintf(&b, " (minimum %d)", *item.MinStockLevel)
		}
		b.WriteString("\n")
	}

	return p.enqueueEmail(ctx, "Low stock alert", b.String())
}

func (p *ExpiryProcessor) buildExpiryDigest(expiring, expired []domain.ItemBatch) string {
	var b strings.Builder

	if len(expired) > 0 {
		b.WriteString("Expired batches still holding stock:\n\n")
		for _, batch := range expired {
			fmt.Fprintf(&b, "- lot %s: %d units, expired %s\n",
				batch.LotNumber, batch.QuantityOnHand,
				batch.ExpiryDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}

	if len(expiring) > 0 {
		fmt.Fprintf(&b, "Batches expiring within %d days:\n\n", p.config.Warehouse.ExpiryScanDays)
		for _, batch := range expiring {
			fmt.Fprintf(&b, "- lot %s: %d units, expires %s\n",
				batch.LotNumber, batch.QuantityOnHand,
				batch.ExpiryDate.Format("2006-01-02"))
		}
	}

	return b.String()
}

func (p *ExpiryProcessor) enqueueEmail(ctx context.Context, subject, body string) error {
	payload, err := json.Marshal(EmailPayload{
		To:      p.config.Warehouse.AlertEmail,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	if _, err := p.asynqClient.EnqueueContext(ctx, asynq.NewTask(TypeSendEmail, payload),
		asynq.Queue("low")); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	return nil
}
