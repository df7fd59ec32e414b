// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/clinic-stock/internal/adapters/storage"
	"github.com/ammerola/clinic-stock/internal/pkg/config"
)

// reportRetentionMonths is how long generated report files stay in
// object storage before cleanup removes them.
const reportRetentionMonths = 3

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	storage storage.StorageClient
	config  *config.Config
	logger  *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storageClient storage.StorageClient, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		storage: storageClient,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupTempFiles removes old temporary files
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.Reports.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.String("error", err.Error()))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}

// CleanupReports removes expired report files from object storage.
// Report keys carry a reports/YYYY/MM/ prefix, so staleness is decided
// from the key alone.
func (p *CleanupProcessor) CleanupReports(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up expired reports")

	keys, err := p.storage.List(ctx, "reports/")
	if err != nil {
		return fmt.Errorf("failed to list report files: %w", err)
	}

	horizon := time.Now().UTC().AddDate(0, -reportRetentionMonths, 0)
	var stale []string
	for _, key := range keys {
		parts := strings.Split(key, "/")
		if len(parts) < 3 {
			continue
		}

		month, err := time.Parse("2006/01", parts[1]+"/"+parts[2])
		if err != nil {
			continue
		}

		if month.Before(horizon) {
			stale = append(stale, key)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	if err := p.storage.DeleteMultiple(ctx, stale); err != nil {
		return fmt.Errorf("failed to delete expired reports: %w", err)
	}

	p.logger.InfoContext(ctx, "expired reports cleaned up",
		slog.Int("files_deleted", len(stale)))

	return nil
}
