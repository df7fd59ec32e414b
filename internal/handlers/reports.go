// internal/handlers/reports.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	redis_a "github.com/ammerola/clinic-stock/internal/adapters/redis_adapter"
	"github.com/ammerola/clinic-stock/internal/core/ports"
	"github.com/ammerola/clinic-stock/internal/workers"
)

// ReportHandler queues ledger exports and serves their status
type ReportHandler struct {
	asynqClient *asynq.Client
	cache       ports.CacheRepository
	logger      *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(asynqClient *asynq.Client, cache ports.CacheRepository, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		asynqClient: asynqClient,
		cache:       cache,
		logger:      logger.With(slog.String("handler", "reports")),
	}
}

// GenerateLedgerReport handles POST /api/v1/reports/excel
func (h *ReportHandler) GenerateLedgerReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	payload := workers.LedgerReportPayload{
		JobID:       uuid.New().String(),
		RequestedBy: q.Get("requested_by"),
	}

	if v := q.Get("item_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "item_id must be a valid UUID")
			return
		}
		payload.ItemMasterID = &id
	}

	if v := q.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "from must be formatted as YYYY-MM-DD")
			return
		}
		payload.From = &t
	}

	if v := q.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "to must be formatted as YYYY-MM-DD")
			return
		}
		payload.To = &t
	}

	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal report payload",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	task := asynq.NewTask(workers.TypeLedgerReport, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue report task",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	// Seed the status so polling works before the worker picks it up
	statusKey := redis_a.BuildKey(redis_a.PrefixReport, payload.JobID)
	if err := h.cache.SetWithTTL(ctx, statusKey, workers.ReportStatus{
		JobID:  payload.JobID,
		Status: workers.ReportStatusQueued,
	}, 24*time.Hour); err != nil {
		h.logger.WarnContext(ctx, "failed to seed report status",
			slog.String("job_id", payload.JobID),
			slog.String("error", err.Error()))
	}

	h.logger.InfoContext(ctx, "ledger report queued",
		slog.String("job_id", payload.JobID),
		slog.String("task_id", info.ID))

	respondJSON(w, http.StatusAccepted, map[string]any{
		"job_id":  payload.JobID,
		"status":  workers.ReportStatusQueued,
		"message": "Ledger report has been queued for generation",
	})
}

// ReportStatus handles GET /api/v1/reports/{jobId}
func (h *ReportHandler) ReportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobID := r.PathValue("jobId")

	if _, err := uuid.Parse(jobID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var status workers.ReportStatus
	statusKey := redis_a.BuildKey(redis_a.PrefixReport, jobID)
	if err := h.cache.Get(ctx, statusKey, &status); err != nil {
		if errors.Is(err, redis_a.ErrCacheMiss) {
			respondError(w, http.StatusNotFound, "Report job not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to load report status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to load report status")
		return
	}

	respondJSON(w, http.StatusOK, status)
}
