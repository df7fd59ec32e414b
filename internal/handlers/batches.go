// internal/handlers/batches.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	redis_a "github.com/ammerola/clinic-stock/internal/adapters/redis_adapter"
	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// BatchHandler handles batch and stock level queries
type BatchHandler struct {
	service ports.WarehouseService
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(service ports.WarehouseService, cache ports.CacheRepository, logger *slog.Logger) *BatchHandler {
	return &BatchHandler{
		service: service,
		cache:   cache,
		logger:  logger.With(slog.String("handler", "batches")),
	}
}

// GetStockSummary handles GET /api/v1/stock/{itemId}
func (h *BatchHandler) GetStockSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var summary ports.StockSummary
	cacheKey := redis_a.BuildKey(redis_a.PrefixStock, itemID.String())
	err = h.cache.GetOrSet(ctx, cacheKey, &summary, func() (any, error) {
		s, err := h.service.GetStockSummary(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return s, nil
	}, cacheTTL)

	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetBatch handles GET /api/v1/batches/{batchId}
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	batchID, err := uuid.Parse(r.PathValue("batchId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid batch ID format")
		return
	}

	batch, err := h.service.GetBatch(ctx, batchID)
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, batch)
}

// ListBatchesByItem handles GET /api/v1/batches/item/{itemId}
func (h *BatchHandler) ListBatchesByItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	includeEmpty := r.URL.Query().Get("include_empty") == "true"

	batches, err := h.service.ListBatchesByItem(ctx, itemID, includeEmpty)
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"item_master_id": itemID,
		"batches":        batches,
		"count":          len(batches),
	})
}

// ListExpiringBatches handles GET /api/v1/batches/expiring
func (h *BatchHandler) ListExpiringBatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days := 30
	if d := r.URL.Query().Get("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			respondError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	batches, err := h.service.ListExpiringBatches(ctx, days)
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"days":    days,
		"batches": batches,
		"count":   len(batches),
	})
}

func (h *BatchHandler) respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		respondError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		h.logger.ErrorContext(r.Context(), "stock query failed",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Query failed")
	}
}
