// internal/handlers/warehouse.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// WarehouseHandler handles stock movement HTTP requests
type WarehouseHandler struct {
	service ports.WarehouseService
	logger  *slog.Logger
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(service ports.WarehouseService, logger *slog.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "warehouse")),
	}
}

// ImportStock handles POST /api/v1/warehouse/import
func (h *WarehouseHandler) ImportStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ports.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ImportStock(ctx, req)
	if err != nil {
		h.respondMovementError(w, r, "import", err)
		return
	}

	h.logger.InfoContext(ctx, "stock imported",
		slog.Int("lines", len(req.Items)),
		slog.String("performed_by", req.PerformedBy))

	respondJSON(w, http.StatusCreated, result)
}

// ExportStock handles POST /api/v1/warehouse/export
func (h *WarehouseHandler) ExportStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ports.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ExportStock(ctx, req)
	if err != nil {
		h.respondMovementError(w, r, "export", err)
		return
	}

	h.logger.InfoContext(ctx, "stock exported",
		slog.Int("allocations", len(result.Allocations)),
		slog.String("export_type", string(req.ExportType)),
		slog.String("performed_by", req.PerformedBy))

	respondJSON(w, http.StatusCreated, result)
}

// AdjustStock handles POST /api/v1/warehouse/adjust
func (h *WarehouseHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ports.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AdjustStock(ctx, req)
	if err != nil {
		h.respondMovementError(w, r, "adjust", err)
		return
	}

	h.logger.InfoContext(ctx, "stock adjusted",
		slog.String("batch_id", req.BatchID.String()),
		slog.Int("new_quantity", req.NewQuantity),
		slog.String("performed_by", req.PerformedBy))

	respondJSON(w, http.StatusCreated, result)
}

// DestroyStock handles POST /api/v1/warehouse/destroy
func (h *WarehouseHandler) DestroyStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ports.DestroyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.DestroyStock(ctx, req)
	if err != nil {
		h.respondMovementError(w, r, "destroy", err)
		return
	}

	h.logger.InfoContext(ctx, "stock destroyed",
		slog.String("batch_id", req.BatchID.String()),
		slog.Int("quantity", req.Quantity),
		slog.String("performed_by", req.PerformedBy))

	respondJSON(w, http.StatusCreated, result)
}

// respondMovementError maps domain errors to HTTP status codes
func (h *WarehouseHandler) respondMovementError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		validationErr   *domain.ValidationError
		notFoundErr     *domain.NotFoundError
		insufficientErr *domain.InsufficientStockError
		expiredErr      *domain.ExpiredStockError
		auditErr        *domain.AuditRequirementError
	)

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &auditErr):
		respondError(w, http.StatusBadRequest, auditErr.Error())
	case errors.As(err, &notFoundErr):
		respondError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &insufficientErr):
		respondJSON(w, http.StatusConflict, map[string]any{
			"error":              insufficientErr.Error(),
			"requested_quantity": insufficientErr.Requested,
			"available_quantity": insufficientErr.Available,
		})
	case errors.As(err, &expiredErr):
		respondError(w, http.StatusConflict, expiredErr.Error())
	default:
		h.logger.ErrorContext(r.Context(), "stock movement failed",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Stock movement failed")
	}
}
