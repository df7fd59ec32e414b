// internal/handlers/transactions.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// TransactionHandler handles ledger query requests
type TransactionHandler struct {
	service ports.WarehouseService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service ports.WarehouseService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "transactions")),
	}
}

// GetTransaction handles GET /api/v1/transactions/{id}
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txnID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	txn, err := h.service.GetTransaction(ctx, txnID)
	if err != nil {
		var notFoundErr *domain.NotFoundError
		if errors.As(err, &notFoundErr) {
			respondError(w, http.StatusNotFound, notFoundErr.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to get transaction",
			slog.String("transaction_id", txnID.String()),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to retrieve transaction")
		return
	}

	respondJSON(w, http.StatusOK, txn)
}

// ListTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := h.parseHistoryParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.ListTransactions(ctx, params)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to list transactions",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// parseHistoryParams parses ledger filter query parameters
func (h *TransactionHandler) parseHistoryParams(r *http.Request) (ports.HistoryParams, error) {
	params := ports.HistoryParams{
		Page:      1,
		PageSize:  50,
		SortOrder: "desc",
	}

	q := r.URL.Query()

	if v := q.Get("item_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return params, errors.New("item_id must be a valid UUID")
		}
		params.ItemMasterID = &id
	}

	if v := q.Get("batch_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return params, errors.New("batch_id must be a valid UUID")
		}
		params.BatchID = &id
	}

	if v := q.Get("type"); v != "" {
		typ := domain.TransactionType(v)
		params.Type = &typ
	}

	params.PerformedBy = q.Get("performed_by")

	if v := q.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return params, errors.New("from must be formatted as YYYY-MM-DD")
		}
		params.From = &t
	}

	if v := q.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return params, errors.New("to must be formatted as YYYY-MM-DD")
		}
		params.To = &t
	}

	if v := q.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}

	if v := q.Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			params.PageSize = l
		}
	}

	if order := q.Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params, nil
}
