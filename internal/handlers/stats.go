// internal/handlers/stats.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	redis_a "github.com/ammerola/clinic-stock/internal/adapters/redis_adapter"
	"github.com/ammerola/clinic-stock/internal/core/domain"
	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// StatsHandler handles warehouse-wide aggregate queries
type StatsHandler struct {
	service ports.WarehouseService
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service ports.WarehouseService, cache ports.CacheRepository, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		cache:   cache,
		logger:  logger.With(slog.String("handler", "stats")),
	}
}

// Stats handles GET /api/v1/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var stats ports.InventoryStats
	cacheKey := redis_a.BuildKey(redis_a.PrefixStats, "inventory")
	err := h.cache.GetOrSet(ctx, cacheKey, &stats, func() (any, error) {
		s, err := h.service.Stats(ctx)
		if err != nil {
			return nil, err
		}
		return s, nil
	}, cacheTTL)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute inventory stats",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// LossReport handles GET /api/v1/reports/loss
func (h *StatsHandler) LossReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, to, err := parsePeriod(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.service.LossReport(ctx, from, to)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to build loss report",
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to build loss report")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// parsePeriod reads from/to query parameters, defaulting to the last 30
// days ending now.
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, errors.New("from must be formatted as YYYY-MM-DD")
		}
		from = t
	}

	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, errors.New("to must be formatted as YYYY-MM-DD")
		}
		// Include the whole end day
		to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return from, to, nil
}
