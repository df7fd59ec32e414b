// internal/core/services/warehouse.go
package services

import (
	"log/slog"
	"time"

	"github.com/ammerola/clinic-stock/internal/core/ports"
)

// WarehouseService implements the warehouse stock movements on top of
// the persistence ports. All mutations run inside a unit of work so
// that the batch quantity change and its ledger entry commit together,
// keeping every batch's quantity equal to the signed sum of its ledger.
type WarehouseService struct {
	uow     ports.UnitOfWork
	reader  ports.WarehouseReader
	catalog ports.CatalogLookup
	logger  *slog.Logger
	now     func() time.Time
}

// Statically assert that *WarehouseService implements the WarehouseService interface.
var _ ports.WarehouseService = (*WarehouseService)(nil)

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(uow ports.UnitOfWork, reader ports.WarehouseReader, catalog ports.CatalogLookup, logger *slog.Logger) *WarehouseService {
	return &WarehouseService{
		uow:     uow,
		reader:  reader,
		catalog: catalog,
		logger:  logger.With(slog.String("service", "warehouse")),
		now:     time.Now,
	}
}
