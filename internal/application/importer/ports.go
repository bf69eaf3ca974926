package importer

import (
	"context"

	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

// ImportTxRunner transacción de carga masiva. Un fallo de Commit se reporta como StoreError.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(
		items repository.StockItemRepository,
		schedules repository.DeliveryScheduleRepository,
	) error) error
}

// Archiver guarda una copia del archivo subido y devuelve su ubicación.
type Archiver interface {
	Archive(ctx context.Context, key, contentType string, body []byte) (string, error)
}
