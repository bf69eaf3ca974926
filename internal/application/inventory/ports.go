package inventory

import (
	"context"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Un fallo en el Commit se reporta como domain.ErrManualCorrection.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.StockItemRepository,
		events repository.MovementEventRepository,
	) error) error
}

// WorkflowObserver recibe el resultado de cada flujo (métricas).
type WorkflowObserver interface {
	ObserveWorkflow(op string, class entity.ItemClass, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveWorkflow(string, entity.ItemClass, error) {}
