package repository

import (
	"context"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// StockItemRepository puerto de persistencia de ítems en almacén (PR y FG).
// Los Get devuelven (nil, nil) cuando no hay fila.
type StockItemRepository interface {
	Get(ctx context.Context, class entity.ItemClass, plant, code string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, class entity.ItemClass, plant, code string) (*entity.StockItem, error)
	// Create devuelve domain.ErrDuplicateItem si (code, plant) ya existe.
	Create(ctx context.Context, item *entity.StockItem) error
	Update(ctx context.Context, item *entity.StockItem) error
	// Delete devuelve false si no había fila.
	Delete(ctx context.Context, class entity.ItemClass, plant, code string) (bool, error)
	ListPage(ctx context.Context, class entity.ItemClass, plant string, limit, offset int) ([]*entity.StockItem, error)
	ListByBatch(ctx context.Context, class entity.ItemClass, plant, batch string) ([]*entity.StockItem, error)
	// Upsert inserta o reemplaza por (code, plant).
	Upsert(ctx context.Context, item *entity.StockItem) error
	// DeleteNotIn elimina los ítems de la planta cuyo código no está en codes.
	DeleteNotIn(ctx context.Context, class entity.ItemClass, plant string, codes []string) (int64, error)
}
