package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// MovementFilter criterios del historial de movimientos. Campos vacíos no filtran.
type MovementFilter struct {
	Class     entity.ItemClass
	Plant     string
	From      *time.Time
	To        *time.Time
	User      string // coincidencia parcial, sin distinguir mayúsculas
	Type      entity.MovementType
	ItemCode  string
	SalesNo   string
	SalesItem string
	SortKey   string // columna ya validada contra la lista blanca
	Desc      bool
	Limit     int
	Offset    int
}

// MovementEventRepository puerto de persistencia del libro de movimientos.
type MovementEventRepository interface {
	Create(ctx context.Context, ev *entity.MovementEvent) error
	// LatestToDestination último evento del tipo cuyo destino es dest (más reciente primero).
	LatestToDestination(ctx context.Context, class entity.ItemClass, plant, code string, typ entity.MovementType, dest string) (*entity.MovementEvent, error)
	// Latest último evento del tipo para el ítem, sin importar destino.
	Latest(ctx context.Context, class entity.ItemClass, plant, code string, typ entity.MovementType) (*entity.MovementEvent, error)
	// Delete devuelve false si no había fila.
	Delete(ctx context.Context, class entity.ItemClass, id string) (bool, error)
	List(ctx context.Context, f MovementFilter) ([]*entity.MovementEvent, error)
}

// MovementSortKeys claves de orden aceptadas por el historial.
var MovementSortKeys = []string{
	"timestamp", "item_code", "movement_type", "user_id", "weight",
	"initial_bin_location", "destination_bin_location",
}
