package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// OpnameRepository puerto de persistencia de lecturas de inventario físico.
type OpnameRepository interface {
	Create(ctx context.Context, ev *entity.OpnameEvent) error
	Delete(ctx context.Context, class entity.ItemClass, plant, id string) (bool, error)
	// ListBetween lecturas en [from, to); binLike filtra por coincidencia parcial de ubicación.
	ListBetween(ctx context.Context, class entity.ItemClass, plant string, from, to time.Time, binLike string) ([]*entity.OpnameEvent, error)
}
