package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// DeliveryScheduleRepository puerto de persistencia del programa de despachos.
type DeliveryScheduleRepository interface {
	CreateBatch(ctx context.Context, rows []*entity.DeliverySchedule) error
	ListByDate(ctx context.Context, plant string, date time.Time) ([]*entity.DeliverySchedule, error)
	// GetLine devuelve (nil, nil) si la línea no existe.
	GetLine(ctx context.Context, plant, salesNo, salesItem string) (*entity.DeliverySchedule, error)
}
