// Package report vistas de solo lectura sobre el libro de stock: listado, tablero de
// antigüedad, historial de movimientos y reporte de inventario físico.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

const (
	// DefaultFetchPageSize filas por consulta al recorrer todo el stock de una planta.
	DefaultFetchPageSize = 1000
	// DefaultListPageSize filas por página del listado de stock.
	DefaultListPageSize = 500
)

// Options tamaños de página; valores <= 0 usan los por defecto.
type Options struct {
	FetchPageSize int
	ListPageSize  int
}

// ReportUseCase arma los reportes a partir de los repositorios.
type ReportUseCase struct {
	items     repository.StockItemRepository
	events    repository.MovementEventRepository
	opname    repository.OpnameRepository
	fetchSize int
	listSize  int
	log       *logger.Logger
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	items repository.StockItemRepository,
	events repository.MovementEventRepository,
	opname repository.OpnameRepository,
	opts Options,
	log *logger.Logger,
) *ReportUseCase {
	if opts.FetchPageSize <= 0 {
		opts.FetchPageSize = DefaultFetchPageSize
	}
	if opts.ListPageSize <= 0 {
		opts.ListPageSize = DefaultListPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		items:     items,
		events:    events,
		opname:    opname,
		fetchSize: opts.FetchPageSize,
		listSize:  opts.ListPageSize,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock reemplaza el reloj (tests).
func (uc *ReportUseCase) SetClock(now func() time.Time) { uc.now = now }

// fetchAll recorre el stock de la planta en páginas hasta recibir una incompleta.
func (uc *ReportUseCase) fetchAll(ctx context.Context, class entity.ItemClass, plant string) ([]*entity.StockItem, error) {
	var all []*entity.StockItem
	for offset := 0; ; offset += uc.fetchSize {
		page, err := uc.items.ListPage(ctx, class, plant, uc.fetchSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < uc.fetchSize {
			return all, nil
		}
	}
}

func checkAccess(sess *entity.Session, class entity.ItemClass, plant string) error {
	if err := domain.RequirePlant(sess, plant); err != nil {
		return err
	}
	if !class.Valid() {
		return domain.Invalid("class", "clase de ítem desconocida")
	}
	return nil
}
