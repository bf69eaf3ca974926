package report

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

// HistoryQuery filtros del historial. From y To son días calendario (UTC), ambos inclusive.
type HistoryQuery struct {
	Class   entity.ItemClass
	Plant   string
	From    *time.Time
	To      *time.Time
	User    string
	Type    entity.MovementType
	SortKey string
	Desc    bool
	Limit   int
	Offset  int
}

// MovementHistory historial de movimientos de la planta.
func (uc *ReportUseCase) MovementHistory(ctx context.Context, sess *entity.Session, q HistoryQuery) ([]*entity.MovementEvent, error) {
	if err := checkAccess(sess, q.Class, q.Plant); err != nil {
		return nil, err
	}
	if q.SortKey == "" {
		q.SortKey = "timestamp"
	}
	if !slices.Contains(repository.MovementSortKeys, q.SortKey) {
		return nil, domain.Invalid("sort", "columna de orden no permitida")
	}
	if q.Type != "" && !q.Type.Valid() {
		return nil, domain.Invalid("type", "tipo de movimiento desconocido")
	}
	if q.Limit < 0 || q.Offset < 0 {
		return nil, domain.Invalid("limit", "no puede ser negativo")
	}
	f := repository.MovementFilter{
		Class:   q.Class,
		Plant:   q.Plant,
		User:    q.User,
		Type:    q.Type,
		SortKey: q.SortKey,
		Desc:    q.Desc,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
	if q.From != nil {
		from := startOfDay(*q.From)
		f.From = &from
	}
	if q.To != nil {
		to := startOfDay(*q.To).AddDate(0, 0, 1)
		f.To = &to
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return nil, domain.Invalid("from", "debe ser anterior o igual a to")
	}
	if f.Limit > 0 {
		return uc.events.List(ctx, f)
	}
	return uc.fetchAllEvents(ctx, f)
}

// fetchAllEvents recorre el historial completo en páginas de fetchSize.
func (uc *ReportUseCase) fetchAllEvents(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementEvent, error) {
	var all []*entity.MovementEvent
	start := f.Offset
	f.Limit = uc.fetchSize
	for {
		f.Offset = start + len(all)
		page, err := uc.events.List(ctx, f)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < uc.fetchSize {
			return all, nil
		}
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
