package report

import (
	"context"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

// OpnameRow lectura con los datos maestros del ítem; Item nil si el id escaneado no existe
// (o ya no existe) en el stock.
type OpnameRow struct {
	Event     *entity.OpnameEvent
	Item      *entity.StockItem
	AgingDays *int
}

// OpnameReport lecturas del día (UTC) de la planta, más recientes primero.
func (uc *ReportUseCase) OpnameReport(ctx context.Context, sess *entity.Session, class entity.ItemClass, plant string, day time.Time, binLike string) ([]OpnameRow, error) {
	if err := checkAccess(sess, class, plant); err != nil {
		return nil, err
	}
	from := startOfDay(day)
	events, err := uc.opname.ListBetween(ctx, class, plant, from, from.AddDate(0, 0, 1), binLike)
	if err != nil {
		return nil, err
	}

	masters := map[string]*entity.StockItem{}
	now := uc.now()
	rows := make([]OpnameRow, 0, len(events))
	for _, ev := range events {
		row := OpnameRow{Event: ev}
		if ev.ItemCode != nil {
			item, seen := masters[*ev.ItemCode]
			if !seen {
				item, err = uc.items.Get(ctx, class, plant, *ev.ItemCode)
				if err != nil {
					return nil, err
				}
				masters[*ev.ItemCode] = item
			}
			row.Item = item
			if item != nil && item.GoodsReceiveDate != nil {
				d := ledger.AgingDays(item.GoodsReceiveDate, now)
				row.AgingDays = &d
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
