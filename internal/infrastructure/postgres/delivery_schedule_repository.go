package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.DeliveryScheduleRepository = (*DeliveryScheduleRepo)(nil)

// DeliveryScheduleRepo programa de despachos sobre PostgreSQL.
type DeliveryScheduleRepo struct {
	q Querier
}

// NewDeliveryScheduleRepository construye el adaptador.
func NewDeliveryScheduleRepository(q Querier) *DeliveryScheduleRepo {
	return &DeliveryScheduleRepo{q: q}
}

const scheduleColumns = `id, plant, sales_no, sales_item, customer_name, ship_to_party, print_design,
	rdd, gross_weight, order_qty, schedule_date, created_at`

// CreateBatch inserta las líneas; usar dentro de una tx para que sea atómico.
func (r *DeliveryScheduleRepo) CreateBatch(ctx context.Context, rows []*entity.DeliverySchedule) error {
	if len(rows) == 0 {
		return nil
	}
	query := `INSERT INTO fg_delivery_schedule (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, row := range rows {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		_, err := r.q.Exec(ctx, query,
			row.ID, row.Plant, row.SalesNo, row.SalesItem, row.CustomerName,
			nullIfEmpty(row.ShipToParty), nullIfEmpty(row.PrintDesign), row.RDD,
			row.GrossWeight, row.OrderQty, row.ScheduleDate, row.CreatedAt,
		)
		if err != nil {
			return domain.NewStoreError("insert delivery schedule", err)
		}
	}
	return nil
}

// ListByDate líneas programadas para el día (fecha calendario) de la planta.
func (r *DeliveryScheduleRepo) ListByDate(ctx context.Context, plant string, date time.Time) ([]*entity.DeliverySchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM fg_delivery_schedule
		WHERE plant = $1 AND schedule_date = $2::date ORDER BY sales_no, sales_item`
	rows, err := r.q.Query(ctx, query, plant, date.Format("2006-01-02"))
	if err != nil {
		return nil, domain.NewStoreError("list delivery schedule", err)
	}
	defer rows.Close()
	var list []*entity.DeliverySchedule
	for rows.Next() {
		d, err := scanSchedule(rows)
		if err != nil {
			return nil, domain.NewStoreError("scan delivery schedule", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list delivery schedule", err)
	}
	return list, nil
}

// GetLine última versión importada de la línea de pedido.
func (r *DeliveryScheduleRepo) GetLine(ctx context.Context, plant, salesNo, salesItem string) (*entity.DeliverySchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM fg_delivery_schedule
		WHERE plant = $1 AND sales_no = $2 AND sales_item = $3
		ORDER BY created_at DESC, id DESC LIMIT 1`
	d, err := scanSchedule(r.q.QueryRow(ctx, query, plant, salesNo, salesItem))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get delivery schedule", err)
	}
	return d, nil
}

func scanSchedule(row pgx.Row) (*entity.DeliverySchedule, error) {
	var (
		d              entity.DeliverySchedule
		shipTo, design *string
	)
	err := row.Scan(&d.ID, &d.Plant, &d.SalesNo, &d.SalesItem, &d.CustomerName, &shipTo, &design,
		&d.RDD, &d.GrossWeight, &d.OrderQty, &d.ScheduleDate, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	d.ShipToParty = stringOrEmpty(shipTo)
	d.PrintDesign = stringOrEmpty(design)
	return &d, nil
}
