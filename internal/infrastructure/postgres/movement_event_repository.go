package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.MovementEventRepository = (*MovementEventRepo)(nil)

// MovementEventRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementEventRepo struct {
	q Querier
}

// NewMovementEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementEventRepository(q Querier) *MovementEventRepo {
	return &MovementEventRepo{q: q}
}

const movementColumns = `id, item_code, plant, movement_type, initial_bin_location, destination_bin_location,
	weight, diameter, length, batch, prod_order_no, sales_no, sales_item, user_id, "timestamp"`

// movementSortColumns lista blanca de claves de orden del historial.
var movementSortColumns = map[string]string{
	"timestamp":                `"timestamp"`,
	"item_code":                "item_code",
	"movement_type":            "movement_type",
	"user_id":                  "user_id",
	"weight":                   "weight",
	"initial_bin_location":     "initial_bin_location",
	"destination_bin_location": "destination_bin_location",
}

// Create persiste un movimiento.
func (r *MovementEventRepo) Create(ctx context.Context, ev *entity.MovementEvent) error {
	t, err := tablesFor(ev.Class)
	if err != nil {
		return err
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`, t.movements, movementColumns)
	_, err = r.q.Exec(ctx, query,
		ev.ID, ev.ItemCode, ev.Plant, string(ev.Type), nullIfEmpty(ev.InitialLoc), ev.DestinationLoc,
		ev.Weight, ev.Diameter, ev.Length, nullIfEmpty(ev.Batch), nullIfEmpty(ev.ProdOrderNo),
		nullIfEmpty(ev.SalesNo), nullIfEmpty(ev.SalesItem), ev.UserID, ev.Timestamp,
	)
	if err != nil {
		return domain.NewStoreError("insert movement", err)
	}
	return nil
}

// LatestToDestination último movimiento del tipo hacia dest.
func (r *MovementEventRepo) LatestToDestination(ctx context.Context, class entity.ItemClass, plant, code string, typ entity.MovementType, dest string) (*entity.MovementEvent, error) {
	t, err := tablesFor(class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE item_code = $1 AND plant = $2 AND movement_type = $3 AND destination_bin_location = $4
		ORDER BY "timestamp" DESC, id DESC LIMIT 1`, movementColumns, t.movements)
	return r.one(ctx, class, query, code, plant, string(typ), dest)
}

// Latest último movimiento del tipo para el ítem.
func (r *MovementEventRepo) Latest(ctx context.Context, class entity.ItemClass, plant, code string, typ entity.MovementType) (*entity.MovementEvent, error) {
	t, err := tablesFor(class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE item_code = $1 AND plant = $2 AND movement_type = $3
		ORDER BY "timestamp" DESC, id DESC LIMIT 1`, movementColumns, t.movements)
	return r.one(ctx, class, query, code, plant, string(typ))
}

func (r *MovementEventRepo) one(ctx context.Context, class entity.ItemClass, query string, args ...any) (*entity.MovementEvent, error) {
	ev, err := scanMovement(r.q.QueryRow(ctx, query, args...), class)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get movement", err)
	}
	return ev, nil
}

// Delete borra un movimiento por id.
func (r *MovementEventRepo) Delete(ctx context.Context, class entity.ItemClass, id string) (bool, error) {
	t, err := tablesFor(class)
	if err != nil {
		return false, err
	}
	tag, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.movements), id)
	if err != nil {
		return false, domain.NewStoreError("delete movement", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List historial filtrado y ordenado.
func (r *MovementEventRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementEvent, error) {
	t, err := tablesFor(f.Class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE plant = $1`, movementColumns, t.movements)
	args := []any{f.Plant}
	pos := 2
	add := func(cond string, v any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, v)
		pos++
	}
	if f.From != nil {
		add(`"timestamp" >= $%d`, *f.From)
	}
	if f.To != nil {
		add(`"timestamp" < $%d`, *f.To)
	}
	if f.User != "" {
		add(`user_id ILIKE $%d`, likePattern(f.User))
	}
	if f.Type != "" {
		add(`movement_type = $%d`, string(f.Type))
	}
	if f.ItemCode != "" {
		add(`item_code = $%d`, f.ItemCode)
	}
	if f.SalesNo != "" {
		add(`sales_no = $%d`, f.SalesNo)
	}
	if f.SalesItem != "" {
		add(`sales_item = $%d`, f.SalesItem)
	}

	col, ok := movementSortColumns[f.SortKey]
	if !ok {
		col = `"timestamp"`
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s NULLS LAST, id %s", col, dir, dir)
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list movements", err)
	}
	defer rows.Close()
	var list []*entity.MovementEvent
	for rows.Next() {
		ev, err := scanMovement(rows, f.Class)
		if err != nil {
			return nil, domain.NewStoreError("scan movement", err)
		}
		list = append(list, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list movements", err)
	}
	return list, nil
}

func scanMovement(row pgx.Row, class entity.ItemClass) (*entity.MovementEvent, error) {
	var (
		m                                  entity.MovementEvent
		typ                                string
		initial, batch, po, sNo, sItem, by *string
		weight, diameter, length           *float64
	)
	err := row.Scan(&m.ID, &m.ItemCode, &m.Plant, &typ, &initial, &m.DestinationLoc,
		&weight, &diameter, &length, &batch, &po, &sNo, &sItem, &by, &m.Timestamp)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(typ)
	if !m.Type.Valid() {
		return nil, fmt.Errorf("movimiento %s con tipo desconocido %q", m.ID, typ)
	}
	m.Class = class
	m.InitialLoc = stringOrEmpty(initial)
	m.Weight = floatOrZero(weight)
	m.Diameter = floatOrZero(diameter)
	m.Length = floatOrZero(length)
	m.Batch = stringOrEmpty(batch)
	m.ProdOrderNo = stringOrEmpty(po)
	m.SalesNo = stringOrEmpty(sNo)
	m.SalesItem = stringOrEmpty(sItem)
	m.UserID = stringOrEmpty(by)
	return &m, nil
}
