package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.OpnameRepository = (*OpnameRepo)(nil)

// OpnameRepo lecturas de inventario físico sobre PostgreSQL.
type OpnameRepo struct {
	q Querier
}

// NewOpnameRepository construye el adaptador.
func NewOpnameRepository(q Querier) *OpnameRepo {
	return &OpnameRepo{q: q}
}

// Create persiste una lectura.
func (r *OpnameRepo) Create(ctx context.Context, ev *entity.OpnameEvent) error {
	t, err := tablesFor(ev.Class)
	if err != nil {
		return err
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, scanned_id, plant, bin_location, opname_at, user_id, item_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, t.opname)
	_, err = r.q.Exec(ctx, query, ev.ID, ev.ScannedID, ev.Plant, ev.BinLocation, ev.OpnameAt, ev.UserID, ev.ItemCode)
	if err != nil {
		return domain.NewStoreError("insert opname event", err)
	}
	return nil
}

// Delete borra la lectura de la planta; false si no existía.
func (r *OpnameRepo) Delete(ctx context.Context, class entity.ItemClass, plant, id string) (bool, error) {
	t, err := tablesFor(class)
	if err != nil {
		return false, err
	}
	tag, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND plant = $2`, t.opname), id, plant)
	if err != nil {
		return false, domain.NewStoreError("delete opname event", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListBetween lecturas en [from, to), más recientes primero.
func (r *OpnameRepo) ListBetween(ctx context.Context, class entity.ItemClass, plant string, from, to time.Time, binLike string) ([]*entity.OpnameEvent, error) {
	t, err := tablesFor(class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, scanned_id, plant, bin_location, opname_at, user_id, item_code
		FROM %s WHERE plant = $1 AND opname_at >= $2 AND opname_at < $3`, t.opname)
	args := []any{plant, from, to}
	if binLike != "" {
		query += ` AND bin_location ILIKE $4`
		args = append(args, likePattern(binLike))
	}
	query += ` ORDER BY opname_at DESC, id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list opname events", err)
	}
	defer rows.Close()
	var list []*entity.OpnameEvent
	for rows.Next() {
		var (
			ev  entity.OpnameEvent
			bin *string
			by  *string
		)
		if err := rows.Scan(&ev.ID, &ev.ScannedID, &ev.Plant, &bin, &ev.OpnameAt, &by, &ev.ItemCode); err != nil {
			return nil, domain.NewStoreError("scan opname event", err)
		}
		ev.Class = class
		ev.BinLocation = stringOrEmpty(bin)
		ev.UserID = stringOrEmpty(by)
		list = append(list, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list opname events", err)
	}
	return list, nil
}
