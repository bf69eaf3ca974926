package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockColumns = `id, item_code, plant, bin_location, weight, diameter, length, kind, gsm, width,
	batch, prod_order_no, goods_receive_date, user_id, updated_at`

// Get obtiene un ítem por (código, planta). (nil, nil) si no existe.
func (r *StockItemRepo) Get(ctx context.Context, class entity.ItemClass, plant, code string) (*entity.StockItem, error) {
	return r.get(ctx, class, plant, code, "")
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(ctx context.Context, class entity.ItemClass, plant, code string) (*entity.StockItem, error) {
	return r.get(ctx, class, plant, code, " FOR UPDATE")
}

func (r *StockItemRepo) get(ctx context.Context, class entity.ItemClass, plant, code, suffix string) (*entity.StockItem, error) {
	t, err := tablesFor(class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE item_code = $1 AND plant = $2%s`, stockColumns, t.stock, suffix)
	item, err := scanStockItem(r.q.QueryRow(ctx, query, code, plant), class)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get stock item", err)
	}
	return item, nil
}

// Create inserta el ítem. ErrDuplicateItem si (item_code, plant) ya existe.
func (r *StockItemRepo) Create(ctx context.Context, item *entity.StockItem) error {
	t, err := tablesFor(item.Class)
	if err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`, t.stock, stockColumns)
	_, err = r.q.Exec(ctx, query, stockArgs(item)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateItem
		}
		return domain.NewStoreError("insert stock item", err)
	}
	return nil
}

// Update reescribe ubicación, cantidades y lote del ítem.
func (r *StockItemRepo) Update(ctx context.Context, item *entity.StockItem) error {
	t, err := tablesFor(item.Class)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		UPDATE %s SET bin_location = $3, weight = $4, diameter = $5, length = $6,
			batch = $7, user_id = $8, updated_at = $9
		WHERE item_code = $1 AND plant = $2`, t.stock)
	tag, err := r.q.Exec(ctx, query, item.Code, item.Plant,
		item.BinLocation, item.Weight, item.Diameter, item.Length,
		nullIfEmpty(item.Batch), item.UserID, item.UpdatedAt,
	)
	if err != nil {
		return domain.NewStoreError("update stock item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el ítem; false si no existía.
func (r *StockItemRepo) Delete(ctx context.Context, class entity.ItemClass, plant, code string) (bool, error) {
	t, err := tablesFor(class)
	if err != nil {
		return false, err
	}
	tag, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE item_code = $1 AND plant = $2`, t.stock), code, plant)
	if err != nil {
		return false, domain.NewStoreError("delete stock item", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPage página de ítems de la planta ordenada por código.
func (r *StockItemRepo) ListPage(ctx context.Context, class entity.ItemClass, plant string, limit, offset int) ([]*entity.StockItem, error) {
	t, err := tablesFor(class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE plant = $1 ORDER BY item_code LIMIT $2 OFFSET $3`, stockColumns, t.stock)
	return r.list(ctx, class, query, plant, limit, offset)
}

// ListByBatch ítems de la planta con el lote indicado.
func (r *StockItemRepo) ListByBatch(ctx context.Context, class entity.ItemClass, plant, batch string) ([]*entity.StockItem, error) {
	t, err := tablesFor(class)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE plant = $1 AND batch = $2 ORDER BY updated_at DESC`, stockColumns, t.stock)
	return r.list(ctx, class, query, plant, batch)
}

func (r *StockItemRepo) list(ctx context.Context, class entity.ItemClass, query string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewStoreError("list stock items", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows, class)
		if err != nil {
			return nil, domain.NewStoreError("scan stock item", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list stock items", err)
	}
	return list, nil
}

// Upsert inserta o actualiza por (item_code, plant), conservando el id existente.
func (r *StockItemRepo) Upsert(ctx context.Context, item *entity.StockItem) error {
	t, err := tablesFor(item.Class)
	if err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (item_code, plant) DO UPDATE SET
			bin_location = EXCLUDED.bin_location, weight = EXCLUDED.weight,
			diameter = EXCLUDED.diameter, length = EXCLUDED.length, kind = EXCLUDED.kind,
			gsm = EXCLUDED.gsm, width = EXCLUDED.width, batch = EXCLUDED.batch,
			prod_order_no = EXCLUDED.prod_order_no, goods_receive_date = EXCLUDED.goods_receive_date,
			user_id = EXCLUDED.user_id, updated_at = EXCLUDED.updated_at`, t.stock, stockColumns)
	if _, err := r.q.Exec(ctx, query, stockArgs(item)...); err != nil {
		return domain.NewStoreError("upsert stock item", err)
	}
	return nil
}

// DeleteNotIn elimina los ítems de la planta ausentes en codes.
func (r *StockItemRepo) DeleteNotIn(ctx context.Context, class entity.ItemClass, plant string, codes []string) (int64, error) {
	t, err := tablesFor(class)
	if err != nil {
		return 0, err
	}
	if codes == nil {
		codes = []string{}
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE plant = $1 AND NOT (item_code = ANY($2))`, t.stock)
	tag, err := r.q.Exec(ctx, query, plant, codes)
	if err != nil {
		return 0, domain.NewStoreError("delete stale stock items", err)
	}
	return tag.RowsAffected(), nil
}

func stockArgs(item *entity.StockItem) []any {
	return []any{
		item.ID, item.Code, item.Plant, item.BinLocation,
		item.Weight, item.Diameter, item.Length,
		nullIfEmpty(item.Kind), nullIfZero(item.GSM), nullIfZero(item.Width),
		nullIfEmpty(item.Batch), nullIfEmpty(item.ProdOrderNo), item.GoodsReceiveDate,
		item.UserID, item.UpdatedAt,
	}
}

// scanStockItem mapea una fila a StockItem. NULL numérico = 0; fila sin código = error.
func scanStockItem(row pgx.Row, class entity.ItemClass) (*entity.StockItem, error) {
	var (
		s                              entity.StockItem
		code, bin, kind, batch, po, by *string
		weight, diameter, length       *float64
		gsm, width                     *float64
		received                       *time.Time
	)
	err := row.Scan(&s.ID, &code, &s.Plant, &bin, &weight, &diameter, &length, &kind, &gsm, &width,
		&batch, &po, &received, &by, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if code == nil || *code == "" {
		return nil, fmt.Errorf("fila %s sin item_code", s.ID)
	}
	s.Class = class
	s.Code = *code
	s.BinLocation = stringOrEmpty(bin)
	s.Weight = floatOrZero(weight)
	s.Diameter = floatOrZero(diameter)
	s.Length = floatOrZero(length)
	s.Kind = stringOrEmpty(kind)
	s.GSM = floatOrZero(gsm)
	s.Width = floatOrZero(width)
	s.Batch = stringOrEmpty(batch)
	s.ProdOrderNo = stringOrEmpty(po)
	s.GoodsReceiveDate = received
	s.UserID = stringOrEmpty(by)
	return &s, nil
}
