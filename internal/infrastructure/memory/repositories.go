package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var (
	_ repository.StockItemRepository        = (*ItemRepo)(nil)
	_ repository.MovementEventRepository    = (*EventRepo)(nil)
	_ repository.OpnameRepository           = (*OpnameRepo)(nil)
	_ repository.DeliveryScheduleRepository = (*ScheduleRepo)(nil)
	_ repository.AccountRepository          = (*AccountRepo)(nil)
)

func itemKey(class entity.ItemClass, plant, code string) string {
	return string(class) + "|" + plant + "|" + code
}

// ── Ítems ────────────────────────────────────────────────────────────────────

// ItemRepo StockItemRepository en memoria.
type ItemRepo struct{ s *Store }

func (r *ItemRepo) Get(_ context.Context, class entity.ItemClass, plant, code string) (*entity.StockItem, error) {
	if err := r.s.fail("items.get"); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.st.items[itemKey(class, plant, code)]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepo) GetForUpdate(ctx context.Context, class entity.ItemClass, plant, code string) (*entity.StockItem, error) {
	return r.Get(ctx, class, plant, code)
}

func (r *ItemRepo) Create(_ context.Context, item *entity.StockItem) error {
	if err := r.s.fail("items.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := itemKey(item.Class, item.Plant, item.Code)
	if _, ok := r.s.st.items[k]; ok {
		return domain.ErrDuplicateItem
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.s.st.items[k] = *item
	return nil
}

func (r *ItemRepo) Update(_ context.Context, item *entity.StockItem) error {
	if err := r.s.fail("items.update"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := itemKey(item.Class, item.Plant, item.Code)
	if _, ok := r.s.st.items[k]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.items[k] = *item
	return nil
}

func (r *ItemRepo) Delete(_ context.Context, class entity.ItemClass, plant, code string) (bool, error) {
	if err := r.s.fail("items.delete"); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := itemKey(class, plant, code)
	if _, ok := r.s.st.items[k]; !ok {
		return false, nil
	}
	delete(r.s.st.items, k)
	return true, nil
}

func (r *ItemRepo) ListPage(_ context.Context, class entity.ItemClass, plant string, limit, offset int) ([]*entity.StockItem, error) {
	if err := r.s.fail("items.list"); err != nil {
		return nil, err
	}
	all := r.filter(func(it entity.StockItem) bool { return it.Class == class && it.Plant == plant })
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *ItemRepo) ListByBatch(_ context.Context, class entity.ItemClass, plant, batch string) ([]*entity.StockItem, error) {
	return r.filter(func(it entity.StockItem) bool {
		return it.Class == class && it.Plant == plant && it.Batch == batch
	}), nil
}

func (r *ItemRepo) Upsert(_ context.Context, item *entity.StockItem) error {
	if err := r.s.fail("items.upsert"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := itemKey(item.Class, item.Plant, item.Code)
	if prev, ok := r.s.st.items[k]; ok {
		item.ID = prev.ID
	} else if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.s.st.items[k] = *item
	return nil
}

func (r *ItemRepo) DeleteNotIn(_ context.Context, class entity.ItemClass, plant string, codes []string) (int64, error) {
	if err := r.s.fail("items.delete_not_in"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k, it := range r.s.st.items {
		if it.Class == class && it.Plant == plant && !slices.Contains(codes, it.Code) {
			delete(r.s.st.items, k)
			n++
		}
	}
	return n, nil
}

// filter devuelve copias ordenadas por código.
func (r *ItemRepo) filter(keep func(entity.StockItem) bool) []*entity.StockItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockItem
	for _, it := range r.s.st.items {
		if keep(it) {
			c := it
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ── Movimientos ──────────────────────────────────────────────────────────────

// EventRepo MovementEventRepository en memoria. El orden de inserción desempata timestamps.
type EventRepo struct{ s *Store }

func (r *EventRepo) Create(_ context.Context, ev *entity.MovementEvent) error {
	if err := r.s.fail("events.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	r.s.st.events = append(r.s.st.events, *ev)
	return nil
}

func (r *EventRepo) LatestToDestination(_ context.Context, class entity.ItemClass, plant, code string, typ entity.MovementType, dest string) (*entity.MovementEvent, error) {
	return r.latest(func(ev entity.MovementEvent) bool {
		return ev.Class == class && ev.Plant == plant && ev.ItemCode == code && ev.Type == typ && ev.DestinationLoc == dest
	}), nil
}

func (r *EventRepo) Latest(_ context.Context, class entity.ItemClass, plant, code string, typ entity.MovementType) (*entity.MovementEvent, error) {
	return r.latest(func(ev entity.MovementEvent) bool {
		return ev.Class == class && ev.Plant == plant && ev.ItemCode == code && ev.Type == typ
	}), nil
}

func (r *EventRepo) latest(match func(entity.MovementEvent) bool) *entity.MovementEvent {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var best *entity.MovementEvent
	for i := range r.s.st.events {
		ev := r.s.st.events[i]
		if !match(ev) {
			continue
		}
		if best == nil || !ev.Timestamp.Before(best.Timestamp) {
			c := ev
			best = &c
		}
	}
	return best
}

func (r *EventRepo) Delete(_ context.Context, class entity.ItemClass, id string) (bool, error) {
	if err := r.s.fail("events.delete"); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, ev := range r.s.st.events {
		if ev.Class == class && ev.ID == id {
			r.s.st.events = append(r.s.st.events[:i], r.s.st.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *EventRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.MovementEvent, error) {
	if err := r.s.fail("events.list"); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	var out []*entity.MovementEvent
	for _, ev := range r.s.st.events {
		if !matchMovement(ev, f) {
			continue
		}
		c := ev
		out = append(out, &c)
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if f.Desc {
			return movementLess(out[j], out[i], f.SortKey)
		}
		return movementLess(out[i], out[j], f.SortKey)
	})
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matchMovement(ev entity.MovementEvent, f repository.MovementFilter) bool {
	switch {
	case ev.Class != f.Class || ev.Plant != f.Plant:
		return false
	case f.From != nil && ev.Timestamp.Before(*f.From):
		return false
	case f.To != nil && !ev.Timestamp.Before(*f.To):
		return false
	case f.User != "" && !strings.Contains(strings.ToLower(ev.UserID), strings.ToLower(f.User)):
		return false
	case f.Type != "" && ev.Type != f.Type:
		return false
	case f.ItemCode != "" && ev.ItemCode != f.ItemCode:
		return false
	case f.SalesNo != "" && ev.SalesNo != f.SalesNo:
		return false
	case f.SalesItem != "" && ev.SalesItem != f.SalesItem:
		return false
	}
	return true
}

func movementLess(a, b *entity.MovementEvent, key string) bool {
	switch key {
	case "item_code":
		return a.ItemCode < b.ItemCode
	case "movement_type":
		return a.Type < b.Type
	case "user_id":
		return a.UserID < b.UserID
	case "weight":
		return a.Weight < b.Weight
	case "initial_bin_location":
		return a.InitialLoc < b.InitialLoc
	case "destination_bin_location":
		return a.DestinationLoc < b.DestinationLoc
	default:
		return a.Timestamp.Before(b.Timestamp)
	}
}

// ── Opname ───────────────────────────────────────────────────────────────────

// OpnameRepo OpnameRepository en memoria.
type OpnameRepo struct{ s *Store }

func (r *OpnameRepo) Create(_ context.Context, ev *entity.OpnameEvent) error {
	if err := r.s.fail("opname.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	r.s.st.opname = append(r.s.st.opname, *ev)
	return nil
}

func (r *OpnameRepo) Delete(_ context.Context, class entity.ItemClass, plant, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, ev := range r.s.st.opname {
		if ev.Class == class && ev.Plant == plant && ev.ID == id {
			r.s.st.opname = append(r.s.st.opname[:i], r.s.st.opname[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *OpnameRepo) ListBetween(_ context.Context, class entity.ItemClass, plant string, from, to time.Time, binLike string) ([]*entity.OpnameEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.OpnameEvent
	for _, ev := range r.s.st.opname {
		if ev.Class != class || ev.Plant != plant || ev.OpnameAt.Before(from) || !ev.OpnameAt.Before(to) {
			continue
		}
		if binLike != "" && !strings.Contains(strings.ToLower(ev.BinLocation), strings.ToLower(binLike)) {
			continue
		}
		c := ev
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OpnameAt.After(out[j].OpnameAt) })
	return out, nil
}

// ── Programa de despachos ────────────────────────────────────────────────────

// ScheduleRepo DeliveryScheduleRepository en memoria.
type ScheduleRepo struct{ s *Store }

func (r *ScheduleRepo) CreateBatch(_ context.Context, rows []*entity.DeliverySchedule) error {
	if err := r.s.fail("schedules.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range rows {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		r.s.st.schedules = append(r.s.st.schedules, *row)
	}
	return nil
}

func (r *ScheduleRepo) ListByDate(_ context.Context, plant string, date time.Time) ([]*entity.DeliverySchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	y, m, d := date.Date()
	var out []*entity.DeliverySchedule
	for _, row := range r.s.st.schedules {
		ry, rm, rd := row.ScheduleDate.Date()
		if row.Plant == plant && ry == y && rm == m && rd == d {
			c := row
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ScheduleRepo) GetLine(_ context.Context, plant, salesNo, salesItem string) (*entity.DeliverySchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := len(r.s.st.schedules) - 1; i >= 0; i-- {
		row := r.s.st.schedules[i]
		if row.Plant == plant && row.SalesNo == salesNo && row.SalesItem == salesItem {
			return &row, nil
		}
	}
	return nil, nil
}

// ── Cuentas ──────────────────────────────────────────────────────────────────

// AccountRepo AccountRepository en memoria.
type AccountRepo struct{ s *Store }

func (r *AccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	r.s.st.accounts[a.ID] = *a
	return nil
}

func (r *AccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.st.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.st.accounts {
		if strings.EqualFold(a.Email, email) {
			c := a
			return &c, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.accounts[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.accounts[a.ID] = *a
	return nil
}

func (r *AccountRepo) List(_ context.Context, emailLike string, limit, offset int) ([]*entity.Account, error) {
	r.s.mu.RLock()
	var out []*entity.Account
	for _, a := range r.s.st.accounts {
		if emailLike != "" && !strings.Contains(strings.ToLower(a.Email), strings.ToLower(emailLike)) {
			continue
		}
		c := a
		out = append(out, &c)
	}
	r.s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	if offset >= len(out) {
		return nil, nil
	}
	if limit > 0 && offset+limit < len(out) {
		return out[offset : offset+limit], nil
	}
	return out[offset:], nil
}
