// Package memory implementa los puertos de persistencia en memoria, con transacciones
// por snapshot. Se usa en tests de casos de uso y handlers.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

type state struct {
	items     map[string]entity.StockItem
	events    []entity.MovementEvent
	opname    []entity.OpnameEvent
	schedules []entity.DeliverySchedule
	accounts  map[string]entity.Account
}

func newState() state {
	return state{
		items:    make(map[string]entity.StockItem),
		accounts: make(map[string]entity.Account),
	}
}

func (s state) clone() state {
	c := state{
		items:     make(map[string]entity.StockItem, len(s.items)),
		events:    append([]entity.MovementEvent(nil), s.events...),
		opname:    append([]entity.OpnameEvent(nil), s.opname...),
		schedules: append([]entity.DeliverySchedule(nil), s.schedules...),
		accounts:  make(map[string]entity.Account, len(s.accounts)),
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	return c
}

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	st   state

	// CommitErr simula un fallo en el Commit de la próxima transacción.
	CommitErr error
	// FailOn hace fallar la operación indicada (p.ej. "events.create") con el error dado.
	FailOn map[string]error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState(), FailOn: map[string]error{}}
}

func (s *Store) fail(op string) error {
	if err, ok := s.FailOn[op]; ok {
		return domain.NewStoreError(op, err)
	}
	return nil
}

// Items repositorio de ítems.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

// Events repositorio de movimientos.
func (s *Store) Events() *EventRepo { return &EventRepo{s: s} }

// Opname repositorio de lecturas de inventario físico.
func (s *Store) Opname() *OpnameRepo { return &OpnameRepo{s: s} }

// Schedules repositorio del programa de despachos.
func (s *Store) Schedules() *ScheduleRepo { return &ScheduleRepo{s: s} }

// Accounts repositorio de cuentas.
func (s *Store) Accounts() *AccountRepo { return &AccountRepo{s: s} }

// TxRunner runner transaccional sobre el store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// TxRunner serializa transacciones y restaura el snapshot si fn falla.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn; ante error restaura el estado previo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.StockItemRepository,
	events repository.MovementEventRepository,
) error) error {
	return r.atomic(ctx, func() error { return fn(r.s.Items(), r.s.Events()) }, true)
}

// RunImport igual que Run con los repos de carga masiva.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	items repository.StockItemRepository,
	schedules repository.DeliveryScheduleRepository,
) error) error {
	return r.atomic(ctx, func() error { return fn(r.s.Items(), r.s.Schedules()) }, false)
}

func (r *TxRunner) atomic(ctx context.Context, fn func() error, manual bool) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.RLock()
	snapshot := r.s.st.clone()
	r.s.mu.RUnlock()

	rollback := func() {
		r.s.mu.Lock()
		r.s.st = snapshot
		r.s.mu.Unlock()
	}

	if err := fn(); err != nil {
		rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		rollback()
		return err
	}
	if r.s.CommitErr != nil {
		err := r.s.CommitErr
		r.s.CommitErr = nil
		rollback()
		if manual {
			return fmt.Errorf("%w: commit: %v", domain.ErrManualCorrection, err)
		}
		return domain.NewStoreError("commit import", err)
	}
	return nil
}
