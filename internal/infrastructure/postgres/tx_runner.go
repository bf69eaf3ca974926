package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner      = (*TxRunner)(nil)
	_ importer.ImportTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Si el Commit falla el estado es incierto y se devuelve ErrManualCorrection.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.StockItemRepository,
	events repository.MovementEventRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStoreError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx), NewMovementEventRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrManualCorrection, err)
	}
	return nil
}

// RunImport transacción para cargas masivas (sincronización de stock y programa de despachos).
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	items repository.StockItemRepository,
	schedules repository.DeliveryScheduleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStoreError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx), NewDeliveryScheduleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewStoreError("commit import", err)
	}
	return nil
}
