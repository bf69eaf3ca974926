package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// LedgerUseCase flujos de movimiento de stock (recepción, emisión, retorno, reubicación,
// anulación y baja). Cada flujo corre en una única transacción con la fila del ítem bloqueada.
type LedgerUseCase struct {
	txRunner  TxRunner
	items     repository.StockItemRepository
	events    repository.MovementEventRepository
	schedules repository.DeliveryScheduleRepository
	observer  WorkflowObserver
	log       *logger.Logger
	now       func() time.Time
}

// NewLedgerUseCase construye el caso de uso. items/events se usan solo para lecturas fuera de tx.
func NewLedgerUseCase(
	txRunner TxRunner,
	items repository.StockItemRepository,
	events repository.MovementEventRepository,
	schedules repository.DeliveryScheduleRepository,
	observer WorkflowObserver,
	log *logger.Logger,
) *LedgerUseCase {
	if observer == nil {
		observer = noopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LedgerUseCase{
		txRunner:  txRunner,
		items:     items,
		events:    events,
		schedules: schedules,
		observer:  observer,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock reemplaza el reloj (tests).
func (uc *LedgerUseCase) SetClock(now func() time.Time) { uc.now = now }

// Receive da de alta un ítem nuevo y escribe el movimiento 101.
func (uc *LedgerUseCase) Receive(ctx context.Context, sess *entity.Session, in ReceiveInput) (*MovementResult, error) {
	in.ItemRef = in.ItemRef.normalized()
	if err := authorize(sess, in.Plant); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := uc.now()
	item := &entity.StockItem{
		ID:               uuid.New().String(),
		Class:            in.Class,
		Code:             strings.TrimSpace(in.Code),
		Plant:            in.Plant,
		BinLocation:      strings.TrimSpace(in.BinLocation),
		Weight:           in.Weight,
		Diameter:         in.Diameter,
		Length:           in.Length,
		Kind:             in.Kind,
		GSM:              in.GSM,
		Width:            in.Width,
		Batch:            in.Batch,
		ProdOrderNo:      in.ProdOrderNo,
		GoodsReceiveDate: &now,
		UserID:           sess.Actor(),
		UpdatedAt:        now,
	}
	ev := uc.newEvent(sess, item, entity.MovementReceipt, now)
	ev.InitialLoc = entity.ReceiveSource
	ev.DestinationLoc = item.BinLocation
	ev.Weight, ev.Diameter, ev.Length = item.Weight, item.Diameter, item.Length

	err := uc.run(ctx, "receive", in.ItemRef, func(items repository.StockItemRepository, events repository.MovementEventRepository) error {
		existing, err := items.GetForUpdate(ctx, item.Class, item.Plant, item.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateItem
		}
		if err := items.Create(ctx, item); err != nil {
			return err
		}
		return events.Create(ctx, ev)
	})
	if err != nil {
		return nil, err
	}
	return &MovementResult{Item: item, Event: ev}, nil
}

// CancelReceive deshace una recepción: borra el movimiento 101 y el ítem.
func (uc *LedgerUseCase) CancelReceive(ctx context.Context, sess *entity.Session, ref ItemRef) (*MovementResult, error) {
	ref = ref.normalized()
	if err := authorize(sess, ref.Plant); err != nil {
		return nil, err
	}
	if err := ref.validate(); err != nil {
		return nil, err
	}
	var res MovementResult
	err := uc.run(ctx, "cancel_receive", ref, func(items repository.StockItemRepository, events repository.MovementEventRepository) error {
		item, err := lockItem(ctx, items, ref)
		if err != nil {
			return err
		}
		ev, err := events.LatestToDestination(ctx, ref.Class, ref.Plant, ref.Code, entity.MovementReceipt, item.BinLocation)
		if err != nil {
			return err
		}
		if ev == nil {
			return domain.ErrStaleCancellation
		}
		if err := deleteEvent(ctx, events, ev); err != nil {
			return err
		}
		if _, err := items.Delete(ctx, ref.Class, ref.Plant, ref.Code); err != nil {
			return err
		}
		res = MovementResult{Item: item, Event: ev}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Issue emite el ítem: PR a una línea de producción, FG a carga de camión según el programa de despacho.
func (uc *LedgerUseCase) Issue(ctx context.Context, sess *entity.Session, in IssueInput) (*MovementResult, error) {
	in.ItemRef = in.ItemRef.normalized()
	if err := authorize(sess, in.Plant); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var (
		dest     string
		newBatch string
		schedule *entity.DeliverySchedule
		err      error
	)
	switch in.Class {
	case entity.ClassPaperRoll:
		dest, err = ledger.ProductionDestination(in.Machine, in.Unit, in.Group)
		newBatch = entity.BatchProduction
	case entity.ClassFinishedGood:
		schedule, err = uc.schedules.GetLine(ctx, in.Plant, in.SalesNo, in.SalesItem)
		if err == nil && schedule == nil {
			err = fmt.Errorf("línea de despacho %s/%s: %w", in.SalesNo, in.SalesItem, domain.ErrNotFound)
		}
		if err == nil {
			dest, err = ledger.TruckLoadingDestination(schedule.Destination())
		}
		newBatch = entity.BatchShipping
	}
	if err != nil {
		return nil, err
	}

	var res MovementResult
	err = uc.run(ctx, "issue", in.ItemRef, func(items repository.StockItemRepository, events repository.MovementEventRepository) error {
		item, err := lockItem(ctx, items, in.ItemRef)
		if err != nil {
			return err
		}
		if item.Batch == newBatch {
			return domain.Invalid("code", "el ítem ya fue emitido")
		}
		now := uc.now()
		ev := uc.newEvent(sess, item, entity.MovementIssue, now)
		ev.InitialLoc = item.BinLocation
		ev.DestinationLoc = dest
		ev.Weight, ev.Diameter, ev.Length = -item.Weight, -item.Diameter, -item.Length
		if in.ProdOrderNo != "" {
			ev.ProdOrderNo = in.ProdOrderNo
		}
		if schedule != nil {
			ev.SalesNo, ev.SalesItem = schedule.SalesNo, schedule.SalesItem
		}
		if err := events.Create(ctx, ev); err != nil {
			return err
		}

		item.BinLocation = dest
		item.Batch = newBatch
		item.UserID = sess.Actor()
		item.UpdatedAt = now
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		res = MovementResult{Item: item, Event: ev}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelIssue revierte la última emisión cuyo destino es la ubicación actual del ítem.
func (uc *LedgerUseCase) CancelIssue(ctx context.Context, sess *entity.Session, ref ItemRef) (*MovementResult, error) {
	return uc.cancel(ctx, sess, ref, entity.MovementIssue, "cancel_issue")
}

// Relocate mueve el ítem a otra ubicación y registra el movimiento 999 con sus valores actuales.
func (uc *LedgerUseCase) Relocate(ctx context.Context, sess *entity.Session, in RelocateInput) (*MovementResult, error) {
	in.ItemRef = in.ItemRef.normalized()
	if err := authorize(sess, in.Plant); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	newLoc := strings.TrimSpace(in.NewLocation)

	var res MovementResult
	err := uc.run(ctx, "relocate", in.ItemRef, func(items repository.StockItemRepository, events repository.MovementEventRepository) error {
		item, err := lockItem(ctx, items, in.ItemRef)
		if err != nil {
			return err
		}
		if item.BinLocation == newLoc {
			return domain.Invalid("new_location", "igual a la ubicación actual")
		}
		now := uc.now()
		ev := uc.newEvent(sess, item, entity.MovementRelocation, now)
		ev.InitialLoc = item.BinLocation
		ev.DestinationLoc = newLoc
		ev.Weight, ev.Diameter, ev.Length = item.Weight, item.Diameter, item.Length
		if err := events.Create(ctx, ev); err != nil {
			return err
		}

		item.BinLocation = newLoc
		item.UserID = sess.Actor()
		item.UpdatedAt = now
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		res = MovementResult{Item: item, Event: ev}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelRelocation revierte la última reubicación cuyo destino es la ubicación actual.
func (uc *LedgerUseCase) CancelRelocation(ctx context.Context, sess *entity.Session, ref ItemRef) (*MovementResult, error) {
	return uc.cancel(ctx, sess, ref, entity.MovementRelocation, "cancel_relocation")
}

// Return registra el retorno de un rollo desde producción con su peso y largo recalculados.
func (uc *LedgerUseCase) Return(ctx context.Context, sess *entity.Session, in ReturnInput) (*MovementResult, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := authorize(sess, in.Plant); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	ref := in.ref()
	dest := strings.TrimSpace(in.BinLocation)

	var res MovementResult
	err := uc.run(ctx, "return", ref, func(items repository.StockItemRepository, events repository.MovementEventRepository) error {
		item, err := lockItem(ctx, items, ref)
		if err != nil {
			return err
		}
		calc, err := ledger.CalculateReturn(ledger.ReturnParams{
			InitialDiameter: item.Diameter,
			ReturnDiameter:  in.ReturnDiameter,
			InitialWeight:   item.Weight,
			GSM:             item.GSM,
			Width:           item.Width,
		})
		if err != nil {
			return err
		}
		issue, err := events.Latest(ctx, ref.Class, ref.Plant, ref.Code, entity.MovementIssue)
		if err != nil {
			return err
		}

		now := uc.now()
		ev := uc.newEvent(sess, item, entity.MovementReturn, now)
		ev.InitialLoc = item.BinLocation
		ev.DestinationLoc = dest
		ev.Weight = -calc.ConsumedWeight
		ev.Diameter = in.ReturnDiameter
		ev.Length = calc.NewLength - item.Length
		if err := events.Create(ctx, ev); err != nil {
			return err
		}

		if item.InProduction() && issue != nil && issue.Batch != "" {
			item.Batch = issue.Batch
		}
		item.BinLocation = dest
		item.Weight = calc.NewWeight
		item.Diameter = in.ReturnDiameter
		item.Length = calc.NewLength
		item.UserID = sess.Actor()
		item.UpdatedAt = now
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		res = MovementResult{Item: item, Event: ev}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UseUp da de baja un ítem agotado. No escribe movimiento.
func (uc *LedgerUseCase) UseUp(ctx context.Context, sess *entity.Session, ref ItemRef) error {
	ref = ref.normalized()
	if err := authorize(sess, ref.Plant); err != nil {
		return err
	}
	if err := ref.validate(); err != nil {
		return err
	}
	return uc.run(ctx, "used_up", ref, func(items repository.StockItemRepository, _ repository.MovementEventRepository) error {
		deleted, err := items.Delete(ctx, ref.Class, ref.Plant, ref.Code)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
}

// GetItem ítem de la planta para las pantallas de escaneo; ErrNotFound si no existe.
func (uc *LedgerUseCase) GetItem(ctx context.Context, sess *entity.Session, ref ItemRef) (*entity.StockItem, error) {
	ref = ref.normalized()
	if err := authorize(sess, ref.Plant); err != nil {
		return nil, err
	}
	if err := ref.validate(); err != nil {
		return nil, err
	}
	item, err := uc.items.Get(ctx, ref.Class, ref.Plant, ref.Code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// PreviewReturn calcula peso y largo resultantes sin escribir nada.
func (uc *LedgerUseCase) PreviewReturn(ctx context.Context, sess *entity.Session, plant, code string, returnDiameter float64) (ledger.ReturnResult, error) {
	ref := ItemRef{Class: entity.ClassPaperRoll, Plant: plant, Code: code}.normalized()
	if returnDiameter <= 0 {
		return ledger.ReturnResult{}, domain.Invalid("return_diameter", "debe ser mayor que 0")
	}
	item, err := uc.GetItem(ctx, sess, ref)
	if err != nil {
		return ledger.ReturnResult{}, err
	}
	return ledger.CalculateReturn(ledger.ReturnParams{
		InitialDiameter: item.Diameter,
		ReturnDiameter:  returnDiameter,
		InitialWeight:   item.Weight,
		GSM:             item.GSM,
		Width:           item.Width,
	})
}

// ListInProduction rollos emitidos que aún no vuelven (pantalla de retorno).
func (uc *LedgerUseCase) ListInProduction(ctx context.Context, sess *entity.Session, plant string) ([]*entity.StockItem, error) {
	if err := authorize(sess, plant); err != nil {
		return nil, err
	}
	return uc.items.ListByBatch(ctx, entity.ClassPaperRoll, plant, entity.BatchProduction)
}

// ListIssuedForSchedule pallets emitidos contra una línea de despacho.
func (uc *LedgerUseCase) ListIssuedForSchedule(ctx context.Context, sess *entity.Session, plant, salesNo, salesItem string) ([]*entity.MovementEvent, error) {
	if err := authorize(sess, plant); err != nil {
		return nil, err
	}
	if salesNo == "" || salesItem == "" {
		return nil, domain.Invalid("sales_no", "línea de despacho requerida")
	}
	return uc.events.List(ctx, repository.MovementFilter{
		Class:     entity.ClassFinishedGood,
		Plant:     plant,
		Type:      entity.MovementIssue,
		SalesNo:   salesNo,
		SalesItem: salesItem,
		SortKey:   "timestamp",
		Desc:      true,
	})
}

func (uc *LedgerUseCase) cancel(ctx context.Context, sess *entity.Session, ref ItemRef, typ entity.MovementType, op string) (*MovementResult, error) {
	ref = ref.normalized()
	if err := authorize(sess, ref.Plant); err != nil {
		return nil, err
	}
	if err := ref.validate(); err != nil {
		return nil, err
	}
	var res MovementResult
	err := uc.run(ctx, op, ref, func(items repository.StockItemRepository, events repository.MovementEventRepository) error {
		item, err := lockItem(ctx, items, ref)
		if err != nil {
			return err
		}
		ev, err := events.LatestToDestination(ctx, ref.Class, ref.Plant, ref.Code, typ, item.BinLocation)
		if err != nil {
			return err
		}
		if ev == nil || ev.InitialLoc == "" {
			return domain.ErrStaleCancellation
		}

		item.BinLocation = ev.InitialLoc
		if typ == entity.MovementIssue {
			item.Batch = ev.Batch
		}
		item.UserID = sess.Actor()
		item.UpdatedAt = uc.now()
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		if err := deleteEvent(ctx, events, ev); err != nil {
			return err
		}
		res = MovementResult{Item: item, Event: ev}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// run ejecuta fn en una transacción y registra log y métricas del flujo.
func (uc *LedgerUseCase) run(ctx context.Context, op string, ref ItemRef, fn func(repository.StockItemRepository, repository.MovementEventRepository) error) error {
	err := uc.txRunner.Run(ctx, fn)
	uc.observer.ObserveWorkflow(op, ref.Class, err)

	switch {
	case err == nil:
		uc.log.Info().Str("op", op).Str("class", string(ref.Class)).Str("plant", ref.Plant).Str("code", ref.Code).Msg("movimiento registrado")
	case errors.Is(err, domain.ErrManualCorrection):
		uc.log.Error().Err(err).Str("op", op).Str("plant", ref.Plant).Str("code", ref.Code).Msg("resultado incierto, revisar manualmente")
	default:
		uc.log.Warn().Err(err).Str("op", op).Str("plant", ref.Plant).Str("code", ref.Code).Msg("movimiento rechazado")
	}
	return err
}

func (uc *LedgerUseCase) newEvent(sess *entity.Session, item *entity.StockItem, typ entity.MovementType, now time.Time) *entity.MovementEvent {
	return &entity.MovementEvent{
		ID:          uuid.New().String(),
		Class:       item.Class,
		ItemCode:    item.Code,
		Plant:       item.Plant,
		Type:        typ,
		Batch:       item.Batch,
		ProdOrderNo: item.ProdOrderNo,
		UserID:      sess.Actor(),
		Timestamp:   now,
	}
}

func lockItem(ctx context.Context, items repository.StockItemRepository, ref ItemRef) (*entity.StockItem, error) {
	item, err := items.GetForUpdate(ctx, ref.Class, ref.Plant, ref.Code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func deleteEvent(ctx context.Context, events repository.MovementEventRepository, ev *entity.MovementEvent) error {
	deleted, err := events.Delete(ctx, ev.Class, ev.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrStaleCancellation
	}
	return nil
}

// authorize exige sesión activa con acceso a la planta.
func authorize(sess *entity.Session, plant string) error {
	return domain.RequirePlant(sess, plant)
}
