// Package opname registro de lecturas de inventario físico.
package opname

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// ScanInput id leído y ubicación bloqueada en el terminal.
type ScanInput struct {
	Class       entity.ItemClass
	Plant       string
	ScannedID   string
	BinLocation string
}

// ScanResult la lectura registrada y el ítem maestro si existe.
type ScanResult struct {
	Event *entity.OpnameEvent
	Item  *entity.StockItem
}

// OpnameUseCase lecturas de conteo físico.
type OpnameUseCase struct {
	items  repository.StockItemRepository
	opname repository.OpnameRepository
	log    *logger.Logger
	now    func() time.Time
}

// NewOpnameUseCase construye el caso de uso.
func NewOpnameUseCase(items repository.StockItemRepository, opname repository.OpnameRepository, log *logger.Logger) *OpnameUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OpnameUseCase{items: items, opname: opname, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// SetClock reemplaza el reloj (tests).
func (uc *OpnameUseCase) SetClock(now func() time.Time) { uc.now = now }

// Scan registra la lectura; un id desconocido se guarda igual, sin vínculo al stock.
func (uc *OpnameUseCase) Scan(ctx context.Context, sess *entity.Session, in ScanInput) (*ScanResult, error) {
	if err := domain.RequirePlant(sess, in.Plant); err != nil {
		return nil, err
	}
	if !in.Class.Valid() {
		return nil, domain.Invalid("class", "clase de ítem desconocida")
	}
	code := strings.TrimSpace(in.ScannedID)
	bin := strings.TrimSpace(in.BinLocation)
	if code == "" {
		return nil, domain.Invalid("scanned_id", "campo obligatorio")
	}
	if bin == "" {
		return nil, domain.Invalid("bin_location", "bloquee una ubicación antes de escanear")
	}

	item, err := uc.items.Get(ctx, in.Class, in.Plant, code)
	if err != nil {
		return nil, err
	}
	ev := &entity.OpnameEvent{
		Class:       in.Class,
		ScannedID:   code,
		Plant:       in.Plant,
		BinLocation: bin,
		OpnameAt:    uc.now(),
		UserID:      sess.Actor(),
	}
	if item != nil {
		linked := item.Code
		ev.ItemCode = &linked
	}
	if err := uc.opname.Create(ctx, ev); err != nil {
		return nil, err
	}
	uc.log.Info().Str("plant", in.Plant).Str("class", string(in.Class)).Str("scanned_id", code).
		Str("bin", bin).Bool("linked", item != nil).Msg("lectura de inventario físico")
	return &ScanResult{Event: ev, Item: item}, nil
}

// DeleteScan borra una lectura; ErrNotFound si no existe en la planta.
func (uc *OpnameUseCase) DeleteScan(ctx context.Context, sess *entity.Session, class entity.ItemClass, plant, id string) error {
	if err := domain.RequirePlant(sess, plant); err != nil {
		return err
	}
	if !class.Valid() {
		return domain.Invalid("class", "clase de ítem desconocida")
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	deleted, err := uc.opname.Delete(ctx, class, plant, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("plant", plant).Str("class", string(class)).Str("id", id).Str("by", sess.Actor()).Msg("lectura eliminada")
	return nil
}
