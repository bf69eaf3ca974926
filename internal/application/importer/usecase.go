// Package importer cargas CSV: sincronización de stock por planta y programa de despachos.
package importer

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// Columnas del CSV de stock. El código acepta roll_id (PR) o item_code.
var stockCodeColumns = []string{"roll_id", "item_code"}

// Columnas del CSV del programa de despachos.
const (
	colSalesNo      = "Sales No"
	colSalesItem    = "Sales Item"
	colCustomerName = "Customer Name"
	colPrintDesign  = "Print Design"
	colRDD          = "RDD"
	colGrossWeight  = "Gross Weight"
	colOrderQty     = "Order Qty"
	colShipTo       = "Ship To Party"
)

// RowError error de una fila; Row cuenta la cabecera como fila 1.
type RowError struct {
	Row     int
	Message string
}

// Summary resultado de una carga.
type Summary struct {
	Processed int
	Upserted  int
	Deleted   int64
	Errors    []RowError
	Archive   string
}

// Upload archivo recibido.
type Upload struct {
	Filename string
	Body     []byte
}

// ImportUseCase cargas masivas desde CSV.
type ImportUseCase struct {
	tx        ImportTxRunner
	schedules repository.DeliveryScheduleRepository
	archiver  Archiver
	log       *logger.Logger
	now       func() time.Time
}

// NewImportUseCase construye el caso de uso. archiver puede ser nil (sin copia del archivo).
func NewImportUseCase(tx ImportTxRunner, schedules repository.DeliveryScheduleRepository, archiver Archiver, log *logger.Logger) *ImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{
		tx:        tx,
		schedules: schedules,
		archiver:  archiver,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock reemplaza el reloj (tests).
func (uc *ImportUseCase) SetClock(now func() time.Time) { uc.now = now }

// SyncStock reemplaza el stock de la planta por el contenido del archivo: borra los ítems
// ausentes y hace upsert del resto por (código, planta). Las filas inválidas se informan y
// se omiten; sus códigos cuentan como presentes y no se borran.
func (uc *ImportUseCase) SyncStock(ctx context.Context, sess *entity.Session, class entity.ItemClass, plant string, up Upload) (*Summary, error) {
	if err := domain.RequirePlant(sess, plant); err != nil {
		return nil, err
	}
	if !class.Valid() {
		return nil, domain.Invalid("class", "clase de ítem desconocida")
	}
	tbl, err := readTable(up)
	if err != nil {
		return nil, err
	}
	codeCol, ok := tbl.FirstColumn(stockCodeColumns...)
	if !ok {
		return nil, domain.Invalid("file", fmt.Sprintf("%s: %s", csvimport.ErrMissingColumn, strings.Join(stockCodeColumns, " | ")))
	}
	if err := tbl.Require("weight"); err != nil {
		return nil, domain.Invalid("file", err.Error())
	}

	now := uc.now()
	sum := &Summary{Processed: len(tbl.Rows)}
	seen := make(map[string]bool)
	var codes []string
	var items []*entity.StockItem
	for _, row := range tbl.Rows {
		code := row.Get(codeCol)
		if code == "" {
			sum.Errors = append(sum.Errors, RowError{Row: row.Line, Message: "falta el código del ítem"})
			continue
		}
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
		weight, ok := csvimport.ParseNumber(row.Get("weight"))
		if !ok {
			sum.Errors = append(sum.Errors, RowError{Row: row.Line, Message: fmt.Sprintf("ítem %s: peso faltante o inválido", code)})
			continue
		}
		items = append(items, &entity.StockItem{
			Class:            class,
			Code:             code,
			Plant:            plant,
			BinLocation:      row.Get("bin_location"),
			Weight:           weight,
			Diameter:         csvimport.NumberOrZero(row.Get("diameter")),
			Length:           csvimport.NumberOrZero(row.Get("length")),
			Kind:             row.Get("kind"),
			GSM:              csvimport.NumberOrZero(row.Get("gsm")),
			Width:            csvimport.NumberOrZero(row.Get("width")),
			Batch:            row.Get("batch"),
			ProdOrderNo:      row.Get("prod_order_no"),
			GoodsReceiveDate: csvimport.ParseDate(row.Get("goods_receive_date")),
			UserID:           sess.Actor(),
			UpdatedAt:        now,
		})
	}
	if len(codes) == 0 {
		return nil, domain.Invalid("file", "el archivo no contiene ítems; no se sincroniza para no vaciar la planta")
	}

	err = uc.tx.RunImport(ctx, func(repo repository.StockItemRepository, _ repository.DeliveryScheduleRepository) error {
		deleted, err := repo.DeleteNotIn(ctx, class, plant, codes)
		if err != nil {
			return err
		}
		sum.Deleted = deleted
		for _, it := range items {
			it.ID = uuid.New().String()
			if err := repo.Upsert(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("plant", plant).Str("class", string(class)).Msg("sincronización de stock fallida")
		return nil, err
	}
	sum.Upserted = len(items)
	sum.Archive = uc.archive(ctx, fmt.Sprintf("%s/stock-%s", plant, strings.ToLower(string(class))), up)
	uc.log.Info().Str("plant", plant).Str("class", string(class)).Int("upserted", sum.Upserted).
		Int64("deleted", sum.Deleted).Int("row_errors", len(sum.Errors)).Msg("stock sincronizado")
	return sum, nil
}

// ImportSchedule agrega las líneas del archivo al programa de despachos del día indicado.
func (uc *ImportUseCase) ImportSchedule(ctx context.Context, sess *entity.Session, plant string, scheduleDate time.Time, up Upload) (*Summary, error) {
	if err := domain.RequirePlant(sess, plant); err != nil {
		return nil, err
	}
	if scheduleDate.IsZero() {
		return nil, domain.Invalid("schedule_date", "campo obligatorio")
	}
	tbl, err := readTable(up)
	if err != nil {
		return nil, err
	}
	if err := tbl.Require(colSalesNo, colSalesItem); err != nil {
		return nil, domain.Invalid("file", err.Error())
	}

	now := uc.now()
	day := time.Date(scheduleDate.Year(), scheduleDate.Month(), scheduleDate.Day(), 0, 0, 0, 0, time.UTC)
	sum := &Summary{Processed: len(tbl.Rows)}
	var rows []*entity.DeliverySchedule
	for _, row := range tbl.Rows {
		salesNo := row.Get(colSalesNo)
		salesItem := row.Get(colSalesItem)
		if salesNo == "" {
			sum.Errors = append(sum.Errors, RowError{Row: row.Line, Message: "falta Sales No"})
			continue
		}
		if salesItem == "" {
			sum.Errors = append(sum.Errors, RowError{Row: row.Line, Message: fmt.Sprintf("Sales No %s: falta Sales Item", salesNo)})
			continue
		}
		gross, okGross := quantity(row.Get(colGrossWeight))
		qty, okQty := quantity(row.Get(colOrderQty))
		if !okGross || !okQty {
			sum.Errors = append(sum.Errors, RowError{Row: row.Line, Message: fmt.Sprintf("Sales No %s: cantidad inválida", salesNo)})
			continue
		}
		rows = append(rows, &entity.DeliverySchedule{
			ID:           uuid.New().String(),
			Plant:        plant,
			SalesNo:      salesNo,
			SalesItem:    salesItem,
			CustomerName: row.Get(colCustomerName),
			ShipToParty:  row.Get(colShipTo),
			PrintDesign:  row.Get(colPrintDesign),
			RDD:          csvimport.ParseDate(row.Get(colRDD)),
			GrossWeight:  gross,
			OrderQty:     qty,
			ScheduleDate: day,
			CreatedAt:    now,
		})
	}

	if len(rows) > 0 {
		err = uc.tx.RunImport(ctx, func(_ repository.StockItemRepository, schedules repository.DeliveryScheduleRepository) error {
			return schedules.CreateBatch(ctx, rows)
		})
		if err != nil {
			uc.log.Error().Err(err).Str("plant", plant).Msg("carga del programa de despachos fallida")
			return nil, err
		}
	}
	sum.Upserted = len(rows)
	sum.Archive = uc.archive(ctx, plant+"/delivery-schedule", up)
	uc.log.Info().Str("plant", plant).Time("schedule_date", day).Int("inserted", sum.Upserted).
		Int("row_errors", len(sum.Errors)).Msg("programa de despachos cargado")
	return sum, nil
}

// ListSchedule líneas programadas para la fecha.
func (uc *ImportUseCase) ListSchedule(ctx context.Context, sess *entity.Session, plant string, date time.Time) ([]*entity.DeliverySchedule, error) {
	if err := domain.RequirePlant(sess, plant); err != nil {
		return nil, err
	}
	return uc.schedules.ListByDate(ctx, plant, date)
}

// archive copia el archivo si hay archivador; un fallo solo se registra.
func (uc *ImportUseCase) archive(ctx context.Context, dir string, up Upload) string {
	if uc.archiver == nil {
		return ""
	}
	name := path.Base(strings.ReplaceAll(up.Filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload.csv"
	}
	key := path.Join(dir, uc.now().Format("20060102T150405")+"-"+name)
	loc, err := uc.archiver.Archive(ctx, key, "text/csv", up.Body)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo archivar el archivo subido")
		return ""
	}
	return loc
}

func readTable(up Upload) (*csvimport.Table, error) {
	if len(up.Body) == 0 {
		return nil, domain.Invalid("file", csvimport.ErrEmptyFile.Error())
	}
	tbl, err := csvimport.Read(bytes.NewReader(up.Body))
	if err != nil {
		return nil, domain.Invalid("file", err.Error())
	}
	return tbl, nil
}
