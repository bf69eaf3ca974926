package http

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/domain"
)

// ImportHandler cargas CSV de stock y del programa de despachos (permiso uploads).
type ImportHandler struct {
	uc     *importer.ImportUseCase
	ledger *inventory.LedgerUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase, ledger *inventory.LedgerUseCase) *ImportHandler {
	return &ImportHandler{uc: uc, ledger: ledger}
}

// readUpload lee el campo multipart "file".
func readUpload(c *fiber.Ctx) (importer.Upload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return importer.Upload{}, domain.Invalid("file", "campo multipart 'file' requerido")
	}
	f, err := fh.Open()
	if err != nil {
		return importer.Upload{}, err
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return importer.Upload{}, err
	}
	return importer.Upload{Filename: fh.Filename, Body: body}, nil
}

// SyncStock godoc
// @Summary      Sincronizar stock desde CSV
// @Description  Reemplaza el stock de la planta: inserta o actualiza las filas del archivo y
// @Description  borra los ítems ausentes. Columnas: roll_id|item_code, weight y opcionales.
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        plant  path      string  true  "Planta"
// @Param        class  path      string  true  "pr | fg"
// @Param        file   formData  file    true  "CSV"
// @Success      200  {object}  dto.ImportSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/stock/import [post]
func (h *ImportHandler) SyncStock(c *fiber.Ctx) error {
	up, err := readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	sum, err := h.uc.SyncStock(c.UserContext(), GetSession(c), GetClass(c), c.Params("plant"), up)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toImportSummary(sum))
}

// ImportSchedule godoc
// @Summary      Cargar programa de despachos
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        plant          path      string  true  "Planta"
// @Param        schedule_date  formData  string  true  "Día del programa (2006-01-02)"
// @Param        file           formData  file    true  "CSV"
// @Success      201  {object}  dto.ImportSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/delivery-schedules [post]
func (h *ImportHandler) ImportSchedule(c *fiber.Ctx) error {
	date, err := time.Parse(dateLayout, c.FormValue("schedule_date"))
	if err != nil {
		return writeError(c, domain.Invalid("schedule_date", "fecha inválida"))
	}
	up, err := readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	sum, err := h.uc.ImportSchedule(c.UserContext(), GetSession(c), c.Params("plant"), date, up)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toImportSummary(sum))
}

// ListSchedule godoc
// @Summary      Programa de despachos del día
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        plant  path   string  true  "Planta"
// @Param        date   query  string  true  "Día (2006-01-02)"
// @Success      200  {array}   dto.DeliveryScheduleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/delivery-schedules [get]
func (h *ImportHandler) ListSchedule(c *fiber.Ctx) error {
	var in dto.DeliveryScheduleListRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return writeError(c, domain.Invalid("date", "fecha inválida"))
	}
	rows, err := h.uc.ListSchedule(c.UserContext(), GetSession(c), c.Params("plant"), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toScheduleList(rows))
}

// IssuedForLine godoc
// @Summary      Pallets emitidos contra una línea de despacho
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        plant       path  string  true  "Planta"
// @Param        sales_no    path  string  true  "Pedido"
// @Param        sales_item  path  string  true  "Posición"
// @Success      200  {array}  dto.MovementEventResponse
// @Router       /api/plants/{plant}/delivery-schedules/{sales_no}/{sales_item}/issued [get]
func (h *ImportHandler) IssuedForLine(c *fiber.Ctx) error {
	events, err := h.ledger.ListIssuedForSchedule(c.UserContext(), GetSession(c), c.Params("plant"), c.Params("sales_no"), c.Params("sales_item"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementList(events))
}
