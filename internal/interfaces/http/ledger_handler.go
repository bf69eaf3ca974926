package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// LabelRenderer genera la etiqueta PDF de un ítem. Lo implementa *pdf.MarotoPDFGenerator.
type LabelRenderer interface {
	ItemLabelPDF(ctx context.Context, item *entity.StockItem) ([]byte, error)
}

// LedgerHandler flujos del libro de stock bajo /api/plants/:plant/{pr|fg}.
type LedgerHandler struct {
	uc     *inventory.LedgerUseCase
	labels LabelRenderer
	now    func() time.Time
}

// NewLedgerHandler construye el handler. labels puede ser nil (sin etiquetas).
func NewLedgerHandler(uc *inventory.LedgerUseCase, labels LabelRenderer) *LedgerHandler {
	return &LedgerHandler{uc: uc, labels: labels, now: time.Now}
}

func (h *LedgerHandler) ref(c *fiber.Ctx, code string) inventory.ItemRef {
	return inventory.ItemRef{Class: GetClass(c), Plant: c.Params("plant"), Code: code}
}

func (h *LedgerHandler) result(c *fiber.Ctx, status int, res *inventory.MovementResult) error {
	out := dto.MovementResultResponse{}
	if res.Item != nil {
		item := toStockItemResponse(res.Item, agingOf(res.Item, h.now()))
		out.Item = &item
	}
	if res.Event != nil {
		ev := toMovementResponse(res.Event)
		out.Event = &ev
	}
	return c.Status(status).JSON(out)
}

// Receive godoc
// @Summary      Recepción (101)
// @Description  Crea el ítem en la ubicación y escribe el movimiento 101.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string              true  "Planta"
// @Param        class  path  string              true  "pr | fg"
// @Param        body   body  dto.ReceiveRequest  true  "code, bin_location, weight, ..."
// @Success      201  {object}  dto.MovementResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/receive [post]
func (h *LedgerHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Receive(c.UserContext(), GetSession(c), inventory.ReceiveInput{
		ItemRef:     h.ref(c, in.Code),
		BinLocation: in.BinLocation,
		Weight:      in.Weight,
		Diameter:    in.Diameter,
		Length:      in.Length,
		Kind:        in.Kind,
		GSM:         in.GSM,
		Width:       in.Width,
		Batch:       in.Batch,
		ProdOrderNo: in.ProdOrderNo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return h.result(c, fiber.StatusCreated, res)
}

// CancelReceive godoc
// @Summary      Anular recepción
// @Description  Borra el ítem y su último 101 si sigue en la ubicación recibida.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string               true  "Planta"
// @Param        class  path  string               true  "pr | fg"
// @Param        body   body  dto.ItemCodeRequest  true  "code"
// @Success      200  {object}  dto.MovementResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/receive/cancel [post]
func (h *LedgerHandler) CancelReceive(c *fiber.Ctx) error {
	return h.cancel(c, h.uc.CancelReceive)
}

// Issue godoc
// @Summary      Emisión (201)
// @Description  PR: a producción (machine/unit/group). FG: a despacho (sales_no/sales_item).
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string            true  "Planta"
// @Param        class  path  string            true  "pr | fg"
// @Param        body   body  dto.IssueRequest  true  "code y destino"
// @Success      200  {object}  dto.MovementResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/issue [post]
func (h *LedgerHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Issue(c.UserContext(), GetSession(c), inventory.IssueInput{
		ItemRef:     h.ref(c, in.Code),
		Machine:     in.Machine,
		Unit:        in.Unit,
		Group:       in.Group,
		ProdOrderNo: in.ProdOrderNo,
		SalesNo:     in.SalesNo,
		SalesItem:   in.SalesItem,
	})
	if err != nil {
		return writeError(c, err)
	}
	return h.result(c, fiber.StatusOK, res)
}

// CancelIssue godoc
// @Summary      Anular emisión
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string               true  "Planta"
// @Param        class  path  string               true  "pr | fg"
// @Param        body   body  dto.ItemCodeRequest  true  "code"
// @Success      200  {object}  dto.MovementResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/issue/cancel [post]
func (h *LedgerHandler) CancelIssue(c *fiber.Ctx) error {
	return h.cancel(c, h.uc.CancelIssue)
}

// Relocate godoc
// @Summary      Reubicación (999)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string               true  "Planta"
// @Param        class  path  string               true  "pr | fg"
// @Param        body   body  dto.RelocateRequest  true  "code, new_location"
// @Success      200  {object}  dto.MovementResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/relocate [post]
func (h *LedgerHandler) Relocate(c *fiber.Ctx) error {
	var in dto.RelocateRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Relocate(c.UserContext(), GetSession(c), inventory.RelocateInput{
		ItemRef:     h.ref(c, in.Code),
		NewLocation: in.NewLocation,
	})
	if err != nil {
		return writeError(c, err)
	}
	return h.result(c, fiber.StatusOK, res)
}

// CancelRelocation godoc
// @Summary      Anular reubicación
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string               true  "Planta"
// @Param        class  path  string               true  "pr | fg"
// @Param        body   body  dto.ItemCodeRequest  true  "code"
// @Success      200  {object}  dto.MovementResultResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/relocate/cancel [post]
func (h *LedgerHandler) CancelRelocation(c *fiber.Ctx) error {
	return h.cancel(c, h.uc.CancelRelocation)
}

func (h *LedgerHandler) cancel(c *fiber.Ctx, fn func(context.Context, *entity.Session, inventory.ItemRef) (*inventory.MovementResult, error)) error {
	var in dto.ItemCodeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := fn(c.UserContext(), GetSession(c), h.ref(c, in.Code))
	if err != nil {
		return writeError(c, err)
	}
	return h.result(c, fiber.StatusOK, res)
}

// Return godoc
// @Summary      Retorno desde producción (202)
// @Description  Recalcula peso y largo con el diámetro medido. Solo rollos de papel.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string             true  "Planta"
// @Param        body   body  dto.ReturnRequest  true  "code, return_diameter, bin_location"
// @Success      200  {object}  dto.MovementResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/pr/return [post]
func (h *LedgerHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Return(c.UserContext(), GetSession(c), inventory.ReturnInput{
		Plant:          c.Params("plant"),
		Code:           in.Code,
		ReturnDiameter: in.ReturnDiameter,
		BinLocation:    in.BinLocation,
	})
	if err != nil {
		return writeError(c, err)
	}
	return h.result(c, fiber.StatusOK, res)
}

// PreviewReturn godoc
// @Summary      Calcular retorno sin registrar
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        plant            path   string  true  "Planta"
// @Param        code             query  string  true  "Roll id"
// @Param        return_diameter  query  number  true  "Diámetro medido"
// @Success      200  {object}  dto.ReturnPreviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/pr/return/preview [get]
func (h *LedgerHandler) PreviewReturn(c *fiber.Ctx) error {
	var in dto.ReturnPreviewRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	res, err := h.uc.PreviewReturn(c.UserContext(), GetSession(c), c.Params("plant"), in.Code, in.ReturnDiameter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReturnPreviewResponse{
		NewWeight:      res.NewWeight,
		ConsumedWeight: res.ConsumedWeight,
		NewLength:      res.NewLength,
	})
}

// UseUp godoc
// @Summary      Dar de baja un rollo consumido
// @Description  Borra el ítem sin escribir movimiento.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Param        plant  path  string               true  "Planta"
// @Param        body   body  dto.ItemCodeRequest  true  "code"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/pr/used-up [post]
func (h *LedgerHandler) UseUp(c *fiber.Ctx) error {
	var in dto.ItemCodeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.UseUp(c.UserContext(), GetSession(c), h.ref(c, in.Code)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InProduction godoc
// @Summary      Rollos en producción
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        plant  path  string  true  "Planta"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/plants/{plant}/pr/in-production [get]
func (h *LedgerHandler) InProduction(c *fiber.Ctx) error {
	items, err := h.uc.ListInProduction(c.UserContext(), GetSession(c), c.Params("plant"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockList(items, h.now()))
}

// GetItem godoc
// @Summary      Consultar ítem por código
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        plant  path  string  true  "Planta"
// @Param        class  path  string  true  "pr | fg"
// @Param        code   path  string  true  "Código del ítem"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/items/{code} [get]
func (h *LedgerHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(c.UserContext(), GetSession(c), h.ref(c, c.Params("code")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockItemResponse(item, agingOf(item, h.now())))
}

// ItemLabel godoc
// @Summary      Etiqueta PDF con QR del ítem
// @Tags         ledger
// @Security     Bearer
// @Produce      application/pdf
// @Param        plant  path  string  true  "Planta"
// @Param        class  path  string  true  "pr | fg"
// @Param        code   path  string  true  "Código del ítem"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/items/{code}/label.pdf [get]
func (h *LedgerHandler) ItemLabel(c *fiber.Ctx) error {
	if h.labels == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "etiquetas deshabilitadas"})
	}
	item, err := h.uc.GetItem(c.UserContext(), GetSession(c), h.ref(c, c.Params("code")))
	if err != nil {
		return writeError(c, err)
	}
	pdf, err := h.labels.ItemLabelPDF(c.UserContext(), item)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+item.Code+`.pdf"`)
	return c.Send(pdf)
}
