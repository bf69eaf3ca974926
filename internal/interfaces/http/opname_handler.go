package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/application/opname"
)

// OpnameHandler lecturas de conteo físico (permiso opname).
type OpnameHandler struct {
	uc *opname.OpnameUseCase
}

// NewOpnameHandler construye el handler.
func NewOpnameHandler(uc *opname.OpnameUseCase) *OpnameHandler {
	return &OpnameHandler{uc: uc}
}

// Scan godoc
// @Summary      Registrar lectura
// @Description  Se registra aunque el id no exista en el stock; en ese caso item_code queda vacío.
// @Tags         opname
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plant  path  string                 true  "Planta"
// @Param        class  path  string                 true  "pr | fg"
// @Param        body   body  dto.OpnameScanRequest  true  "scanned_id, bin_location"
// @Success      201  {object}  dto.OpnameRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/opname [post]
func (h *OpnameHandler) Scan(c *fiber.Ctx) error {
	var in dto.OpnameScanRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Scan(c.UserContext(), GetSession(c), opname.ScanInput{
		Class:       GetClass(c),
		Plant:       c.Params("plant"),
		ScannedID:   in.ScannedID,
		BinLocation: in.BinLocation,
	})
	if err != nil {
		return writeError(c, err)
	}
	out := dto.OpnameRowResponse{
		ID:                 res.Event.ID,
		ScannedID:          res.Event.ScannedID,
		ScannedBinLocation: res.Event.BinLocation,
		OpnameAt:           res.Event.OpnameAt,
		UserID:             res.Event.UserID,
		Linked:             res.Event.ItemCode != nil,
	}
	if res.Item != nil {
		aging := agingOf(res.Item, res.Event.OpnameAt)
		item := toStockItemResponse(res.Item, aging)
		out.Item = &item
		out.AgingDays = aging
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar lectura
// @Tags         opname
// @Security     Bearer
// @Param        plant  path  string  true  "Planta"
// @Param        class  path  string  true  "pr | fg"
// @Param        id     path  string  true  "ID de la lectura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/opname/{id} [delete]
func (h *OpnameHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteScan(c.UserContext(), GetSession(c), GetClass(c), c.Params("plant"), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
