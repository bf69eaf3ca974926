package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/account"
	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/pkg/validator"
)

// AccountHandler gestor de usuarios (permiso user-manager).
type AccountHandler struct {
	uc *account.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *account.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        email   query  string  false  "Filtro por email (contiene)"
// @Param        limit   query  int     false  "Límite (default 20, máx. 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.AccountListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var in dto.AccountListRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	in.DefaultPage()
	if err := validator.Validate(&in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cuenta
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Asignar plantas, permisos y estado
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "plants, permissions, status"
// @Success      200  {object}  dto.AccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
