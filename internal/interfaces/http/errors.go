package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/pkg/validator"
)

// errorStatus tabla sentinel → (status, code). Se evalúa en orden con errors.Is.
var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrSessionRevoked, fiber.StatusUnauthorized, "SESSION_REVOKED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrDuplicateItem, fiber.StatusConflict, "DUPLICATE_ITEM"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrStaleCancellation, fiber.StatusConflict, "STALE_CANCELLATION"},
	{domain.ErrInvalidGeometry, fiber.StatusUnprocessableEntity, "INVALID_GEOMETRY"},
	{domain.ErrReturnExceedsInitial, fiber.StatusUnprocessableEntity, "RETURN_EXCEEDS_INITIAL"},
	{domain.ErrManualCorrection, fiber.StatusInternalServerError, "MANUAL_CORRECTION"},
}

// writeError responde con el status que corresponde al error de dominio.
// Los StoreError exponen el mensaje del driver tal cual.
func writeError(c *fiber.Ctx, err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: err.Error()})
		}
	}
	var se *domain.StoreError
	if errors.As(err, &se) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_ERROR", Message: se.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// validationError 400 con el primer campo inválido y su motivo.
func validationError(c *fiber.Ctx, err error) error {
	field := validator.FirstField(err)
	msg := "datos inválidos"
	if field != "" {
		msg = field + ": " + validator.FormatValidationErrors(err)[field]
	}
	return badRequest(c, "VALIDATION", msg)
}

// parseBody decodifica el JSON y valida los tags. Si devuelve false la respuesta ya se escribió
// y el handler debe retornar el error que acompaña (nil o el de escritura).
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validator.Validate(out); err != nil {
		return false, validationError(c, err)
	}
	return true, nil
}

// parseQuery igual que parseBody para los parámetros de la URL.
func parseQuery(c *fiber.Ctx, out any) (bool, error) {
	if err := c.QueryParser(out); err != nil {
		return false, badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	if err := validator.Validate(out); err != nil {
		return false, validationError(c, err)
	}
	return true, nil
}
