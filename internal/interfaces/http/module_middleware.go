package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// LocalClass clave de la clase de ítem (PR/FG) del grupo de rutas.
const LocalClass = "item_class"

// RequirePermission exige que la sesión tenga el permiso (página) indicado.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 si no hay sesión en el contexto.
//   - 403 si la cuenta no tiene el permiso.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !sess.HasPermission(permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_DENIED",
				Message: "la cuenta no tiene el permiso '" + permission + "'",
			})
		}
		return c.Next()
	}
}

// RequirePlantAccess exige acceso a la planta de la ruta (:plant). Los casos de uso vuelven a
// comprobarlo; aquí se corta antes de leer el cuerpo.
func RequirePlantAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		plant := c.Params("plant")
		if !sess.CanAccessPlant(plant) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLANT_FORBIDDEN",
				Message: "sin acceso a la planta '" + plant + "'",
			})
		}
		return c.Next()
	}
}

// WithClass fija la clase de ítem para las rutas del grupo.
func WithClass(class entity.ItemClass) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalClass, class)
		return c.Next()
	}
}

// GetClass clase fijada por WithClass.
func GetClass(c *fiber.Ctx) entity.ItemClass {
	cl, _ := c.Locals(LocalClass).(entity.ItemClass)
	return cl
}

// classPermission permiso de página que corresponde a la clase.
func classPermission(class entity.ItemClass) string {
	if class == entity.ClassFinishedGood {
		return entity.PermissionFGStock
	}
	return entity.PermissionPRStock
}
