package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// LocalSession clave de la sesión en c.Locals.
const LocalSession = "session"

// Authenticator valida un token y devuelve la sesión. Lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

// AuthMiddleware valida el Bearer Token y deja la sesión en c.Locals.
// El stream de eventos no puede enviar cabeceras desde EventSource, así que acepta ?access_token=.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, fail := bearerToken(c)
		if fail != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*fail)
		}
		sess, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if q := strings.TrimSpace(c.Query("access_token")); q != "" {
			return q, nil
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return token, nil
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}
