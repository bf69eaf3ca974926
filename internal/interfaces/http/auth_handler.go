package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// heartbeat intervalo de comentarios keep-alive en el stream de eventos.
const heartbeat = 25 * time.Second

// AuthHandler registro, inicio y cierre de sesión, recuperación de contraseña y perfil.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, log: log}
}

// SignUp godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "email, password, display_name"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.SignUp(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.SignInResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.uc.SignOut(c.UserContext(), GetSession(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(auth.ToSessionResponse(GetSession(c)))
}

// RequestPasswordReset godoc
// @Summary      Solicitar recuperación de contraseña
// @Description  Responde 202 aunque el email no exista.
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.PasswordResetRequest  true  "email"
// @Success      202
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.RequestPasswordReset(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// ConfirmPasswordReset godoc
// @Summary      Fijar nueva contraseña con el token de recuperación
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.PasswordResetConfirmRequest  true  "token, new_password"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetConfirmRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.ResetPassword(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateProfile godoc
// @Summary      Actualizar nombre o contraseña propios
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "display_name, current_password, new_password"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Events godoc
// @Summary      Stream de eventos de la sesión (SSE)
// @Description  signed_in, signed_out, profile_updated, account_updated. Acepta ?access_token=.
// @Tags         auth
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/events [get]
func (h *AuthHandler) Events(c *fiber.Ctx) error {
	sess := GetSession(c)
	// El stream vive más que el handler: no puede colgar del contexto de la petición.
	ctx, cancel := context.WithCancel(context.Background())
	events, err := h.uc.Subscribe(ctx, sess)
	if err != nil {
		cancel()
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	log := h.log
	accountID := sess.AccountID
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				if err := writeSSE(w, ev); err != nil {
					log.Debug().Str("account_id", accountID).Err(err).Msg("cliente SSE desconectado")
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

func writeSSE(w *bufio.Writer, ev auth.SessionEvent) error {
	data, err := json.Marshal(dto.SessionEventResponse{Type: ev.Type, At: ev.At})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
		return err
	}
	return w.Flush()
}
