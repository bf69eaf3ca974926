package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// Tipos de evento de sesión.
const (
	EventSignedIn        = "signed_in"
	EventSignedOut       = "signed_out"
	EventPasswordChanged = "password_changed"
	EventProfileUpdated  = "profile_updated"
	EventAccountUpdated  = "account_updated"
)

// SessionEvent cambio de estado de autenticación de una cuenta.
type SessionEvent struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// SessionNotifier difunde eventos de sesión por cuenta.
type SessionNotifier interface {
	Publish(ctx context.Context, accountID string, ev SessionEvent) error
	// Subscribe entrega eventos hasta que ctx termina; entonces cierra el canal.
	Subscribe(ctx context.Context, accountID string) (<-chan SessionEvent, error)
}

// ResetMailer entrega el token de recuperación al titular de la cuenta.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer escribe el token en el log; para entornos sin servidor de correo.
type LogMailer struct {
	Log *logger.Logger
}

func (m LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.Log.Info().Str("email", email).Str("token", token).Msg("token de recuperación de contraseña")
	return nil
}
