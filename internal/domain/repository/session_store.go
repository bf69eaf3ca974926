package repository

import (
	"context"
	"time"
)

// SessionStore estado efímero de sesiones: revocaciones y tokens de recuperación.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
	SaveResetToken(ctx context.Context, token, accountID string, ttl time.Duration) error
	// ConsumeResetToken devuelve el accountID y borra el token; "" si no existe o venció.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}
