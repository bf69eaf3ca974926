package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

const (
	revokedPrefix = "rollstock:session:revoked:"
	resetPrefix   = "rollstock:password-reset:"
)

// SessionStore lista de sesiones revocadas y tokens de recuperación, con TTL nativo de Redis.
type SessionStore struct {
	rdb redis.UniversalClient
}

// NewSessionStore construye el store sobre un cliente existente.
func NewSessionStore(rdb redis.UniversalClient) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Revoke marca la sesión como revocada hasta que el token vencería de todos modos.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedPrefix+sessionID, 1, ttl).Err(); err != nil {
		return domain.NewStoreError("revoke session", err)
	}
	return nil
}

func (s *SessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedPrefix+sessionID).Result()
	if err != nil {
		return false, domain.NewStoreError("check session", err)
	}
	return n > 0, nil
}

func (s *SessionStore) SaveResetToken(ctx context.Context, token, accountID string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, resetPrefix+token, accountID, ttl).Err(); err != nil {
		return domain.NewStoreError("save reset token", err)
	}
	return nil
}

// ConsumeResetToken lee y borra el token en una sola operación (GETDEL).
func (s *SessionStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	v, err := s.rdb.GetDel(ctx, resetPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", domain.NewStoreError("consume reset token", err)
	}
	return v, nil
}
