package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

type expiring struct {
	value   string
	expires time.Time
}

// SessionStore SessionStore en memoria con vencimiento por TTL.
type SessionStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	resets  map[string]expiring
	now     func() time.Time
}

// NewSessionStore crea el store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		revoked: make(map[string]time.Time),
		resets:  make(map[string]expiring),
		now:     time.Now,
	}
}

func (s *SessionStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[sessionID] = s.now().Add(ttl)
	return nil
}

func (s *SessionStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[sessionID]
	return ok && s.now().Before(exp), nil
}

func (s *SessionStore) SaveResetToken(_ context.Context, token, accountID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets[token] = expiring{value: accountID, expires: s.now().Add(ttl)}
	return nil
}

func (s *SessionStore) ConsumeResetToken(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.resets[token]
	if !ok {
		return "", nil
	}
	delete(s.resets, token)
	if !s.now().Before(e.expires) {
		return "", nil
	}
	return e.value, nil
}
