package entity

import (
	"slices"
	"time"
)

// Session contexto de autenticación que se pasa explícitamente a cada flujo.
type Session struct {
	ID          string // jti del token
	AccountID   string
	Email       string
	DisplayName string
	Plants      []string
	Permissions []string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// Actor nombre que queda en user_id: display name o, en su defecto, email.
func (s *Session) Actor() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

// CanAccessPlant indica si la sesión opera sobre la planta.
func (s *Session) CanAccessPlant(plant string) bool {
	return slices.Contains(s.Plants, plant)
}

// HasPermission indica si la sesión tiene el permiso.
func (s *Session) HasPermission(p string) bool {
	return slices.Contains(s.Permissions, p)
}

// Expired indica si la sesión venció en now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
