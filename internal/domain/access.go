package domain

import "github.com/jhoicas/Rollstock-api/internal/domain/entity"

// RequirePlant exige una sesión con acceso a la planta.
func RequirePlant(sess *entity.Session, plant string) error {
	if sess == nil {
		return ErrUnauthorized
	}
	if !sess.CanAccessPlant(plant) {
		return ErrForbidden
	}
	return nil
}
