package repository

import (
	"context"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// AccountRepository puerto de persistencia de cuentas (DIP).
type AccountRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, a *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, a *entity.Account) error
	List(ctx context.Context, emailLike string, limit, offset int) ([]*entity.Account, error)
}
