// Package account administración de cuentas: plantas, permisos y estado.
package account

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// ChangeNotifier avisa a las sesiones abiertas de una cuenta modificada.
type ChangeNotifier interface {
	NotifyAccountUpdated(ctx context.Context, accountID string)
}

// AccountUseCase gestor de usuarios; exige el permiso user-manager.
type AccountUseCase struct {
	accounts repository.AccountRepository
	notifier ChangeNotifier
	log      *logger.Logger
	now      func() time.Time
}

// NewAccountUseCase construye el caso de uso. notifier puede ser nil.
func NewAccountUseCase(accounts repository.AccountRepository, notifier ChangeNotifier, log *logger.Logger) *AccountUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AccountUseCase{accounts: accounts, notifier: notifier, log: log, now: time.Now}
}

func requireManager(sess *entity.Session) error {
	if sess == nil {
		return domain.ErrUnauthorized
	}
	if !sess.HasPermission(entity.PermissionUserManager) {
		return domain.ErrForbidden
	}
	return nil
}

// List cuentas ordenadas por email.
func (uc *AccountUseCase) List(ctx context.Context, sess *entity.Session, in dto.AccountListRequest) (*dto.AccountListResponse, error) {
	if err := requireManager(sess); err != nil {
		return nil, err
	}
	in.DefaultPage()
	list, err := uc.accounts.List(ctx, strings.TrimSpace(in.Email), in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *auth.ToAccountResponse(a))
	}
	return &dto.AccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Get una cuenta por id.
func (uc *AccountUseCase) Get(ctx context.Context, sess *entity.Session, id string) (*dto.AccountResponse, error) {
	if err := requireManager(sess); err != nil {
		return nil, err
	}
	a, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToAccountResponse(a), nil
}

// Update reemplaza plantas y permisos. Un administrador no puede quitarse su propio
// permiso de gestión ni deshabilitarse.
func (uc *AccountUseCase) Update(ctx context.Context, sess *entity.Session, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := requireManager(sess); err != nil {
		return nil, err
	}
	plants := cleanList(in.Plants)
	perms := cleanList(in.Permissions)
	for _, p := range perms {
		if !slices.Contains(entity.AllPermissions, p) {
			return nil, domain.Invalid("permissions", "permiso desconocido: "+p)
		}
	}
	if in.Status != "" && in.Status != entity.AccountActive && in.Status != entity.AccountDisabled {
		return nil, domain.Invalid("status", "estado desconocido")
	}
	if id == sess.AccountID {
		if !slices.Contains(perms, entity.PermissionUserManager) || in.Status == entity.AccountDisabled {
			return nil, domain.Invalid("permissions", "no puede quitarse el acceso de administración")
		}
	}

	a, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrUserNotFound
	}
	a.Plants = plants
	a.Permissions = perms
	if in.Status != "" {
		a.Status = in.Status
	}
	a.UpdatedAt = uc.now().UTC()
	if err := uc.accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.log.Info().Str("account_id", a.ID).Str("by", sess.Actor()).
		Strs("plants", plants).Strs("permissions", perms).Msg("cuenta actualizada")
	if uc.notifier != nil {
		uc.notifier.NotifyAccountUpdated(ctx, a.ID)
	}
	return auth.ToAccountResponse(a), nil
}

// cleanList recorta, descarta vacíos y duplicados, y ordena.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}
