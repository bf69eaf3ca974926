package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/pkg/jwt"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// Config parámetros de tokens y recuperación.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	ResetTTL   time.Duration
}

// AuthUseCase proveedor de sesiones: registro, ingreso, salida, recuperación y perfil.
type AuthUseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionStore
	notifier SessionNotifier
	mailer   ResetMailer
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	accounts repository.AccountRepository,
	sessions repository.SessionStore,
	notifier SessionNotifier,
	mailer ResetMailer,
	cfg Config,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if mailer == nil {
		mailer = LogMailer{Log: log}
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = 30 * time.Minute
	}
	return &AuthUseCase{
		accounts: accounts,
		sessions: sessions,
		notifier: notifier,
		mailer:   mailer,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// SignUp crea una cuenta activa sin plantas ni permisos.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.AccountResponse, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	a := &entity.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Plants:       []string{},
		Permissions:  []string{},
		Status:       entity.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.log.Info().Str("account_id", a.ID).Msg("cuenta creada")
	return ToAccountResponse(a), nil
}

// SignIn verifica credenciales y emite un token con un id de sesión nuevo.
// Email desconocido y contraseña errónea devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SignInResponse, error) {
	a, err := uc.accounts.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if a.Status != entity.AccountActive {
		return nil, domain.ErrForbidden
	}
	token, claims, err := jwt.Generate(uc.cfg.Secret, jwt.Subject{
		UserID:      a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Plants:      a.Plants,
		Permissions: a.Permissions,
	}, uuid.New().String(), uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	sess := SessionFromClaims(claims)
	uc.publish(ctx, a.ID, EventSignedIn)
	return &dto.SignInResponse{Token: token, Session: ToSessionResponse(sess)}, nil
}

// Authenticate valida el token y devuelve la sesión; ErrSessionRevoked si se cerró,
// ErrForbidden si la cuenta ya no está activa.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	revoked, err := uc.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrSessionRevoked
	}
	// Plantas y permisos salen de la cuenta vigente, no de los claims firmados al ingresar.
	a, err := uc.accounts.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrUnauthorized
	}
	if a.Status != entity.AccountActive {
		return nil, domain.ErrForbidden
	}
	sess := SessionFromClaims(claims)
	sess.Email = a.Email
	sess.DisplayName = a.DisplayName
	sess.Plants = append([]string(nil), a.Plants...)
	sess.Permissions = append([]string(nil), a.Permissions...)
	return sess, nil
}

// SignOut revoca la sesión hasta su vencimiento natural.
func (uc *AuthUseCase) SignOut(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return domain.ErrUnauthorized
	}
	ttl := sess.ExpiresAt.Sub(uc.now())
	if err := uc.sessions.Revoke(ctx, sess.ID, ttl); err != nil {
		return err
	}
	uc.publish(ctx, sess.AccountID, EventSignedOut)
	return nil
}

// RequestPasswordReset genera un token de un solo uso. Un email desconocido no es error.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, in dto.PasswordResetRequest) error {
	a, err := uc.accounts.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return err
	}
	if a == nil || a.Status != entity.AccountActive {
		uc.log.Debug().Msg("recuperación solicitada para email sin cuenta activa")
		return nil
	}
	token := uuid.New().String()
	if err := uc.sessions.SaveResetToken(ctx, token, a.ID, uc.cfg.ResetTTL); err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(ctx, a.Email, token)
}

// ResetPassword consume el token y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.PasswordResetConfirmRequest) error {
	accountID, err := uc.sessions.ConsumeResetToken(ctx, in.Token)
	if err != nil {
		return err
	}
	if accountID == "" {
		return domain.ErrUnauthorized
	}
	a, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.setPassword(a, in.NewPassword); err != nil {
		return err
	}
	if err := uc.accounts.Update(ctx, a); err != nil {
		return err
	}
	uc.publish(ctx, a.ID, EventPasswordChanged)
	return nil
}

// UpdateProfile cambia el nombre visible y/o la contraseña de la cuenta de la sesión.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, sess *entity.Session, in dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	a, err := uc.accounts.GetByID(ctx, sess.AccountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrUserNotFound
	}
	event := EventProfileUpdated
	if in.DisplayName != nil {
		a.DisplayName = strings.TrimSpace(*in.DisplayName)
	}
	if in.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, domain.Invalid("current_password", "no coincide")
		}
		if err := uc.setPassword(a, in.NewPassword); err != nil {
			return nil, err
		}
		event = EventPasswordChanged
	}
	a.UpdatedAt = uc.now().UTC()
	if err := uc.accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.publish(ctx, a.ID, event)
	return ToAccountResponse(a), nil
}

// Subscribe stream de eventos de la cuenta de la sesión.
func (uc *AuthUseCase) Subscribe(ctx context.Context, sess *entity.Session) (<-chan SessionEvent, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if uc.notifier == nil {
		return nil, errors.New("notificaciones de sesión deshabilitadas")
	}
	return uc.notifier.Subscribe(ctx, sess.AccountID)
}

// NotifyAccountUpdated avisa a las sesiones abiertas que cambiaron sus plantas o permisos.
func (uc *AuthUseCase) NotifyAccountUpdated(ctx context.Context, accountID string) {
	uc.publish(ctx, accountID, EventAccountUpdated)
}

func (uc *AuthUseCase) setPassword(a *entity.Account, password string) error {
	if len(password) < 8 {
		return domain.Invalid("new_password", "mínimo 8 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	a.UpdatedAt = uc.now().UTC()
	return nil
}

// publish la notificación es informativa: un fallo se registra y no aborta el flujo.
func (uc *AuthUseCase) publish(ctx context.Context, accountID, typ string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Publish(ctx, accountID, SessionEvent{Type: typ, At: uc.now().UTC()}); err != nil {
		uc.log.Warn().Err(err).Str("account_id", accountID).Str("event", typ).Msg("no se pudo publicar evento de sesión")
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SessionFromClaims reconstruye la sesión desde un token validado.
func SessionFromClaims(c *jwt.Claims) *entity.Session {
	s := &entity.Session{
		ID:          c.ID,
		AccountID:   c.UserID,
		Email:       c.Email,
		DisplayName: c.DisplayName,
		Plants:      c.Plants,
		Permissions: c.Permissions,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// ToSessionResponse mapea la sesión a DTO.
func ToSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:   s.ID,
		AccountID:   s.AccountID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Plants:      nonNil(s.Plants),
		Permissions: nonNil(s.Permissions),
		ExpiresAt:   s.ExpiresAt,
	}
}

// ToAccountResponse mapea la cuenta a DTO (sin hash).
func ToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Plants:      nonNil(a.Plants),
		Permissions: nonNil(a.Permissions),
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
