package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `id, email, password_hash, display_name, plant, permission, status, created_at, updated_at`

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	query := `INSERT INTO users (` + accountColumns + `) VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.DisplayName, nonNil(a.Plants), nonNil(a.Permissions),
		a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID. (nil, nil) si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.one(ctx, `SELECT `+accountColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email, sin distinguir mayúsculas.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.one(ctx, `SELECT `+accountColumns+` FROM users WHERE email = lower($1)`, email)
}

func (r *AccountRepo) one(ctx context.Context, query string, arg string) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return a, nil
}

// Update reescribe nombre, hash, plantas, permisos y estado.
func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	query := `
		UPDATE users SET password_hash = $2, display_name = $3, plant = $4, permission = $5,
			status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.PasswordHash, a.DisplayName, nonNil(a.Plants), nonNil(a.Permissions), a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List cuentas ordenadas por email; emailLike filtra por coincidencia parcial.
func (r *AccountRepo) List(ctx context.Context, emailLike string, limit, offset int) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users`
	args := []any{}
	if emailLike != "" {
		query += ` WHERE email ILIKE $1`
		args = append(args, likePattern(emailLike))
	}
	query += ` ORDER BY email`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		a    entity.Account
		name *string
	)
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &name, &a.Plants, &a.Permissions,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.DisplayName = stringOrEmpty(name)
	return &a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
