package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// Querier lo implementan *pgxpool.Pool y pgx.Tx; los repos funcionan con cualquiera.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// tableSet tablas de una clase de ítem. Los nombres son constantes, nunca entrada del usuario.
type tableSet struct {
	stock     string
	movements string
	opname    string
}

func tablesFor(class entity.ItemClass) (tableSet, error) {
	switch class {
	case entity.ClassPaperRoll:
		return tableSet{stock: "pr_stock", movements: "pr_stock_movements", opname: "pr_stock_opname_events"}, nil
	case entity.ClassFinishedGood:
		return tableSet{stock: "fg_stock", movements: "fg_stock_movements", opname: "fg_stock_opname_events"}, nil
	}
	return tableSet{}, fmt.Errorf("clase de ítem desconocida: %q", class)
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func stringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

// likePattern escapa comodines y envuelve en %…% para ILIKE.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
