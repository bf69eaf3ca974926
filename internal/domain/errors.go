package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicateItem        = errors.New("el ítem ya existe en la planta")
	ErrInvalidGeometry      = errors.New("geometría del rollo inválida")
	ErrReturnExceedsInitial = errors.New("el diámetro de retorno debe ser menor que el inicial")
	ErrStaleCancellation    = errors.New("no hay movimiento que anular para la ubicación actual")
	ErrManualCorrection     = errors.New("resultado de la operación desconocido, requiere corrección manual")

	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSessionRevoked     = errors.New("sesión cerrada")
)

// ValidationError error de entrada con el campo que falló. Es ErrInvalidInput para errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError fallo del almacén de filas. El mensaje del driver se expone tal cual.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError envuelve err; nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
