package entity

import (
	"slices"
	"time"
)

// Permisos (páginas) asignables a una cuenta.
const (
	PermissionPRStock     = "pr-stock"
	PermissionFGStock     = "fg-stock"
	PermissionOpname      = "opname"
	PermissionReports     = "reports"
	PermissionUploads     = "uploads"
	PermissionUserManager = "user-manager"
)

// AllPermissions lista cerrada de permisos válidos.
var AllPermissions = []string{
	PermissionPRStock, PermissionFGStock, PermissionOpname,
	PermissionReports, PermissionUploads, PermissionUserManager,
}

// Estados de cuenta.
const (
	AccountActive   = "active"
	AccountDisabled = "disabled"
)

// Account usuario del sistema con sus plantas y permisos.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Plants       []string
	Permissions  []string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission indica si la cuenta tiene el permiso.
func (a *Account) HasPermission(p string) bool {
	return slices.Contains(a.Permissions, p)
}
