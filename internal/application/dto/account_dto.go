package dto

import "time"

// AccountResponse cuenta sin hash de contraseña.
type AccountResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Plants      []string  `json:"plants"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountListRequest búsqueda de cuentas por email.
type AccountListRequest struct {
	Email string `query:"email" validate:"omitempty,max=200"`
	PageRequest
}

// AccountListResponse página de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UpdateAccountRequest reemplaza plantas y permisos; Status vacío no cambia el estado.
type UpdateAccountRequest struct {
	Plants      []string `json:"plants" validate:"dive,required,max=20"`
	Permissions []string `json:"permissions" validate:"dive,oneof=pr-stock fg-stock opname reports uploads user-manager"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
}
