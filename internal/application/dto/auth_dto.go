package dto

import "time"

// SignUpRequest alta de cuenta. Las plantas y permisos los asigna el administrador.
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

// SignInRequest credenciales.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse sesión vigente.
type SessionResponse struct {
	SessionID   string    `json:"session_id"`
	AccountID   string    `json:"account_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Plants      []string  `json:"plants"`
	Permissions []string  `json:"permissions"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SignInResponse token firmado y la sesión que representa.
type SignInResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// PasswordResetRequest solicitud de recuperación de contraseña.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest nueva contraseña con el token recibido.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest cambio de nombre y/o contraseña. Cambiar la contraseña exige la actual.
type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	CurrentPassword string  `json:"current_password,omitempty"`
	NewPassword     string  `json:"new_password,omitempty" validate:"omitempty,min=8"`
}

// SessionEventResponse notificación enviada por el stream de eventos.
type SessionEventResponse struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}
