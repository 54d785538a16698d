package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	ClinicaID string `json:"clinica_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre,omitempty"`
	Rol       string `json:"rol,omitempty"` // admin, veterinario, recepcionista
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioResponse usuario en respuestas (sin hash de password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	ClinicaID string    `json:"clinica_id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
