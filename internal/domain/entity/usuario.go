package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin         = "admin"
	RolVeterinario   = "veterinario"
	RolRecepcionista = "recepcionista"
)

// Usuario representa un usuario del sistema (pertenece a una Clínica).
// Los veterinarios y recepcionistas son asignables a consultas y ventas.
type Usuario struct {
	ID           string
	ClinicaID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, veterinario, recepcionista
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
