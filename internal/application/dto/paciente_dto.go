package dto

import "github.com/shopspring/decimal"

// CreatePacienteRequest body para POST /api/pacientes.
type CreatePacienteRequest struct {
	Nombre              string          `json:"nombre"`
	Especie             string          `json:"especie"`
	Raza                string          `json:"raza,omitempty"`
	PropietarioNombre   string          `json:"propietario_nombre"`
	PropietarioTelefono string          `json:"propietario_telefono,omitempty"`
	DescuentoPorciento  decimal.Decimal `json:"descuento_porciento"`
}

// PacienteResponse paciente en respuestas.
type PacienteResponse struct {
	ID                  string          `json:"id"`
	ClinicaID           string          `json:"clinica_id"`
	Nombre              string          `json:"nombre"`
	Especie             string          `json:"especie"`
	Raza                string          `json:"raza,omitempty"`
	PropietarioNombre   string          `json:"propietario_nombre"`
	PropietarioTelefono string          `json:"propietario_telefono,omitempty"`
	DescuentoPorciento  decimal.Decimal `json:"descuento_porciento"`
}
