package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paciente representa una mascota atendida en la clínica. DescuentoPorciento
// (0–100) es el descuento del paciente que se aplica al total de cada
// consulta; cero si no tiene convenio.
type Paciente struct {
	ID                 string
	ClinicaID          string
	Nombre             string
	Especie            string // canino, felino, etc.
	Raza               string
	PropietarioNombre  string
	PropietarioTelefono string
	DescuentoPorciento decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
