package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comerciable: todo lo vendible en una consulta o venta individual.
// Un medicamento es un producto especializado; vacunas y antiparasitarios se
// listan aparte en la consulta pero comparten el mismo catálogo.
const (
	TipoProducto        = "producto"
	TipoMedicamento     = "medicamento"
	TipoServicio        = "servicio"
	TipoVacuna          = "vacuna"
	TipoAntiparasitario = "antiparasitario"
)

// Comerciable representa una entidad vendible del catálogo de la clínica.
// PrecioCUP es el precio de venta por defecto; Costo es el costo original de
// catálogo usado como base de la ganancia.
type Comerciable struct {
	ID          string
	ClinicaID   string
	Tipo        string // producto, medicamento, servicio, vacuna, antiparasitario
	Nombre      string
	Descripcion string
	PrecioCUP   decimal.Decimal // precio de venta en moneda local
	Costo       decimal.Decimal // costo original de catálogo
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TipoValido verifica que t sea uno de los tipos de comerciable conocidos.
func TipoValido(t string) bool {
	switch t {
	case TipoProducto, TipoMedicamento, TipoServicio, TipoVacuna, TipoAntiparasitario:
		return true
	}
	return false
}
