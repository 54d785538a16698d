package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
)

// Venta representa una venta individual: un renglón cobrado de un comerciable,
// ya sea suelto (venta directa) o asociado a una consulta (ConsultaID no
// vacío). ExedenteRedondeo es la parte del exedente de redondeo del total que
// le tocó a este renglón en el reparto proporcional.
type Venta struct {
	ID               string
	ClinicaID        string
	ConsultaID       string // vacío en ventas directas
	ComerciableID    string
	PacienteID       string
	Fecha            time.Time
	Cantidad         decimal.Decimal
	PrecioCobrado    decimal.Decimal // precio unitario efectivamente cobrado
	PrecioOriginal   decimal.Decimal // costo de catálogo al momento de la venta
	ExedenteRedondeo decimal.Decimal
	MetodoPago       string
	Nota             string
	UsuarioIDs       []string
	CreatedAt        time.Time
}
