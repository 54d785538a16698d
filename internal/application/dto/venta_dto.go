package dto

import "github.com/shopspring/decimal"

// CreateVentaRequest body para POST /api/ventas (venta individual, sin
// consulta). Los campos numéricos llegan como texto libre, igual que en los
// renglones de consulta.
type CreateVentaRequest struct {
	ComerciableID string   `json:"comerciable_id"`
	PacienteID    string   `json:"paciente_id,omitempty"`
	Fecha         string   `json:"fecha"` // YYYY-MM-DD
	PrecioCUP     string   `json:"precio_cup"`
	Cantidad      string   `json:"cantidad"`
	MetodoPago    string   `json:"metodo_pago"`
	Nota          string   `json:"nota,omitempty"`
	UsuarioIDs    []string `json:"usuario_ids"`

	// Ajuste manual del total (opcional), igual que en la consulta: delta
	// aditivo sobre el total calculado y el total original que vio el
	// operador. Un total original que ya no coincide invalida el delta.
	AjusteDelta         string `json:"ajuste_delta,omitempty"`
	AjusteTotalOriginal string `json:"ajuste_total_original,omitempty"`
}

// VentaResponse venta en respuestas.
type VentaResponse struct {
	ID               string          `json:"id"`
	ConsultaID       string          `json:"id_consulta,omitempty"`
	ComerciableID    string          `json:"comerciable_id"`
	PacienteID       string          `json:"paciente_id,omitempty"`
	Fecha            string          `json:"fecha"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	PrecioCobrado    decimal.Decimal `json:"precio_cobrado"`
	PrecioOriginal   decimal.Decimal `json:"precio_original"`
	ExedenteRedondeo decimal.Decimal `json:"exedente_redondeo"`
	MetodoPago       string          `json:"metodo_pago"`
	Nota             string          `json:"nota,omitempty"`
	UsuarioIDs       []string        `json:"usuario_ids"`
}
