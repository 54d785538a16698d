package dto

import "github.com/shopspring/decimal"

// RenglonRequest es un renglón de venta pendiente dentro de una lista de
// categoría. Los campos numéricos llegan como texto libre tecleado en la app
// ("12.5", "1"); una entrada ilegible degrada a cero, no es error.
type RenglonRequest struct {
	ID            string `json:"id"`
	ComerciableID string `json:"comerciable_id"` // vacío = renglón sin selección, no aporta
	PrecioCUP     string `json:"precio_cup"`
	Cantidad      string `json:"cantidad"`
	NotaList      string `json:"nota_list,omitempty"`
	// ExedenteRedondeo solo viene en edición, con el valor ya persistido.
	ExedenteRedondeo string `json:"exedente_redondeo,omitempty"`
}

// CreateConsultaRequest body para POST /api/consultas. Los renglones vienen
// separados por categoría, en las mismas listas que muestra la app.
type CreateConsultaRequest struct {
	PacienteID string   `json:"paciente_id"`
	Fecha      string   `json:"fecha"` // YYYY-MM-DD
	Motivo     string   `json:"motivo"`
	Anamnesis  string   `json:"anamnesis"`
	Diagnostico string  `json:"diagnostico,omitempty"`
	Patologia  string   `json:"patologia,omitempty"`
	Fotos      []string `json:"fotos,omitempty"` // base64
	UsuarioIDs []string `json:"usuario_ids"`
	MetodoPago string   `json:"metodo_pago,omitempty"`

	Medicamentos     []RenglonRequest `json:"medicamentos,omitempty"`
	Servicios        []RenglonRequest `json:"servicios,omitempty"`
	Productos        []RenglonRequest `json:"productos,omitempty"`
	Vacunas          []RenglonRequest `json:"vacunas,omitempty"`
	Antiparasitarios []RenglonRequest `json:"antiparasitarios,omitempty"`

	// Ajuste manual del total (opcional): delta aditivo sobre el total
	// calculado y el total original sobre el que el operador lo tecleó. El
	// delta solo se honra si ese total original coincide con el recalculado
	// aquí (guarda optimista contra ajustes obsoletos).
	AjusteDelta         string `json:"ajuste_delta,omitempty"`
	AjusteTotalOriginal string `json:"ajuste_total_original,omitempty"`
}

// UpdateConsultaRequest body para PUT /api/consultas/:id. En edición las
// filas de venta de todas las categorías viajan juntas en un solo arreglo y
// se reemplazan de forma masiva (sin validación por fila).
type UpdateConsultaRequest struct {
	Fecha       string           `json:"fecha"`
	Motivo      string           `json:"motivo"`
	Anamnesis   string           `json:"anamnesis"`
	Diagnostico string           `json:"diagnostico,omitempty"`
	Tratamiento string           `json:"tratamiento,omitempty"`
	Patologia   string           `json:"patologia,omitempty"`
	Fotos       []string         `json:"fotos,omitempty"`
	UsuarioIDs  []string         `json:"usuario_ids"`
	Ventas      []RenglonRequest `json:"ventas,omitempty"`
}

// ConsultaResponse consulta con sus totales y ventas creadas.
type ConsultaResponse struct {
	ID          string          `json:"id"`
	PacienteID  string          `json:"paciente_id"`
	Fecha       string          `json:"fecha"`
	Motivo      string          `json:"motivo"`
	Anamnesis   string          `json:"anamnesis"`
	Diagnostico string          `json:"diagnostico,omitempty"`
	Tratamiento string          `json:"tratamiento,omitempty"`
	Patologia   string          `json:"patologia,omitempty"`
	UsuarioIDs  []string        `json:"usuario_ids"`
	Ventas      []VentaResponse `json:"ventas"`

	TotalCobro        decimal.Decimal `json:"total_cobro"`
	TotalConDescuento decimal.Decimal `json:"total_con_descuento"`
	TotalRedondeado   decimal.Decimal `json:"total_redondeado"`
	ExedenteRedondeo  decimal.Decimal `json:"exedente_redondeo"`
	GananciaMostrada  decimal.Decimal `json:"ganancia"`
}
