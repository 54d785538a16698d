package dto

import "github.com/shopspring/decimal"

// CreateComerciableRequest body para POST /api/comerciables.
type CreateComerciableRequest struct {
	Tipo        string          `json:"tipo"` // producto, medicamento, servicio, vacuna, antiparasitario
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioCUP   decimal.Decimal `json:"precio_cup"`
	Costo       decimal.Decimal `json:"costo"`
}

// UpdateComerciableRequest body para PUT /api/comerciables/:id.
type UpdateComerciableRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioCUP   decimal.Decimal `json:"precio_cup"`
	Costo       decimal.Decimal `json:"costo"`
	Activo      *bool           `json:"activo,omitempty"`
}

// SearchComerciablesRequest query para GET /api/comerciables/search
// (respaldo del autocompletado de la app).
type SearchComerciablesRequest struct {
	Termino string `query:"q"`
	Tipo    string `query:"tipo"`
	Limit   int    `query:"limit"`
}

// ComerciableResponse comerciable en respuestas.
type ComerciableResponse struct {
	ID          string          `json:"id"`
	ClinicaID   string          `json:"clinica_id"`
	Tipo        string          `json:"tipo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioCUP   decimal.Decimal `json:"precio_cup"`
	Costo       decimal.Decimal `json:"costo"`
	Activo      bool            `json:"activo"`
}
