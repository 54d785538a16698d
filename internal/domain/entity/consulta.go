package entity

import "time"

// Consulta representa una historia clínica: los campos clínicos de la visita
// más los usuarios asignados y las fotos adjuntas (payload base64 tal como lo
// envía la app). Las ventas asociadas se guardan como filas de Venta con
// ConsultaID apuntando aquí.
type Consulta struct {
	ID          string
	ClinicaID   string
	PacienteID  string
	Fecha       time.Time
	Motivo      string
	Anamnesis   string
	Diagnostico string
	Tratamiento string // resumen de tratamiento derivado de las notas de los renglones
	Patologia   string
	Fotos       []string // imágenes en base64
	UsuarioIDs  []string // usuarios asignados (≥1)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
