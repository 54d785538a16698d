package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

var _ repository.ConsultaRepository = (*ConsultaRepo)(nil)

// ConsultaRepo implementación del puerto ConsultaRepository sobre PostgreSQL (usable con pool o tx).
// usuario_ids y fotos se guardan como text[] (pgx v5 mapea []string de forma nativa).
type ConsultaRepo struct {
	q Querier
}

// NewConsultaRepository construye el adaptador de persistencia para consultas.
func NewConsultaRepository(q Querier) *ConsultaRepo {
	return &ConsultaRepo{q: q}
}

const consultaCols = `id, clinica_id, paciente_id, fecha, motivo, anamnesis, diagnostico, tratamiento, patologia, fotos, usuario_ids, created_at, updated_at`

// Create persiste una consulta nueva.
func (r *ConsultaRepo) Create(c *entity.Consulta) error {
	query := `
		INSERT INTO consultas (id, clinica_id, paciente_id, fecha, motivo, anamnesis, diagnostico, tratamiento, patologia, fotos, usuario_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClinicaID, c.PacienteID, c.Fecha, c.Motivo, c.Anamnesis, c.Diagnostico,
		c.Tratamiento, c.Patologia, c.Fotos, c.UsuarioIDs, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consulta: %w", err)
	}
	return nil
}

// GetByID obtiene una consulta por ID.
func (r *ConsultaRepo) GetByID(id string) (*entity.Consulta, error) {
	query := `SELECT ` + consultaCols + ` FROM consultas WHERE id = $1`
	var c entity.Consulta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClinicaID, &c.PacienteID, &c.Fecha, &c.Motivo, &c.Anamnesis, &c.Diagnostico,
		&c.Tratamiento, &c.Patologia, &c.Fotos, &c.UsuarioIDs, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consulta: %w", err)
	}
	return &c, nil
}

// Update actualiza una consulta existente.
func (r *ConsultaRepo) Update(c *entity.Consulta) error {
	query := `
		UPDATE consultas SET fecha = $2, motivo = $3, anamnesis = $4, diagnostico = $5, tratamiento = $6, patologia = $7, fotos = $8, usuario_ids = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Fecha, c.Motivo, c.Anamnesis, c.Diagnostico, c.Tratamiento, c.Patologia,
		c.Fotos, c.UsuarioIDs, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consulta: %w", err)
	}
	return nil
}

// ListByPaciente lista consultas de un paciente, más recientes primero.
func (r *ConsultaRepo) ListByPaciente(pacienteID string, limit, offset int) ([]*entity.Consulta, error) {
	query := `SELECT ` + consultaCols + ` FROM consultas WHERE paciente_id = $1 ORDER BY fecha DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.lista(query, pacienteID, limit, offset)
}

// ListByClinica lista consultas de la clínica, más recientes primero.
func (r *ConsultaRepo) ListByClinica(clinicaID string, limit, offset int) ([]*entity.Consulta, error) {
	query := `SELECT ` + consultaCols + ` FROM consultas WHERE clinica_id = $1 ORDER BY fecha DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.lista(query, clinicaID, limit, offset)
}

// Delete elimina una consulta por ID.
func (r *ConsultaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM consultas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consulta: %w", err)
	}
	return nil
}

func (r *ConsultaRepo) lista(query string, args ...any) ([]*entity.Consulta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consultas: %w", err)
	}
	defer rows.Close()
	var out []*entity.Consulta
	for rows.Next() {
		var c entity.Consulta
		if err := rows.Scan(
			&c.ID, &c.ClinicaID, &c.PacienteID, &c.Fecha, &c.Motivo, &c.Anamnesis, &c.Diagnostico,
			&c.Tratamiento, &c.Patologia, &c.Fotos, &c.UsuarioIDs, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan consulta: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
