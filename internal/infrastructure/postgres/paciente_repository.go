package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

var _ repository.PacienteRepository = (*PacienteRepo)(nil)

// PacienteRepo implementación del puerto PacienteRepository sobre PostgreSQL (usable con pool o tx).
type PacienteRepo struct {
	q Querier
}

// NewPacienteRepository construye el adaptador de persistencia para pacientes.
func NewPacienteRepository(q Querier) *PacienteRepo {
	return &PacienteRepo{q: q}
}

const pacienteCols = `id, clinica_id, nombre, especie, raza, propietario_nombre, propietario_telefono, descuento_porciento, created_at, updated_at`

// Create persiste un paciente nuevo.
func (r *PacienteRepo) Create(p *entity.Paciente) error {
	query := `
		INSERT INTO pacientes (id, clinica_id, nombre, especie, raza, propietario_nombre, propietario_telefono, descuento_porciento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClinicaID, p.Nombre, p.Especie, p.Raza, p.PropietarioNombre, p.PropietarioTelefono,
		p.DescuentoPorciento, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paciente: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente por ID.
func (r *PacienteRepo) GetByID(id string) (*entity.Paciente, error) {
	query := `SELECT ` + pacienteCols + ` FROM pacientes WHERE id = $1`
	var p entity.Paciente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClinicaID, &p.Nombre, &p.Especie, &p.Raza, &p.PropietarioNombre,
		&p.PropietarioTelefono, &p.DescuentoPorciento, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paciente: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de un paciente.
func (r *PacienteRepo) Update(p *entity.Paciente) error {
	query := `
		UPDATE pacientes SET nombre = $2, especie = $3, raza = $4, propietario_nombre = $5, propietario_telefono = $6, descuento_porciento = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Especie, p.Raza, p.PropietarioNombre, p.PropietarioTelefono,
		p.DescuentoPorciento, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paciente: %w", err)
	}
	return nil
}

// ListByClinica lista pacientes por clínica con paginación.
func (r *PacienteRepo) ListByClinica(clinicaID string, limit, offset int) ([]*entity.Paciente, error) {
	query := `SELECT ` + pacienteCols + ` FROM pacientes WHERE clinica_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clinicaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pacientes: %w", err)
	}
	defer rows.Close()
	var out []*entity.Paciente
	for rows.Next() {
		var p entity.Paciente
		if err := rows.Scan(
			&p.ID, &p.ClinicaID, &p.Nombre, &p.Especie, &p.Raza, &p.PropietarioNombre,
			&p.PropietarioTelefono, &p.DescuentoPorciento, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan paciente: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete elimina un paciente por ID.
func (r *PacienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paciente: %w", err)
	}
	return nil
}
