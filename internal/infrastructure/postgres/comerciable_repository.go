package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

var _ repository.ComerciableRepository = (*ComerciableRepo)(nil)

// ComerciableRepo implementación del puerto ComerciableRepository sobre PostgreSQL (usable con pool o tx).
type ComerciableRepo struct {
	q Querier
}

// NewComerciableRepository construye el adaptador de persistencia para el catálogo. Pasar pool o tx (Querier).
func NewComerciableRepository(q Querier) *ComerciableRepo {
	return &ComerciableRepo{q: q}
}

const comerciableCols = `id, clinica_id, tipo, nombre, descripcion, precio_cup, costo, activo, created_at, updated_at`

// Create persiste un comerciable nuevo.
func (r *ComerciableRepo) Create(c *entity.Comerciable) error {
	query := `
		INSERT INTO comerciables (id, clinica_id, tipo, nombre, descripcion, precio_cup, costo, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClinicaID, c.Tipo, c.Nombre, c.Descripcion, c.PrecioCUP, c.Costo, c.Activo,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert comerciable: %w", err)
	}
	return nil
}

// GetByID obtiene un comerciable por ID.
func (r *ComerciableRepo) GetByID(id string) (*entity.Comerciable, error) {
	query := `SELECT ` + comerciableCols + ` FROM comerciables WHERE id = $1`
	var c entity.Comerciable
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClinicaID, &c.Tipo, &c.Nombre, &c.Descripcion, &c.PrecioCUP, &c.Costo, &c.Activo,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comerciable: %w", err)
	}
	return &c, nil
}

// Update actualiza un comerciable existente.
func (r *ComerciableRepo) Update(c *entity.Comerciable) error {
	query := `
		UPDATE comerciables SET tipo = $2, nombre = $3, descripcion = $4, precio_cup = $5, costo = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Tipo, c.Nombre, c.Descripcion, c.PrecioCUP, c.Costo, c.Activo, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update comerciable: %w", err)
	}
	return nil
}

// ListByClinica lista el catálogo de la clínica, opcionalmente filtrado por tipo.
func (r *ComerciableRepo) ListByClinica(clinicaID, tipo string, limit, offset int) ([]*entity.Comerciable, error) {
	query := `SELECT ` + comerciableCols + ` FROM comerciables WHERE clinica_id = $1`
	args := []any{clinicaID}
	if tipo != "" {
		query += ` AND tipo = $2 ORDER BY nombre LIMIT $3 OFFSET $4`
		args = append(args, tipo, limit, offset)
	} else {
		query += ` ORDER BY nombre LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comerciables: %w", err)
	}
	defer rows.Close()
	return scanComerciables(rows)
}

// Search busca por prefijo de nombre normalizado (minúsculas, sin acentos)
// para el autocompletado. La columna nombre se normaliza en SQL con translate
// para no depender de la extensión unaccent; el patrón de prefijo permite usar
// el índice de expresión text_pattern_ops.
func (r *ComerciableRepo) Search(clinicaID, terminoNormalizado, tipo string, limit int) ([]*entity.Comerciable, error) {
	query := `
		SELECT ` + comerciableCols + `
		FROM comerciables
		WHERE clinica_id = $1 AND activo
		  AND lower(translate(nombre, 'ÁÉÍÓÚÜÑáéíóúüñ', 'AEIOUUNaeiouun')) LIKE $2 || '%'`
	args := []any{clinicaID, terminoNormalizado}
	if tipo != "" {
		query += ` AND tipo = $3 ORDER BY nombre LIMIT $4`
		args = append(args, tipo, limit)
	} else {
		query += ` ORDER BY nombre LIMIT $3`
		args = append(args, limit)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search comerciables: %w", err)
	}
	defer rows.Close()
	return scanComerciables(rows)
}

// Delete elimina un comerciable por ID.
func (r *ComerciableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM comerciables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comerciable: %w", err)
	}
	return nil
}

func scanComerciables(rows pgx.Rows) ([]*entity.Comerciable, error) {
	var out []*entity.Comerciable
	for rows.Next() {
		var c entity.Comerciable
		if err := rows.Scan(
			&c.ID, &c.ClinicaID, &c.Tipo, &c.Nombre, &c.Descripcion, &c.PrecioCUP, &c.Costo, &c.Activo,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comerciable: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
