package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaCols = `id, clinica_id, consulta_id, comerciable_id, paciente_id, fecha, cantidad, precio_cobrado, precio_original, exedente_redondeo, metodo_pago, nota, usuario_ids, created_at`

// Create persiste una venta nueva.
func (r *VentaRepo) Create(v *entity.Venta) error {
	return insertVenta(r.q, v)
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClinicaID, &v.ConsultaID, &v.ComerciableID, &v.PacienteID, &v.Fecha,
		&v.Cantidad, &v.PrecioCobrado, &v.PrecioOriginal, &v.ExedenteRedondeo,
		&v.MetodoPago, &v.Nota, &v.UsuarioIDs, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// ListByConsulta lista las ventas de una consulta en orden de creación.
func (r *VentaRepo) ListByConsulta(consultaID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE consulta_id = $1 ORDER BY created_at`
	return r.lista(query, consultaID)
}

// ListByClinica lista ventas de la clínica, más recientes primero.
func (r *VentaRepo) ListByClinica(clinicaID string, limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE clinica_id = $1 ORDER BY fecha DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.lista(query, clinicaID, limit, offset)
}

// ReplaceByConsulta borra y reinserta las filas de una consulta (modo
// edición). Si el repo está atado a un pool abre su propia transacción; si ya
// corre dentro de una tx reutiliza el ejecutor.
func (r *VentaRepo) ReplaceByConsulta(consultaID string, ventas []*entity.Venta) error {
	ctx := context.Background()
	if pool, ok := r.q.(*pgxpool.Pool); ok {
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin replace ventas: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()
		if err := replaceVentas(tx, consultaID, ventas); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit replace ventas: %w", err)
		}
		return nil
	}
	return replaceVentas(r.q, consultaID, ventas)
}

// Delete elimina una venta por ID.
func (r *VentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

func replaceVentas(q Querier, consultaID string, ventas []*entity.Venta) error {
	if _, err := q.Exec(context.Background(), `DELETE FROM ventas WHERE consulta_id = $1`, consultaID); err != nil {
		return fmt.Errorf("delete ventas de consulta: %w", err)
	}
	for _, v := range ventas {
		if err := insertVenta(q, v); err != nil {
			return err
		}
	}
	return nil
}

func insertVenta(q Querier, v *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, clinica_id, consulta_id, comerciable_id, paciente_id, fecha, cantidad, precio_cobrado, precio_original, exedente_redondeo, metodo_pago, nota, usuario_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := q.Exec(context.Background(), query,
		v.ID, v.ClinicaID, v.ConsultaID, v.ComerciableID, v.PacienteID, v.Fecha,
		v.Cantidad, v.PrecioCobrado, v.PrecioOriginal, v.ExedenteRedondeo,
		v.MetodoPago, v.Nota, v.UsuarioIDs, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) lista(query string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var out []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.ClinicaID, &v.ConsultaID, &v.ComerciableID, &v.PacienteID, &v.Fecha,
			&v.Cantidad, &v.PrecioCobrado, &v.PrecioOriginal, &v.ExedenteRedondeo,
			&v.MetodoPago, &v.Nota, &v.UsuarioIDs, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
