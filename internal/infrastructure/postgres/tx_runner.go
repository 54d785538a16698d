package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vetcare-cu/veterinaria-api/internal/application/consulta"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

var _ consulta.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConsulta inicia una transacción, ejecuta fn con los repos de consulta y
// venta atados a la tx y hace Commit o Rollback. Se usa en la edición de
// consultas, donde la ficha y el reemplazo masivo de ventas deben ir juntos.
func (r *TxRunner) RunConsulta(ctx context.Context, fn func(
	consultaRepo repository.ConsultaRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewConsultaRepository(tx), NewVentaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
