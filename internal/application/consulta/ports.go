package consulta

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una transacción: la edición de una
// consulta reemplaza sus ventas y actualiza la ficha en una sola operación.
type TxRunner interface {
	RunConsulta(ctx context.Context, fn func(
		consultaRepo repository.ConsultaRepository,
		ventaRepo repository.VentaRepository,
	) error) error
}

// ValidadorVentas valida un renglón pendiente contra el catálogo y normaliza
// su costo canónico. Lo implementa venta.UseCase.
type ValidadorVentas interface {
	ValidarFila(ctx context.Context, clinicaID string, fila *billing.LineItem, usuarioIDs []string) error
}

// CreadorVentas persiste una fila de venta ya validada, asociada a una
// consulta. Lo implementa venta.UseCase.
type CreadorVentas interface {
	CrearFila(
		ctx context.Context,
		clinicaID, consultaID, pacienteID, metodoPago string,
		fecha time.Time,
		fila *billing.LineItem,
		precioCobrado decimal.Decimal,
		usuarioIDs []string,
	) (*entity.Venta, error)
}

// ReciboPDFGenerator genera el recibo PDF de una consulta.
type ReciboPDFGenerator interface {
	GenerateReciboPDF(ctx context.Context, datos *ReciboDatos) ([]byte, error)
}

// ReciboDatos agrupa todo lo que el generador necesita para el recibo.
type ReciboDatos struct {
	Consulta          *entity.Consulta
	Paciente          *entity.Paciente
	Ventas            []*entity.Venta
	NombresComerciable map[string]string // comerciable ID → nombre
	TotalCobro        decimal.Decimal
	TotalConDescuento decimal.Decimal
	TotalRedondeado   decimal.Decimal
	ExedenteRedondeo  decimal.Decimal
}
