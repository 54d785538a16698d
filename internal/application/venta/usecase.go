package venta

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// UseCase casos de uso de ventas: validación de renglones, creación de la
// venta individual (venta directa) y creación de filas desde el pipeline de
// consulta. La validación y la creación están separadas porque el pipeline
// valida TODAS las filas antes de crear ninguna.
type UseCase struct {
	comerciableRepo repository.ComerciableRepository
	usuarioRepo     repository.UsuarioRepository
	ventaRepo       repository.VentaRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	comerciableRepo repository.ComerciableRepository,
	usuarioRepo repository.UsuarioRepository,
	ventaRepo repository.VentaRepository,
) *UseCase {
	return &UseCase{
		comerciableRepo: comerciableRepo,
		usuarioRepo:     usuarioRepo,
		ventaRepo:       ventaRepo,
	}
}

// ValidarFila valida un renglón pendiente contra el catálogo y deja el
// renglón listo para agregación: resuelve el comerciable y normaliza el
// costo canónico una sola vez aquí (ningún cálculo posterior hace fallbacks).
//
// Reglas: comerciable seleccionado, existente, activo y de la clínica;
// cantidad positiva; precio no negativo; al menos un usuario asignado.
func (uc *UseCase) ValidarFila(ctx context.Context, clinicaID string, fila *billing.LineItem, usuarioIDs []string) error {
	if fila == nil || !fila.Seleccionado || fila.ComerciableID == "" {
		return domain.NuevoErrorCampo("comerciable", "debe seleccionar un comerciable")
	}
	if !fila.Cantidad.IsPositive() {
		return domain.NuevoErrorCampo("cantidad", "la cantidad debe ser mayor que cero")
	}
	if fila.PrecioUnitario.IsNegative() {
		return domain.NuevoErrorCampo("precio_cup", "el precio no puede ser negativo")
	}
	if len(usuarioIDs) == 0 {
		return domain.NuevoErrorCampo("usuarios", "debe asignar al menos un usuario")
	}

	com, err := uc.comerciableRepo.GetByID(fila.ComerciableID)
	if err != nil {
		return fmt.Errorf("validar venta: obtener comerciable: %w", err)
	}
	if com == nil || com.ClinicaID != clinicaID {
		return domain.ErrNotFound
	}
	if !com.Activo {
		return domain.NuevoErrorCampo("comerciable", "el comerciable está inactivo")
	}

	fila.CostoOriginal = billing.NormalizarCosto(com.Costo, decimal.Zero, com.PrecioCUP)
	return nil
}

// CrearFila persiste una fila de venta ya validada, asociada a una consulta.
// precioCobrado viene ya recalculado por el pipeline cuando hay ajuste manual.
func (uc *UseCase) CrearFila(
	ctx context.Context,
	clinicaID, consultaID, pacienteID, metodoPago string,
	fecha time.Time,
	fila *billing.LineItem,
	precioCobrado decimal.Decimal,
	usuarioIDs []string,
) (*entity.Venta, error) {
	v := &entity.Venta{
		ID:               uuid.New().String(),
		ClinicaID:        clinicaID,
		ConsultaID:       consultaID,
		ComerciableID:    fila.ComerciableID,
		PacienteID:       pacienteID,
		Fecha:            fecha,
		Cantidad:         fila.Cantidad,
		PrecioCobrado:    precioCobrado,
		PrecioOriginal:   fila.CostoOriginal,
		ExedenteRedondeo: fila.ExedenteRedondeo,
		MetodoPago:       metodoPago,
		Nota:             fila.Nota,
		UsuarioIDs:       usuarioIDs,
		CreatedAt:        time.Now(),
	}
	if err := uc.ventaRepo.Create(v); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	return v, nil
}

// Crear crea una venta individual (ventaModal): valida el renglón y lo
// persiste sin consulta asociada.
func (uc *UseCase) Crear(ctx context.Context, clinicaID string, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.NuevoErrorCampo("fecha", "fecha inválida, formato esperado YYYY-MM-DD")
	}
	if in.MetodoPago != entity.PagoEfectivo && in.MetodoPago != entity.PagoTransferencia {
		return nil, domain.NuevoErrorCampo("metodo_pago", "método de pago desconocido")
	}

	fila := &billing.LineItem{
		ID:             uuid.New().String(),
		ComerciableID:  in.ComerciableID,
		Seleccionado:   in.ComerciableID != "",
		PrecioUnitario: billing.ParseDecimal(in.PrecioCUP),
		Cantidad:       billing.ParseDecimal(in.Cantidad),
		Nota:           in.Nota,
	}
	if err := uc.ValidarFila(ctx, clinicaID, fila, in.UsuarioIDs); err != nil {
		return nil, err
	}

	// El ajuste manual del total aplica igual que en la consulta: se agrega el
	// renglón único (parte porcentual 100), se resuelve el delta contra el
	// total calculado y el precio cobrado sale del total ajustado.
	totales := billing.Agregar([]*billing.LineItem{fila})
	var snap billing.SnapshotOriginal
	snap.Actualizar(totales.TotalCobro, totales.TotalCobro)
	ajuste := billing.ResolverAjuste(snap, in.AjusteDelta, in.AjusteTotalOriginal, decimal.Zero)
	precio := billing.PrecioConAjuste(fila, ajuste, snap)

	v, err := uc.CrearFila(ctx, clinicaID, "", in.PacienteID, in.MetodoPago, fecha, fila, precio, in.UsuarioIDs)
	if err != nil {
		return nil, err
	}
	resp := ToVentaResponse(v)
	return &resp, nil
}

// GetByID obtiene una venta por ID verificando la clínica.
func (uc *UseCase) GetByID(ctx context.Context, clinicaID, id string) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if v.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	resp := ToVentaResponse(v)
	return &resp, nil
}

// List lista las ventas de la clínica con paginación.
func (uc *UseCase) List(ctx context.Context, clinicaID string, limit, offset int) ([]dto.VentaResponse, error) {
	ventas, err := uc.ventaRepo.ListByClinica(clinicaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, ToVentaResponse(v))
	}
	return out, nil
}

// ToVentaResponse mapea la entidad al DTO de respuesta.
func ToVentaResponse(v *entity.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:               v.ID,
		ConsultaID:       v.ConsultaID,
		ComerciableID:    v.ComerciableID,
		PacienteID:       v.PacienteID,
		Fecha:            v.Fecha.Format("2006-01-02"),
		Cantidad:         v.Cantidad,
		PrecioCobrado:    v.PrecioCobrado,
		PrecioOriginal:   v.PrecioOriginal,
		ExedenteRedondeo: v.ExedenteRedondeo,
		MetodoPago:       v.MetodoPago,
		Nota:             v.Nota,
		UsuarioIDs:       v.UsuarioIDs,
	}
}
