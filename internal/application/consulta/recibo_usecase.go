package consulta

import (
	"context"
	"fmt"

	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// ReciboPDFUseCase genera el recibo PDF de una consulta con sus renglones
// cobrados, el descuento del paciente y el total redondeado.
type ReciboPDFUseCase struct {
	consultaRepo    repository.ConsultaRepository
	pacienteRepo    repository.PacienteRepository
	ventaRepo       repository.VentaRepository
	comerciableRepo repository.ComerciableRepository
	generator       ReciboPDFGenerator
	politica        billing.PoliticaRedondeo
}

// NewReciboPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewReciboPDFUseCase(
	consultaRepo repository.ConsultaRepository,
	pacienteRepo repository.PacienteRepository,
	ventaRepo repository.VentaRepository,
	comerciableRepo repository.ComerciableRepository,
	generator ReciboPDFGenerator,
	politica billing.PoliticaRedondeo,
) *ReciboPDFUseCase {
	return &ReciboPDFUseCase{
		consultaRepo:    consultaRepo,
		pacienteRepo:    pacienteRepo,
		ventaRepo:       ventaRepo,
		comerciableRepo: comerciableRepo,
		generator:       generator,
		politica:        politica,
	}
}

// DownloadReciboPDF arma los datos del recibo desde las filas persistidas y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la consulta no existe.
//   - domain.ErrForbidden        si la consulta no pertenece a la clínica del token.
func (uc *ReciboPDFUseCase) DownloadReciboPDF(ctx context.Context, clinicaID, consultaID string) (pdfBytes []byte, filename string, err error) {
	cons, err := uc.consultaRepo.GetByID(consultaID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener consulta: %w", err)
	}
	if cons == nil {
		return nil, "", domain.ErrNotFound
	}
	if cons.ClinicaID != clinicaID {
		return nil, "", domain.ErrForbidden
	}

	paciente, err := uc.pacienteRepo.GetByID(cons.PacienteID)
	if err != nil || paciente == nil {
		return nil, "", fmt.Errorf("recibo: obtener paciente: %w", err)
	}
	ventas, err := uc.ventaRepo.ListByConsulta(consultaID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: listar ventas: %w", err)
	}

	nombres := make(map[string]string, len(ventas))
	for _, v := range ventas {
		if _, ok := nombres[v.ComerciableID]; ok {
			continue
		}
		com, err := uc.comerciableRepo.GetByID(v.ComerciableID)
		if err == nil && com != nil {
			nombres[v.ComerciableID] = com.Nombre
		}
	}

	items := itemsDesdeVentas(ventas)
	totales := billing.Agregar(items)
	conDescuento := billing.AplicarDescuento(totales.TotalCobro, paciente.DescuentoPorciento)
	redondeado, exedente := uc.politica.Exedente(conDescuento)

	datos := &ReciboDatos{
		Consulta:           cons,
		Paciente:           paciente,
		Ventas:             ventas,
		NombresComerciable: nombres,
		TotalCobro:         totales.TotalCobro,
		TotalConDescuento:  conDescuento,
		TotalRedondeado:    redondeado,
		ExedenteRedondeo:   exedente,
	}
	pdf, err := uc.generator.GenerateReciboPDF(ctx, datos)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("recibo-%s.pdf", cons.ID), nil
}
