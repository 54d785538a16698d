package consulta

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// Actualizar edita una consulta existente. A diferencia de la creación, la
// edición NO valida ni crea venta por venta: todas las filas viajan en un
// solo arreglo y se reemplazan de forma masiva en una operación. Cada fila
// conserva el exedente de redondeo que ya tenía persistido (no se reparte de
// nuevo).
func (uc *UseCase) Actualizar(ctx context.Context, clinicaID, id string, in dto.UpdateConsultaRequest) (*dto.ConsultaResponse, error) {
	cons, err := uc.consultaRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener consulta: %w", err)
	}
	if cons == nil {
		return nil, domain.ErrNotFound
	}
	if cons.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}

	if in.Fecha != "" {
		fecha, err := time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, domain.NuevoErrorCampo("fecha", "fecha inválida, formato esperado YYYY-MM-DD")
		}
		cons.Fecha = fecha
	}
	if strings.TrimSpace(in.Motivo) == "" {
		return nil, domain.NuevoErrorCampo("motivo", "el motivo es obligatorio")
	}
	if strings.TrimSpace(in.Anamnesis) == "" {
		return nil, domain.NuevoErrorCampo("anamnesis", "la anamnesis es obligatoria")
	}
	if len(in.UsuarioIDs) == 0 {
		return nil, domain.NuevoErrorCampo("usuarios", "debe asignar al menos un usuario")
	}

	cons.Motivo = in.Motivo
	cons.Anamnesis = in.Anamnesis
	cons.Diagnostico = in.Diagnostico
	cons.Tratamiento = in.Tratamiento
	cons.Patologia = in.Patologia
	if in.Fotos != nil {
		cons.Fotos = in.Fotos
	}
	cons.UsuarioIDs = in.UsuarioIDs
	cons.UpdatedAt = time.Now()

	paciente, err := uc.pacienteRepo.GetByID(cons.PacienteID)
	if err != nil || paciente == nil {
		return nil, fmt.Errorf("obtener paciente: %w", err)
	}

	// Reconstruir las filas de venta desde el arreglo único del request.
	var ventas []*entity.Venta
	var items []*billing.LineItem
	for _, r := range in.Ventas {
		if r.ComerciableID == "" {
			continue
		}
		fila := renglonAItem("", r)
		if err := uc.validador.ValidarFila(ctx, clinicaID, fila, in.UsuarioIDs); err != nil {
			return nil, err
		}
		items = append(items, fila)
		ventas = append(ventas, &entity.Venta{
			ID:               uuid.New().String(),
			ClinicaID:        clinicaID,
			ConsultaID:       cons.ID,
			ComerciableID:    fila.ComerciableID,
			PacienteID:       cons.PacienteID,
			Fecha:            cons.Fecha,
			Cantidad:         fila.Cantidad,
			PrecioCobrado:    fila.PrecioUnitario,
			PrecioOriginal:   fila.CostoOriginal,
			ExedenteRedondeo: fila.ExedenteRedondeo, // el ya persistido, sin repartir de nuevo
			MetodoPago:       entity.PagoEfectivo,
			Nota:             fila.Nota,
			UsuarioIDs:       in.UsuarioIDs,
			CreatedAt:        time.Now(),
		})
	}

	// Ficha y ventas se reemplazan en una sola transacción: en edición no hay
	// estado parcial aceptable.
	err = uc.tx.RunConsulta(ctx, func(consultaRepo repository.ConsultaRepository, ventaRepo repository.VentaRepository) error {
		if err := consultaRepo.Update(cons); err != nil {
			return fmt.Errorf("actualizar consulta: %w", err)
		}
		if err := ventaRepo.ReplaceByConsulta(cons.ID, ventas); err != nil {
			return fmt.Errorf("reemplazar ventas de la consulta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	totales := billing.Agregar(items)
	conDescuento := billing.AplicarDescuento(totales.TotalCobro, paciente.DescuentoPorciento)
	redondeado, exedente := uc.politica.Exedente(conDescuento)
	return uc.aRespuesta(cons, ventas, totales, conDescuento, redondeado, exedente, billing.AjusteManual{}, billing.SnapshotOriginal{}), nil
}

// GetByID obtiene una consulta con sus ventas y totales recalculados desde
// las filas persistidas.
func (uc *UseCase) GetByID(ctx context.Context, clinicaID, id string) (*dto.ConsultaResponse, error) {
	cons, err := uc.consultaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cons == nil {
		return nil, domain.ErrNotFound
	}
	if cons.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	ventas, err := uc.ventaRepo.ListByConsulta(id)
	if err != nil {
		return nil, fmt.Errorf("listar ventas de la consulta: %w", err)
	}
	paciente, err := uc.pacienteRepo.GetByID(cons.PacienteID)
	if err != nil || paciente == nil {
		return nil, fmt.Errorf("obtener paciente: %w", err)
	}

	items := itemsDesdeVentas(ventas)
	totales := billing.Agregar(items)
	conDescuento := billing.AplicarDescuento(totales.TotalCobro, paciente.DescuentoPorciento)
	redondeado, exedente := uc.politica.Exedente(conDescuento)
	return uc.aRespuesta(cons, ventas, totales, conDescuento, redondeado, exedente, billing.AjusteManual{}, billing.SnapshotOriginal{}), nil
}

// ListByPaciente lista las consultas de un paciente (sin totales).
func (uc *UseCase) ListByPaciente(ctx context.Context, clinicaID, pacienteID string, limit, offset int) ([]dto.ConsultaResponse, error) {
	paciente, err := uc.pacienteRepo.GetByID(pacienteID)
	if err != nil {
		return nil, err
	}
	if paciente == nil || paciente.ClinicaID != clinicaID {
		return nil, domain.ErrNotFound
	}
	consultas, err := uc.consultaRepo.ListByPaciente(pacienteID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsultaResponse, 0, len(consultas))
	for _, c := range consultas {
		out = append(out, dto.ConsultaResponse{
			ID:          c.ID,
			PacienteID:  c.PacienteID,
			Fecha:       c.Fecha.Format("2006-01-02"),
			Motivo:      c.Motivo,
			Anamnesis:   c.Anamnesis,
			Diagnostico: c.Diagnostico,
			Tratamiento: c.Tratamiento,
			Patologia:   c.Patologia,
			UsuarioIDs:  c.UsuarioIDs,
		})
	}
	return out, nil
}

// itemsDesdeVentas reconstruye renglones de cálculo desde filas persistidas.
func itemsDesdeVentas(ventas []*entity.Venta) []*billing.LineItem {
	items := make([]*billing.LineItem, 0, len(ventas))
	for _, v := range ventas {
		items = append(items, &billing.LineItem{
			ID:               v.ID,
			ComerciableID:    v.ComerciableID,
			Seleccionado:     true,
			PrecioUnitario:   v.PrecioCobrado,
			Cantidad:         v.Cantidad,
			CostoOriginal:    v.PrecioOriginal,
			Nota:             v.Nota,
			ExedenteRedondeo: v.ExedenteRedondeo,
		})
	}
	return items
}
