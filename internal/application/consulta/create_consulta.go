package consulta

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// UseCase crea y edita consultas (historias clínicas) con su pipeline de
// ventas. El orden del pipeline de creación es estricto y cada paso condiciona
// el siguiente:
//
//  1. Validación local de campos obligatorios (falla rápido, sin red).
//  2. Validación de renglones, categoría por categoría en el orden fijo
//     medicamentos → servicios → productos → vacunas → antiparasitarios,
//     y dentro de cada categoría fila por fila (nunca en paralelo). El primer
//     fallo aborta todo el envío sin haber creado nada.
//  3. Creación de la consulta.
//  4. Creación de una venta por fila validada, de nuevo categoría por
//     categoría en el mismo orden; el primer fallo aborta las categorías
//     restantes pero las ventas ya creadas quedan intactas (no hay rollback
//     compensatorio: estado parcial aceptado que el operador reconcilia).
//  5. Éxito solo cuando todas las categorías con filas terminaron.
type UseCase struct {
	consultaRepo repository.ConsultaRepository
	pacienteRepo repository.PacienteRepository
	usuarioRepo  repository.UsuarioRepository
	ventaRepo    repository.VentaRepository
	validador    ValidadorVentas
	creador      CreadorVentas
	tx           TxRunner
	politica     billing.PoliticaRedondeo
}

// NewUseCase construye el caso de uso. La política de redondeo entra aquí de
// forma explícita: el cálculo nunca consulta configuración ambiental.
func NewUseCase(
	consultaRepo repository.ConsultaRepository,
	pacienteRepo repository.PacienteRepository,
	usuarioRepo repository.UsuarioRepository,
	ventaRepo repository.VentaRepository,
	validador ValidadorVentas,
	creador CreadorVentas,
	tx TxRunner,
	politica billing.PoliticaRedondeo,
) *UseCase {
	return &UseCase{
		consultaRepo: consultaRepo,
		pacienteRepo: pacienteRepo,
		usuarioRepo:  usuarioRepo,
		ventaRepo:    ventaRepo,
		validador:    validador,
		creador:      creador,
		tx:           tx,
		politica:     politica,
	}
}

// ErrorParcial señala un fallo a mitad de la fase de creación de ventas: la
// consulta y las ventas ya creadas quedan persistidas.
type ErrorParcial struct {
	ConsultaID    string
	VentasCreadas int
	Err           error
}

func (e *ErrorParcial) Error() string {
	return fmt.Sprintf("creación parcial de la consulta %s (%d ventas creadas): %v", e.ConsultaID, e.VentasCreadas, e.Err)
}

func (e *ErrorParcial) Unwrap() error { return e.Err }

// listaCategoria son los renglones de una categoría en el orden del pipeline.
type listaCategoria struct {
	categoria billing.Categoria
	filas     []*billing.LineItem
}

// Crear ejecuta el pipeline completo de creación. progreso puede ser nil.
func (uc *UseCase) Crear(ctx context.Context, clinicaID string, in dto.CreateConsultaRequest, progreso Progreso) (*dto.ConsultaResponse, error) {
	med := nuevoMedidor(progreso)

	// ── 1. Validación local ───────────────────────────────────────────────
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil || in.Fecha == "" {
		return nil, domain.NuevoErrorCampo("fecha", "fecha inválida, formato esperado YYYY-MM-DD")
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

	paciente, err := uc.pacienteRepo.GetByID(in.PacienteID)
	if err != nil {
		return nil, fmt.Errorf("obtener paciente: %w", err)
	}
	if paciente == nil || paciente.ClinicaID != clinicaID {
		return nil, domain.ErrNotFound
	}
	for _, uid := range in.UsuarioIDs {
		u, err := uc.usuarioRepo.GetByID(uid)
		if err != nil {
			return nil, fmt.Errorf("obtener usuario asignado: %w", err)
		}
		if u == nil || u.ClinicaID != clinicaID {
			return nil, domain.NuevoErrorCampo("usuarios", "usuario asignado inexistente")
		}
	}

	listas := construirListas(in)

	// ── 2. Validación de renglones, secuencial por categoría y por fila ───
	for i, lista := range listas {
		inicio, fin := bandaValidacion(i)
		for j, fila := range lista.filas {
			if !fila.Seleccionado {
				// Renglón sin selección: no se valida ni aporta.
				med.Reportar(interpolar(inicio, fin, j+1, len(lista.filas)))
				continue
			}
			if err := uc.validador.ValidarFila(ctx, clinicaID, fila, in.UsuarioIDs); err != nil {
				return nil, fmt.Errorf("validar %s: %w", lista.categoria, err)
			}
			med.Reportar(interpolar(inicio, fin, j+1, len(lista.filas)))
		}
		med.Reportar(fin)
	}

	// ── Totales, descuento, redondeo y reparto del exedente ───────────────
	todas := aplanar(listas)
	totales := billing.Agregar(todas)
	conDescuento := billing.AplicarDescuento(totales.TotalCobro, paciente.DescuentoPorciento)
	redondeado, exedente := uc.politica.Exedente(conDescuento)
	billing.RepartirExedente(todas, exedente)

	var snap billing.SnapshotOriginal
	snap.Actualizar(totales.TotalCobro, conDescuento)
	ajuste := uc.resolverAjuste(in, snap, paciente.DescuentoPorciento)

	// ── 3. Creación de la consulta ────────────────────────────────────────
	now := time.Now()
	cons := &entity.Consulta{
		ID:          uuid.New().String(),
		ClinicaID:   clinicaID,
		PacienteID:  in.PacienteID,
		Fecha:       fecha,
		Motivo:      in.Motivo,
		Anamnesis:   in.Anamnesis,
		Diagnostico: in.Diagnostico,
		Tratamiento: resumenTratamiento(todas),
		Patologia:   in.Patologia,
		Fotos:       in.Fotos,
		UsuarioIDs:  in.UsuarioIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.consultaRepo.Create(cons); err != nil {
		return nil, fmt.Errorf("crear consulta: %w", err)
	}
	med.Reportar(inicioCreacion)

	// ── 4. Creación de ventas, secuencial por categoría y por fila ────────
	metodoPago := in.MetodoPago
	if metodoPago == "" {
		metodoPago = entity.PagoEfectivo
	}
	totalFilas := 0
	for _, lista := range listas {
		for _, fila := range lista.filas {
			if fila.Seleccionado {
				totalFilas++
			}
		}
	}

	var ventas []*entity.Venta
	hechas := 0
	for _, lista := range listas {
		for _, fila := range lista.filas {
			if !fila.Seleccionado {
				continue
			}
			precio := billing.PrecioConAjuste(fila, ajuste, snap)
			v, err := uc.creador.CrearFila(ctx, clinicaID, cons.ID, in.PacienteID, metodoPago, fecha, fila, precio, in.UsuarioIDs)
			if err != nil {
				// Las ventas ya creadas quedan; no hay rollback compensatorio.
				return nil, &ErrorParcial{ConsultaID: cons.ID, VentasCreadas: hechas, Err: err}
			}
			ventas = append(ventas, v)
			hechas++
			med.Reportar(interpolar(inicioCreacion, finCreacion, hechas, totalFilas))
		}
	}
	med.Reportar(finCreacion)

	// ── 5. Respuesta ──────────────────────────────────────────────────────
	return uc.aRespuesta(cons, ventas, totales, conDescuento, redondeado, exedente, ajuste, snap), nil
}

// resolverAjuste reconstruye el ajuste manual enviado por la app con la guarda
// optimista compartida: el delta solo se honra si el total original que
// capturó el operador coincide con el total recién calculado.
func (uc *UseCase) resolverAjuste(in dto.CreateConsultaRequest, snap billing.SnapshotOriginal, descuento decimal.Decimal) billing.AjusteManual {
	return billing.ResolverAjuste(snap, in.AjusteDelta, in.AjusteTotalOriginal, descuento)
}

func (uc *UseCase) aRespuesta(
	cons *entity.Consulta,
	ventas []*entity.Venta,
	totales billing.Totales,
	conDescuento, redondeado, exedente decimal.Decimal,
	ajuste billing.AjusteManual,
	snap billing.SnapshotOriginal,
) *dto.ConsultaResponse {
	totalCobro := totales.TotalCobro
	if ajuste.Vigente(snap) {
		totalCobro = ajuste.TotalCobro
		conDescuento = ajuste.TotalConDescuento
	}
	resp := &dto.ConsultaResponse{
		ID:                cons.ID,
		PacienteID:        cons.PacienteID,
		Fecha:             cons.Fecha.Format("2006-01-02"),
		Motivo:            cons.Motivo,
		Anamnesis:         cons.Anamnesis,
		Diagnostico:       cons.Diagnostico,
		Tratamiento:       cons.Tratamiento,
		Patologia:         cons.Patologia,
		UsuarioIDs:        cons.UsuarioIDs,
		TotalCobro:        totalCobro,
		TotalConDescuento: conDescuento,
		TotalRedondeado:   redondeado,
		ExedenteRedondeo:  exedente,
		GananciaMostrada:  billing.GananciaMostrada(totales.TotalGanancia, exedente, uc.politica.RedondeoDesdeGanancia),
	}
	for _, v := range ventas {
		resp.Ventas = append(resp.Ventas, ventaAResponse(v))
	}
	return resp
}

// construirListas convierte los renglones del request en listas por categoría
// en el orden fijo del pipeline. La parte numérica se parsea aquí: entradas
// ilegibles degradan a cero.
func construirListas(in dto.CreateConsultaRequest) []listaCategoria {
	porCategoria := map[billing.Categoria][]dto.RenglonRequest{
		billing.CategoriaMedicamentos:     in.Medicamentos,
		billing.CategoriaServicios:        in.Servicios,
		billing.CategoriaProductos:        in.Productos,
		billing.CategoriaVacunas:          in.Vacunas,
		billing.CategoriaAntiparasitarios: in.Antiparasitarios,
	}
	listas := make([]listaCategoria, 0, len(billing.OrdenCategorias))
	for _, cat := range billing.OrdenCategorias {
		filas := make([]*billing.LineItem, 0, len(porCategoria[cat]))
		for _, r := range porCategoria[cat] {
			filas = append(filas, renglonAItem(cat, r))
		}
		listas = append(listas, listaCategoria{categoria: cat, filas: filas})
	}
	return listas
}

func renglonAItem(cat billing.Categoria, r dto.RenglonRequest) *billing.LineItem {
	id := r.ID
	if id == "" {
		id = uuid.New().String()
	}
	cantidad := billing.ParseDecimal(r.Cantidad)
	if r.Cantidad == "" {
		cantidad = decimal.NewFromInt(1) // cantidad por defecto
	}
	return &billing.LineItem{
		ID:               id,
		Categoria:        cat,
		ComerciableID:    r.ComerciableID,
		Seleccionado:     r.ComerciableID != "",
		PrecioUnitario:   billing.ParseDecimal(r.PrecioCUP),
		Cantidad:         cantidad,
		Nota:             r.NotaList,
		ExedenteRedondeo: billing.ParseDecimal(r.ExedenteRedondeo),
	}
}

func aplanar(listas []listaCategoria) []*billing.LineItem {
	var todas []*billing.LineItem
	for _, l := range listas {
		todas = append(todas, l.filas...)
	}
	return todas
}

// resumenTratamiento deriva el texto de tratamiento de las notas de los
// renglones seleccionados. Es una recomputación pura disparada en el mismo
// punto que la agregación; no hay temporizador de sincronización.
func resumenTratamiento(items []*billing.LineItem) string {
	var b strings.Builder
	for _, it := range items {
		if !it.Seleccionado || strings.TrimSpace(it.Nota) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(strings.TrimSpace(it.Nota))
		b.WriteString("\n")
	}
	return b.String()
}

func ventaAResponse(v *entity.Venta) dto.VentaResponse {
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
