// Package pdf implementa la generación del recibo de consulta que se entrega
// al propietario del paciente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Clínica  │  N° Recibo + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PACIENTE: Nombre / Especie / Propietario                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Concepto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL A PAGAR              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vetcare-cu/veterinaria-api/internal/application/consulta"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 84}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ consulta.ReciboPDFGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa consulta.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct {
	NombreClinica string
	TasaCambio    string // referencia CUP/USD impresa al pie, vacío = no se imprime
}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator(nombreClinica, tasaCambio string) *MarotoReciboGenerator {
	return &MarotoReciboGenerator{NombreClinica: nombreClinica, TasaCambio: tasaCambio}
}

// GenerateReciboPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerateReciboPDF(_ context.Context, datos *consulta.ReciboDatos) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de consulta", true).
		WithAuthor(g.NombreClinica, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(datos.Consulta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pacienteRow(datos.Paciente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(datos.Ventas, datos.NombresComerciable) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(datos) {
		m.AddRows(r)
	}

	if g.TasaCambio != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Tasa de referencia: "+g.TasaCambio+" CUP/USD", props.Text{
				Size: 7, Color: colorGray, Align: align.Right, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la clínica (izq) y número de recibo + fecha (der).
func (g *MarotoReciboGenerator) headerRow(cons *entity.Consulta) core.Row {
	fecha := cons.Fecha.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.NombreClinica, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Clínica veterinaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE CONSULTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(cons.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// pacienteRow: datos del paciente y su propietario.
func pacienteRow(p *entity.Paciente) core.Row {
	especie := p.Especie
	if p.Raza != "" {
		especie += " / " + p.Raza
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PACIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   Propietario: %s",
				p.Nombre, nonEmpty(especie, "—"), nonEmpty(p.PropietarioNombre, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant", headerCell(align.Center))),
		col.New(6).Add(text.New("Concepto", headerCell(align.Left))),
		col.New(2).Add(text.New("P. Unit", headerCell(align.Right))),
		col.New(2).Add(text.New("Subtotal", headerCell(align.Right))),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func headerCell(a align.Type) props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5}
}

func tableDetailRows(ventas []*entity.Venta, nombres map[string]string) []core.Row {
	rows := make([]core.Row, 0, len(ventas))
	for _, v := range ventas {
		concepto := nombres[v.ComerciableID]
		if concepto == "" {
			concepto = v.ComerciableID
		}
		subtotal := v.PrecioCobrado.Mul(v.Cantidad)
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(v.Cantidad.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(concepto, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(v.PrecioCobrado.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalsRows(datos *consulta.ReciboDatos) []core.Row {
	descuento := datos.TotalCobro.Sub(datos.TotalConDescuento)
	filas := []core.Row{
		totalRow("Subtotal", datos.TotalCobro.StringFixed(2), false),
	}
	if !descuento.IsZero() {
		filas = append(filas, totalRow("Descuento", "-"+descuento.StringFixed(2), false))
	}
	if !datos.ExedenteRedondeo.IsZero() {
		filas = append(filas, totalRow("Redondeo", datos.ExedenteRedondeo.StringFixed(2), false))
	}
	filas = append(filas, totalRow("TOTAL A PAGAR (CUP)", datos.TotalRedondeado.StringFixed(2), true))
	return filas
}

func totalRow(etiqueta, valor string, destacado bool) core.Row {
	size := 8.0
	style := fontstyle.Normal
	color := colorGray
	if destacado {
		size = 11
		style = fontstyle.Bold
		color = colorPrimary
	}
	return row.New(6).Add(
		col.New(8),
		col.New(2).Add(text.New(etiqueta, props.Text{Size: size, Style: style, Align: align.Right, Color: color, Top: 1})),
		col.New(2).Add(text.New(valor, props.Text{Size: size, Style: style, Align: align.Right, Color: color, Top: 1})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
