package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
)

func item(precio, cantidad, costo float64, seleccionado bool) *billing.LineItem {
	return &billing.LineItem{
		ID:             "it",
		Seleccionado:   seleccionado,
		PrecioUnitario: decimal.NewFromFloat(precio),
		Cantidad:       decimal.NewFromFloat(cantidad),
		CostoOriginal:  decimal.NewFromFloat(costo),
	}
}

func TestAgregar_ListaVacia(t *testing.T) {
	tot := billing.Agregar(nil)
	assert.True(t, tot.TotalCobro.IsZero(), "lista vacía debe dar cobro cero")
	assert.True(t, tot.TotalGanancia.IsZero(), "lista vacía debe dar ganancia cero")
}

func TestAgregar_SinSeleccion(t *testing.T) {
	items := []*billing.LineItem{
		item(50, 2, 30, false),
		item(100, 1, 80, false),
	}
	tot := billing.Agregar(items)
	assert.True(t, tot.TotalCobro.IsZero(), "renglones sin selección no aportan al cobro")
	assert.True(t, tot.TotalGanancia.IsZero(), "renglones sin selección no aportan a la ganancia")
	for _, it := range items {
		assert.True(t, it.PartePorciento.IsZero(), "sin total positivo no se asignan partes porcentuales")
	}
}

func TestAgregar_GananciaNuncaNegativa(t *testing.T) {
	// Se cobra por debajo del costo: la pérdida se reporta como cero.
	items := []*billing.LineItem{item(10, 2, 50, true)}
	tot := billing.Agregar(items)
	assert.True(t, tot.TotalCobro.Equal(decimal.NewFromInt(20)))
	assert.True(t, tot.TotalGanancia.IsZero(), "la ganancia nunca debe reportarse negativa")
}

func TestAgregar_PartesSuman100(t *testing.T) {
	items := []*billing.LineItem{
		item(33.33, 1, 0, true),
		item(33.33, 1, 0, true),
		item(33.34, 1, 0, true),
		item(999, 1, 0, false), // no seleccionado, excluido
	}
	tot := billing.Agregar(items)
	require.True(t, tot.TotalCobro.IsPositive())

	suma := decimal.Zero
	for _, it := range items[:3] {
		suma = suma.Add(it.PartePorciento)
	}
	f, _ := suma.Float64()
	assert.InDelta(t, 100.0, f, 1e-9, "las partes porcentuales deben sumar ~100%")
	assert.True(t, items[3].PartePorciento.IsZero(), "un renglón sin selección no recibe parte")
}

func TestAplicarDescuento(t *testing.T) {
	con := billing.AplicarDescuento(decimal.NewFromInt(200), decimal.NewFromInt(10))
	assert.True(t, con.Equal(decimal.NewFromInt(180)), "200 con 10% de descuento debe dar 180, dio %s", con)
}

func TestAplicarDescuento_FueraDeRango(t *testing.T) {
	total := decimal.NewFromInt(200)
	assert.True(t, billing.AplicarDescuento(total, decimal.NewFromInt(-5)).Equal(total),
		"descuento negativo se trata como cero")
	assert.True(t, billing.AplicarDescuento(total, decimal.NewFromInt(150)).Equal(total),
		"descuento mayor a 100 se trata como cero")
}

func TestRepartirExedente_SumaAlTotal(t *testing.T) {
	items := []*billing.LineItem{
		item(50, 2, 0, true),  // 100 → 40%
		item(150, 1, 0, true), // 150 → 60%
	}
	billing.Agregar(items)
	exedente := decimal.NewFromInt(3)
	billing.RepartirExedente(items, exedente)

	suma := decimal.Zero
	for _, it := range items {
		suma = suma.Add(it.ExedenteRedondeo)
	}
	f, _ := suma.Float64()
	assert.InDelta(t, 3.0, f, 1e-9, "la suma de los exedentes por renglón debe igualar el exedente total")

	f40, _ := items[0].ExedenteRedondeo.Float64()
	assert.InDelta(t, 1.2, f40, 1e-9, "el renglón con 40% recibe el 40% del exedente")
}

func TestGananciaMostrada(t *testing.T) {
	ganancia := decimal.NewFromInt(60)
	exedente := decimal.NewFromInt(3)
	assert.True(t, billing.GananciaMostrada(ganancia, exedente, false).Equal(decimal.NewFromInt(63)),
		"con redondeoDesdeGanancia=false el exedente se suma a la ganancia mostrada")
	assert.True(t, billing.GananciaMostrada(ganancia, exedente, true).Equal(ganancia),
		"con redondeoDesdeGanancia=true el exedente no se suma")
}

func TestNormalizarCosto_Prioridad(t *testing.T) {
	d := decimal.NewFromInt
	assert.True(t, billing.NormalizarCosto(d(10), d(20), d(30)).Equal(d(10)),
		"el precio original explícito tiene prioridad")
	assert.True(t, billing.NormalizarCosto(decimal.Zero, d(20), d(30)).Equal(d(20)),
		"sin precio original se usa el costo del producto")
	assert.True(t, billing.NormalizarCosto(decimal.Zero, decimal.Zero, d(30)).Equal(d(30)),
		"último recurso: precio del comerciable anidado")
	assert.True(t, billing.NormalizarCosto(decimal.Zero, decimal.Zero, decimal.Zero).IsZero(),
		"todo ausente degrada a cero")
}

func TestParseDecimal_EntradaLibre(t *testing.T) {
	assert.True(t, billing.ParseDecimal("12.5").Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, billing.ParseDecimal("").IsZero(), "entrada vacía degrada a cero")
	assert.True(t, billing.ParseDecimal("abc").IsZero(), "entrada no numérica degrada a cero")
}

// Escenario completo: tres renglones (A y B seleccionados, C no), sin
// descuento y política Normal sobre un total ya entero.
func TestEscenarioCompleto(t *testing.T) {
	a := item(50, 2, 30, true)   // 100, ganancia 40
	b := item(100, 1, 80, true)  // 100, ganancia 20
	c := item(77, 1, 10, false)  // excluido
	items := []*billing.LineItem{a, b, c}

	tot := billing.Agregar(items)
	require.True(t, tot.TotalCobro.Equal(decimal.NewFromInt(200)), "cobro esperado 200, dio %s", tot.TotalCobro)
	require.True(t, tot.TotalGanancia.Equal(decimal.NewFromInt(60)), "ganancia esperada 60, dio %s", tot.TotalGanancia)

	fa, _ := a.PartePorciento.Float64()
	fb, _ := b.PartePorciento.Float64()
	assert.InDelta(t, 50.0, fa, 1e-9)
	assert.InDelta(t, 50.0, fb, 1e-9)

	conDescuento := billing.AplicarDescuento(tot.TotalCobro, decimal.Zero)
	pol := billing.PoliticaRedondeo{Value: "Normal"}
	redondeado, exedente := pol.Exedente(conDescuento)
	assert.True(t, redondeado.Equal(decimal.NewFromInt(200)))
	assert.True(t, exedente.IsZero())

	billing.RepartirExedente(items, exedente)
	assert.True(t, a.ExedenteRedondeo.IsZero())
	assert.True(t, b.ExedenteRedondeo.IsZero())
}
