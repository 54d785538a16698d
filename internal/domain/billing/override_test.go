package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
)

func TestSnapshot_VersionIncrementaSoloAlCambiar(t *testing.T) {
	var snap billing.SnapshotOriginal
	snap.Actualizar(decimal.NewFromInt(200), decimal.NewFromInt(180))
	require.Equal(t, 1, snap.Version)

	// Mismos totales: la versión se conserva.
	snap.Actualizar(decimal.NewFromInt(200), decimal.NewFromInt(180))
	assert.Equal(t, 1, snap.Version, "totales sin cambio no deben incrementar la versión")

	snap.Actualizar(decimal.NewFromInt(250), decimal.NewFromInt(225))
	assert.Equal(t, 2, snap.Version)
}

func TestAplicarDelta(t *testing.T) {
	var snap billing.SnapshotOriginal
	snap.Actualizar(decimal.NewFromInt(200), decimal.NewFromInt(180))

	ajuste := billing.AplicarDelta(snap, decimal.NewFromInt(10), decimal.NewFromInt(10))
	assert.True(t, ajuste.TotalCobro.Equal(decimal.NewFromInt(210)), "nuevo total = original + delta")
	assert.True(t, ajuste.TotalConDescuento.Equal(decimal.NewFromInt(189)),
		"el descuento del paciente se reaplica sobre el total ajustado")
	assert.True(t, ajuste.Vigente(snap), "el ajuste recién guardado debe estar vigente")
}

func TestAjuste_SeInvalidaConVersionObsoleta(t *testing.T) {
	var snap billing.SnapshotOriginal
	snap.Actualizar(decimal.NewFromInt(200), decimal.NewFromInt(200))

	ajuste := billing.AplicarDelta(snap, decimal.NewFromInt(20), decimal.Zero)
	require.True(t, ajuste.Vigente(snap))

	// Los totales calculados cambian por debajo: el ajuste queda obsoleto
	// y la UI vuelve silenciosamente a los valores calculados.
	snap.Actualizar(decimal.NewFromInt(300), decimal.NewFromInt(300))
	assert.False(t, ajuste.Vigente(snap), "un ajuste con versión obsoleta no debe honrarse")
}

func TestRestablecer_IgualaAlOriginalSinAnular(t *testing.T) {
	var snap billing.SnapshotOriginal
	snap.Actualizar(decimal.NewFromInt(200), decimal.NewFromInt(180))

	ajuste := billing.Restablecer(snap)
	assert.True(t, ajuste.Activo, "restablecer no anula el ajuste, lo iguala al original")
	assert.True(t, ajuste.TotalCobro.Equal(snap.TotalCobro))
	assert.True(t, ajuste.TotalConDescuento.Equal(snap.TotalConDescuento))
	assert.True(t, ajuste.Vigente(snap))
}

func TestPrecioConAjuste(t *testing.T) {
	a := item(50, 2, 30, true)  // 100 → 50%
	b := item(100, 1, 80, true) // 100 → 50%
	items := []*billing.LineItem{a, b}
	tot := billing.Agregar(items)

	var snap billing.SnapshotOriginal
	snap.Actualizar(tot.TotalCobro, tot.TotalCobro)

	// Sin ajuste vigente: se envía el precio ya editado.
	sinAjuste := billing.AjusteManual{}
	assert.True(t, billing.PrecioConAjuste(a, sinAjuste, snap).Equal(a.PrecioUnitario))

	// Con ajuste de +20 (total 220): cada renglón al 50% cobra 110, entre su cantidad.
	ajuste := billing.AplicarDelta(snap, decimal.NewFromInt(20), decimal.Zero)
	fa, _ := billing.PrecioConAjuste(a, ajuste, snap).Float64()
	fb, _ := billing.PrecioConAjuste(b, ajuste, snap).Float64()
	assert.InDelta(t, 55.0, fa, 1e-9, "50% de 220 entre cantidad 2")
	assert.InDelta(t, 110.0, fb, 1e-9, "50% de 220 entre cantidad 1")
}

func TestPrecioConAjuste_CantidadCeroUsaSustituto(t *testing.T) {
	it := item(50, 0, 0, true)
	it.PartePorciento = decimal.NewFromInt(100)

	var snap billing.SnapshotOriginal
	snap.Actualizar(decimal.NewFromInt(50), decimal.NewFromInt(50))
	ajuste := billing.AplicarDelta(snap, decimal.Zero, decimal.Zero)

	precio := billing.PrecioConAjuste(it, ajuste, snap)
	assert.True(t, precio.Equal(decimal.NewFromInt(50)),
		"con cantidad cero se divide entre 1 para no dividir por cero")
}
