package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
)

func TestRedondear_Normal(t *testing.T) {
	pol := billing.PoliticaRedondeo{Value: "Normal"}
	assert.True(t, pol.Redondear(decimal.NewFromFloat(137.4)).Equal(decimal.NewFromInt(137)),
		"Normal redondea al entero más cercano")
	assert.True(t, pol.Redondear(decimal.NewFromFloat(137.5)).Equal(decimal.NewFromInt(138)))
	assert.True(t, pol.Redondear(decimal.NewFromInt(140)).Equal(decimal.NewFromInt(140)),
		"un entero no se toca")
}

func TestRedondear_ExcesoSubeAlMultiplo(t *testing.T) {
	// La política viene de configuración escrita a mano; "Exeso" con falta de
	// ortografía también debe funcionar porque solo importa el entero embebido.
	pol := billing.PoliticaRedondeo{Value: "Exeso 5"}
	redondeado, exedente := pol.Exedente(decimal.NewFromInt(137))
	assert.True(t, redondeado.Equal(decimal.NewFromInt(140)), "137 con múltiplo 5 sube a 140, dio %s", redondeado)
	assert.True(t, exedente.Equal(decimal.NewFromInt(3)), "exedente esperado 3, dio %s", exedente)
}

func TestExedente_MultiploExactoNoGeneraExedente(t *testing.T) {
	pol := billing.PoliticaRedondeo{Value: "Exceso 5"}
	redondeado, exedente := pol.Exedente(decimal.NewFromInt(140))
	assert.True(t, redondeado.Equal(decimal.NewFromInt(140)))
	assert.True(t, exedente.IsZero(), "un total ya múltiplo no genera exedente")
}

func TestExedente_NuncaNegativo(t *testing.T) {
	// Normal sobre 137.4 redondea hacia abajo a 137; la diferencia negativa
	// se recorta a cero en lugar de reportarse.
	pol := billing.PoliticaRedondeo{Value: "Normal"}
	redondeado, exedente := pol.Exedente(decimal.NewFromFloat(137.4))
	assert.True(t, redondeado.Equal(decimal.NewFromInt(137)))
	assert.True(t, exedente.IsZero(), "el exedente nunca debe ser negativo")
}

func TestMultiplo_PoliticasIlegibles(t *testing.T) {
	casos := []string{"", "Normal", "normal", "Exceso", "Exceso 0", "Exceso -3"}
	for _, v := range casos {
		pol := billing.PoliticaRedondeo{Value: v}
		_, ok := pol.Multiplo()
		assert.False(t, ok, "la política %q no debe producir múltiplo", v)
	}
}

func TestRedondear_PoliticaAusenteEquivaleANormal(t *testing.T) {
	pol := billing.PoliticaRedondeo{}
	assert.True(t, pol.Redondear(decimal.NewFromFloat(99.6)).Equal(decimal.NewFromInt(100)))
}

func TestRedondear_ExcesoConDecimales(t *testing.T) {
	// Primero se redondea al entero base (137.6 → 138) y de ahí al múltiplo.
	pol := billing.PoliticaRedondeo{Value: "Exceso 10"}
	redondeado, exedente := pol.Exedente(decimal.NewFromFloat(137.6))
	assert.True(t, redondeado.Equal(decimal.NewFromInt(140)), "esperado 140, dio %s", redondeado)
	f, _ := exedente.Float64()
	assert.InDelta(t, 2.4, f, 1e-9, "exedente = 140 − 137.6")
}
