package billing

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// PoliticaRedondeo describe cómo se redondea el total con descuento.
// Value viene de la configuración de la clínica: "Normal" redondea al entero
// más cercano; un texto que contenga un entero N (p.ej. "Exceso 5", "Exeso 5")
// redondea hacia ARRIBA al siguiente múltiplo de N. Ausente o ilegible
// equivale a "Normal".
type PoliticaRedondeo struct {
	Value                 string
	RedondeoDesdeGanancia bool // true: el exedente sale de la ganancia y no se suma a la mostrada
}

// Multiplo devuelve el múltiplo N embebido en la política y si existe.
// "Normal" (subcadena, sin distinción de mayúsculas) nunca tiene múltiplo.
// N ≤ 0 se trata como inexistente.
func (p PoliticaRedondeo) Multiplo() (int64, bool) {
	if strings.Contains(strings.ToLower(p.Value), "normal") {
		return 0, false
	}
	n, ok := primerEntero(p.Value)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// Redondear aplica la política al total con descuento.
//
// Primero se redondea al entero más cercano; si la política trae un múltiplo
// N y el entero base no es múltiplo exacto, se sube al siguiente múltiplo.
// Un valor ya múltiplo (o ya entero bajo "Normal") no se toca.
func (p PoliticaRedondeo) Redondear(totalConDescuento decimal.Decimal) decimal.Decimal {
	base := totalConDescuento.Round(0)
	n, ok := p.Multiplo()
	if !ok {
		return base
	}
	mult := decimal.NewFromInt(n)
	resto := base.Mod(mult)
	if resto.IsZero() {
		return base
	}
	return base.Add(mult.Sub(resto))
}

// Exedente calcula el exedente de redondeo: la diferencia no negativa entre
// el total redondeado y el total con descuento. Si la política redujera el
// valor (p.ej. "Normal" sobre 137.4 → 137), el exedente se recorta a cero en
// lugar de reportarse negativo.
func (p PoliticaRedondeo) Exedente(totalConDescuento decimal.Decimal) (redondeado, exedente decimal.Decimal) {
	redondeado = p.Redondear(totalConDescuento)
	exedente = redondeado.Sub(totalConDescuento)
	if exedente.IsNegative() {
		exedente = decimal.Zero
	}
	return redondeado, exedente
}

// primerEntero extrae el primer grupo de dígitos de s.
func primerEntero(s string) (int64, bool) {
	inicio := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if inicio < 0 {
				inicio = i
			}
			continue
		}
		if inicio >= 0 {
			n, err := strconv.ParseInt(s[inicio:i], 10, 64)
			return n, err == nil
		}
	}
	if inicio >= 0 {
		n, err := strconv.ParseInt(s[inicio:], 10, 64)
		return n, err == nil
	}
	return 0, false
}
