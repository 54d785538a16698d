package billing

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// Totales es el resultado de una pasada de agregación sobre los renglones.
// Nunca se persiste: se deriva del estado actual de las listas.
type Totales struct {
	TotalCobro    decimal.Decimal // sum(precio × cantidad) de renglones seleccionados
	TotalGanancia decimal.Decimal // sum((precio − costo) × cantidad), piso en cero
}

// Agregar recorre los renglones (de todas las categorías combinadas) y produce
// los totales. Los renglones sin selección aportan cero. La ganancia nunca se
// reporta negativa: si el cobro queda por debajo del costo se informa cero.
//
// Además asigna a cada renglón seleccionado su parte porcentual del total de
// cobro; cuando el total es cero no se asigna parte alguna (quedan en cero).
func Agregar(items []*LineItem) Totales {
	var cobro, ganancia decimal.Decimal
	for _, it := range items {
		if it == nil || !it.Seleccionado {
			continue
		}
		linea := it.PrecioUnitario.Mul(it.Cantidad)
		costo := it.CostoOriginal.Mul(it.Cantidad)
		cobro = cobro.Add(linea)
		ganancia = ganancia.Add(linea.Sub(costo))
	}
	if ganancia.IsNegative() {
		ganancia = decimal.Zero
	}

	// Partes porcentuales: solo con total positivo (evita división por cero).
	for _, it := range items {
		if it == nil || !it.Seleccionado {
			continue
		}
		if cobro.IsPositive() {
			it.PartePorciento = it.PrecioUnitario.Mul(it.Cantidad).Div(cobro).Mul(cien)
		} else {
			it.PartePorciento = decimal.Zero
		}
	}

	return Totales{TotalCobro: cobro, TotalGanancia: ganancia}
}

// AplicarDescuento aplica el descuento del paciente (0–100) al total de cobro.
// Un porciento fuera de rango o ausente se trata como cero.
func AplicarDescuento(totalCobro, descuentoPorciento decimal.Decimal) decimal.Decimal {
	if descuentoPorciento.IsNegative() || descuentoPorciento.GreaterThan(cien) {
		descuentoPorciento = decimal.Zero
	}
	return totalCobro.Sub(totalCobro.Mul(descuentoPorciento).Div(cien))
}

// RepartirExedente distribuye el exedente de redondeo entre los renglones
// seleccionados en proporción a su parte porcentual. Se invoca solo al crear
// una consulta nueva; en edición cada renglón conserva el exedente persistido.
func RepartirExedente(items []*LineItem, exedente decimal.Decimal) {
	for _, it := range items {
		if it == nil || !it.Seleccionado {
			continue
		}
		it.ExedenteRedondeo = it.PartePorciento.Div(cien).Mul(exedente)
	}
}

// GananciaMostrada devuelve la ganancia a presentar al operador. Cuando el
// exedente de redondeo NO sale de la ganancia (redondeoDesdeGanancia=false),
// el exedente agregado se suma encima de la ganancia calculada; cuando sí,
// el exedente ya está contabilizado en otro lado y no se suma.
func GananciaMostrada(ganancia, exedente decimal.Decimal, redondeoDesdeGanancia bool) decimal.Decimal {
	if redondeoDesdeGanancia {
		return ganancia
	}
	return ganancia.Add(exedente)
}
