package billing

import "github.com/shopspring/decimal"

// SnapshotOriginal es la foto versionada de los últimos totales CALCULADOS
// (sin ajuste manual). La versión incrementa cada vez que los totales
// calculados cambian y sirve como guarda optimista contra ajustes obsoletos.
type SnapshotOriginal struct {
	TotalCobro        decimal.Decimal
	TotalConDescuento decimal.Decimal
	Version           int
}

// Actualizar registra nuevos totales calculados. Si no cambiaron respecto a
// la foto actual la versión se conserva; si cambiaron, incrementa.
func (s *SnapshotOriginal) Actualizar(totalCobro, totalConDescuento decimal.Decimal) {
	if s.TotalCobro.Equal(totalCobro) && s.TotalConDescuento.Equal(totalConDescuento) {
		return
	}
	s.TotalCobro = totalCobro
	s.TotalConDescuento = totalConDescuento
	s.Version++
}

// AjusteManual es el total sobrescrito por el operador: un delta aditivo
// sobre el total original ("+10", "−20"). Activo=false significa que nunca
// se guardó un ajuste.
type AjusteManual struct {
	TotalCobro        decimal.Decimal
	TotalConDescuento decimal.Decimal
	Version           int
	Activo            bool
}

// AplicarDelta construye el ajuste a partir de la foto original vigente:
// nuevo total = original + delta, con el descuento del paciente reaplicado.
// El ajuste captura la versión de la foto sobre la que se calculó.
func AplicarDelta(snap SnapshotOriginal, delta, descuentoPorciento decimal.Decimal) AjusteManual {
	nuevoTotal := snap.TotalCobro.Add(delta)
	return AjusteManual{
		TotalCobro:        nuevoTotal,
		TotalConDescuento: AplicarDescuento(nuevoTotal, descuentoPorciento),
		Version:           snap.Version,
		Activo:            true,
	}
}

// Restablecer devuelve el ajuste igualado a la foto original actual (delta
// cero). El ajuste no se anula: queda activo con los valores originales.
func Restablecer(snap SnapshotOriginal) AjusteManual {
	return AjusteManual{
		TotalCobro:        snap.TotalCobro,
		TotalConDescuento: snap.TotalConDescuento,
		Version:           snap.Version,
		Activo:            true,
	}
}

// ResolverAjuste reconstruye el ajuste manual enviado por el operador a partir
// del delta y del total original que capturó al teclearlo. El delta solo se
// honra si ese total original coincide con el total recién calculado; si no,
// el ajuste quedó obsoleto y se devuelve con una versión que nunca coincide,
// para que la guarda de Vigente lo descarte en silencio.
func ResolverAjuste(snap SnapshotOriginal, delta, totalOriginal string, descuentoPorciento decimal.Decimal) AjusteManual {
	if delta == "" {
		return AjusteManual{}
	}
	if !ParseDecimal(totalOriginal).Equal(snap.TotalCobro) {
		return AjusteManual{Activo: true, Version: snap.Version - 1}
	}
	return AplicarDelta(snap, ParseDecimal(delta), descuentoPorciento)
}

// Vigente indica si el ajuste debe honrarse: solo mientras su versión
// capturada coincida con la versión de la foto actual. Un cambio en los
// totales calculados lo invalida silenciosamente y la UI vuelve a los
// valores calculados.
func (a AjusteManual) Vigente(snap SnapshotOriginal) bool {
	return a.Activo && a.Version == snap.Version
}

// PrecioConAjuste recalcula el precio cobrado de un renglón cuando hay ajuste
// manual vigente: la parte porcentual del renglón aplicada al total ajustado,
// dividida por la cantidad (con sustituto 1 si la cantidad no es positiva).
// Sin ajuste vigente, el precio enviado es el PrecioUnitario ya editado.
func PrecioConAjuste(it *LineItem, ajuste AjusteManual, snap SnapshotOriginal) decimal.Decimal {
	if !ajuste.Vigente(snap) {
		return it.PrecioUnitario
	}
	return it.PartePorciento.Mul(ajuste.TotalCobro).Div(cien).Div(it.CantidadEfectiva())
}
