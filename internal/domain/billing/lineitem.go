// Package billing implementa el núcleo de cálculo de cobros de la clínica:
// agregación de renglones de venta, descuento del paciente, política de
// redondeo y reparto proporcional del exedente de redondeo entre renglones.
//
// El paquete es puro: no hace I/O, no lee configuración ambiental y todo el
// dinero se maneja con shopspring/decimal. La configuración (política de
// redondeo, bandera de redondeo-desde-ganancia) entra explícitamente por
// parámetro en la construcción.
package billing

import "github.com/shopspring/decimal"

// Categoria identifica la lista de origen de un renglón de venta.
type Categoria string

// Categorías de comerciables vendibles en una consulta.
const (
	CategoriaMedicamentos    Categoria = "medicamentos"
	CategoriaServicios       Categoria = "servicios"
	CategoriaProductos       Categoria = "productos"
	CategoriaVacunas         Categoria = "vacunas"
	CategoriaAntiparasitarios Categoria = "antiparasitarios"
)

// OrdenCategorias es el orden fijo en que el pipeline de envío valida y crea
// las ventas de cada categoría. Cambiarlo rompe el contrato de secuencia.
var OrdenCategorias = []Categoria{
	CategoriaMedicamentos,
	CategoriaServicios,
	CategoriaProductos,
	CategoriaVacunas,
	CategoriaAntiparasitarios,
}

// LineItem es un renglón candidato a venta dentro de una lista de categoría.
//
// Seleccionado indica si el operador ya eligió un comerciable; un renglón sin
// selección no aporta a ningún total ni recibe parte porcentual.
// CostoOriginal es el costo canónico del comerciable, normalizado una sola
// vez al entrar al sistema (ver NormalizarCosto); el cálculo nunca hace
// cadenas de fallback.
type LineItem struct {
	ID            string
	Categoria     Categoria
	ComerciableID string
	Seleccionado  bool
	PrecioUnitario decimal.Decimal // precio cobrado por unidad (editable)
	Cantidad       decimal.Decimal
	CostoOriginal  decimal.Decimal // costo de catálogo, base de la ganancia
	Nota           string

	// Derivados, recalculados en cada pasada de agregación.
	PartePorciento    decimal.Decimal // contribución % al total de cobro
	ExedenteRedondeo  decimal.Decimal // parte del exedente asignada al renglón
}

// ParseDecimal convierte una entrada libre (p.ej. "12.5" tecleada en la app)
// a decimal. Una entrada vacía o no numérica degrada a cero: el fallo de
// parseo no es una condición de error, el renglón simplemente no aporta.
func ParseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizarCosto resuelve el costo canónico de un comerciable al momento de
// la selección, con la prioridad: precio original explícito → costo propio
// del producto → precio del comerciable anidado → cero. Después de este punto
// ningún código de cálculo vuelve a mirar los campos crudos.
func NormalizarCosto(precioOriginal, costoProducto, precioComerciable decimal.Decimal) decimal.Decimal {
	if precioOriginal.IsPositive() {
		return precioOriginal
	}
	if costoProducto.IsPositive() {
		return costoProducto
	}
	if precioComerciable.IsPositive() {
		return precioComerciable
	}
	return decimal.Zero
}

// CantidadEfectiva devuelve la cantidad del renglón, sustituyendo 1 cuando es
// cero o negativa, para el recálculo de precio por renglón bajo ajuste manual
// (guarda contra división por cero).
func (it *LineItem) CantidadEfectiva() decimal.Decimal {
	if !it.Cantidad.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return it.Cantidad
}
