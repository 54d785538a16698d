package consulta

// Progreso recibe el porciento de avance del pipeline de envío (0–100).
type Progreso func(porciento int)

// medidor garantiza que el progreso reportado nunca retroceda: el contrato
// del pipeline es un porcentaje monótonamente creciente aunque las bandas
// internas por categoría se recalculen.
type medidor struct {
	actual int
	fn     Progreso
}

func nuevoMedidor(fn Progreso) *medidor {
	return &medidor{fn: fn}
}

// Reportar publica p recortado a [actual, 100].
func (m *medidor) Reportar(p int) {
	if p < m.actual {
		p = m.actual
	}
	if p > 100 {
		p = 100
	}
	m.actual = p
	if m.fn != nil {
		m.fn(p)
	}
}

// Bandas de validación por categoría: la validación de medicamentos ocupa la
// banda ancha inicial (suele ser la lista larga) y las demás categorías
// avanzan en incrementos cortos hasta 95. La creación ocupa 96–100.
var finBandaValidacion = []int{90, 92, 93, 94, 95}

const (
	inicioCreacion = 96
	finCreacion    = 100
)

// bandaValidacion devuelve [inicio, fin] de la banda de la categoría i.
func bandaValidacion(i int) (inicio, fin int) {
	if i <= 0 {
		return 0, finBandaValidacion[0]
	}
	if i >= len(finBandaValidacion) {
		i = len(finBandaValidacion) - 1
	}
	return finBandaValidacion[i-1], finBandaValidacion[i]
}

// interpolar reparte [inicio, fin] entre total pasos y devuelve el porciento
// tras completar el paso hecho (1-based).
func interpolar(inicio, fin, hecho, total int) int {
	if total <= 0 {
		return fin
	}
	return inicio + (fin-inicio)*hecho/total
}
