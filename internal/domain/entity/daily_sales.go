package entity

// SaleLine cantidad vendida de un artículo en un día.
type SaleLine struct {
	Item     string
	Quantity int // no se valida el signo
}

// SalesSheet planilla de ventas de un día en el orden en que la entregó el operador.
// El orden importa: la validación reporta el primer artículo inválido.
type SalesSheet []SaleLine

// Normalize aplica semántica de diccionario: un artículo repetido conserva la posición
// de su primera aparición y la cantidad de la última.
func (s SalesSheet) Normalize() SalesSheet {
	out := make(SalesSheet, 0, len(s))
	pos := make(map[string]int, len(s))
	for _, l := range s {
		if i, ok := pos[l.Item]; ok {
			out[i].Quantity = l.Quantity
			continue
		}
		pos[l.Item] = len(out)
		out = append(out, l)
	}
	return out
}

// DailySalesRecord registro inmutable de las ventas de un día.
// DayIndex coincide con la posición del registro en el historial del puesto (base 0).
type DailySalesRecord struct {
	dayIndex   int
	lines      SalesSheet
	quantities map[string]int
}

// NewDailySalesRecord construye el registro del día indicado a partir de la planilla.
// La planilla se copia; cambios posteriores del caller no afectan el registro.
func NewDailySalesRecord(dayIndex int, sheet SalesSheet) DailySalesRecord {
	lines := sheet.Normalize()
	q := make(map[string]int, len(lines))
	for _, l := range lines {
		q[l.Item] = l.Quantity
	}
	return DailySalesRecord{dayIndex: dayIndex, lines: lines, quantities: q}
}

// DayIndex número de día (base 0).
func (r DailySalesRecord) DayIndex() int { return r.dayIndex }

// Quantity cantidad vendida del artículo ese día; 0 si no aparece en la planilla.
func (r DailySalesRecord) Quantity(item string) int {
	return r.quantities[item]
}

// Has indica si el artículo aparece en la planilla del día.
func (r DailySalesRecord) Has(item string) bool {
	_, ok := r.quantities[item]
	return ok
}

// Lines devuelve una copia de las líneas del día en su orden original.
func (r DailySalesRecord) Lines() SalesSheet {
	out := make(SalesSheet, len(r.lines))
	copy(out, r.lines)
	return out
}

// TotalUnits suma de unidades vendidas en el día (todos los artículos).
func (r DailySalesRecord) TotalUnits() int {
	total := 0
	for _, l := range r.lines {
		total += l.Quantity
	}
	return total
}
