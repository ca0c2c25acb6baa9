package entity

import "github.com/shopspring/decimal"

// MenuItem representa un artículo del menú del puesto: nombre, costo mayorista y precio de venta.
// Es inmutable una vez construido; un precio menor al costo es válido (ganancia negativa).
type MenuItem struct {
	name  string
	cost  decimal.Decimal // costo mayorista por unidad
	price decimal.Decimal // precio de venta por unidad
}

// NewMenuItem construye el artículo.
func NewMenuItem(name string, cost, price decimal.Decimal) MenuItem {
	return MenuItem{name: name, cost: cost, price: price}
}

func (m MenuItem) Name() string           { return m.name }
func (m MenuItem) Cost() decimal.Decimal  { return m.cost }
func (m MenuItem) Price() decimal.Decimal { return m.price }

// ProfitPerUnit devuelve precio - costo.
func (m MenuItem) ProfitPerUnit() decimal.Decimal {
	return m.price.Sub(m.cost)
}
