// Package stand contiene el agregado Stand: menú del puesto, historial de ventas diarias
// y los cálculos de ventas y ganancia derivados de ambos.
package stand

import (
	"fmt"
	"sync"

	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Stand es la raíz del modelo. Es dueño exclusivo del menú (clave: nombre del artículo)
// y del historial de ventas (append-only, índice = número de día).
//
// Un único RWMutex protege menú, historial y contador de días; el incremento del contador
// y el append del registro ocurren bajo el mismo lock.
type Stand struct {
	mu sync.RWMutex

	name       string
	currentDay int
	menu       map[string]entity.MenuItem
	menuOrder  []string // orden de alta de los artículos
	sales      []entity.DailySalesRecord
}

// New crea un puesto vacío.
func New(name string) *Stand {
	return &Stand{
		name: name,
		menu: make(map[string]entity.MenuItem),
	}
}

// Restore reconstruye un puesto desde almacenamiento. Valida que los días sean secuenciales
// desde 0 y que todo artículo vendido exista en el menú.
func Restore(name string, menu []entity.MenuItem, records []entity.DailySalesRecord) (*Stand, error) {
	s := New(name)
	for _, item := range menu {
		s.addMenuItem(item)
	}
	for i, rec := range records {
		if rec.DayIndex() != i {
			return nil, fmt.Errorf("restaurar puesto %q: día %d en posición %d: %w", name, rec.DayIndex(), i, domain.ErrInvalidInput)
		}
		if err := s.validate(rec.Lines()); err != nil {
			return nil, fmt.Errorf("restaurar puesto %q: día %d: %w", name, i, err)
		}
		s.sales = append(s.sales, rec)
	}
	s.currentDay = len(s.sales)
	return s, nil
}

// Name nombre del puesto.
func (s *Stand) Name() string { return s.name }

// CurrentDay número del próximo día a registrar (= cantidad de días registrados).
func (s *Stand) CurrentDay() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDay
}

// AddMenuItem agrega el artículo al menú. Si ya existe uno con el mismo nombre se reemplaza
// (gana la última escritura) y conserva su posición en el menú.
func (s *Stand) AddMenuItem(item entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addMenuItem(item)
}

func (s *Stand) addMenuItem(item entity.MenuItem) {
	if _, ok := s.menu[item.Name()]; !ok {
		s.menuOrder = append(s.menuOrder, item.Name())
	}
	s.menu[item.Name()] = item
}

// MenuItem busca un artículo del menú por nombre.
func (s *Stand) MenuItem(name string) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.menu[name]
	return item, ok
}

// Menu devuelve los artículos en orden de alta.
func (s *Stand) Menu() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MenuItem, 0, len(s.menuOrder))
	for _, name := range s.menuOrder {
		out = append(out, s.menu[name])
	}
	return out
}

// SalesRecords devuelve una copia del historial de ventas.
func (s *Stand) SalesRecords() []entity.DailySalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.DailySalesRecord, len(s.sales))
	copy(out, s.sales)
	return out
}

// EnterSalesForToday registra las ventas del día actual y avanza el contador de días.
// Todo o nada: si algún artículo no está en el menú devuelve *domain.InvalidSalesItemError
// con el primer artículo inválido (orden de la planilla) y no modifica el puesto.
func (s *Stand) EnterSalesForToday(sheet entity.SalesSheet) (entity.DailySalesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(sheet); err != nil {
		return entity.DailySalesRecord{}, err
	}
	rec := entity.NewDailySalesRecord(s.currentDay, sheet)
	s.sales = append(s.sales, rec)
	s.currentDay++
	return rec, nil
}

func (s *Stand) validate(sheet entity.SalesSheet) error {
	for _, line := range sheet {
		if _, ok := s.menu[line.Item]; !ok {
			return &domain.InvalidSalesItemError{Item: line.Item}
		}
	}
	return nil
}

// SalesOfMenuItemForDay cantidad vendida del artículo en el día indicado.
// Un artículo ausente de la planilla de ese día cuenta como 0; un día inexistente
// devuelve *domain.IndexOutOfRangeError.
func (s *Stand) SalesOfMenuItemForDay(day int, itemName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if day < 0 || day >= len(s.sales) {
		return 0, &domain.IndexOutOfRangeError{Day: day, Days: len(s.sales)}
	}
	return s.sales[day].Quantity(itemName), nil
}

// TotalSalesForMenuItem suma las unidades vendidas del artículo en todo el historial.
// No exige que el artículo esté en el menú.
func (s *Stand) TotalSalesForMenuItem(itemName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalSales(itemName)
}

func (s *Stand) totalSales(itemName string) int {
	total := 0
	for _, rec := range s.sales {
		total += rec.Quantity(itemName)
	}
	return total
}

// TotalProfitForMenuItem ganancia histórica del artículo: unidades vendidas * (precio - costo).
// A diferencia de TotalSalesForMenuItem, el artículo debe existir en el menú;
// si no, devuelve *domain.ItemNotFoundError.
func (s *Stand) TotalProfitForMenuItem(itemName string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profitFor(itemName)
}

func (s *Stand) profitFor(itemName string) (decimal.Decimal, error) {
	item, ok := s.menu[itemName]
	if !ok {
		return decimal.Zero, &domain.ItemNotFoundError{Item: itemName}
	}
	return ItemProfit(s.totalSales(itemName), item), nil
}

// TotalProfitForStand suma la ganancia de todos los artículos del menú.
func (s *Stand) TotalProfitForStand() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, name := range s.menuOrder {
		// name sale del propio menú: profitFor no puede fallar aquí
		p, _ := s.profitFor(name)
		total = total.Add(p)
	}
	return total
}

// Clone copia profunda del puesto (los registros son inmutables y se comparten).
func (s *Stand) Clone() *Stand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := &Stand{
		name:       s.name,
		currentDay: s.currentDay,
		menu:       make(map[string]entity.MenuItem, len(s.menu)),
		menuOrder:  append([]string(nil), s.menuOrder...),
		sales:      append([]entity.DailySalesRecord(nil), s.sales...),
	}
	for k, v := range s.menu {
		c.menu[k] = v
	}
	return c
}
