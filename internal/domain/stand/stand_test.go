package stand_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newTestStand construye el puesto de prueba con limonada (0.5/1.5) y galleta (0.2/1.0).
func newTestStand() *stand.Stand {
	s := stand.New("Test Stand")
	s.AddMenuItem(entity.NewMenuItem("lemonade", dec("0.5"), dec("1.5")))
	s.AddMenuItem(entity.NewMenuItem("cookie", dec("0.2"), dec("1.0")))
	return s
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("esperado %s, obtenido %s", want, got.String()), msgAndArgs...)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMenuItem_AgregaArticulos(t *testing.T) {
	s := newTestStand()

	_, ok := s.MenuItem("lemonade")
	assert.True(t, ok, "lemonade debe estar en el menú")
	_, ok = s.MenuItem("cookie")
	assert.True(t, ok, "cookie debe estar en el menú")

	names := make([]string, 0)
	for _, item := range s.Menu() {
		names = append(names, item.Name())
	}
	assert.Equal(t, []string{"lemonade", "cookie"}, names, "el menú conserva el orden de alta")
}

func TestAddMenuItem_DuplicadoGanaUltimaEscritura(t *testing.T) {
	s := newTestStand()
	s.AddMenuItem(entity.NewMenuItem("lemonade", dec("0.7"), dec("2.0")))

	item, ok := s.MenuItem("lemonade")
	require.True(t, ok)
	assertDecimal(t, "0.7", item.Cost())
	assertDecimal(t, "2.0", item.Price())
	assert.Len(t, s.Menu(), 2, "un nombre repetido no agrega un artículo nuevo")
	assert.Equal(t, "lemonade", s.Menu()[0].Name(), "el artículo reemplazado conserva su posición")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestEnterSalesForToday_VariosArticulos(t *testing.T) {
	s := newTestStand()

	rec, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}, {Item: "cookie", Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.DayIndex(), "el primer día registrado es el 0")
	assert.Equal(t, 1, s.CurrentDay())

	q, err := s.SalesOfMenuItemForDay(0, "lemonade")
	require.NoError(t, err)
	assert.Equal(t, 5, q)
	q, err = s.SalesOfMenuItemForDay(0, "cookie")
	require.NoError(t, err)
	assert.Equal(t, 3, q)
}

func TestEnterSalesForToday_ArticuloInvalidoEsTodoONada(t *testing.T) {
	s := newTestStand()

	_, err := s.EnterSalesForToday(entity.SalesSheet{
		{Item: "lemonade", Quantity: 5},
		{Item: "cookie", Quantity: 2},
		{Item: "corndog", Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSalesItem), "el error debe envolver ErrInvalidSalesItem")

	var invalid *domain.InvalidSalesItemError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "corndog", invalid.Item)

	assert.Empty(t, s.SalesRecords(), "no se debe registrar ningún día")
	assert.Equal(t, 0, s.CurrentDay(), "el contador de días no avanza")
	assertDecimal(t, "0", mustProfit(t, s, "lemonade"))
}

func TestEnterSalesForToday_ReportaPrimerArticuloInvalido(t *testing.T) {
	s := newTestStand()

	_, err := s.EnterSalesForToday(entity.SalesSheet{
		{Item: "nori", Quantity: 1},
		{Item: "lemonade", Quantity: 5},
		{Item: "corndog", Quantity: 1},
	})
	var invalid *domain.InvalidSalesItemError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "nori", invalid.Item, "se reporta el primer artículo inválido según el orden de la planilla")
}

func TestEnterSalesForToday_DiasSecuenciales(t *testing.T) {
	s := newTestStand()
	sheets := []entity.SalesSheet{
		{{Item: "lemonade", Quantity: 1}},
		{{Item: "cookie", Quantity: 2}},
		{{Item: "corndog", Quantity: 9}}, // falla, no consume número de día
		{{Item: "lemonade", Quantity: 3}, {Item: "cookie", Quantity: 4}},
	}

	successful := 0
	for _, sheet := range sheets {
		rec, err := s.EnterSalesForToday(sheet)
		if err != nil {
			continue
		}
		assert.Equal(t, successful, rec.DayIndex(), "el N-ésimo registro exitoso queda en el día N")
		successful++
	}

	records := s.SalesRecords()
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i, rec.DayIndex(), "el índice del día coincide con su posición")
	}
	q, err := s.SalesOfMenuItemForDay(2, "cookie")
	require.NoError(t, err)
	assert.Equal(t, 4, q)
}

func TestEnterSalesForToday_PlanillaVaciaRegistraDia(t *testing.T) {
	s := newTestStand()

	rec, err := s.EnterSalesForToday(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.DayIndex())
	assert.Equal(t, 1, s.CurrentDay())
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesOfMenuItemForDay_ArticuloAusenteEsCero(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}})
	require.NoError(t, err)

	q, err := s.SalesOfMenuItemForDay(0, "nonexistent_item")
	require.NoError(t, err, "un artículo ausente no es un error")
	assert.Equal(t, 0, q)

	q, err = s.SalesOfMenuItemForDay(0, "cookie")
	require.NoError(t, err)
	assert.Equal(t, 0, q)
}

func TestSalesOfMenuItemForDay_DiaFueraDeRango(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}})
	require.NoError(t, err)

	for _, day := range []int{1, 7, -1} {
		_, err := s.SalesOfMenuItemForDay(day, "lemonade")
		require.Error(t, err, "día %d", day)
		assert.True(t, errors.Is(err, domain.ErrIndexOutOfRange))

		var oor *domain.IndexOutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, day, oor.Day)
		assert.Equal(t, 1, oor.Days)
	}
}

func TestTotalSalesForMenuItem_SumaTodosLosDias(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}, {Item: "cookie", Quantity: 3}})
	require.NoError(t, err)
	_, err = s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 2}})
	require.NoError(t, err)

	assert.Equal(t, 7, s.TotalSalesForMenuItem("lemonade"))
	assert.Equal(t, 3, s.TotalSalesForMenuItem("cookie"))

	for _, name := range []string{"lemonade", "cookie", "corndog"} {
		sum := 0
		for day := 0; day < s.CurrentDay(); day++ {
			q, err := s.SalesOfMenuItemForDay(day, name)
			require.NoError(t, err)
			sum += q
		}
		assert.Equal(t, sum, s.TotalSalesForMenuItem(name), "total de %s = suma de los días", name)
	}
}

func TestTotalSalesForMenuItem_ArticuloDesconocidoEsCero(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}})
	require.NoError(t, err)

	assert.Equal(t, 0, s.TotalSalesForMenuItem("corndog"), "no es error aunque no esté en el menú")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ganancias
// ──────────────────────────────────────────────────────────────────────────────

func mustProfit(t *testing.T, s *stand.Stand, item string) decimal.Decimal {
	t.Helper()
	p, err := s.TotalProfitForMenuItem(item)
	require.NoError(t, err)
	return p
}

func TestTotalProfitForMenuItem(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}, {Item: "cookie", Quantity: 2}})
	require.NoError(t, err)

	assertDecimal(t, "5", mustProfit(t, s, "lemonade"), "5 * (1.5 - 0.5)")
	assertDecimal(t, "1.6", mustProfit(t, s, "cookie"), "2 * (1.0 - 0.2)")

	for _, item := range s.Menu() {
		want := decimal.NewFromInt(int64(s.TotalSalesForMenuItem(item.Name()))).Mul(item.Price().Sub(item.Cost()))
		assertDecimal(t, want.String(), mustProfit(t, s, item.Name()))
	}
}

func TestTotalProfitForMenuItem_SinVentasEsCero(t *testing.T) {
	s := newTestStand()
	s.AddMenuItem(entity.NewMenuItem("neversold", dec("1"), dec("3")))

	assertDecimal(t, "0", mustProfit(t, s, "neversold"))
}

func TestTotalProfitForMenuItem_ArticuloFueraDelMenu(t *testing.T) {
	s := newTestStand()

	_, err := s.TotalProfitForMenuItem("corndog")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))

	var notFound *domain.ItemNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "corndog", notFound.Item)
}

func TestTotalProfitForMenuItem_PrecioMenorAlCosto(t *testing.T) {
	s := newTestStand()
	s.AddMenuItem(entity.NewMenuItem("nori", dec("0.9"), dec("0.4")))
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "nori", Quantity: 4}})
	require.NoError(t, err)

	assertDecimal(t, "-2", mustProfit(t, s, "nori"), "la ganancia puede ser negativa")
	assertDecimal(t, "-2", s.TotalProfitForStand())
}

func TestTotalProfitForStand_SumaDelMenu(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}, {Item: "cookie", Quantity: 2}})
	require.NoError(t, err)
	_, err = s.EnterSalesForToday(entity.SalesSheet{{Item: "cookie", Quantity: 10}})
	require.NoError(t, err)

	want := decimal.Zero
	for _, item := range s.Menu() {
		want = want.Add(mustProfit(t, s, item.Name()))
	}
	assertDecimal(t, want.String(), s.TotalProfitForStand())
	assertDecimal(t, "14.6", s.TotalProfitForStand(), "5 + 12 * 0.8")
}

func TestTotalProfitForStand_SinVentas(t *testing.T) {
	assertDecimal(t, "0", newTestStand().TotalProfitForStand())
	assertDecimal(t, "0", stand.New("vacío").TotalProfitForStand())
}

// ──────────────────────────────────────────────────────────────────────────────
// Clone y Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestClone_EsIndependiente(t *testing.T) {
	s := newTestStand()
	_, err := s.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}})
	require.NoError(t, err)

	c := s.Clone()
	c.AddMenuItem(entity.NewMenuItem("nori", dec("0.6"), dec("0.8")))
	_, err = c.EnterSalesForToday(entity.SalesSheet{{Item: "nori", Quantity: 1}})
	require.NoError(t, err)

	assert.Equal(t, 1, s.CurrentDay(), "el original no cambia")
	assert.Len(t, s.Menu(), 2)
	assert.Equal(t, 2, c.CurrentDay())
	assert.Len(t, c.Menu(), 3)
}

func TestRestore_ReconstruyePuesto(t *testing.T) {
	src := newTestStand()
	_, err := src.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}})
	require.NoError(t, err)
	_, err = src.EnterSalesForToday(entity.SalesSheet{{Item: "cookie", Quantity: 2}})
	require.NoError(t, err)

	restored, err := stand.Restore(src.Name(), src.Menu(), src.SalesRecords())
	require.NoError(t, err)
	assert.Equal(t, 2, restored.CurrentDay())
	assertDecimal(t, src.TotalProfitForStand().String(), restored.TotalProfitForStand())

	rec, err := restored.EnterSalesForToday(entity.SalesSheet{{Item: "cookie", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.DayIndex(), "el puesto restaurado continúa la numeración")
}

func TestRestore_RechazaHistorialInconsistente(t *testing.T) {
	menu := []entity.MenuItem{entity.NewMenuItem("lemonade", dec("0.5"), dec("1.5"))}

	_, err := stand.Restore("x", menu, []entity.DailySalesRecord{
		entity.NewDailySalesRecord(1, entity.SalesSheet{{Item: "lemonade", Quantity: 1}}),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "los días deben empezar en 0")

	_, err = stand.Restore("x", menu, []entity.DailySalesRecord{
		entity.NewDailySalesRecord(0, entity.SalesSheet{{Item: "corndog", Quantity: 1}}),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidSalesItem), "todo artículo vendido debe estar en el menú")
}
