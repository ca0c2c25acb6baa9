package stand

import (
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemProfit implementa la ganancia de un artículo (servicio de dominio).
// Ganancia = Unidades * (Precio - Costo)
func ItemProfit(units int, item entity.MenuItem) decimal.Decimal {
	return decimal.NewFromInt(int64(units)).Mul(item.ProfitPerUnit())
}

// DayProfit ganancia de un día sumando solo los artículos presentes en el menú.
func DayProfit(rec entity.DailySalesRecord, menu []entity.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range menu {
		total = total.Add(ItemProfit(rec.Quantity(item.Name()), item))
	}
	return total
}
