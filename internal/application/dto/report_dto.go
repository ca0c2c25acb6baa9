package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitReportDTO reporte de ganancias del puesto (JSON, PDF y XML se generan desde aquí).
type ProfitReportDTO struct {
	Stand       string          `json:"stand"`
	Days        int             `json:"days"` // días registrados
	GeneratedAt time.Time       `json:"generated_at"`
	Items       []ItemReportDTO `json:"items"`
	DailyTotals []DayReportDTO  `json:"daily_totals"`

	TotalUnits       int             `json:"total_units"`
	TotalProfit      decimal.Decimal `json:"total_profit"` // = ganancia total del puesto
	TotalProfitLabel string          `json:"total_profit_label"`
}

// ItemReportDTO fila del reporte por artículo del menú.
type ItemReportDTO struct {
	Item          string          `json:"item"`
	Cost          decimal.Decimal `json:"cost"`
	Price         decimal.Decimal `json:"price"`
	ProfitPerUnit decimal.Decimal `json:"profit_per_unit"`
	UnitsSold     int             `json:"units_sold"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitLabel   string          `json:"profit_label"`
}

// DayReportDTO totales de un día (solo artículos del menú).
type DayReportDTO struct {
	Day         int             `json:"day"`
	Units       int             `json:"units"`
	Profit      decimal.Decimal `json:"profit"`
	ProfitLabel string          `json:"profit_label"`
}
