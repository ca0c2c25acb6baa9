// Package pdf implementa la generación del reporte de ganancias del puesto en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del puesto   │  Días registrados + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MENÚ: Artículo | Costo | Precio | Gan/u | Uds | Gan.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA DÍAS: Día | Unidades | Ganancia                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades vendidas / GANANCIA TOTAL                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Stand-api/internal/application/analytics"
	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/pkg/money"
)

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 196, Green: 150, Blue: 0}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	format *money.Formatter
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(format *money.Formatter) *MarotoReportGenerator {
	return &MarotoReportGenerator{format: format}
}

// GenerateProfitReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProfitReportPDF(_ context.Context, report *dto.ProfitReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ganancias - "+report.Stand, true).
		WithAuthor(report.Stand, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Menú
	m.AddRows(sectionRow("GANANCIA POR ARTÍCULO"))
	m.AddRows(itemsHeaderRow())
	for _, r := range g.itemRows(report.Items) {
		m.AddRows(r)
	}

	// Días
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow("GANANCIA POR DÍA"))
	m.AddRows(daysHeaderRow())
	for _, r := range g.dayRows(report.DailyTotals) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del puesto (izq) y días registrados + fecha (der).
func headerRow(report *dto.ProfitReportDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Stand, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ganancias", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DÍAS REGISTRADOS: "+strconv.Itoa(report.Days), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func itemsHeaderRow() core.Row {
	return row.New(7).Add(
		headerCol("Artículo", 3, align.Left),
		headerCol("Costo", 2, align.Right),
		headerCol("Precio", 2, align.Right),
		headerCol("Gan./u", 2, align.Right),
		headerCol("Uds.", 1, align.Center),
		headerCol("Ganancia", 2, align.Right),
	)
}

// itemRows: una fila por artículo del menú.
func (g *MarotoReportGenerator) itemRows(items []dto.ItemReportDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(it.Item, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.format.Format(it.Cost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.format.Format(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.format.Format(it.ProfitPerUnit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.UnitsSold), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.ProfitLabel, amountProps(it.Profit.IsNegative()))),
		))
	}
	return result
}

func daysHeaderRow() core.Row {
	return row.New(7).Add(
		headerCol("Día", 4, align.Left),
		headerCol("Unidades", 4, align.Center),
		headerCol("Ganancia", 4, align.Right),
	)
}

// dayRows: una fila por día registrado.
func (g *MarotoReportGenerator) dayRows(days []dto.DayReportDTO) []core.Row {
	if len(days) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin ventas registradas", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	result := make([]core.Row, 0, len(days))
	for _, d := range days {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New("Día "+strconv.Itoa(d.Day), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(strconv.Itoa(d.Units), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(d.ProfitLabel, amountProps(d.Profit.IsNegative()))),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(report *dto.ProfitReportDTO) core.Row {
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Unidades vendidas:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}),
			text.New("GANANCIA TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			text.New(strconv.Itoa(report.TotalUnits), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(report.TotalProfitLabel, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func amountProps(negative bool) props.Text {
	p := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	if negative {
		p.Color = colorNegative
	}
	return p
}
