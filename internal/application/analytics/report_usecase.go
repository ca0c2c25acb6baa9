// Package analytics contiene los casos de uso de reportes de ganancia del puesto.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/repository"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
	"github.com/jhoicas/Stand-api/pkg/money"
)

// ReportUseCase arma el reporte de ganancias a partir del menú y el historial de ventas.
// No guarda nada: cada llamada recorre el historial completo.
type ReportUseCase struct {
	repo   repository.StandRepository
	format *money.Formatter
	pdf    ReportPDFGenerator
	xml    ReportXMLBuilder
	now    func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf y xml pueden ser nil si el formato no se expone.
func NewReportUseCase(repo repository.StandRepository, format *money.Formatter, pdf ReportPDFGenerator, xml ReportXMLBuilder) *ReportUseCase {
	return &ReportUseCase{repo: repo, format: format, pdf: pdf, xml: xml, now: time.Now}
}

// GetProfitReport devuelve el reporte del puesto. ErrNotFound si no existe.
//
// Filas por artículo del menú (en orden de alta), totales por día y total general;
// el total general coincide con la ganancia total del puesto.
func (uc *ReportUseCase) GetProfitReport(ctx context.Context, standName string) (*dto.ProfitReportDTO, error) {
	st, err := uc.repo.GetByName(ctx, standName)
	if err != nil {
		return nil, fmt.Errorf("reporte: cargar puesto: %w", err)
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}

	menu := st.Menu()
	records := st.SalesRecords()

	report := &dto.ProfitReportDTO{
		Stand:       st.Name(),
		Days:        len(records),
		GeneratedAt: uc.now(),
		Items:       make([]dto.ItemReportDTO, 0, len(menu)),
		DailyTotals: make([]dto.DayReportDTO, 0, len(records)),
	}

	// ── Por artículo ──────────────────────────────────────────────────────────
	for _, item := range menu {
		profit, err := st.TotalProfitForMenuItem(item.Name())
		if err != nil {
			return nil, fmt.Errorf("reporte: ganancia de %q: %w", item.Name(), err)
		}
		report.Items = append(report.Items, dto.ItemReportDTO{
			Item:          item.Name(),
			Cost:          item.Cost(),
			Price:         item.Price(),
			ProfitPerUnit: item.ProfitPerUnit(),
			UnitsSold:     st.TotalSalesForMenuItem(item.Name()),
			Profit:        profit,
			ProfitLabel:   uc.format.Format(profit),
		})
	}

	// ── Por día ───────────────────────────────────────────────────────────────
	for _, rec := range records {
		profit := stand.DayProfit(rec, menu)
		report.DailyTotals = append(report.DailyTotals, dto.DayReportDTO{
			Day:         rec.DayIndex(),
			Units:       rec.TotalUnits(),
			Profit:      profit,
			ProfitLabel: uc.format.Format(profit),
		})
		report.TotalUnits += rec.TotalUnits()
	}

	report.TotalProfit = st.TotalProfitForStand()
	report.TotalProfitLabel = uc.format.Format(report.TotalProfit)
	return report, nil
}

// GetProfitReportPDF genera el reporte en PDF.
func (uc *ReportUseCase) GetProfitReportPDF(ctx context.Context, standName string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte: generador PDF no configurado")
	}
	report, err := uc.GetProfitReport(ctx, standName)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateProfitReportPDF(ctx, report)
}

// GetProfitReportXML exporta el reporte como XML.
func (uc *ReportUseCase) GetProfitReportXML(ctx context.Context, standName string) ([]byte, error) {
	if uc.xml == nil {
		return nil, fmt.Errorf("reporte: exportador XML no configurado")
	}
	report, err := uc.GetProfitReport(ctx, standName)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildProfitReportXML(report)
}
