package analytics

import (
	"context"

	"github.com/jhoicas/Stand-api/internal/application/dto"
)

// ReportPDFGenerator puerto para renderizar el reporte de ganancias en PDF.
type ReportPDFGenerator interface {
	GenerateProfitReportPDF(ctx context.Context, report *dto.ProfitReportDTO) ([]byte, error)
}

// ReportXMLBuilder puerto para exportar el reporte de ganancias como XML.
type ReportXMLBuilder interface {
	BuildProfitReportXML(report *dto.ProfitReportDTO) ([]byte, error)
}
