package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stand-api/internal/application/analytics"
)

// ReportHandler expone el reporte de ganancias en JSON, PDF y XML.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de ganancias del puesto
// @Description  Desglose por artículo y por día más el total del puesto.
// @Tags         reports
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Success      200   {object}  dto.ProfitReportDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/report [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.GetProfitReport(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte de ganancias en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        name  path  string  true  "Nombre del puesto"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/report.pdf [get]
func (h *ReportHandler) ReportPDF(c *fiber.Ctx) error {
	name := c.Params("name")
	out, err := h.uc.GetProfitReportPDF(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, fileName(name)))
	return c.Send(out)
}

// ReportXML godoc
// @Summary      Reporte de ganancias en XML
// @Tags         reports
// @Produce      application/xml
// @Param        name  path  string  true  "Nombre del puesto"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/report.xml [get]
func (h *ReportHandler) ReportXML(c *fiber.Ctx) error {
	name := c.Params("name")
	out, err := h.uc.GetProfitReportXML(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xml"`, fileName(name)))
	return c.Send(out)
}

// fileName deja solo caracteres seguros para el nombre de archivo del reporte.
func fileName(stand string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(stand) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "reporte"
	}
	return "reporte-" + b.String()
}
