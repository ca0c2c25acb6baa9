// Package xmlreport exporta el reporte de ganancias del puesto como documento XML.
package xmlreport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stand-api/internal/application/analytics"
	"github.com/jhoicas/Stand-api/internal/application/dto"
)

var _ analytics.ReportXMLBuilder = (*EtreeBuilder)(nil)

// EtreeBuilder construye el XML del reporte con etree.
//
//	<ProfitReport stand="..." days="N" generatedAt="RFC3339">
//	  <Items>
//	    <Item name="lemonade" unitsSold="5">
//	      <Cost>0.50</Cost> <Price>1.50</Price> <ProfitPerUnit>1.00</ProfitPerUnit> <Profit>5.00</Profit>
//	    </Item>
//	  </Items>
//	  <Days><Day index="0" units="7">6.60</Day></Days>
//	  <Total units="7">6.60</Total>
//	</ProfitReport>
type EtreeBuilder struct{}

// NewEtreeBuilder crea el builder.
func NewEtreeBuilder() *EtreeBuilder {
	return &EtreeBuilder{}
}

// BuildProfitReportXML genera el []byte del documento. Los montos van con dos decimales y punto.
func (b *EtreeBuilder) BuildProfitReportXML(report *dto.ProfitReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("xml: reporte vacío")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ProfitReport")
	root.CreateAttr("stand", report.Stand)
	root.CreateAttr("days", strconv.Itoa(report.Days))
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))

	items := root.CreateElement("Items")
	for _, it := range report.Items {
		el := items.CreateElement("Item")
		el.CreateAttr("name", it.Item)
		el.CreateAttr("unitsSold", strconv.Itoa(it.UnitsSold))
		amount(el, "Cost", it.Cost)
		amount(el, "Price", it.Price)
		amount(el, "ProfitPerUnit", it.ProfitPerUnit)
		amount(el, "Profit", it.Profit)
	}

	days := root.CreateElement("Days")
	for _, d := range report.DailyTotals {
		el := days.CreateElement("Day")
		el.CreateAttr("index", strconv.Itoa(d.Day))
		el.CreateAttr("units", strconv.Itoa(d.Units))
		el.SetText(d.Profit.StringFixed(2))
	}

	total := root.CreateElement("Total")
	total.CreateAttr("units", strconv.Itoa(report.TotalUnits))
	total.SetText(report.TotalProfit.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}

func amount(parent *etree.Element, tag string, v decimal.Decimal) {
	parent.CreateElement(tag).SetText(v.StringFixed(2))
}
