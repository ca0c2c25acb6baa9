package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stand-api/internal/application/analytics"
	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
	"github.com/jhoicas/Stand-api/internal/infrastructure/memory"
	"github.com/jhoicas/Stand-api/pkg/money"
)

// fakeRenderer captura el reporte recibido por los puertos PDF y XML.
type fakeRenderer struct {
	got *dto.ProfitReportDTO
}

func (f *fakeRenderer) GenerateProfitReportPDF(_ context.Context, r *dto.ProfitReportDTO) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

func (f *fakeRenderer) BuildProfitReportXML(r *dto.ProfitReportDTO) ([]byte, error) {
	f.got = r
	return []byte("<ProfitReport/>"), nil
}

func seedRepo(t *testing.T) *memory.StandRepo {
	t.Helper()
	st := stand.New("Lemons R Us")
	st.AddMenuItem(entity.NewMenuItem("lemonade", decimal.RequireFromString("0.5"), decimal.RequireFromString("1.5")))
	st.AddMenuItem(entity.NewMenuItem("nori", decimal.RequireFromString("0.6"), decimal.RequireFromString("0.8")))
	st.AddMenuItem(entity.NewMenuItem("cookie", decimal.RequireFromString("0.2"), decimal.RequireFromString("1.0")))
	_, err := st.EnterSalesForToday(entity.SalesSheet{{Item: "lemonade", Quantity: 5}, {Item: "cookie", Quantity: 2}})
	require.NoError(t, err)
	_, err = st.EnterSalesForToday(entity.SalesSheet{{Item: "nori", Quantity: 10}})
	require.NoError(t, err)

	repo := memory.NewStandRepository()
	require.NoError(t, repo.Create(context.Background(), st))
	return repo
}

func TestGetProfitReport(t *testing.T) {
	uc := analytics.NewReportUseCase(seedRepo(t), money.NewFormatter("en", "$"), nil, nil)

	report, err := uc.GetProfitReport(context.Background(), "Lemons R Us")
	require.NoError(t, err)

	assert.Equal(t, "Lemons R Us", report.Stand)
	assert.Equal(t, 2, report.Days)
	require.Len(t, report.Items, 3)
	assert.Equal(t, "lemonade", report.Items[0].Item, "filas en orden de alta del menú")
	assert.Equal(t, 5, report.Items[0].UnitsSold)
	assert.Equal(t, "$5.00", report.Items[0].ProfitLabel)
	assert.Equal(t, "$2.00", report.Items[1].ProfitLabel, "10 * (0.8 - 0.6)")
	assert.Equal(t, "$1.60", report.Items[2].ProfitLabel)

	require.Len(t, report.DailyTotals, 2)
	assert.Equal(t, 7, report.DailyTotals[0].Units)
	assert.Equal(t, "$6.60", report.DailyTotals[0].ProfitLabel)
	assert.Equal(t, "$2.00", report.DailyTotals[1].ProfitLabel)

	assert.Equal(t, 17, report.TotalUnits)
	assert.True(t, decimal.RequireFromString("8.6").Equal(report.TotalProfit))
	assert.Equal(t, "$8.60", report.TotalProfitLabel)

	sumDays := decimal.Zero
	for _, d := range report.DailyTotals {
		sumDays = sumDays.Add(d.Profit)
	}
	assert.True(t, sumDays.Equal(report.TotalProfit), "la suma de los días coincide con el total")
}

func TestGetProfitReport_PuestoInexistente(t *testing.T) {
	uc := analytics.NewReportUseCase(memory.NewStandRepository(), money.NewFormatter("en", "$"), nil, nil)
	_, err := uc.GetProfitReport(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProfitReport_DelegaEnRenderizadores(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := analytics.NewReportUseCase(seedRepo(t), money.NewFormatter("en", "$"), renderer, renderer)

	pdf, err := uc.GetProfitReportPDF(context.Background(), "Lemons R Us")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	require.NotNil(t, renderer.got)
	assert.Equal(t, "$8.60", renderer.got.TotalProfitLabel)

	renderer.got = nil
	xml, err := uc.GetProfitReportXML(context.Background(), "Lemons R Us")
	require.NoError(t, err)
	assert.Equal(t, "<ProfitReport/>", string(xml))
	require.NotNil(t, renderer.got)
}

func TestGetProfitReport_SinRenderizadorConfigurado(t *testing.T) {
	uc := analytics.NewReportUseCase(seedRepo(t), money.NewFormatter("en", "$"), nil, nil)
	_, err := uc.GetProfitReportPDF(context.Background(), "Lemons R Us")
	assert.Error(t, err)
	_, err = uc.GetProfitReportXML(context.Background(), "Lemons R Us")
	assert.Error(t, err)
}
