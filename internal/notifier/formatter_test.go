package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"BalanceSentinel/internal/model"
)

func sampleDiagnosis() *model.Diagnosis {
	return &model.Diagnosis{
		ReportDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Totals: model.AggregatedTotals{
			TotalCash: 2704108, TotalInvestments: 11598675,
			TotalAssets: 64020229, TotalLiabilities: 18372245, NetWorth: 45647984,
		},
		Assets: []model.BreakdownItem{
			{Label: "現金小計", Amount: 2704108, Share: 4.2238},
		},
		Liabilities: []model.BreakdownItem{
			{Label: "長期負債", Amount: 15252853, Share: 83.02},
		},
		Metrics: []model.Metric{
			{Name: model.MetricDebtToAsset, Label: "負債比", Unit: "%", Value: 28.6975, Status: model.StatusHealthy},
			{Name: model.MetricLoanBurden, Label: "貸款負擔率", Unit: "%", Status: model.StatusNotApplicable, Err: "zero"},
			{Name: model.MetricEmergencyFund, Label: "緊急預備金", Unit: "x", Value: 33.80135, Status: model.StatusExcess},
		},
		Recommendations: []model.Recommendation{
			{Rule: "A", Severity: model.SeverityCritical, Message: "first"},
			{Rule: "B", Severity: model.SeverityWarning, Message: "second"},
		},
	}
}

func TestFormatDiagnosisReport(t *testing.T) {
	out := FormatDiagnosisReport(sampleDiagnosis())

	assert.Contains(t, out, "| 2026-10-01")
	assert.Contains(t, out, "現金小計: 2,704,108 (4.2%)")
	assert.Contains(t, out, "總資產: 64,020,229")
	assert.Contains(t, out, "負債總計: 18,372,245")
	assert.Contains(t, out, "淨資產:</b> 45,647,984")
	assert.Contains(t, out, "✅ 負債比: 28.7%")
	assert.Contains(t, out, "➖ 貸款負擔率: N/A")
	assert.Contains(t, out, "⚠️ 緊急預備金: 33.80 倍")

	first := strings.Index(out, "1. 🔴 first")
	second := strings.Index(out, "2. ⚠️ second")
	assert.True(t, first > 0 && second > first, "recommendations out of order:\n%s", out)
}

func TestFormatDiagnosisReport_NoDateNoRecommendations(t *testing.T) {
	d := sampleDiagnosis()
	d.ReportDate = time.Time{}
	d.Recommendations = nil
	out := FormatDiagnosisReport(d)
	assert.NotContains(t, out, "|")
	assert.NotContains(t, out, "建議")
}

func TestFormatMetricsSummary(t *testing.T) {
	out := FormatMetricsSummary(sampleDiagnosis())
	assert.True(t, strings.HasPrefix(out, "📈"))
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "1,235", FormatAmount(1234.5))
	assert.Equal(t, "-4,000", FormatAmount(-4000))
}
