package notifier

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"BalanceSentinel/internal/model"
)

// FormatDiagnosisReport formats a diagnosis into a Telegram message.
func FormatDiagnosisReport(d *model.Diagnosis) string {
	var b strings.Builder

	b.WriteString("📊 <b>個人資產負債健檢</b>")
	if !d.ReportDate.IsZero() {
		b.WriteString(fmt.Sprintf(" | %s", d.ReportDate.Format("2006-01-02")))
	}
	b.WriteString("\n\n")

	// Balance sheet
	b.WriteString("🟠 <b>資產</b>\n")
	for _, it := range d.Assets {
		b.WriteString(fmt.Sprintf("  %s: %s (%.1f%%)\n", html.EscapeString(it.Label), FormatAmount(it.Amount), it.Share))
	}
	b.WriteString(fmt.Sprintf("  總資產: %s\n\n", FormatAmount(d.Totals.TotalAssets)))

	b.WriteString("🟢 <b>負債</b>\n")
	for _, it := range d.Liabilities {
		b.WriteString(fmt.Sprintf("  %s: %s (%.1f%%)\n", html.EscapeString(it.Label), FormatAmount(it.Amount), it.Share))
	}
	b.WriteString(fmt.Sprintf("  負債總計: %s\n\n", FormatAmount(d.Totals.TotalLiabilities)))

	b.WriteString(fmt.Sprintf("💰 <b>淨資產:</b> %s\n\n", FormatAmount(d.Totals.NetWorth)))

	writeMetrics(&b, d.Metrics)

	// Recommendations
	if len(d.Recommendations) > 0 {
		b.WriteString("\n💡 <b>建議:</b>\n")
		for i, r := range d.Recommendations {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, severityIcon(r.Severity), html.EscapeString(r.Message)))
		}
	}

	return b.String()
}

// FormatMetricsSummary formats only the classified metrics.
func FormatMetricsSummary(d *model.Diagnosis) string {
	var b strings.Builder
	writeMetrics(&b, d.Metrics)
	return b.String()
}

func writeMetrics(b *strings.Builder, metrics []model.Metric) {
	b.WriteString("📈 <b>財務指標:</b>\n")
	for _, m := range metrics {
		b.WriteString(fmt.Sprintf("  %s %s: %s\n", statusIcon(m.Status), html.EscapeString(m.Label), FormatMetricValue(m)))
	}
}

// FormatAmount renders a monetary amount rounded to whole units with thousands separators.
func FormatAmount(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatMetricValue renders the value with its unit, or N/A when undefined.
func FormatMetricValue(m model.Metric) string {
	if !m.Applicable() {
		return "N/A"
	}
	switch m.Unit {
	case "%":
		return fmt.Sprintf("%.1f%%", m.Value)
	case "x":
		return fmt.Sprintf("%.2f 倍", m.Value)
	default:
		return fmt.Sprintf("%.2f", m.Value)
	}
}

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusHealthy:
		return "✅"
	case model.StatusWarning, model.StatusExcess:
		return "⚠️"
	case model.StatusCritical:
		return "🔴"
	case model.StatusInfo:
		return "ℹ️"
	default:
		return "➖"
	}
}

func severityIcon(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "🔴"
	case model.SeverityWarning:
		return "⚠️"
	default:
		return "✅"
	}
}
