package diagnosis

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"BalanceSentinel/internal/advisor"
	"BalanceSentinel/internal/calculator"
	"BalanceSentinel/internal/classifier"
	"BalanceSentinel/internal/model"
)

// snapshotNamespace scopes the name-based snapshot IDs.
var snapshotNamespace = uuid.MustParse("6f3c1a52-8d0e-4b7a-9c41-2e5d7f90b3a8")

// Evaluate computes the full diagnosis of a snapshot: totals, breakdown,
// classified metrics and recommendations. It holds no state and is safe
// for concurrent use.
func Evaluate(s model.FinancialSnapshot) *model.Diagnosis {
	// Step a: totals
	totals := calculator.Aggregate(s)

	// Step b: ratios, undefined ones carry their error
	ratios := calculator.CalculateRatios(totals, s)

	// Step c: bands
	metrics := classifier.ClassifyAll(ratios)

	// Step d: rules
	recs := advisor.Advise(metrics)

	return &model.Diagnosis{
		SnapshotID:      SnapshotID(s),
		ReportDate:      s.ReportDate,
		Totals:          totals,
		Assets:          calculator.AssetBreakdown(totals, s),
		Liabilities:     calculator.LiabilityBreakdown(totals, s),
		Metrics:         metrics,
		Recommendations: recs,
	}
}

// SnapshotID derives a stable UUIDv5 from the snapshot figures and report date.
func SnapshotID(s model.FinancialSnapshot) string {
	figures := []float64{
		s.CashLocal, s.CashForeign, s.CashTermDeposit,
		s.StockLocal, s.StockForeign, s.RealEstate, s.OtherAssets,
		s.LiabilityShortTerm, s.LiabilityLongTerm,
		s.MonthlyLoanRepayment, s.MonthlyIncome, s.MonthlyExpense,
	}
	parts := make([]string, 0, len(figures)+1)
	for _, f := range figures {
		parts = append(parts, strconv.FormatFloat(f, 'g', -1, 64))
	}
	if !s.ReportDate.IsZero() {
		parts = append(parts, s.ReportDate.Format("2006-01-02"))
	}
	return uuid.NewSHA1(snapshotNamespace, []byte(strings.Join(parts, "|"))).String()
}
