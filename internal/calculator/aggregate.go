package calculator

import (
	"github.com/shopspring/decimal"

	"BalanceSentinel/internal/model"
)

// Aggregate sums the snapshot's line items into category totals.
// Sums are taken in decimal so the result does not depend on the order of the addends.
// Inputs must be finite.
func Aggregate(s model.FinancialSnapshot) model.AggregatedTotals {
	cash := SumAmounts(s.CashLocal, s.CashForeign, s.CashTermDeposit)
	investments := SumAmounts(s.StockLocal, s.StockForeign)
	assets := cash.Add(investments).Add(SumAmounts(s.RealEstate, s.OtherAssets))
	liabilities := SumAmounts(s.LiabilityShortTerm, s.LiabilityLongTerm)

	return model.AggregatedTotals{
		TotalCash:        cash.InexactFloat64(),
		TotalInvestments: investments.InexactFloat64(),
		TotalAssets:      assets.InexactFloat64(),
		TotalLiabilities: liabilities.InexactFloat64(),
		NetWorth:         assets.Sub(liabilities).InexactFloat64(),
	}
}

// SumAmounts adds monetary amounts exactly.
func SumAmounts(amounts ...float64) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return sum
}
