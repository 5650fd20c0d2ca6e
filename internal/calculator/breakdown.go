package calculator

import "BalanceSentinel/internal/model"

// AssetBreakdown lists the asset categories with their share of total assets.
func AssetBreakdown(t model.AggregatedTotals, s model.FinancialSnapshot) []model.BreakdownItem {
	return breakdown(t.TotalAssets, []model.BreakdownItem{
		{Label: "現金小計", Amount: t.TotalCash},
		{Label: "股票小計", Amount: t.TotalInvestments},
		{Label: "不動產", Amount: s.RealEstate},
		{Label: "保險/其他", Amount: s.OtherAssets},
	})
}

// LiabilityBreakdown lists the liability categories with their share of total liabilities.
func LiabilityBreakdown(t model.AggregatedTotals, s model.FinancialSnapshot) []model.BreakdownItem {
	return breakdown(t.TotalLiabilities, []model.BreakdownItem{
		{Label: "短期負債", Amount: s.LiabilityShortTerm},
		{Label: "長期負債", Amount: s.LiabilityLongTerm},
	})
}

// breakdown fills in shares; they stay 0 when the section total is 0.
func breakdown(total float64, items []model.BreakdownItem) []model.BreakdownItem {
	if total == 0 {
		return items
	}
	for i := range items {
		items[i].Share = items[i].Amount / total * 100
	}
	return items
}
