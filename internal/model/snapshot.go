package model

import "time"

// FinancialSnapshot is one point-in-time set of asset, liability and cash-flow figures.
// All amounts are in a single currency unit and must be finite, non-negative and at most 1e15;
// the core does not check this, the collector does.
type FinancialSnapshot struct {
	ReportDate time.Time `json:"report_date,omitzero"`

	CashLocal       float64 `json:"cash_local" validate:"gte=0,finite,lte=1e15"`
	CashForeign     float64 `json:"cash_foreign" validate:"gte=0,finite,lte=1e15"`
	CashTermDeposit float64 `json:"cash_term_deposit" validate:"gte=0,finite,lte=1e15"`
	StockLocal      float64 `json:"stock_local" validate:"gte=0,finite,lte=1e15"`
	StockForeign    float64 `json:"stock_foreign" validate:"gte=0,finite,lte=1e15"`
	RealEstate      float64 `json:"real_estate" validate:"gte=0,finite,lte=1e15"`
	OtherAssets     float64 `json:"other_assets" validate:"gte=0,finite,lte=1e15"`

	LiabilityShortTerm float64 `json:"liability_short_term" validate:"gte=0,finite,lte=1e15"`
	LiabilityLongTerm  float64 `json:"liability_long_term" validate:"gte=0,finite,lte=1e15"`

	MonthlyLoanRepayment float64 `json:"monthly_loan_repayment" validate:"gte=0,finite,lte=1e15"`
	MonthlyIncome        float64 `json:"monthly_income" validate:"gte=0,finite,lte=1e15"`
	MonthlyExpense       float64 `json:"monthly_expense" validate:"gte=0,finite,lte=1e15"`
}

// AggregatedTotals holds the category totals derived from a snapshot.
type AggregatedTotals struct {
	TotalCash        float64 `json:"total_cash"`
	TotalInvestments float64 `json:"total_investments"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`
}
