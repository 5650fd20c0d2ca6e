package advisor

import (
	"fmt"

	"BalanceSentinel/internal/classifier"
	"BalanceSentinel/internal/model"
)

// Rule IDs.
const (
	RuleDeleverage    = "DELEVERAGE"
	RuleCashFlow      = "CASH_FLOW"
	RuleBuildReserve  = "BUILD_RESERVE"
	RuleDeployCapital = "DEPLOY_CAPITAL"
	RuleReviewExpense = "REVIEW_EXPENSE"
	RuleSound         = "FINANCIALLY_SOUND"
)

// Condition requires one metric to carry one status.
type Condition struct {
	Metric model.MetricName
	Status model.Status
}

// Rule fires when all of its conditions hold.
type Rule struct {
	ID         string
	Severity   model.Severity
	Message    string
	Conditions []Condition
}

// Rules is the advisory table. Rules are independent and emitted in table order.
var Rules = []Rule{
	{
		ID:       RuleDeleverage,
		Severity: model.SeverityCritical,
		Message:  fmt.Sprintf("負債比高於 %.0f%%，建議優先償還高利率負債，降低財務槓桿。", classifier.DebtToAssetLimit),
		Conditions: []Condition{
			{model.MetricDebtToAsset, model.StatusCritical},
		},
	},
	{
		ID:       RuleCashFlow,
		Severity: model.SeverityCritical,
		Message:  fmt.Sprintf("每月還款超過收入的 %.0f%%，建議調整還款期程或增加收入來源，改善現金流。", classifier.LoanBurdenLimit),
		Conditions: []Condition{
			{model.MetricLoanBurden, model.StatusCritical},
		},
	},
	{
		ID:       RuleBuildReserve,
		Severity: model.SeverityCritical,
		Message:  fmt.Sprintf("現金不足 %.0f 個月生活費，建議優先累積緊急預備金。", classifier.EmergencyFundMin),
		Conditions: []Condition{
			{model.MetricEmergencyFund, model.StatusCritical},
		},
	},
	{
		ID:       RuleDeployCapital,
		Severity: model.SeverityWarning,
		Message:  fmt.Sprintf("現金超過 %.0f 個月生活費，閒置資金偏高，可考慮投入投資或提前還款。", classifier.EmergencyFundMax),
		Conditions: []Condition{
			{model.MetricEmergencyFund, model.StatusExcess},
		},
	},
	{
		ID:       RuleReviewExpense,
		Severity: model.SeverityCritical,
		Message:  fmt.Sprintf("支出超過收入的 %.0f%%，建議檢視每月開銷並設定預算上限。", classifier.ExpenseToIncomeLimit),
		Conditions: []Condition{
			{model.MetricExpenseToIncome, model.StatusCritical},
		},
	},
	{
		// Evaluated regardless of the rules above.
		ID:       RuleSound,
		Severity: model.SeverityInfo,
		Message:  "各項指標皆在健康範圍內，財務體質穩健，請持續保持。",
		Conditions: []Condition{
			{model.MetricDebtToAsset, model.StatusHealthy},
			{model.MetricLoanBurden, model.StatusHealthy},
			{model.MetricExpenseToIncome, model.StatusHealthy},
			{model.MetricEmergencyFund, model.StatusHealthy},
		},
	},
}
