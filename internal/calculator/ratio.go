package calculator

import (
	"errors"
	"fmt"
	"math"

	"BalanceSentinel/internal/model"
)

// ErrDivisionUndefined is matched by every error returned when a ratio has no finite value,
// either because its denominator is zero or because the quotient overflows.
var ErrDivisionUndefined = errors.New("division undefined")

// DivisionError names the ratio that could not be computed.
type DivisionError struct {
	Ratio       model.MetricName
	Denominator string
	Overflow    bool
}

func (e *DivisionError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("%s: result is not finite, %s too small", e.Ratio, e.Denominator)
	}
	return fmt.Sprintf("%s: %s is zero", e.Ratio, e.Denominator)
}

func (e *DivisionError) Unwrap() error { return ErrDivisionUndefined }

// RatioResult is one computed ratio, or the reason it is undefined.
type RatioResult struct {
	Name  model.MetricName
	Value float64
	Err   error
}

// CalculateDebtToAsset returns total liabilities as a percentage of total assets.
func CalculateDebtToAsset(t model.AggregatedTotals) (float64, error) {
	if t.TotalAssets == 0 {
		return 0, &DivisionError{Ratio: model.MetricDebtToAsset, Denominator: "total assets"}
	}
	return finite(t.TotalLiabilities/t.TotalAssets*100, model.MetricDebtToAsset, "total assets")
}

// CalculateLoanBurden returns monthly loan repayment as a percentage of monthly income.
func CalculateLoanBurden(s model.FinancialSnapshot) (float64, error) {
	if s.MonthlyIncome == 0 {
		return 0, &DivisionError{Ratio: model.MetricLoanBurden, Denominator: "monthly income"}
	}
	return finite(s.MonthlyLoanRepayment/s.MonthlyIncome*100, model.MetricLoanBurden, "monthly income")
}

// CalculateEmergencyFund returns how many months of expenses the cash total covers.
func CalculateEmergencyFund(t model.AggregatedTotals, s model.FinancialSnapshot) (float64, error) {
	if s.MonthlyExpense == 0 {
		return 0, &DivisionError{Ratio: model.MetricEmergencyFund, Denominator: "monthly expense"}
	}
	return finite(t.TotalCash/s.MonthlyExpense, model.MetricEmergencyFund, "monthly expense")
}

// CalculateExpenseToIncome returns monthly expense as a percentage of monthly income.
func CalculateExpenseToIncome(s model.FinancialSnapshot) (float64, error) {
	if s.MonthlyIncome == 0 {
		return 0, &DivisionError{Ratio: model.MetricExpenseToIncome, Denominator: "monthly income"}
	}
	return finite(s.MonthlyExpense/s.MonthlyIncome*100, model.MetricExpenseToIncome, "monthly income")
}

// CalculateNetWorthIncomeMultiple returns net worth as a multiple of annual income.
func CalculateNetWorthIncomeMultiple(t model.AggregatedTotals, s model.FinancialSnapshot) (float64, error) {
	if s.MonthlyIncome == 0 {
		return 0, &DivisionError{Ratio: model.MetricNetWorthIncomeMulti, Denominator: "monthly income"}
	}
	return finite(t.NetWorth/(s.MonthlyIncome*12), model.MetricNetWorthIncomeMulti, "monthly income")
}

func finite(v float64, ratio model.MetricName, denominator string) (float64, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &DivisionError{Ratio: ratio, Denominator: denominator, Overflow: true}
	}
	return v, nil
}

// CalculateRatios computes all five ratios in reporting order.
// An undefined ratio carries its error and does not stop the others.
func CalculateRatios(t model.AggregatedTotals, s model.FinancialSnapshot) []RatioResult {
	results := make([]RatioResult, 0, 5)
	add := func(name model.MetricName, v float64, err error) {
		results = append(results, RatioResult{Name: name, Value: v, Err: err})
	}

	v, err := CalculateDebtToAsset(t)
	add(model.MetricDebtToAsset, v, err)
	v, err = CalculateLoanBurden(s)
	add(model.MetricLoanBurden, v, err)
	v, err = CalculateEmergencyFund(t, s)
	add(model.MetricEmergencyFund, v, err)
	v, err = CalculateExpenseToIncome(s)
	add(model.MetricExpenseToIncome, v, err)
	v, err = CalculateNetWorthIncomeMultiple(t, s)
	add(model.MetricNetWorthIncomeMulti, v, err)

	return results
}
