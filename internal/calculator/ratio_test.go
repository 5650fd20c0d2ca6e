package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BalanceSentinel/internal/model"
)

const epsilon = 1e-9

func TestRatios_ClosedForm(t *testing.T) {
	s := model.FinancialSnapshot{
		CashLocal:            120000,
		CashForeign:          30000,
		StockForeign:         500000,
		RealEstate:           3000000,
		LiabilityShortTerm:   100000,
		LiabilityLongTerm:    900000,
		MonthlyLoanRepayment: 25000,
		MonthlyIncome:        100000,
		MonthlyExpense:       50000,
	}
	totals := Aggregate(s)

	v, err := CalculateDebtToAsset(totals)
	require.NoError(t, err)
	assert.InDelta(t, 1000000.0/3650000.0*100, v, epsilon)

	v, err = CalculateLoanBurden(s)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, v, epsilon)

	v, err = CalculateEmergencyFund(totals, s)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, epsilon)

	v, err = CalculateExpenseToIncome(s)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, v, epsilon)

	v, err = CalculateNetWorthIncomeMultiple(totals, s)
	require.NoError(t, err)
	assert.InDelta(t, 2650000.0/1200000.0, v, epsilon)
}

func TestRatios_ZeroIncome(t *testing.T) {
	s := model.FinancialSnapshot{CashLocal: 90000, RealEstate: 1000000, LiabilityLongTerm: 300000, MonthlyExpense: 30000}
	results := CalculateRatios(Aggregate(s), s)
	require.Len(t, results, 5)

	undefined := map[model.MetricName]bool{
		model.MetricLoanBurden:          true,
		model.MetricExpenseToIncome:     true,
		model.MetricNetWorthIncomeMulti: true,
	}
	for _, r := range results {
		if undefined[r.Name] {
			require.Error(t, r.Err, r.Name)
			assert.True(t, errors.Is(r.Err, ErrDivisionUndefined), r.Name)
			var de *DivisionError
			require.True(t, errors.As(r.Err, &de))
			assert.Equal(t, r.Name, de.Ratio)
			assert.Zero(t, r.Value)
			continue
		}
		assert.NoError(t, r.Err, r.Name)
	}
	assert.InDelta(t, 300000.0/1090000.0*100, results[0].Value, epsilon)
	assert.InDelta(t, 3.0, results[2].Value, epsilon)
}

func TestRatios_ZeroAssetsAndExpense(t *testing.T) {
	s := model.FinancialSnapshot{MonthlyIncome: 50000}
	totals := Aggregate(s)

	_, err := CalculateDebtToAsset(totals)
	assert.ErrorIs(t, err, ErrDivisionUndefined)
	assert.EqualError(t, err, "DEBT_TO_ASSET: total assets is zero")

	_, err = CalculateEmergencyFund(totals, s)
	assert.ErrorIs(t, err, ErrDivisionUndefined)

	v, err := CalculateNetWorthIncomeMultiple(totals, s)
	assert.NoError(t, err)
	assert.Zero(t, v)
}

func TestCalculateRatios_Order(t *testing.T) {
	s := model.FinancialSnapshot{CashLocal: 1, MonthlyIncome: 1, MonthlyExpense: 1}
	results := CalculateRatios(Aggregate(s), s)
	want := []model.MetricName{
		model.MetricDebtToAsset,
		model.MetricLoanBurden,
		model.MetricEmergencyFund,
		model.MetricExpenseToIncome,
		model.MetricNetWorthIncomeMulti,
	}
	got := make([]model.MetricName, len(results))
	for i, r := range results {
		got[i] = r.Name
	}
	assert.Equal(t, want, got)
}

func TestRatios_TinyDenominator(t *testing.T) {
	s := model.FinancialSnapshot{RealEstate: 1e-300, LiabilityLongTerm: 1e10, MonthlyIncome: 1, MonthlyExpense: 1}
	results := CalculateRatios(Aggregate(s), s)

	debt := results[0]
	require.Error(t, debt.Err)
	assert.ErrorIs(t, debt.Err, ErrDivisionUndefined)
	assert.EqualError(t, debt.Err, "DEBT_TO_ASSET: result is not finite, total assets too small")
	assert.Zero(t, debt.Value)

	var de *DivisionError
	require.True(t, errors.As(debt.Err, &de))
	assert.True(t, de.Overflow)

	for _, r := range results[1:] {
		assert.NoError(t, r.Err, r.Name)
	}
}
