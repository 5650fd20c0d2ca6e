package classifier

import (
	"math"

	"BalanceSentinel/internal/model"
)

// Policy thresholds. Values exactly on a threshold fall on the healthy side.
const (
	DebtToAssetLimit     = 40.0 // %
	LoanBurdenLimit      = 30.0 // %
	EmergencyFundMin     = 3.0  // months
	EmergencyFundMax     = 6.0  // months
	ExpenseToIncomeLimit = 60.0 // %
)

// Band maps a numeric range to a status. Bounds are inclusive unless marked open.
type Band struct {
	Status    model.Status
	Lower     float64
	Upper     float64
	LowerOpen bool
	UpperOpen bool
}

// Contains reports whether v lies inside the band.
func (b Band) Contains(v float64) bool {
	if b.LowerOpen {
		if !(v > b.Lower) {
			return false
		}
	} else if !(v >= b.Lower) {
		return false
	}
	if b.UpperOpen {
		return v < b.Upper
	}
	return v <= b.Upper
}

// Policy describes how one metric is labelled and classified.
// A policy without bands is informational only.
type Policy struct {
	Name  model.MetricName
	Label string
	Unit  string
	Bands []Band
}

// Policies is the band table in reporting order. Bands are checked top-down, first match wins.
var Policies = []Policy{
	{
		Name: model.MetricDebtToAsset, Label: "負債比", Unit: "%",
		Bands: []Band{
			{Status: model.StatusCritical, Lower: DebtToAssetLimit, Upper: math.Inf(1), LowerOpen: true},
			{Status: model.StatusHealthy, Lower: math.Inf(-1), Upper: DebtToAssetLimit},
		},
	},
	{
		Name: model.MetricLoanBurden, Label: "貸款負擔率", Unit: "%",
		Bands: []Band{
			{Status: model.StatusCritical, Lower: LoanBurdenLimit, Upper: math.Inf(1), LowerOpen: true},
			{Status: model.StatusHealthy, Lower: math.Inf(-1), Upper: LoanBurdenLimit},
		},
	},
	{
		Name: model.MetricEmergencyFund, Label: "緊急預備金", Unit: "x",
		Bands: []Band{
			{Status: model.StatusCritical, Lower: math.Inf(-1), Upper: EmergencyFundMin, UpperOpen: true},
			{Status: model.StatusHealthy, Lower: EmergencyFundMin, Upper: EmergencyFundMax},
			{Status: model.StatusExcess, Lower: EmergencyFundMax, Upper: math.Inf(1), LowerOpen: true},
		},
	},
	{
		Name: model.MetricExpenseToIncome, Label: "支出收入比", Unit: "%",
		Bands: []Band{
			{Status: model.StatusCritical, Lower: ExpenseToIncomeLimit, Upper: math.Inf(1), LowerOpen: true},
			{Status: model.StatusHealthy, Lower: math.Inf(-1), Upper: ExpenseToIncomeLimit},
		},
	},
	{
		Name: model.MetricNetWorthIncomeMulti, Label: "淨資產/年收入", Unit: "x",
	},
}

// PolicyFor looks up the policy of a metric.
func PolicyFor(name model.MetricName) (Policy, bool) {
	for _, p := range Policies {
		if p.Name == name {
			return p, true
		}
	}
	return Policy{}, false
}
