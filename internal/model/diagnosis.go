package model

import "time"

// MetricName identifies one of the derived ratios.
type MetricName string

const (
	MetricDebtToAsset         MetricName = "DEBT_TO_ASSET"
	MetricLoanBurden          MetricName = "LOAN_BURDEN"
	MetricEmergencyFund       MetricName = "EMERGENCY_FUND"
	MetricExpenseToIncome     MetricName = "EXPENSE_TO_INCOME"
	MetricNetWorthIncomeMulti MetricName = "NET_WORTH_INCOME_MULTIPLE"
)

// Status is the health label assigned to a metric by its policy bands.
type Status string

const (
	StatusHealthy       Status = "HEALTHY"
	StatusWarning       Status = "WARNING"
	StatusCritical      Status = "CRITICAL"
	StatusExcess        Status = "EXCESS"
	StatusInfo          Status = "INFO" // reported, never flagged
	StatusNotApplicable Status = "N/A"  // ratio undefined for this snapshot
)

// Severity tags a recommendation.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Metric is a classified ratio.
type Metric struct {
	Name   MetricName `json:"name"`
	Label  string     `json:"label"`
	Value  float64    `json:"value"`
	Unit   string     `json:"unit"` // "%" or "x"
	Status Status     `json:"status"`
	Err    string     `json:"error,omitempty"`
}

// Applicable reports whether the ratio could be computed.
func (m Metric) Applicable() bool {
	return m.Status != StatusNotApplicable
}

// Recommendation is one advisory message emitted by a rule.
type Recommendation struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// BreakdownItem is one category line in the asset or liability table.
type BreakdownItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"` // percent of the section total
}

// Diagnosis is the full output of one evaluation.
type Diagnosis struct {
	SnapshotID      string           `json:"snapshot_id"`
	ReportDate      time.Time        `json:"report_date,omitzero"`
	Totals          AggregatedTotals `json:"totals"`
	Assets          []BreakdownItem  `json:"assets"`
	Liabilities     []BreakdownItem  `json:"liabilities"`
	Metrics         []Metric         `json:"metrics"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Metric returns the metric with the given name, if present.
func (d *Diagnosis) Metric(name MetricName) (Metric, bool) {
	for _, m := range d.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}
