package classifier

import (
	"fmt"

	"BalanceSentinel/internal/calculator"
	"BalanceSentinel/internal/model"
)

// Status applies the policy's bands to a value.
func (p Policy) Status(v float64) (model.Status, error) {
	if len(p.Bands) == 0 {
		return model.StatusInfo, nil
	}
	for _, b := range p.Bands {
		if b.Contains(v) {
			return b.Status, nil
		}
	}
	return model.StatusNotApplicable, fmt.Errorf("%s: value %v outside all bands", p.Name, v)
}

// Classify turns a computed ratio into a metric. Undefined ratios are reported as N/A.
func Classify(r calculator.RatioResult) model.Metric {
	p, ok := PolicyFor(r.Name)
	if !ok {
		return model.Metric{Name: r.Name, Label: string(r.Name), Status: model.StatusNotApplicable,
			Err: fmt.Sprintf("%s: no policy", r.Name)}
	}

	m := model.Metric{Name: r.Name, Label: p.Label, Unit: p.Unit}
	if r.Err != nil {
		m.Status = model.StatusNotApplicable
		m.Err = r.Err.Error()
		return m
	}

	m.Value = r.Value
	status, err := p.Status(r.Value)
	m.Status = status
	if err != nil {
		m.Err = err.Error()
	}
	return m
}

// ClassifyAll classifies every ratio, keeping order.
func ClassifyAll(results []calculator.RatioResult) []model.Metric {
	metrics := make([]model.Metric, len(results))
	for i, r := range results {
		metrics[i] = Classify(r)
	}
	return metrics
}
