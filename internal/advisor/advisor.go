package advisor

import "BalanceSentinel/internal/model"

// Advise runs every rule against the metric statuses and returns the fired
// recommendations in table order. Missing or N/A metrics satisfy no condition.
func Advise(metrics []model.Metric) []model.Recommendation {
	statuses := make(map[model.MetricName]model.Status, len(metrics))
	for _, m := range metrics {
		statuses[m.Name] = m.Status
	}

	recs := []model.Recommendation{}
	for _, r := range Rules {
		if r.matches(statuses) {
			recs = append(recs, model.Recommendation{Rule: r.ID, Severity: r.Severity, Message: r.Message})
		}
	}
	return recs
}

func (r Rule) matches(statuses map[model.MetricName]model.Status) bool {
	for _, c := range r.Conditions {
		if s, ok := statuses[c.Metric]; !ok || s != c.Status {
			return false
		}
	}
	return len(r.Conditions) > 0
}
