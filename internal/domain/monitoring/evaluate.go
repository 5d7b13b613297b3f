package monitoring

import "sort"

// Evaluate compares fetched metric values against thresholds and
// returns the breaches. A metric breaches only when a non-nil value
// exists for it, a threshold is configured for it, and the value is
// strictly greater than the threshold. Results are ordered by metric
// name so repeated passes over the same inputs agree.
func Evaluate(values map[string]*float64, thresholds map[string]float64) []Breach {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var breaches []Breach
	for _, name := range names {
		v := values[name]
		if v == nil {
			continue
		}
		threshold, ok := thresholds[name]
		if !ok {
			continue
		}
		if *v > threshold {
			breaches = append(breaches, Breach{
				Metric:    name,
				Value:     *v,
				Threshold: threshold,
			})
		}
	}
	return breaches
}
