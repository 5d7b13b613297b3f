package dto

import "time"

// BreachDTO is one threshold breach in a collection pass
type BreachDTO struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

// ResourceMetricsDTO is the result of a collection pass over a resource
type ResourceMetricsDTO struct {
	ResourceID  string              `json:"resource_id"`
	CollectedAt time.Time           `json:"collected_at"`
	Values      map[string]*float64 `json:"values"`
	Breaches    []BreachDTO         `json:"breaches"`
}
