package monitoring

import (
	"context"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
)

// Breach records a single metric crossing its threshold
type Breach struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

// ResourceMetrics is one collection pass over a single resource. A nil
// value means the metric could not be fetched this pass.
type ResourceMetrics struct {
	ResourceID  string              `json:"resource_id"`
	CollectedAt time.Time           `json:"collected_at"`
	Values      map[string]*float64 `json:"values"`
	Breaches    []Breach            `json:"breaches"`
}

// MetricSource fetches current metric values for a resource from a
// cloud provider. Implementations tolerate per-metric failure by
// returning a nil value for that metric rather than failing the call.
type MetricSource interface {
	// Provider names the backing cloud provider
	Provider() string

	// FetchMetrics retrieves the latest value for each named metric
	FetchMetrics(ctx context.Context, r *resource.Resource, metricNames []string) (map[string]*float64, error)
}

// SupportedMetrics lists the metric names a collection pass requests
var SupportedMetrics = []string{
	"CPUUtilization",
	"MemoryUtilization",
	"NetworkIn",
	"NetworkOut",
	"DiskReadBytes",
	"DiskWriteBytes",
}
