package services

import (
	"context"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/monitoring"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/metrics"
)

// MonitorService runs metric collection passes over registered
// resources. Collection is read-only: it reports breaches but never
// raises alerts itself; wiring breaches to alerts is the caller's
// call site.
type MonitorService struct {
	resources    resource.Repository
	sources      map[string]monitoring.MetricSource
	thresholds   map[string]float64
	fetchTimeout time.Duration
	logger       *logger.Logger
}

// NewMonitorService creates a new monitor service. Sources are keyed by
// cloud provider name.
func NewMonitorService(
	resources resource.Repository,
	sources []monitoring.MetricSource,
	thresholds map[string]float64,
	fetchTimeout time.Duration,
	log *logger.Logger,
) *MonitorService {
	byProvider := make(map[string]monitoring.MetricSource, len(sources))
	for _, src := range sources {
		byProvider[src.Provider()] = src
	}
	return &MonitorService{
		resources:    resources,
		sources:      byProvider,
		thresholds:   thresholds,
		fetchTimeout: fetchTimeout,
		logger:       log,
	}
}

// CollectResource runs one collection pass over a single resource,
// returning the fetched values and any breaches. A resource with
// monitoring disabled, or one on a provider without a metric source,
// yields an empty result rather than an error.
func (s *MonitorService) CollectResource(ctx context.Context, resourceID string) (*monitoring.ResourceMetrics, error) {
	r, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	if !r.MonitoringEnabled {
		s.logger.With("resource_id", r.ID).Debug("Monitoring disabled, returning empty metrics")
		return emptyMetrics(r.ID), nil
	}

	src, ok := s.sources[r.CloudProvider]
	if !ok {
		s.logger.WithFields(map[string]interface{}{
			"resource_id": r.ID,
			"provider":    r.CloudProvider,
		}).Debug("No metric source for provider, returning empty metrics")
		return emptyMetrics(r.ID), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	values, err := src.FetchMetrics(fetchCtx, r, monitoring.SupportedMetrics)
	if err != nil {
		s.logger.With("resource_id", r.ID).ErrorWithErr(err, "Metric collection failed")
		return nil, errors.Internal("Failed to fetch resource metrics", err)
	}

	breaches := monitoring.Evaluate(values, s.thresholds)
	for _, b := range breaches {
		metrics.RecordBreach(b.Metric)
	}

	return &monitoring.ResourceMetrics{
		ResourceID:  r.ID,
		CollectedAt: time.Now(),
		Values:      values,
		Breaches:    breaches,
	}, nil
}

// CollectAll runs a collection pass over one page of resources. A
// failing resource is logged and skipped; the pass continues.
func (s *MonitorService) CollectAll(ctx context.Context, skip, limit int) ([]*monitoring.ResourceMetrics, error) {
	page, err := s.resources.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	results := make([]*monitoring.ResourceMetrics, 0, len(page))
	for _, r := range page {
		rm, err := s.CollectResource(ctx, r.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			s.logger.With("resource_id", r.ID).ErrorWithErr(err, "Skipping resource after collection failure")
			continue
		}
		results = append(results, rm)
	}

	return results, nil
}

func emptyMetrics(resourceID string) *monitoring.ResourceMetrics {
	return &monitoring.ResourceMetrics{
		ResourceID:  resourceID,
		CollectedAt: time.Now(),
		Values:      map[string]*float64{},
	}
}
