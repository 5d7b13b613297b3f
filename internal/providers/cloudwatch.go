package providers

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/monitoring"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/metrics"
)

const (
	metricWindow = 10 * time.Minute
	metricPeriod = 300
)

// CloudWatchSource fetches resource metrics from AWS CloudWatch
type CloudWatchSource struct {
	client *cloudwatch.Client
	log    *logger.Logger
}

// NewCloudWatchSource creates a CloudWatch-backed metric source
func NewCloudWatchSource(awsCfg aws.Config, log *logger.Logger) *CloudWatchSource {
	return &CloudWatchSource{
		client: cloudwatch.NewFromConfig(awsCfg),
		log:    log,
	}
}

// Provider implements monitoring.MetricSource
func (s *CloudWatchSource) Provider() string {
	return resource.ProviderAWS
}

// FetchMetrics implements monitoring.MetricSource. A metric that cannot
// be fetched gets a nil value; only a context error fails the call.
func (s *CloudWatchSource) FetchMetrics(ctx context.Context, r *resource.Resource, metricNames []string) (map[string]*float64, error) {
	start := time.Now()
	defer func() {
		metrics.RecordMetricFetch(s.Provider(), time.Since(start))
	}()

	values := make(map[string]*float64, len(metricNames))
	for _, name := range metricNames {
		v, err := s.fetchOne(ctx, r.CloudID, name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.WithFields(map[string]interface{}{
				"resource_id": r.ID,
				"metric":      name,
			}).WithError(err).Warn("metric fetch failed")
			values[name] = nil
			continue
		}
		values[name] = v
	}

	return values, nil
}

// fetchOne reads the most recent datapoint for a single metric
func (s *CloudWatchSource) fetchOne(ctx context.Context, instanceID, metricName string) (*float64, error) {
	end := time.Now()

	out, err := s.client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/EC2"),
		MetricName: aws.String(metricName),
		Dimensions: []types.Dimension{
			{
				Name:  aws.String("InstanceId"),
				Value: aws.String(instanceID),
			},
		},
		StartTime:  aws.Time(end.Add(-metricWindow)),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(metricPeriod),
		Statistics: []types.Statistic{types.StatisticAverage},
	})
	if err != nil {
		return nil, err
	}

	if len(out.Datapoints) == 0 {
		return nil, nil
	}

	latest := out.Datapoints[0]
	for _, dp := range out.Datapoints[1:] {
		if dp.Timestamp != nil && latest.Timestamp != nil && dp.Timestamp.After(*latest.Timestamp) {
			latest = dp
		}
	}

	return latest.Average, nil
}

var _ monitoring.MetricSource = (*CloudWatchSource)(nil)
