package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudsentry",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cloudsentry",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Alerting metrics
	alertsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "alert",
			Name:      "generated_total",
			Help:      "Total number of alerts created",
		},
		[]string{"type", "severity"},
	)

	alertsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "alert",
			Name:      "resolved_total",
			Help:      "Total number of alerts resolved",
		},
	)

	channelDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "notify",
			Name:      "deliveries_total",
			Help:      "Total number of notification channel attempts",
		},
		[]string{"channel", "outcome"},
	)

	auditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "audit",
			Name:      "entries_total",
			Help:      "Total number of audit log entries written",
		},
		[]string{"event_type"},
	)

	breachesEvaluatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "monitoring",
			Name:      "breaches_total",
			Help:      "Total number of threshold breaches detected",
		},
		[]string{"metric"},
	)

	metricFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudsentry",
			Subsystem: "monitoring",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of metric source fetches in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAlertGenerated records an alert creation
func RecordAlertGenerated(alertType, severity string) {
	alertsGeneratedTotal.WithLabelValues(alertType, severity).Inc()
}

// RecordAlertResolved records an alert resolution
func RecordAlertResolved() {
	alertsResolvedTotal.Inc()
}

// RecordChannelDelivery records a notification channel attempt
func RecordChannelDelivery(channel string, sent bool) {
	outcome := "failure"
	if sent {
		outcome = "success"
	}
	channelDeliveriesTotal.WithLabelValues(channel, outcome).Inc()
}

// RecordAuditEntry records an audit log write
func RecordAuditEntry(eventType string) {
	auditEntriesTotal.WithLabelValues(eventType).Inc()
}

// RecordBreach records a detected threshold breach
func RecordBreach(metric string) {
	breachesEvaluatedTotal.WithLabelValues(metric).Inc()
}

// RecordMetricFetch records the duration of a metric source fetch
func RecordMetricFetch(provider string, duration time.Duration) {
	metricFetchDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
