package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricRefreshCompleted   = "refresh.completed"
	MetricRefreshFailed      = "refresh.failed"
	MetricRefreshDuration    = "refresh.duration"
	MetricViewRows           = "view.rows"
	MetricViewVersion        = "view.version"
	MetricForecastRequest    = "forecast.request"
	MetricModelUnavailable   = "forecast.model_unavailable"
	MetricForecastDuration   = "forecast.duration"
	MetricGoalPrediction     = "goal.prediction"
	MetricNarrativeRequest   = "narrative.request"
	MetricNarrativeDuration  = "narrative.duration"
	MetricCircuitBreakerOpen = "circuit_breaker.open"
	MetricCircuitBreakerShut = "circuit_breaker.closed"
)

type PrometheusMetrics struct {
	refreshTotal        *prometheus.CounterVec
	refreshDuration     prometheus.Histogram
	viewRows            *prometheus.GaugeVec
	viewVersion         prometheus.Gauge
	forecastRequests    *prometheus.CounterVec
	modelUnavailable    *prometheus.CounterVec
	forecastDuration    prometheus.Histogram
	goalPredictions     *prometheus.CounterVec
	narrativeRequests   *prometheus.CounterVec
	narrativeDuration   prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the analytics collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		refreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_refresh_total",
				Help: "Total number of aggregate refresh passes",
			},
			[]string{"status"},
		),
		refreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_refresh_duration_milliseconds",
				Help:    "Aggregate refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		viewRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "analytics_view_rows",
				Help: "Number of rows in the current version of each aggregate view",
			},
			[]string{"view"},
		),
		viewVersion: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "analytics_view_version",
				Help: "Version of the aggregate view set currently served",
			},
		),
		forecastRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_forecast_requests_total",
				Help: "Total number of forecast requests by model and status",
			},
			[]string{"model", "status"},
		),
		modelUnavailable: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_model_unavailable_total",
				Help: "Models left out of an ensemble for lack of data",
			},
			[]string{"model"},
		),
		forecastDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_forecast_duration_milliseconds",
				Help:    "Forecast computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 12),
			},
		),
		goalPredictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_goal_predictions_total",
				Help: "Total number of goal predictions by status",
			},
			[]string{"status"},
		),
		narrativeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_narrative_requests_total",
				Help: "Total number of narrative generator calls",
			},
			[]string{"status"},
		),
		narrativeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_narrative_duration_seconds",
				Help:    "Narrative generator latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricRefreshCompleted:
		m.refreshTotal.WithLabelValues("success").Inc()
	case MetricRefreshFailed:
		m.refreshTotal.WithLabelValues("failed").Inc()
	case MetricForecastRequest:
		m.forecastRequests.WithLabelValues(tags["model"], status).Inc()
	case MetricModelUnavailable:
		m.modelUnavailable.WithLabelValues(tags["model"]).Inc()
	case MetricGoalPrediction:
		if status != "" {
			m.goalPredictions.WithLabelValues(status).Inc()
		}
	case MetricNarrativeRequest:
		if status != "" {
			m.narrativeRequests.WithLabelValues(status).Inc()
		}
	case MetricCircuitBreakerOpen:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case MetricCircuitBreakerShut:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRefreshDuration:
		m.refreshDuration.Observe(float64(duration.Milliseconds()))
	case MetricForecastDuration:
		m.forecastDuration.Observe(float64(duration.Microseconds()) / 1000)
	case MetricNarrativeDuration:
		m.narrativeDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricViewRows:
		if view := tags["view"]; view != "" {
			m.viewRows.WithLabelValues(view).Set(value)
		}
	case MetricViewVersion:
		m.viewVersion.Set(value)
	}
}

// NoopMetrics discards everything; used by the CLI and tests.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
