package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricRefreshCompleted, nil)
	metrics.IncrementCounter(MetricRefreshCompleted, nil)
	metrics.IncrementCounter(MetricRefreshFailed, nil)
	metrics.IncrementCounter(MetricForecastRequest, map[string]string{"model": "linear", "status": "success"})
	metrics.IncrementCounter(MetricModelUnavailable, map[string]string{"model": "seasonal"})
	metrics.IncrementCounter(MetricGoalPrediction, map[string]string{"status": "on_track"})
	metrics.IncrementCounter(MetricGoalPrediction, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.refreshTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.refreshTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.forecastRequests.WithLabelValues("linear", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.modelUnavailable.WithLabelValues("seasonal")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.goalPredictions), "predictions without status are not counted")
}

func TestPrometheusMetrics_GaugesAndBreakerState(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.RecordGauge(MetricViewVersion, 7, nil)
	metrics.RecordGauge(MetricViewRows, 120, map[string]string{"view": "monthly_summary"})
	metrics.RecordGauge(MetricViewRows, 5, nil)
	metrics.IncrementCounter(MetricCircuitBreakerOpen, map[string]string{"service": "narrative"})

	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.viewVersion))
	assert.Equal(t, 120.0, testutil.ToFloat64(metrics.viewRows.WithLabelValues("monthly_summary")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.viewRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("narrative")))

	metrics.IncrementCounter(MetricCircuitBreakerShut, map[string]string{"service": "narrative"})
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("narrative")))
}

func TestPrometheusMetrics_Durations(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime(MetricRefreshDuration, 250*time.Millisecond)
	metrics.RecordProcessingTime(MetricForecastDuration, 3*time.Millisecond)
	metrics.RecordProcessingTime(MetricNarrativeDuration, 2*time.Second)

	count, err := testutil.GatherAndCount(reg,
		"analytics_refresh_duration_milliseconds",
		"analytics_forecast_duration_milliseconds",
		"analytics_narrative_duration_seconds",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPrometheusMetrics_RegistersOncePerRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
	assert.NotPanics(t, func() { NewPrometheusMetrics(prometheus.NewRegistry()) })
}
