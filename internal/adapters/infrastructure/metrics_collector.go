package infrastructure

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"weathercli.app/internal/ports"
)

// PrometheusMetricsCollector records upstream calls in a private registry.
// The process is short lived, so Flush writes the registry in the node_exporter
// textfile format instead of serving it.
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	textfile string
}

// NewPrometheusMetricsCollector creates a collector that flushes to textfile when it is non-empty
func NewPrometheusMetricsCollector(textfile string) *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()

	calls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_api_calls_total",
			Help: "The total number of weather API queries by provider and result",
		},
		[]string{"provider", "result"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_api_duration_seconds",
			Help:    "Weather API query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
	registry.MustRegister(calls, duration)

	return &PrometheusMetricsCollector{
		registry: registry,
		calls:    calls,
		duration: duration,
		textfile: textfile,
	}
}

// RecordWeatherAPICall counts one query
func (m *PrometheusMetricsCollector) RecordWeatherAPICall(_ context.Context, provider string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.calls.WithLabelValues(provider, result).Inc()
}

// RecordWeatherAPIDuration observes the latency of one query
func (m *PrometheusMetricsCollector) RecordWeatherAPIDuration(_ context.Context, provider string, duration time.Duration) {
	m.duration.WithLabelValues(provider).Observe(duration.Seconds())
}

// Registry exposes the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Flush writes the collected metrics to the textfile, if one is configured
func (m *PrometheusMetricsCollector) Flush() error {
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

// NopMetricsCollector discards every measurement
type NopMetricsCollector struct{}

func (NopMetricsCollector) RecordWeatherAPICall(context.Context, string, bool) {}

func (NopMetricsCollector) RecordWeatherAPIDuration(context.Context, string, time.Duration) {}

func (NopMetricsCollector) Flush() error { return nil }

var (
	_ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)
	_ ports.MetricsCollector = NopMetricsCollector{}
)
