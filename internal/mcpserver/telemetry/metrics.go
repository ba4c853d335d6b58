// Package telemetry records tool and resource activity.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics receives observations from the dispatcher and resource resolver
type Metrics interface {
	ObserveToolCall(tool, outcome string, duration time.Duration)
	ObserveResourceRead(found bool)
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

func (NoopMetrics) ObserveToolCall(string, string, time.Duration) {}
func (NoopMetrics) ObserveResourceRead(bool)                      {}

type PrometheusMetrics struct {
	toolCalls     *prometheus.CounterVec
	toolDuration  *prometheus.HistogramVec
	resourceReads *prometheus.CounterVec
}

// NewPrometheusMetrics registers collectors with registerer, falling back to
// the default registerer when nil
func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		toolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leadfinder_tool_calls_total",
				Help: "Total number of tool invocations by outcome",
			},
			[]string{"tool", "outcome"},
		),
		toolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "leadfinder_tool_call_duration_seconds",
				Help:    "Duration of tool invocations in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"tool", "outcome"},
		),
		resourceReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leadfinder_resource_reads_total",
				Help: "Total number of widget resource reads",
			},
			[]string{"status"},
		),
	}
}

func (p *PrometheusMetrics) ObserveToolCall(tool, outcome string, duration time.Duration) {
	p.toolCalls.WithLabelValues(tool, outcome).Inc()
	p.toolDuration.WithLabelValues(tool, outcome).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) ObserveResourceRead(found bool) {
	status := "found"
	if !found {
		status = "not_found"
	}
	p.resourceReads.WithLabelValues(status).Inc()
}

var (
	_ Metrics = NoopMetrics{}
	_ Metrics = (*PrometheusMetrics)(nil)
)
