package ai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess    = "success"
	statusValidation = "validation_error"
)

var (
	flowRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aetherium_flow_requests_total",
			Help: "Total number of flow invocations, by outcome.",
		},
		[]string{"flow", "status"},
	)
	flowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aetherium_flow_duration_seconds",
			Help:    "Flow latency including the model call.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"flow"},
	)
	flowPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aetherium_flow_prompt_tokens",
			Help:    "Rendered prompt size in tokens.",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10), // 64 .. 32768
		},
		[]string{"flow"},
	)
)

func observeFlow(flow, status string, start time.Time) {
	flowRequestsTotal.WithLabelValues(flow, status).Inc()
	if status != statusValidation {
		flowDuration.WithLabelValues(flow).Observe(time.Since(start).Seconds())
	}
}
