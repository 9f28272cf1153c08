package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Total number of completed generations by panel and source",
		},
		[]string{"panel", "source"},
	)
	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Generation duration in seconds, fallback building included",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"panel"},
	)
	RecordingSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recording_sessions_active",
			Help: "Number of media capture sessions currently held",
		},
	)
)

var registerOnce sync.Once

// RegisterMetrics registers the collectors with the default registry.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			GenerationRequestsTotal,
			GenerationDuration,
			RecordingSessionsActive,
		)
	})
}
