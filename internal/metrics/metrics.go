package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics tracks the review pipeline. All methods are nil-safe so
// code paths under test can run without a registry.
type PipelineMetrics struct {
	registry *prometheus.Registry

	reviewsAnalyzed    *prometheus.CounterVec
	reviewsSkipped     prometheus.Counter
	chunksProcessed    *prometheus.CounterVec
	generationDuration prometheus.Histogram
}

func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()

	reviewsAnalyzed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reviewflow",
			Subsystem: "pipeline",
			Name:      "reviews_analyzed_total",
			Help:      "Reviews classified, by resolved sentiment.",
		},
		[]string{"sentiment"},
	)
	reviewsSkipped := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reviewflow",
			Subsystem: "pipeline",
			Name:      "reviews_skipped_total",
			Help:      "Reviews dropped as blank or after a classification failure.",
		},
	)
	chunksProcessed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reviewflow",
			Subsystem: "recommend",
			Name:      "chunks_total",
			Help:      "Recommendation chunks processed, by outcome.",
		},
		[]string{"status"},
	)
	generationDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reviewflow",
			Subsystem: "recommend",
			Name:      "generation_duration_seconds",
			Help:      "End-to-end recommendation generation duration.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	registry.MustRegister(reviewsAnalyzed, reviewsSkipped, chunksProcessed, generationDuration)

	return &PipelineMetrics{
		registry:           registry,
		reviewsAnalyzed:    reviewsAnalyzed,
		reviewsSkipped:     reviewsSkipped,
		chunksProcessed:    chunksProcessed,
		generationDuration: generationDuration,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) ObserveReview(sentiment string) {
	if m == nil {
		return
	}
	m.reviewsAnalyzed.WithLabelValues(sentiment).Inc()
}

func (m *PipelineMetrics) AddSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.reviewsSkipped.Add(float64(n))
}

func (m *PipelineMetrics) ObserveChunk(status string) {
	if m == nil {
		return
	}
	m.chunksProcessed.WithLabelValues(status).Inc()
}

func (m *PipelineMetrics) ObserveGeneration(d time.Duration) {
	if m == nil {
		return
	}
	m.generationDuration.Observe(d.Seconds())
}
