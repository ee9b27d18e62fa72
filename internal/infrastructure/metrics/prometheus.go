package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Requests      *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
	UploadBytes   prometheus.Histogram
	Fallbacks     prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Name:      "requests_total",
			Help:      "Processed uploads by outcome and format",
		}, []string{"outcome", "format"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meeting_summarizer",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"stage"}),
		UploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "meeting_summarizer",
			Name:      "upload_bytes",
			Help:      "Size of accepted uploads",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8),
		}),
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "meeting_summarizer",
			Name:      "summary_fallbacks_total",
			Help:      "Summaries produced by the deterministic fallback",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Requests, m.StageDuration, m.UploadBytes, m.Fallbacks)
	}
	return m
}

func (m *Metrics) ObserveRequest(outcome, format string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome, format).Inc()
}

func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) ObserveUpload(size int64) {
	if m == nil {
		return
	}
	m.UploadBytes.Observe(float64(size))
}

func (m *Metrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.Fallbacks.Inc()
}
