package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records model evaluation metrics using Prometheus.
type Recorder struct {
	evaluations *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	finalFigure *prometheus.GaugeVec
	duration    *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		evaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finmodels_evaluations_total",
				Help: "Total number of model evaluations",
			},
			[]string{"model"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finmodels_evaluation_errors_total",
				Help: "Total number of failed model evaluations",
			},
			[]string{"model", "kind"},
		),
		finalFigure: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finmodels_last_final_figure",
				Help: "Final figure of the most recent evaluation per model",
			},
			[]string{"model"},
		),
		duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finmodels_evaluation_duration_seconds",
				Help:    "Duration of model evaluations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
	}
}

// RecordEvaluation records a completed evaluation.
func (r *Recorder) RecordEvaluation(model string) {
	r.evaluations.WithLabelValues(model).Inc()
}

// RecordError records a failed evaluation by error kind.
func (r *Recorder) RecordError(model, kind string) {
	r.errorsTotal.WithLabelValues(model, kind).Inc()
}

// RecordFinalFigure records the final figure produced by a model.
func (r *Recorder) RecordFinalFigure(model string, value float64) {
	r.finalFigure.WithLabelValues(model).Set(value)
}

// RecordLatency records evaluation latency in seconds.
func (r *Recorder) RecordLatency(model string, seconds float64) {
	r.duration.WithLabelValues(model).Observe(seconds)
}
