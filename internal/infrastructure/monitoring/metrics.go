package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Run outcomes used as the status label
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the Prometheus collectors of the data processor.
// Collectors live in a private registry, so independent Metrics never share
// state. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal      *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec
	InputSize      prometheus.Histogram
	DroppedValues  *prometheus.CounterVec
	ReplacedValues *prometheus.CounterVec
	EmptyResults   *prometheus.CounterVec
}

// NewMetrics creates a metrics collector with its own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataproc_runs_total",
				Help: "Total number of processing runs",
			},
			[]string{"analysis", "output", "status"},
		),
		RunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataproc_run_duration_seconds",
				Help:    "Processing run duration in seconds",
				Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"analysis"},
		),
		InputSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataproc_input_size",
				Help:    "Number of values in the raw input sequence",
				Buckets: prometheus.ExponentialBuckets(1, 10, 7),
			},
		),
		DroppedValues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataproc_dropped_values_total",
				Help: "Values removed by the cleaning stage",
			},
			[]string{"cleaning"},
		),
		ReplacedValues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataproc_replaced_values_total",
				Help: "Values rewritten by the cleaning stage",
			},
			[]string{"cleaning"},
		),
		EmptyResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataproc_empty_inputs_total",
				Help: "Runs whose cleaned sequence was empty",
			},
			[]string{"analysis"},
		),
	}

	m.registry.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		m.InputSize,
		m.DroppedValues,
		m.ReplacedValues,
		m.EmptyResults,
	)

	return m
}

// Gather collects the current metric families
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	if m == nil {
		return nil, nil
	}
	return m.registry.Gather()
}

// RecordRun records the outcome of one processing run
func (m *Metrics) RecordRun(analysis, output, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(analysis, output, status).Inc()
	m.RunDuration.WithLabelValues(analysis).Observe(duration.Seconds())
}

// RecordCleaning records how the cleaning stage changed the input
func (m *Metrics) RecordCleaning(cleaning string, inputSize, dropped, replaced int) {
	if m == nil {
		return
	}
	m.InputSize.Observe(float64(inputSize))
	m.DroppedValues.WithLabelValues(cleaning).Add(float64(dropped))
	m.ReplacedValues.WithLabelValues(cleaning).Add(float64(replaced))
}

// RecordEmpty records a run whose cleaned sequence was empty
func (m *Metrics) RecordEmpty(analysis string) {
	if m == nil {
		return
	}
	m.EmptyResults.WithLabelValues(analysis).Inc()
}
