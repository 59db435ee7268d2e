package monitoring

import "time"

// Timer measures the duration of one processing run
type Timer struct {
	start    time.Time
	metrics  *Metrics
	analysis string
	output   string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, analysis, output string) *Timer {
	return &Timer{
		start:    time.Now(),
		metrics:  metrics,
		analysis: analysis,
		output:   output,
	}
}

// Stop records the run with the given status and returns its duration
func (t *Timer) Stop(status string) time.Duration {
	duration := time.Since(t.start)
	t.metrics.RecordRun(t.analysis, t.output, status, duration)
	return duration
}
