/*
Package monitoring provides metrics collection for the data processor.

# Overview

Metrics are Prometheus collectors registered in a registry owned by each
Metrics value. Nothing is registered globally, so processors with separate
Metrics never observe each other.

# Metrics

  - dataproc_runs_total{analysis,output,status}
  - dataproc_run_duration_seconds{analysis}
  - dataproc_input_size
  - dataproc_dropped_values_total{cleaning}
  - dataproc_replaced_values_total{cleaning}
  - dataproc_empty_inputs_total{analysis}

# Usage

	metrics := monitoring.NewMetrics()

	timer := monitoring.NewTimer(metrics, "MEDIAN", "CONSOLE")
	// ... run the pipeline ...
	timer.Stop(monitoring.StatusSuccess)

	families, err := metrics.Gather()
*/
package monitoring
