// Package config provides 12-factor configuration management for the data processor.
//
// Configuration is loaded from environment variables with sensible defaults.
// Command-line flags override environment variables. There is no
// configuration file.
//
// Configuration Sections:
//   - Pipeline: default cleaning, analysis and output policies
//   - Output: result file location for the TEXT_FILE channel
//   - Logging: log level and output format
//   - Metrics: whether a metrics summary is printed at exit
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	policies, err := cfg.Policies()
//
// Environment Variables:
//   - DATAPROC_CLEANING, DATAPROC_ANALYSIS, DATAPROC_OUTPUT
//   - DATAPROC_RESULT_PATH
//   - LOG_LEVEL, LOG_DEV
//   - DATAPROC_METRICS
package config
