package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/paths"
	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
)

// Config holds all application configuration.
type Config struct {
	Pipeline PipelineConfig
	Output   OutputConfig
	Logging  LogConfig
	Metrics  MetricsConfig
}

// PipelineConfig holds the default policies of a run.
type PipelineConfig struct {
	Cleaning string `envconfig:"DATAPROC_CLEANING" default:"NONE"`
	Analysis string `envconfig:"DATAPROC_ANALYSIS" default:"MEAN"`
	Output   string `envconfig:"DATAPROC_OUTPUT" default:"CONSOLE"`
}

// OutputConfig holds output channel settings.
type OutputConfig struct {
	ResultPath string `envconfig:"DATAPROC_RESULT_PATH" default:"target/result.txt"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"DATAPROC_METRICS" default:"false"`
}

// Policies holds the parsed pipeline policies.
type Policies struct {
	Cleaning types.CleaningPolicy
	Analysis types.AnalysisPolicy
	Output   types.OutputPolicy
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Cleaning: types.CleaningNone.String(),
			Analysis: types.AnalysisMean.String(),
			Output:   types.OutputConsole.String(),
		},
		Output: OutputConfig{
			ResultPath: paths.DefaultResultFile,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Policies parses the configured policy names.
func (c *Config) Policies() (Policies, error) {
	var p Policies
	var err error

	if p.Cleaning, err = types.ParseCleaningPolicy(c.Pipeline.Cleaning); err != nil {
		return Policies{}, err
	}
	if p.Analysis, err = types.ParseAnalysisPolicy(c.Pipeline.Analysis); err != nil {
		return Policies{}, err
	}
	if p.Output, err = types.ParseOutputPolicy(c.Pipeline.Output); err != nil {
		return Policies{}, err
	}
	return p, nil
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	if _, err := c.Policies(); err != nil {
		return err
	}
	return paths.ValidateResultPath(c.Output.ResultPath)
}
