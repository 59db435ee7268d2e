// Package commands implements the dataproc command line.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/dataprocessor/internal/dataset"
	"github.com/GriffinCanCode/dataprocessor/internal/infrastructure/config"
	"github.com/GriffinCanCode/dataprocessor/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dataprocessor/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dataprocessor/internal/processor"
	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
	"github.com/GriffinCanCode/dataprocessor/internal/sink"
)

// Version is set at build time with -ldflags "-X ...commands.Version=..."
var Version = "dev"

// stdinPath selects standard input for --input
const stdinPath = "-"

// rootOptions holds flag values; empty strings mean "use configuration"
type rootOptions struct {
	cleaning    string
	analysis    string
	output      string
	resultPath  string
	inputPath   string
	inputFormat string
	logLevel    string
	dev         bool
	metrics     bool
}

// NewRootCommand creates the dataproc command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dataproc [values...]",
		Short: "Compute a summary statistic over a sequence of integers",
		Long: `dataproc cleans a sequence of integers, computes one statistic and
emits "Result = <value>" to the console or to a text file.

Cleaning:  NONE, REMOVE_NEGATIVES, REPLACE_NEGATIVES_WITH_ZERO
Analysis:  MEAN, MEDIAN, STD_DEV, P90_NEAREST_RANK, TOP3_FREQUENT_COUNT_SUM
Output:    CONSOLE, TEXT_FILE`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.cleaning, "cleaning", "c", "", "Cleaning policy (env DATAPROC_CLEANING, default NONE)")
	flags.StringVarP(&opts.analysis, "analysis", "a", "", "Analysis policy (env DATAPROC_ANALYSIS, default MEAN)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output policy (env DATAPROC_OUTPUT, default CONSOLE)")
	flags.StringVar(&opts.resultPath, "result-path", "", "Result file for TEXT_FILE output (env DATAPROC_RESULT_PATH)")
	flags.StringVarP(&opts.inputPath, "input", "i", "", "Read values from a file, or - for stdin")
	flags.StringVar(&opts.inputFormat, "format", "", "Input format: text, json, yaml, toml (default: from file extension)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.BoolVar(&opts.dev, "dev", false, "Development logging (env LOG_DEV)")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print a metrics summary to stderr after the run (env DATAPROC_METRICS)")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dataproc %s\n", Version)
		},
	}
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	policies, err := cfg.Policies()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	values, err := o.readValues(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
		defer writeMetrics(cmd.ErrOrStderr(), logger, metrics)
	}

	sinks := sink.NewRegistry(cfg.Output.ResultPath)
	sinks.Register(types.OutputConsole, sink.Console{Out: cmd.OutOrStdout()})

	proc := processor.New(sinks, logger, metrics)
	_, err = proc.Process(policies.Cleaning, policies.Analysis, policies.Output, values)
	return err
}

// loadConfig reads the environment and applies flags that were set
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("cleaning") {
		cfg.Pipeline.Cleaning = o.cleaning
	}
	if flags.Changed("analysis") {
		cfg.Pipeline.Analysis = o.analysis
	}
	if flags.Changed("output") {
		cfg.Pipeline.Output = o.output
	}
	if flags.Changed("result-path") {
		cfg.Output.ResultPath = o.resultPath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("dev") {
		cfg.Logging.Development = o.dev
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = o.metrics
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readValues takes values from --input when given, otherwise from args
func (o *rootOptions) readValues(stdin io.Reader, args []string) ([]int, error) {
	if o.inputPath == "" {
		if o.inputFormat != "" {
			return nil, errors.New("--format requires --input")
		}
		return dataset.ParseArgs(args)
	}
	if len(args) > 0 {
		return nil, errors.New("values given both as arguments and with --input")
	}

	format := dataset.FormatFromPath(o.inputPath)
	if o.inputFormat != "" {
		f, err := dataset.ParseFormat(o.inputFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if o.inputPath == stdinPath {
		return dataset.Decode(stdin, format)
	}
	return dataset.LoadAs(o.inputPath, format)
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level

	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	return logger, nil
}

// writeMetrics prints the run summary to w whatever the log level, so it is
// reported for failed runs too.
func writeMetrics(w io.Writer, logger *logging.Logger, metrics *monitoring.Metrics) {
	snap, err := metrics.Snapshot()
	if err != nil {
		logger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}
	fmt.Fprintf(w, "metrics: runs=%g errors=%g dropped_values=%g replaced_values=%g empty_inputs=%g\n",
		snap.Runs, snap.Errors, snap.DroppedValues, snap.ReplacedValues, snap.EmptyInputs)
}
