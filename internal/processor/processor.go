package processor

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/dataprocessor/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dataprocessor/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dataprocessor/internal/shared/id"
	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
	"github.com/GriffinCanCode/dataprocessor/internal/sink"
	"github.com/GriffinCanCode/dataprocessor/internal/statistics"
)

// ErrUnsupportedOutput is returned for an output policy outside the known set
var ErrUnsupportedOutput = errors.New("unsupported output policy")

// Processor runs the cleaning → analysis → output pipeline
type Processor struct {
	sinks   *sink.Registry
	logger  *logging.Logger
	metrics *monitoring.Metrics
	ids     *id.Generator
}

// New creates a processor. A nil logger discards logs, nil metrics records
// nothing, and nil sinks means no output channel is available.
func New(sinks *sink.Registry, logger *logging.Logger, metrics *monitoring.Metrics) *Processor {
	if sinks == nil {
		sinks = sink.NewEmptyRegistry()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Processor{
		sinks:   sinks,
		logger:  logger,
		metrics: metrics,
		ids:     id.Default(),
	}
}

// Process cleans data, analyzes it, writes the formatted result to the sink
// for output and returns the result. data is never modified.
func (p *Processor) Process(cleaning types.CleaningPolicy, analysis types.AnalysisPolicy, output types.OutputPolicy, data []int) (float64, error) {
	timer := monitoring.NewTimer(p.metrics, analysis.String(), output.String())

	result, err := p.process(cleaning, analysis, output, data)
	if err != nil {
		timer.Stop(monitoring.StatusError)
		return 0, err
	}

	timer.Stop(monitoring.StatusSuccess)
	return result, nil
}

func (p *Processor) process(cleaning types.CleaningPolicy, analysis types.AnalysisPolicy, output types.OutputPolicy, data []int) (float64, error) {
	statistic, err := statistics.AnalyzerFor(analysis)
	if err != nil {
		return 0, err
	}
	if !output.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}
	target, err := p.sinks.Lookup(output)
	if err != nil {
		return 0, err
	}

	log := p.logger.With(
		zap.String("run_id", p.ids.NewRunID().String()),
		zap.Stringer("cleaning", cleaning),
		zap.Stringer("analysis", analysis),
		zap.Stringer("output", output),
	)

	result, err := p.run(log, cleaning, analysis, statistic, data)
	if err != nil {
		return 0, err
	}

	text := Format(result)
	if err := target.Write(text); err != nil {
		return 0, fmt.Errorf("emit result to %s: %w", output, err)
	}
	log.Debug("Result emitted", zap.String("text", text))

	return result, nil
}

// Compute runs cleaning and analysis without writing anything
func (p *Processor) Compute(cleaning types.CleaningPolicy, analysis types.AnalysisPolicy, data []int) (float64, error) {
	statistic, err := statistics.AnalyzerFor(analysis)
	if err != nil {
		return 0, err
	}

	log := p.logger.With(
		zap.Stringer("cleaning", cleaning),
		zap.Stringer("analysis", analysis),
	)
	return p.run(log, cleaning, analysis, statistic, data)
}

// run executes the pure part of the pipeline. An unknown cleaning policy
// fails before anything is computed or recorded.
func (p *Processor) run(log *logging.Logger, cleaning types.CleaningPolicy, analysis types.AnalysisPolicy, statistic statistics.Analyzer, data []int) (float64, error) {
	cleaned, err := statistics.CleanStrict(data, cleaning)
	if err != nil {
		return 0, err
	}
	p.recordCleaning(cleaning, data, cleaned)

	log.Debug("Input cleaned",
		zap.Int("input_len", len(data)),
		zap.Int("cleaned_len", len(cleaned)),
	)

	if len(cleaned) == 0 {
		p.metrics.RecordEmpty(analysis.String())
	}

	result := statistic(cleaned)
	log.Debug("Statistic computed",
		zap.Float64("result", result),
		zap.Bool("nan", gomath.IsNaN(result)),
	)
	return result, nil
}

func (p *Processor) recordCleaning(cleaning types.CleaningPolicy, data, cleaned []int) {
	if p.metrics == nil {
		return
	}

	dropped := len(data) - len(cleaned)
	replaced := 0
	if cleaning == types.CleaningReplaceNegativesWithZero {
		for _, n := range data {
			if n < 0 {
				replaced++
			}
		}
	}
	p.metrics.RecordCleaning(cleaning.String(), len(data), dropped, replaced)
}
