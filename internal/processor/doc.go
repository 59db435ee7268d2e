// Package processor composes the data processing pipeline.
//
// A run is strictly linear:
//
//	raw sequence → cleaning → cleaned sequence → analysis → scalar → "Result = …" → sink
//
// Cleaning and analysis are pure (package statistics); the only side effect
// is the final write to the sink registered for the selected output policy.
// The scalar handed back to the caller is the same value that was formatted.
//
// Errors are never logged here. They are returned to the caller:
//   - statistics.ErrUnsupportedAnalysis, statistics.ErrUnsupportedCleaning and
//     ErrUnsupportedOutput for policies outside the known sets, before any
//     computation
//   - sink.ErrNoSink when no sink is registered for the output policy
//   - the wrapped I/O error of a failed sink write
//
// A Processor keeps no per-run state and may be shared by concurrent callers
// as long as its sink registry is not modified.
//
// Example Usage:
//
//	p := processor.New(sink.NewRegistry(paths.DefaultResultFile), logger, nil)
//	result, err := p.Process(types.CleaningRemoveNegatives, types.AnalysisMedian,
//	    types.OutputConsole, []int{-5, 1, 3, -2, 7})
//	// prints "Result = 3", result == 3.0
package processor
