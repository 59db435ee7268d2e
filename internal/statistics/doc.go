// Package statistics provides the cleaning transforms and summary statistics
// of the data processor.
//
// Everything here is a pure function over []int: inputs are never mutated and
// no state is kept between calls, so the functions are safe to call from
// concurrent goroutines on independent sequences.
//
// Cleaning:
//   - RemoveNegatives: keep elements >= 0 in their original order
//   - ReplaceNegativesWithZero: map n to max(n, 0)
//
// Analysis (empty input handled by each statistic):
//   - Mean, Median, StdDev (population), P90NearestRank: NaN on empty input
//   - Top3FrequentCountSum: 0 on empty input
//
// Built on gonum.org/v1/gonum/stat for the floating-point statistics.
//
// Example Usage:
//
//	cleaned := statistics.Clean(data, types.CleaningRemoveNegatives)
//	median, err := statistics.Analyze(cleaned, types.AnalysisMedian)
package statistics
