package statistics

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
)

var (
	// ErrUnsupportedAnalysis is returned for an analysis policy outside the known set
	ErrUnsupportedAnalysis = errors.New("unsupported analysis policy")

	// ErrUnsupportedCleaning is returned for a cleaning policy outside the known set
	ErrUnsupportedCleaning = errors.New("unsupported cleaning policy")
)

// Analyzer computes one statistic over a cleaned sequence
type Analyzer func(seq []int) float64

// AnalyzerFor returns the statistic selected by policy
func AnalyzerFor(policy types.AnalysisPolicy) (Analyzer, error) {
	switch policy {
	case types.AnalysisMean:
		return Mean, nil
	case types.AnalysisMedian:
		return Median, nil
	case types.AnalysisStdDev:
		return StdDev, nil
	case types.AnalysisP90NearestRank:
		return P90NearestRank, nil
	case types.AnalysisTop3FrequentCountSum:
		return Top3FrequentCountSum, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAnalysis, policy)
	}
}

// Analyze routes seq to the statistic selected by policy
func Analyze(seq []int, policy types.AnalysisPolicy) (float64, error) {
	fn, err := AnalyzerFor(policy)
	if err != nil {
		return 0, err
	}
	return fn(seq), nil
}
