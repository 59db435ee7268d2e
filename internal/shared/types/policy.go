package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned when a policy name does not match any member.
var ErrUnknownPolicy = errors.New("unknown policy")

// CleaningPolicy selects how negative values are handled before analysis
type CleaningPolicy int

const (
	CleaningNone CleaningPolicy = iota
	CleaningRemoveNegatives
	CleaningReplaceNegativesWithZero
)

// AnalysisPolicy selects the statistic computed over the cleaned sequence
type AnalysisPolicy int

const (
	AnalysisMean AnalysisPolicy = iota
	AnalysisMedian
	AnalysisStdDev
	AnalysisP90NearestRank
	AnalysisTop3FrequentCountSum
)

// OutputPolicy selects the destination of the formatted result
type OutputPolicy int

const (
	OutputConsole OutputPolicy = iota
	OutputTextFile
)

var cleaningNames = []string{
	CleaningNone:                     "NONE",
	CleaningRemoveNegatives:          "REMOVE_NEGATIVES",
	CleaningReplaceNegativesWithZero: "REPLACE_NEGATIVES_WITH_ZERO",
}

var analysisNames = []string{
	AnalysisMean:                 "MEAN",
	AnalysisMedian:               "MEDIAN",
	AnalysisStdDev:               "STD_DEV",
	AnalysisP90NearestRank:       "P90_NEAREST_RANK",
	AnalysisTop3FrequentCountSum: "TOP3_FREQUENT_COUNT_SUM",
}

var outputNames = []string{
	OutputConsole:  "CONSOLE",
	OutputTextFile: "TEXT_FILE",
}

// ============================================================================
// CleaningPolicy
// ============================================================================

// Valid reports whether p is a known cleaning policy
func (p CleaningPolicy) Valid() bool {
	return p >= 0 && int(p) < len(cleaningNames)
}

func (p CleaningPolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("CleaningPolicy(%d)", int(p))
	}
	return cleaningNames[p]
}

// AllCleaningPolicies returns every cleaning policy in declaration order
func AllCleaningPolicies() []CleaningPolicy {
	all := make([]CleaningPolicy, len(cleaningNames))
	for i := range cleaningNames {
		all[i] = CleaningPolicy(i)
	}
	return all
}

// ParseCleaningPolicy parses a cleaning policy name
func ParseCleaningPolicy(name string) (CleaningPolicy, error) {
	i, err := lookup(cleaningNames, name)
	if err != nil {
		return 0, fmt.Errorf("cleaning policy %q: %w", name, err)
	}
	return CleaningPolicy(i), nil
}

// ============================================================================
// AnalysisPolicy
// ============================================================================

// Valid reports whether p is a known analysis policy
func (p AnalysisPolicy) Valid() bool {
	return p >= 0 && int(p) < len(analysisNames)
}

func (p AnalysisPolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("AnalysisPolicy(%d)", int(p))
	}
	return analysisNames[p]
}

// AllAnalysisPolicies returns every analysis policy in declaration order
func AllAnalysisPolicies() []AnalysisPolicy {
	all := make([]AnalysisPolicy, len(analysisNames))
	for i := range analysisNames {
		all[i] = AnalysisPolicy(i)
	}
	return all
}

// ParseAnalysisPolicy parses an analysis policy name
func ParseAnalysisPolicy(name string) (AnalysisPolicy, error) {
	i, err := lookup(analysisNames, name)
	if err != nil {
		return 0, fmt.Errorf("analysis policy %q: %w", name, err)
	}
	return AnalysisPolicy(i), nil
}

// ============================================================================
// OutputPolicy
// ============================================================================

// Valid reports whether p is a known output policy
func (p OutputPolicy) Valid() bool {
	return p >= 0 && int(p) < len(outputNames)
}

func (p OutputPolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("OutputPolicy(%d)", int(p))
	}
	return outputNames[p]
}

// AllOutputPolicies returns every output policy in declaration order
func AllOutputPolicies() []OutputPolicy {
	all := make([]OutputPolicy, len(outputNames))
	for i := range outputNames {
		all[i] = OutputPolicy(i)
	}
	return all
}

// ParseOutputPolicy parses an output policy name
func ParseOutputPolicy(name string) (OutputPolicy, error) {
	i, err := lookup(outputNames, name)
	if err != nil {
		return 0, fmt.Errorf("output policy %q: %w", name, err)
	}
	return OutputPolicy(i), nil
}

// lookup matches name against the canonical names, ignoring case and
// treating '-' as '_'.
func lookup(names []string, name string) (int, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, n := range names {
		if n == normalized {
			return i, nil
		}
	}
	return 0, ErrUnknownPolicy
}
