// Package types provides the policy enumerations shared by the data processor.
//
// Each processing stage is selected by a closed set of policies:
//   - CleaningPolicy: how negative values are handled before analysis
//   - AnalysisPolicy: which summary statistic is computed
//   - OutputPolicy: where the formatted result is written
//
// Policies render as their canonical upper-snake names and parse back from
// them case-insensitively, so the same names work for flags and environment
// variables.
//
// Example Usage:
//
//	analysis, err := types.ParseAnalysisPolicy("p90_nearest_rank")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(analysis) // P90_NEAREST_RANK
package types
