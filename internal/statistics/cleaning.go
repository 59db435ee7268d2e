package statistics

import (
	"fmt"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
)

// Clean applies policy to seq and returns a new slice.
// Unknown policies fall back to an identity copy; callers that need to reject
// them check policy.Valid first.
func Clean(seq []int, policy types.CleaningPolicy) []int {
	switch policy {
	case types.CleaningRemoveNegatives:
		return RemoveNegatives(seq)
	case types.CleaningReplaceNegativesWithZero:
		return ReplaceNegativesWithZero(seq)
	default:
		return Copy(seq)
	}
}

// CleanStrict is Clean but fails on an unknown policy.
func CleanStrict(seq []int, policy types.CleaningPolicy) ([]int, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCleaning, policy)
	}
	return Clean(seq, policy), nil
}

// Copy returns a copy of seq that never aliases it
func Copy(seq []int) []int {
	out := make([]int, len(seq))
	copy(out, seq)
	return out
}

// RemoveNegatives keeps elements >= 0, preserving order
func RemoveNegatives(seq []int) []int {
	out := make([]int, 0, len(seq))
	for _, n := range seq {
		if n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

// ReplaceNegativesWithZero maps each element n to max(n, 0)
func ReplaceNegativesWithZero(seq []int) []int {
	out := make([]int, len(seq))
	for i, n := range seq {
		if n < 0 {
			n = 0
		}
		out[i] = n
	}
	return out
}
