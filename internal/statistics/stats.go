package statistics

import (
	"cmp"
	gomath "math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// topFrequentLimit is the number of most frequent values summed by Top3FrequentCountSum
const topFrequentLimit = 3

// p90 is the quantile used by P90NearestRank
const p90 = 0.90

// Mean calculates the arithmetic mean using gonum
func Mean(seq []int) float64 {
	if len(seq) == 0 {
		return gomath.NaN()
	}
	return stat.Mean(toFloats(seq), nil)
}

// Median returns the middle element of the sorted sequence, or the average of
// the two middle elements when the length is even. The two middle values are
// summed as integers before the division.
func Median(seq []int) float64 {
	if len(seq) == 0 {
		return gomath.NaN()
	}

	sorted := sortedCopy(seq)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2.0
}

// StdDev calculates the population standard deviation (divisor n).
// gonum's StdDev is the sample estimate, so the second central moment is used instead.
func StdDev(seq []int) float64 {
	if len(seq) == 0 {
		return gomath.NaN()
	}
	variance := stat.Moment(2, toFloats(seq), nil)
	return gomath.Sqrt(variance)
}

// P90NearestRank returns the 90th percentile using the nearest-rank method
func P90NearestRank(seq []int) float64 {
	if len(seq) == 0 {
		return gomath.NaN()
	}
	return Percentile(seq, p90)
}

// Percentile returns the nearest-rank percentile for p in (0, 1]: the element
// at 1-based position ceil(p*n) of the sorted sequence. It returns NaN for
// empty input or p outside (0, 1].
//
// gonum's Empirical quantile picks the first element whose cumulative count
// reaches p*n, which is exactly the nearest rank.
func Percentile(seq []int, p float64) float64 {
	if len(seq) == 0 || !(p > 0 && p <= 1) {
		return gomath.NaN()
	}

	sorted := toFloats(sortedCopy(seq))
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Frequency is the number of occurrences of one distinct value
type Frequency struct {
	Value int
	Count int
}

// Frequencies counts occurrences per distinct value, ordered by count
// descending and then by value ascending.
func Frequencies(seq []int) []Frequency {
	counts := make(map[int]int, len(seq))
	for _, n := range seq {
		counts[n]++
	}

	freqs := make([]Frequency, 0, len(counts))
	for v, c := range counts {
		freqs = append(freqs, Frequency{Value: v, Count: c})
	}

	slices.SortFunc(freqs, func(a, b Frequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return freqs
}

// Top3FrequentCountSum sums the occurrence counts of the three most frequent
// values (fewer if there are fewer distinct values). Empty input yields 0.
func Top3FrequentCountSum(seq []int) float64 {
	if len(seq) == 0 {
		return 0.0
	}

	freqs := Frequencies(seq)
	total := 0
	for _, f := range freqs[:min(topFrequentLimit, len(freqs))] {
		total += f.Count
	}
	return float64(total)
}

func sortedCopy(seq []int) []int {
	sorted := Copy(seq)
	slices.Sort(sorted)
	return sorted
}

func toFloats(seq []int) []float64 {
	out := make([]float64, len(seq))
	for i, n := range seq {
		out[i] = float64(n)
	}
	return out
}
