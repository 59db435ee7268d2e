package statistics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, Mean([]int{1, 2, 3, 4}))
	assert.Equal(t, -2.0, Mean([]int{-1, -3}))
	assert.Equal(t, 7.0, Mean([]int{7}))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  float64
	}{
		{name: "odd", input: []int{7, 1, 3}, want: 3},
		{name: "even", input: []int{10, 1, 4, 6}, want: 5},
		{name: "even with half", input: []int{1, 2}, want: 1.5},
		{name: "single", input: []int{-4}, want: -4},
		{name: "duplicates", input: []int{2, 2, 2, 9}, want: 2},
		{name: "negative half", input: []int{-3, 0}, want: -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.input))
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	input := []int{5, 1}
	assert.Equal(t, 3.0, Median(input))
	assert.Equal(t, []int{5, 1}, input)
}

func TestMedianIgnoresOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	input := randomSequence(rng, 31)
	want := Median(input)

	for i := 0; i < 20; i++ {
		shuffled := Copy(input)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Median(shuffled))
	}
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 2.0, StdDev([]int{2, 4, 4, 4, 5, 5, 7, 9}))
	assert.Equal(t, 0.0, StdDev([]int{3}))
	assert.Equal(t, 0.0, StdDev([]int{6, 6, 6}))
	assert.InDelta(t, 0.5, StdDev([]int{1, 2}), 1e-12)
}

func TestStdDevNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		input := randomSequence(rng, 1+rng.Intn(30))
		assert.GreaterOrEqual(t, StdDev(input), 0.0)
	}
}

func TestP90NearestRank(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  float64
	}{
		{name: "one to ten", input: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, want: 9},
		{name: "unsorted", input: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, want: 9},
		{name: "single", input: []int{42}, want: 42},
		{name: "two elements", input: []int{1, 2}, want: 2},
		{name: "five elements", input: []int{50, 10, 40, 20, 30}, want: 50},
		{name: "eleven elements", input: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, want: 10},
		{name: "twenty elements", input: seq(1, 20), want: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, P90NearestRank(tt.input))
		})
	}
}

func TestP90MatchesCeilRank(t *testing.T) {
	for n := 1; n <= 200; n++ {
		input := seq(1, n)
		rank := int(math.Ceil(0.90 * float64(n)))
		assert.Equal(t, float64(rank), P90NearestRank(input), "n=%d", n)
	}
}

func TestPercentile(t *testing.T) {
	input := seq(1, 10)

	assert.Equal(t, 10.0, Percentile(input, 1))
	assert.Equal(t, 5.0, Percentile(input, 0.5))
	assert.Equal(t, 1.0, Percentile(input, 0.05))
	assert.True(t, math.IsNaN(Percentile(input, 0)))
	assert.True(t, math.IsNaN(Percentile(input, 1.5)))
	assert.True(t, math.IsNaN(Percentile(input, math.NaN())))
}

func TestFrequencies(t *testing.T) {
	got := Frequencies([]int{1, 1, 2, 2, 2, 3, 4, 4, 4, 4})
	assert.Equal(t, []Frequency{
		{Value: 4, Count: 4},
		{Value: 2, Count: 3},
		{Value: 1, Count: 2},
		{Value: 3, Count: 1},
	}, got)
}

func TestTop3FrequentCountSum(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  float64
	}{
		{name: "distinct counts", input: []int{1, 1, 2, 2, 2, 3, 4, 4, 4, 4}, want: 9},
		{name: "fewer than three values", input: []int{5, 5, 6}, want: 3},
		{name: "single value", input: []int{8}, want: 1},
		{name: "ties broken by value", input: []int{9, 9, 1, 1, 5, 5, 3}, want: 6},
		{name: "all unique", input: []int{4, 3, 2, 1}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Top3FrequentCountSum(tt.input))
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, empty := range [][]int{nil, {}} {
		assert.True(t, math.IsNaN(Mean(empty)))
		assert.True(t, math.IsNaN(Median(empty)))
		assert.True(t, math.IsNaN(StdDev(empty)))
		assert.True(t, math.IsNaN(P90NearestRank(empty)))
		assert.Equal(t, 0.0, Top3FrequentCountSum(empty))
		assert.False(t, math.IsNaN(Top3FrequentCountSum(empty)))
	}
}

func TestAnalyze(t *testing.T) {
	input := []int{1, 1, 2, 2, 2, 3, 4, 4, 4, 4}

	tests := []struct {
		policy types.AnalysisPolicy
		want   float64
	}{
		{policy: types.AnalysisMean, want: 2.7},
		{policy: types.AnalysisMedian, want: 2.5},
		{policy: types.AnalysisP90NearestRank, want: 4},
		{policy: types.AnalysisTop3FrequentCountSum, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			got, err := Analyze(input, tt.policy)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestAnalyzeUnsupported(t *testing.T) {
	got, err := Analyze([]int{1, 2, 3}, types.AnalysisPolicy(99))
	assert.ErrorIs(t, err, ErrUnsupportedAnalysis)
	assert.Zero(t, got)

	fn, err := AnalyzerFor(types.AnalysisPolicy(-1))
	assert.ErrorIs(t, err, ErrUnsupportedAnalysis)
	assert.Nil(t, fn)
}

func TestEveryPolicyHasAnalyzer(t *testing.T) {
	for _, p := range types.AllAnalysisPolicies() {
		fn, err := AnalyzerFor(p)
		require.NoError(t, err, p.String())
		assert.NotNil(t, fn)
	}
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
