package processor

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 2.5, want: "Result = 2.5"},
		{in: 3.0, want: "Result = 3"},
		{in: 0, want: "Result = 0"},
		{in: -1.5, want: "Result = -1.5"},
		{in: math.NaN(), want: "Result = NaN"},
		{in: 1e21, want: "Result = 1e+21"},
		{in: 1.0 / 3.0, want: "Result = 0.3333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatMatchesDefaultFloatText(t *testing.T) {
	for _, v := range []float64{2.5, 9, 0.1 + 0.2, math.NaN(), math.Inf(1), 123456789.125} {
		assert.Equal(t, ResultPrefix+fmt.Sprint(v), Format(v))
	}
}
