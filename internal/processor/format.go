package processor

import "strconv"

// ResultPrefix precedes the value in formatted output
const ResultPrefix = "Result = "

// Format renders result with Go's default float formatting (as fmt.Sprint
// does): shortest representation, no fixed decimals, "NaN" for NaN.
func Format(result float64) string {
	return ResultPrefix + strconv.FormatFloat(result, 'g', -1, 64)
}
