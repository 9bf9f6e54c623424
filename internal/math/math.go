package math

import (
	"strconv"
)

// Format formats a float with the given number of decimals.
// NaN is kept as 'NaN', so that unscored folds stand out.
func Format(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}
