// Package mathutil provides small numeric helpers.
package mathutil

import "math"

// Truncate cuts x to the given number of decimal places, rounding toward
// zero. A decimals value of zero or less drops the fractional part.
//
//	Truncate(3.14159, 2) // 3.14
//	Truncate(10.999, 0)  // 10
func Truncate(x float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Trunc(x)
	}
	factor := math.Pow(10, float64(decimals))
	return math.Trunc(x*factor) / factor
}
