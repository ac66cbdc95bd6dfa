// Package utils holds small numeric and contract-checking helpers shared across trajopt.
package utils

import "math"

// Square is a faster replacement for math.Pow(n, 2).
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual reports whether a and b differ by no more than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}
