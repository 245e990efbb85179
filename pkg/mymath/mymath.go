// Package mymath contains the arithmetic used by the demo.
package mymath

// Halve returns half of x.
func Halve(x float64) float64 {
	return x / 2
}
