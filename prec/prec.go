// Package prec provides floating-point comparison helpers with absolute
// and relative tolerances.
package prec

import "math"

// AlmostEqual reports whether a and b differ by less than eps in absolute
// terms. Equal infinities compare true; NaN never compares true.
func AlmostEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < eps
}

// AlmostEqualRel reports whether a and b agree within relEps scaled by the
// larger magnitude of the two. When both values are zero the comparison
// degenerates to an absolute check against relEps.
func AlmostEqualRel(a, b, relEps float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	mag := math.Max(math.Abs(a), math.Abs(b))
	if mag == 0 {
		return diff < relEps
	}
	return diff < relEps*mag
}
