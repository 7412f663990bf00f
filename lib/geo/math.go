package geo

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// RelTolerance is the relative margin within which two lengths are considered equal.
	RelTolerance = 1e-9
	// PythagoreanTolerance is the absolute margin allowed below the squared hypotenuse.
	PythagoreanTolerance = 1e-9
	// PRECISION is the absolute margin used by corner and vector comparisons.
	PRECISION = 1e-9
)

// ErrDegenerate is returned when a measurement is undefined for the given geometry,
// e.g. the slope of a vertical line or the angles of a triangle with a zero-length side.
var ErrDegenerate = errors.New("degenerate geometry")

// EuclideanDistance does not square the coordinate differences, so it only overflows when the
// distance itself does and two distinct points are never at distance 0.
func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	if x1 == x2 {
		return math.Abs(y1 - y2)
	} else if y1 == y2 {
		return math.Abs(x1 - x2)
	} else {
		return math.Hypot(x1-x2, y1-y2)
	}
}

// ApproxEqual reports whether a and b are equal within RelTolerance.
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinRel(a, b, RelTolerance)
}

// compare a and b and consider them equal if
// difference is less than precision e (e.g. e=0.001)
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// IsFinite reports whether none of vs is an infinity or NaN.
func IsFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
