package geo

import (
	"math"
)

// A N-Dimensional Vector with components (x, y, z, ...) based on the origin
type Vector []float64

// New Vector from components
func NewVector(components ...float64) Vector {
	return components
}

func (a Vector) Minus(b Vector) Vector {
	c := []float64{}
	for i := 0; i < len(a); i++ {
		c = append(c, a[i]-b[i])
	}
	return c
}

func (a Vector) DotProduct(b Vector) float64 {
	sum := 0.0
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func (a Vector) Length() float64 {
	sum := 0.0
	for _, comp := range a {
		sum += comp * comp
	}
	return math.Sqrt(sum)
}

// Orthogonal reports whether a and b are at a right angle to each other.
// The cosine of the angle between them must be within PRECISION of zero.
func (a Vector) Orthogonal(b Vector) bool {
	a, b = a.scaled(), b.scaled()
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return false
	}
	return PrecisionCompare(a.DotProduct(b)/(la*lb), 0, PRECISION) == 0
}

// scaled divides a by its largest absolute component so its squares stay in range.
func (a Vector) scaled() Vector {
	m := 0.0
	for _, comp := range a {
		m = math.Max(m, math.Abs(comp))
	}
	if m == 0 || math.IsInf(m, 0) {
		return a
	}
	c := make(Vector, 0, len(a))
	for _, comp := range a {
		c = append(c, comp/m)
	}
	return c
}
