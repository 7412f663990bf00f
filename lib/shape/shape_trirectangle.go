package shape

import (
	"math"

	"golang.org/x/exp/slices"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Trirectangle is a right triangle.
type Trirectangle struct {
	Triangle
}

func NewTrirectangle(isRegular bool, vertices geo.Points) (_ *Trirectangle, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", TRIRECTANGLE_TYPE)

	t, err := newTriangle(TRIRECTANGLE_TYPE, isRegular, vertices)
	if err != nil {
		return nil, err
	}
	if isRegular {
		return nil, errorf(TRIRECTANGLE_TYPE, ErrRegularity, "a right triangle cannot be regular")
	}

	a, b, c := t.Sides()
	if !isPythagorean(a, b, c) {
		return nil, errorf(TRIRECTANGLE_TYPE, ErrRelation, "sides %v, %v and %v do not satisfy the Pythagorean relation", a, b, c)
	}
	return &Trirectangle{t}, nil
}

// Hypotenuse returns the longest side.
func (t *Trirectangle) Hypotenuse() float64 {
	a, b, c := t.Sides()
	return sortedSides(a, b, c)[2]
}

// isPythagorean reports whether the sorted sides x <= y <= z satisfy
// z² - PythagoreanTolerance < x² + y² <= z².
// When z² leaves the float range the sides are first scaled so that z is in [0.5, 1).
func isPythagorean(a, b, c float64) bool {
	s := sortedSides(a, b, c)
	if !geo.IsFinite(s...) {
		return false
	}
	if hyp := s[2] * s[2]; math.IsInf(hyp, 0) || (hyp == 0 && s[2] > 0) {
		_, exp := math.Frexp(s[2])
		for i := range s {
			s[i] = math.Ldexp(s[i], -exp)
		}
	}
	legs := s[0]*s[0] + s[1]*s[1]
	hyp := s[2] * s[2]
	return hyp-geo.PythagoreanTolerance < legs && legs <= hyp
}

func sortedSides(a, b, c float64) []float64 {
	s := []float64{a, b, c}
	slices.Sort(s)
	return s
}
