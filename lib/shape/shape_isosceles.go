package shape

import (
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Isosceles has exactly two equal sides. An equilateral triangle is not Isosceles.
type Isosceles struct {
	Triangle
}

func NewIsosceles(isRegular bool, vertices geo.Points) (_ *Isosceles, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", ISOSCELES_TYPE)

	t, err := newTriangle(ISOSCELES_TYPE, isRegular, vertices)
	if err != nil {
		return nil, err
	}
	if isRegular {
		return nil, errorf(ISOSCELES_TYPE, ErrRegularity, "an isosceles triangle cannot be regular")
	}

	a, b, c := t.Sides()
	if equalPairs(a, b, c) != 1 {
		return nil, errorf(ISOSCELES_TYPE, ErrRelation, "sides %v, %v and %v do not have exactly one equal pair", a, b, c)
	}
	return &Isosceles{t}, nil
}
