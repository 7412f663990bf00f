package shape

import (
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

type Equilateral struct {
	Triangle
}

func NewEquilateral(isRegular bool, vertices geo.Points) (_ *Equilateral, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", EQUILATERAL_TYPE)

	t, err := newTriangle(EQUILATERAL_TYPE, isRegular, vertices)
	if err != nil {
		return nil, err
	}
	if !isRegular {
		return nil, errorf(EQUILATERAL_TYPE, ErrRegularity, "an equilateral triangle must be declared regular")
	}

	// (1,√3) is 1.9999999999999998 away from (2,0): equal sides are compared within tolerance.
	a, b, c := t.Sides()
	if equalPairs(a, b, c) != 3 {
		return nil, errorf(EQUILATERAL_TYPE, ErrRelation, "sides %v, %v and %v are not all equal", a, b, c)
	}
	return &Equilateral{t}, nil
}
