package shape

import (
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

type Scalene struct {
	Triangle
}

func NewScalene(isRegular bool, vertices geo.Points) (_ *Scalene, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", SCALENE_TYPE)

	t, err := newTriangle(SCALENE_TYPE, isRegular, vertices)
	if err != nil {
		return nil, err
	}
	if isRegular {
		return nil, errorf(SCALENE_TYPE, ErrRegularity, "a scalene triangle cannot be regular")
	}

	a, b, c := t.Sides()
	if equalPairs(a, b, c) != 0 {
		return nil, errorf(SCALENE_TYPE, ErrRelation, "sides %v, %v and %v are not pairwise distinct", a, b, c)
	}
	return &Scalene{t}, nil
}
