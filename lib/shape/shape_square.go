package shape

import (
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Square is a Rectangle that must be declared regular and whose four sides are equal.
type Square struct {
	Rectangle
}

func NewSquare(isRegular bool, vertices geo.Points) (_ *Square, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", SQUARE_TYPE)

	base, err := newBaseShape(SQUARE_TYPE, isRegular, vertices, 4)
	if err != nil {
		return nil, err
	}
	if !isRegular {
		return nil, errorf(SQUARE_TYPE, ErrRegularity, "a square must be declared regular")
	}

	l := base.edgeLengths()
	if !(l[0] == l[1] && l[1] == l[2] && l[2] == l[3]) {
		return nil, errorf(SQUARE_TYPE, ErrRelation, "sides %v are not all equal", l)
	}
	return &Square{Rectangle{baseShape: base}}, nil
}
