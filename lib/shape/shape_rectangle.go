package shape

import (
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Rectangle expects its vertices in boundary order, so that edges 0 and 1 are adjacent sides.
// The right angles are taken as given: see CheckCorners.
type Rectangle struct {
	*baseShape
}

func NewRectangle(isRegular bool, vertices geo.Points) (_ *Rectangle, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", RECTANGLE_TYPE)

	base, err := newBaseShape(RECTANGLE_TYPE, isRegular, vertices, 4)
	if err != nil {
		return nil, err
	}
	return &Rectangle{baseShape: base}, nil
}

func (r *Rectangle) Area() (float64, error) {
	return r.edges[0].Length() * r.edges[1].Length(), nil
}

func (r *Rectangle) InnerAngles() ([]float64, error) {
	return []float64{90, 90, 90, 90}, nil
}

// CheckCorners verifies that every pair of consecutive edges meets at a right angle.
// It measures the vertices' current coordinates.
func (r *Rectangle) CheckCorners() error {
	for i, edge := range r.edges {
		next := r.edges[(i+1)%len(r.edges)]
		if !edge.ToVector().Orthogonal(next.ToVector()) {
			return errorf(r.Type, ErrRelation, "corner at %v is not a right angle", next.Start)
		}
	}
	return nil
}
