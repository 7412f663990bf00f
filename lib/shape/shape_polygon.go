package shape

import (
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Polygon is a general shape of any number of vertices. It knows its edges and
// perimeter but neither its area nor its inner angles.
type Polygon struct {
	*baseShape
}

func NewPolygon(isRegular bool, vertices geo.Points) (_ *Polygon, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", SHAPE_TYPE)

	base, err := newBaseShape(SHAPE_TYPE, isRegular, vertices, 0)
	if err != nil {
		return nil, err
	}
	return &Polygon{baseShape: base}, nil
}
