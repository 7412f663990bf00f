package shape

import (
	"oss.terrastruct.com/planar/lib/geo"
)

// Classify returns the most specific shape the vertices form.
//
// Triangles are tried as Equilateral, Trirectangle, Isosceles and Scalene, in that order.
// Four vertices form a Square or a Rectangle only if all their corners are right angles.
// Anything else is a general polygon, declared irregular unless its edges are all equal.
func Classify(vertices geo.Points) (Shape, error) {
	switch len(vertices) {
	case 3:
		return classifyTriangle(vertices)
	case 4:
		return classifyQuadrilateral(vertices)
	}
	return classifyPolygon(vertices)
}

func classifyPolygon(vertices geo.Points) (Shape, error) {
	if s, err := NewPolygon(true, vertices); err == nil {
		return s, nil
	}
	return toShape(NewPolygon(false, vertices))
}

func classifyTriangle(vertices geo.Points) (Shape, error) {
	if s, err := NewEquilateral(true, vertices); err == nil {
		return s, nil
	}
	if s, err := NewTrirectangle(false, vertices); err == nil {
		return s, nil
	}
	if s, err := NewIsosceles(false, vertices); err == nil {
		return s, nil
	}
	if s, err := NewScalene(false, vertices); err == nil {
		return s, nil
	}
	return toShape(NewTriangle(false, vertices))
}

func classifyQuadrilateral(vertices geo.Points) (Shape, error) {
	if s, err := NewSquare(true, vertices); err == nil && s.CheckCorners() == nil {
		return s, nil
	}
	r, err := NewRectangle(false, vertices)
	if err != nil {
		return nil, err
	}
	if r.CheckCorners() == nil {
		return r, nil
	}
	return classifyPolygon(vertices)
}
