package shape

import (
	"fmt"

	"oss.terrastruct.com/planar/lib/geo"
	"oss.terrastruct.com/planar/lib/go2"
)

const (
	SHAPE_TYPE        = "Shape"
	RECTANGLE_TYPE    = "Rectangle"
	SQUARE_TYPE       = "Square"
	TRIANGLE_TYPE     = "Triangle"
	EQUILATERAL_TYPE  = "Equilateral"
	ISOSCELES_TYPE    = "Isosceles"
	SCALENE_TYPE      = "Scalene"
	TRIRECTANGLE_TYPE = "Trirectangle"
)

// Shape is a polygon whose edges, and every metric derived from their lengths,
// were fixed when it was created.
type Shape interface {
	Is(shape string) bool
	GetType() string

	// IsRegular is the regularity the shape was declared with.
	IsRegular() bool
	Vertices() geo.Points
	// Edges connect each vertex to the next one, the last edge closing the polygon.
	Edges() []*geo.Line

	Perimeter() float64
	Area() (float64, error)
	// InnerAngles are in degrees.
	InnerAngles() ([]float64, error)

	String() string
}

type baseShape struct {
	Type      string
	regular   bool
	vertices  geo.Points
	edges     []*geo.Line
	perimeter float64
}

// newBaseShape connects the vertices and checks the declared regularity.
// count is the exact number of vertices required, or 0 for any polygon.
func newBaseShape(shapeType string, isRegular bool, vertices geo.Points, count int) (*baseShape, error) {
	if count > 0 && len(vertices) != count {
		return nil, errorf(shapeType, ErrCardinality, "expected %d vertices, got %d", count, len(vertices))
	}
	if len(vertices) < 3 {
		return nil, errorf(shapeType, ErrCardinality, "expected at least 3 vertices, got %d", len(vertices))
	}
	for i, v := range vertices {
		if v == nil {
			return nil, errorf(shapeType, ErrCardinality, "vertex %d is missing", i)
		}
	}

	s := &baseShape{
		Type:     shapeType,
		regular:  isRegular,
		vertices: append(geo.Points(nil), vertices...),
		edges:    make([]*geo.Line, 0, len(vertices)),
	}
	for i := range s.vertices {
		edge := geo.NewLine(s.vertices[i], s.vertices[(i+1)%len(s.vertices)])
		s.edges = append(s.edges, edge)
	}
	for i, edge := range s.edges {
		if !geo.IsFinite(edge.Length()) {
			return nil, errorf(shapeType, ErrDegenerate, "edge %d, %v, has no finite length", i, edge)
		}
	}
	s.perimeter = go2.Sum(s.edgeLengths())
	if !geo.IsFinite(s.perimeter) {
		return nil, errorf(shapeType, ErrDegenerate, "perimeter overflows")
	}

	if isRegular {
		first := s.edges[0].Length()
		for i, edge := range s.edges {
			if !geo.ApproxEqual(first, edge.Length()) {
				return nil, errorf(shapeType, ErrNotRegular, "edge %d has length %v, edge 0 has length %v", i, edge.Length(), first)
			}
		}
	}
	return s, nil
}

func (s baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s baseShape) GetType() string {
	return s.Type
}

func (s baseShape) IsRegular() bool {
	return s.regular
}

func (s baseShape) Vertices() geo.Points {
	return s.vertices
}

func (s baseShape) Edges() []*geo.Line {
	return s.edges
}

func (s baseShape) Perimeter() float64 {
	return s.perimeter
}

func (s baseShape) Area() (float64, error) {
	return 0, errorf(s.Type, ErrNotImplemented, "area of a general polygon")
}

func (s baseShape) InnerAngles() ([]float64, error) {
	return nil, errorf(s.Type, ErrNotImplemented, "inner angles of a general polygon")
}

func (s baseShape) String() string {
	return fmt.Sprintf("%s with vertices %v", s.Type, s.vertices)
}

// edgeLengths returns the snapshotted edge lengths in edge order.
func (s baseShape) edgeLengths() []float64 {
	lengths := make([]float64, 0, len(s.edges))
	for _, edge := range s.edges {
		lengths = append(lengths, edge.Length())
	}
	return lengths
}

// NewShape creates a shape of the given type.
func NewShape(shapeType string, isRegular bool, vertices geo.Points) (Shape, error) {
	switch shapeType {
	case SHAPE_TYPE:
		return toShape(NewPolygon(isRegular, vertices))
	case RECTANGLE_TYPE:
		return toShape(NewRectangle(isRegular, vertices))
	case SQUARE_TYPE:
		return toShape(NewSquare(isRegular, vertices))
	case TRIANGLE_TYPE:
		return toShape(NewTriangle(isRegular, vertices))
	case EQUILATERAL_TYPE:
		return toShape(NewEquilateral(isRegular, vertices))
	case ISOSCELES_TYPE:
		return toShape(NewIsosceles(isRegular, vertices))
	case SCALENE_TYPE:
		return toShape(NewScalene(isRegular, vertices))
	case TRIRECTANGLE_TYPE:
		return toShape(NewTrirectangle(isRegular, vertices))
	default:
		return nil, errorf(shapeType, ErrUnknownType, "%q", shapeType)
	}
}

// toShape keeps a failed constructor's nil pointer out of the interface.
func toShape[T Shape](s T, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
