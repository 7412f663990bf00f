package shape

import (
	"math"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/planar/lib/geo"
)

// Triangle is any three vertices. Its area and angles are derived from the side lengths alone.
type Triangle struct {
	*baseShape
}

func NewTriangle(isRegular bool, vertices geo.Points) (_ *Triangle, err error) {
	defer xdefer.Errorf(&err, "failed to create %s", TRIANGLE_TYPE)

	t, err := newTriangle(TRIANGLE_TYPE, isRegular, vertices)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func newTriangle(shapeType string, isRegular bool, vertices geo.Points) (Triangle, error) {
	base, err := newBaseShape(shapeType, isRegular, vertices, 3)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{baseShape: base}, nil
}

// Sides returns the edge lengths in edge order.
func (t *Triangle) Sides() (a, b, c float64) {
	return t.edges[0].Length(), t.edges[1].Length(), t.edges[2].Length()
}

// Area uses Heron's formula.
func (t *Triangle) Area() (float64, error) {
	a, b, c, exp, ok := t.normalizedSides()
	if !ok {
		return 0, errorf(t.Type, ErrDegenerate, "sides %v have no finite length", t.sideList())
	}
	s := (a + b + c) / 2
	radicand := s * (s - a) * (s - b) * (s - c)
	if !(radicand >= 0) {
		return 0, errorf(t.Type, ErrDegenerate, "sides %v violate the triangle inequality", t.sideList())
	}
	area := math.Ldexp(math.Sqrt(radicand), 2*exp)
	if math.IsInf(area, 0) || (area == 0 && radicand > 0) {
		return 0, errorf(t.Type, ErrDegenerate, "area of sides %v is out of range", t.sideList())
	}
	return area, nil
}

// InnerAngles uses the law of cosines. The i-th angle is the one opposite edge i.
func (t *Triangle) InnerAngles() ([]float64, error) {
	a, b, c, _, ok := t.normalizedSides()
	if !ok {
		return nil, errorf(t.Type, ErrDegenerate, "sides %v have no finite length", t.sideList())
	}
	if a == 0 || b == 0 || c == 0 {
		return nil, errorf(t.Type, ErrDegenerate, "sides %v include a zero-length side", t.sideList())
	}

	angles := make([]float64, 0, 3)
	for _, sides := range [][3]float64{{a, b, c}, {b, a, c}, {c, a, b}} {
		angle, ok := angleOpposite(sides[0], sides[1], sides[2])
		if !ok {
			return nil, errorf(t.Type, ErrDegenerate, "sides %v do not form a triangle", t.sideList())
		}
		angles = append(angles, angle)
	}
	return angles, nil
}

// angleOpposite returns, in degrees, the angle facing side opposite between sides s1 and s2.
// Rounding may push the cosine just past ±1; that is clamped, anything further is not a triangle.
func angleOpposite(opposite, s1, s2 float64) (float64, bool) {
	cos := (s1*s1 + s2*s2 - opposite*opposite) / (2 * s1 * s2)
	if math.IsNaN(cos) || math.Abs(cos)-1 > geo.PRECISION {
		return 0, false
	}
	if math.Abs(cos) > 1 {
		cos = math.Copysign(1, cos)
	}
	return math.Acos(cos) * 180 / math.Pi, true
}

// normalizedSides returns the sides scaled by 2^-exp so the longest is in [0.5, 1).
// A power of two scales exactly, so the squares and products of the scaled sides stay in
// range and yield the same ratios. ok is false when a side is not finite.
func (t *Triangle) normalizedSides() (a, b, c float64, exp int, ok bool) {
	a, b, c = t.Sides()
	if !geo.IsFinite(a, b, c) {
		return 0, 0, 0, 0, false
	}
	_, exp = math.Frexp(math.Max(a, math.Max(b, c)))
	return math.Ldexp(a, -exp), math.Ldexp(b, -exp), math.Ldexp(c, -exp), exp, true
}

func (t *Triangle) sideList() []float64 {
	a, b, c := t.Sides()
	return []float64{a, b, c}
}

// equalPairs counts the pairs of sides that are equal within tolerance.
func equalPairs(a, b, c float64) int {
	n := 0
	for _, eq := range []bool{geo.ApproxEqual(a, b), geo.ApproxEqual(b, c), geo.ApproxEqual(a, c)} {
		if eq {
			n++
		}
	}
	return n
}
