package geo

import (
	"fmt"
	"strings"
)

// Point is a mutable coordinate in the plane. Lines and shapes hold Points by reference
// but snapshot every length they derive from them.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p *Point) Set(x, y float64) {
	p.X = x
	p.Y = y
}

func (p *Point) Get() (x, y float64) {
	return p.X, p.Y
}

// Reset moves p back to the origin.
func (p *Point) Reset() {
	p.X = 0
	p.Y = 0
}

func (p *Point) DistanceTo(other *Point) float64 {
	return EuclideanDistance(p.X, p.Y, other.X, other.Y)
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// Creates a Vector pointing from p to endpoint
func (p *Point) VectorTo(endpoint *Point) Vector {
	return endpoint.ToVector().Minus(p.ToVector())
}

// Creates a Vector pointing to point
func (p *Point) ToVector() Vector {
	return []float64{p.X, p.Y}
}

func (p *Point) String() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

type Points []*Point

func (ps Points) String() string {
	strs := make([]string, 0, len(ps))
	for _, p := range ps {
		strs = append(strs, p.String())
	}
	return "[" + strings.Join(strs, ", ") + "]"
}
