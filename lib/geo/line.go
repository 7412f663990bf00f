package geo

import "fmt"

// Line is a directed segment between two Points.
//
// The length is measured once, when the Line is created. Moving either endpoint afterwards
// does not change it. Slope and axis crossings read the endpoints as they are now.
type Line struct {
	Start *Point
	End   *Point

	length float64
}

func NewLine(start, end *Point) *Line {
	return &Line{
		Start:  start,
		End:    end,
		length: start.DistanceTo(end),
	}
}

func (l *Line) Length() float64 {
	return l.length
}

// Slope fails with ErrDegenerate when the line is vertical or so steep the slope overflows.
func (l *Line) Slope() (float64, error) {
	if l.Start.X == l.End.X {
		return 0, fmt.Errorf("%w: %v has no slope, it is vertical", ErrDegenerate, l)
	}
	slope := (l.Start.Y - l.End.Y) / (l.Start.X - l.End.X)
	if !IsFinite(slope) {
		return 0, fmt.Errorf("%w: slope of %v is out of range", ErrDegenerate, l)
	}
	return slope, nil
}

// HorizontalCross returns the point where the line crosses the x-axis.
//
// There is no crossing when both endpoints are strictly on the same side of the axis
// or when the line is horizontal, including a line lying on the axis itself.
func (l *Line) HorizontalCross() (*Point, bool) {
	if l.Start.Y*l.End.Y > 0 {
		return nil, false
	}
	if l.Start.Y == l.End.Y {
		return nil, false
	}
	x := l.Start.X - (l.Start.Y*(l.End.X-l.Start.X))/(l.End.Y-l.Start.Y)
	return NewPoint(x, 0), true
}

// VerticalCross returns the point where the line crosses the y-axis.
// See HorizontalCross for when there is none.
func (l *Line) VerticalCross() (*Point, bool) {
	if l.Start.X*l.End.X > 0 {
		return nil, false
	}
	if l.Start.X == l.End.X {
		return nil, false
	}
	y := l.Start.Y - (l.Start.X*(l.End.Y-l.Start.Y))/(l.End.X-l.Start.X)
	return NewPoint(0, y), true
}

func (l *Line) ToVector() Vector {
	return l.Start.VectorTo(l.End)
}

func (l *Line) String() string {
	return fmt.Sprintf("line from %v to %v", l.Start, l.End)
}
