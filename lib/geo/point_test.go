package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistanceTo(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name string
		p    *Point
		q    *Point
		exp  float64
	}{
		{name: "horizontal", p: NewPoint(0, 0), q: NewPoint(4, 0), exp: 4},
		{name: "vertical", p: NewPoint(1, -2), q: NewPoint(1, 5), exp: 7},
		{name: "diagonal", p: NewPoint(3, 2), q: NewPoint(5, 6), exp: 4.47213595499958},
		{name: "pythagorean", p: NewPoint(0, 0), q: NewPoint(3, 4), exp: 5},
		{name: "coincident", p: NewPoint(1.5, 2), q: NewPoint(1.5, 2), exp: 0},
	}

	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tc.exp, tc.p.DistanceTo(tc.q), 1e-12)
			assert.Equal(t, tc.p.DistanceTo(tc.q), tc.q.DistanceTo(tc.p))
			assert.Equal(t, 0., tc.p.DistanceTo(tc.p))
		})
	}
}

func TestPointDistanceToExtremes(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name string
		p    *Point
		q    *Point
		exp  float64
	}{
		{name: "huge", p: NewPoint(0, 0), q: NewPoint(1e160, 1e160), exp: 1.4142135623730951e160},
		{name: "tiny", p: NewPoint(1e-170, 0), q: NewPoint(0, 1e-170), exp: 1.4142135623730951e-170},
	}

	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := tc.p.DistanceTo(tc.q)
			assert.True(t, IsFinite(d))
			assert.Greater(t, d, 0.)
			assert.InEpsilon(t, tc.exp, d, 1e-15)
		})
	}
}

func TestPointSetGetReset(t *testing.T) {
	p := NewPoint(3, 2)
	x, y := p.Get()
	assert.Equal(t, 3., x)
	assert.Equal(t, 2., y)

	p.Set(-1, 7.5)
	x, y = p.Get()
	assert.Equal(t, -1., x)
	assert.Equal(t, 7.5, y)

	p.Reset()
	assert.True(t, p.Equals(&Point{}))
}

func TestPointZeroValueIsOrigin(t *testing.T) {
	var p Point
	assert.Equal(t, "(0,0)", p.String())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(3,2)", NewPoint(3, 2).String())
	assert.Equal(t, "(1.5,-2)", NewPoint(1.5, -2).String())
	assert.Equal(t, "[(0,0), (4,0), (4,2)]", Points{NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 2)}.String())
}

func TestPointEquals(t *testing.T) {
	var nilPoint *Point
	assert.True(t, nilPoint.Equals(nil))
	assert.False(t, NewPoint(1, 1).Equals(nil))
	assert.True(t, NewPoint(1, 1).Equals(NewPoint(1, 1)))
	assert.False(t, NewPoint(1, 1).Equals(NewPoint(1, 2)))
}

func TestVectorTo(t *testing.T) {
	p1 := &Point{1.5, 5.3}
	p2 := &Point{-2, 3}
	c := p1.VectorTo(p2)
	if !c.equals(NewVector(-3.5, -2.3)) {
		t.Fatalf("Expected Vector to be (-3.5, -2.3), got %v", c)
	}

	c = p2.VectorTo(p1)
	if !c.equals(NewVector(3.5, 2.3)) {
		t.Fatalf("Expected Vector to be (3.5, 2.3), got %v", c)
	}
}
