package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineLength(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(3, 4))
	assert.Equal(t, 5., l.Length())

	l = NewLine(NewPoint(2, 2), NewPoint(2, 2))
	assert.Equal(t, 0., l.Length())
}

func TestLineLengthIsSnapshot(t *testing.T) {
	start := NewPoint(0, 0)
	end := NewPoint(3, 4)
	l := NewLine(start, end)

	end.Set(30, 40)
	start.Reset()
	assert.Equal(t, 5., l.Length())
	assert.Equal(t, 50., start.DistanceTo(end))
	// The line still refers to the moved points.
	assert.Same(t, end, l.End)
}

func TestLineSlope(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name  string
		start *Point
		end   *Point
		exp   float64
	}{
		{name: "horizontal", start: NewPoint(3, 2), end: NewPoint(1, 2), exp: 0},
		{name: "rising", start: NewPoint(0, 0), end: NewPoint(2, 4), exp: 2},
		{name: "falling", start: NewPoint(-1, 1), end: NewPoint(1, -1), exp: -1},
		{name: "reversed", start: NewPoint(2, 4), end: NewPoint(0, 0), exp: 2},
	}

	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			slope, err := NewLine(tc.start, tc.end).Slope()
			require.NoError(t, err)
			assert.Equal(t, tc.exp, slope)
		})
	}
}

func TestLineSlopeVertical(t *testing.T) {
	_, err := NewLine(NewPoint(1, 0), NewPoint(1, 5)).Slope()
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = NewLine(NewPoint(1, 1), NewPoint(1, 1)).Slope()
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestLineSlopeOverflow(t *testing.T) {
	_, err := NewLine(NewPoint(0, 0), NewPoint(1e-300, 1e10)).Slope()
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestLineLengthExtremes(t *testing.T) {
	l := NewLine(NewPoint(1e-170, 0), NewPoint(0, 1e-170))
	assert.Greater(t, l.Length(), 0.)
	assert.InEpsilon(t, 1.4142135623730951e-170, l.Length(), 1e-15)

	l = NewLine(NewPoint(0, 0), NewPoint(1e160, 1e160))
	assert.True(t, IsFinite(l.Length()))
	assert.InEpsilon(t, 1.4142135623730951e160, l.Length(), 1e-15)

	// Only a length that is itself out of range overflows.
	l = NewLine(NewPoint(-1e308, 0), NewPoint(1e308, 0))
	assert.False(t, IsFinite(l.Length()))
}

func TestLineHorizontalCross(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name  string
		start *Point
		end   *Point
		exp   *Point
	}{
		{name: "through_origin", start: NewPoint(-1, -1), end: NewPoint(1, 1), exp: NewPoint(0, 0)},
		{name: "offset", start: NewPoint(2, -2), end: NewPoint(4, 2), exp: NewPoint(3, 0)},
		{name: "touches_at_start", start: NewPoint(5, 0), end: NewPoint(7, 3), exp: NewPoint(5, 0)},
		{name: "vertical", start: NewPoint(1, 3), end: NewPoint(1, -3), exp: NewPoint(1, 0)},
		{name: "both_above", start: NewPoint(0, 1), end: NewPoint(5, 2)},
		{name: "both_below", start: NewPoint(0, -1), end: NewPoint(5, -2)},
		{name: "horizontal", start: NewPoint(0, 3), end: NewPoint(5, 3)},
		{name: "on_axis", start: NewPoint(0, 0), end: NewPoint(5, 0)},
	}

	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, ok := NewLine(tc.start, tc.end).HorizontalCross()
			if tc.exp == nil {
				assert.False(t, ok)
				assert.Nil(t, p)
				return
			}
			require.True(t, ok)
			assert.True(t, tc.exp.Equals(p), "expected %v, got %v", tc.exp, p)
		})
	}
}

func TestLineVerticalCross(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name  string
		start *Point
		end   *Point
		exp   *Point
	}{
		{name: "through_origin", start: NewPoint(-1, -1), end: NewPoint(1, 1), exp: NewPoint(0, 0)},
		{name: "offset", start: NewPoint(-2, 2), end: NewPoint(2, 4), exp: NewPoint(0, 3)},
		{name: "horizontal", start: NewPoint(-3, 1), end: NewPoint(3, 1), exp: NewPoint(0, 1)},
		{name: "both_right", start: NewPoint(1, 0), end: NewPoint(2, 5)},
		{name: "both_left", start: NewPoint(-1, 0), end: NewPoint(-2, 5)},
		{name: "vertical", start: NewPoint(2, 0), end: NewPoint(2, 5)},
		{name: "on_axis", start: NewPoint(0, -1), end: NewPoint(0, 5)},
	}

	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, ok := NewLine(tc.start, tc.end).VerticalCross()
			if tc.exp == nil {
				assert.False(t, ok)
				assert.Nil(t, p)
				return
			}
			require.True(t, ok)
			assert.True(t, tc.exp.Equals(p), "expected %v, got %v", tc.exp, p)
		})
	}
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "line from (3,2) to (1,2)", NewLine(NewPoint(3, 2), NewPoint(1, 2)).String())
}
