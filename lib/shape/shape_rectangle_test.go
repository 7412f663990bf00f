package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle(t *testing.T) {
	t.Parallel()

	r, err := NewRectangle(false, points(rectangleVertices...))
	require.NoError(t, err)

	assert.Equal(t, 12., r.Perimeter())
	area, err := r.Area()
	require.NoError(t, err)
	assert.Equal(t, 8., area)
	angles, err := r.InnerAngles()
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 90, 90, 90}, angles)
	assert.NoError(t, r.CheckCorners())
}

func TestRectangleAnglesAreDeclared(t *testing.T) {
	t.Parallel()

	// A parallelogram is accepted: the right angles are not verified on creation.
	r, err := NewRectangle(false, points(0, 0, 4, 0, 5, 2, 1, 2))
	require.NoError(t, err)
	angles, err := r.InnerAngles()
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 90, 90, 90}, angles)

	assert.ErrorIs(t, r.CheckCorners(), ErrRelation)
}

func TestRectangleErrors(t *testing.T) {
	t.Parallel()

	_, err := NewRectangle(false, points(rightVertices...))
	assert.ErrorIs(t, err, ErrCardinality)

	_, err = NewRectangle(false, points(pentagonVertices...))
	assert.ErrorIs(t, err, ErrCardinality)

	_, err = NewRectangle(true, points(rectangleVertices...))
	assert.ErrorIs(t, err, ErrNotRegular)
}

func TestSquare(t *testing.T) {
	t.Parallel()

	s, err := NewSquare(true, points(squareVertices...))
	require.NoError(t, err)

	assert.True(t, s.Is(SQUARE_TYPE))
	assert.Equal(t, 12., s.Perimeter())
	area, err := s.Area()
	require.NoError(t, err)
	assert.Equal(t, 9., area)
	angles, err := s.InnerAngles()
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 90, 90, 90}, angles)

	// Rotated square: every side is computed the same way and compares exactly.
	s, err = NewSquare(true, points(0, 0, 1, 1, 0, 2, -1, 1))
	require.NoError(t, err)
	assert.NoError(t, s.CheckCorners())
}

func TestSquareErrors(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name     string
		regular  bool
		vertices []float64
		exp      error
	}{
		{name: "three_vertices", regular: true, vertices: equilateralVertices, exp: ErrCardinality},
		{name: "declared_irregular", regular: false, vertices: squareVertices, exp: ErrRegularity},
		{name: "not_regular", regular: true, vertices: rectangleVertices, exp: ErrNotRegular},
		{name: "irregular_rectangle", regular: false, vertices: rectangleVertices, exp: ErrRegularity},
	}

	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewSquare(tc.regular, points(tc.vertices...))
			assert.ErrorIs(t, err, tc.exp)
			assert.Nil(t, s)
		})
	}
}
