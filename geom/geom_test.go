package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/nntour/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance covers the Euclidean metric on axis-aligned, diagonal and
// coincident pairs, plus symmetry.
func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Point
		want float64
	}{
		{"same point", geom.Pt("A", 3, 4), geom.Pt("A", 3, 4), 0},
		{"coincident, different ids", geom.Pt("A", 1, 1), geom.Pt("B", 1, 1), 0},
		{"horizontal", geom.Pt("A", 0, 0), geom.Pt("B", 10, 0), 10},
		{"vertical", geom.Pt("A", 0, 0), geom.Pt("B", 0, -7), 7},
		{"3-4-5", geom.Pt("A", 0, 0), geom.Pt("B", 3, 4), 5},
		{"negative quadrant", geom.Pt("A", -1, -1), geom.Pt("B", 2, 3), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.Distance(tc.a, tc.b))
			assert.Equal(t, geom.Distance(tc.a, tc.b), geom.Distance(tc.b, tc.a), "distance must be symmetric")
		})
	}

	// Diagonal of the unit-10 square.
	assert.InDelta(t, 10*math.Sqrt2, geom.Distance(geom.Pt("A", 0, 0), geom.Pt("C", 10, 10)), 1e-12)
}

// TestValidate_RejectsNonFinite ensures NaN and ±Inf are reported with the
// offending index and wrapped sentinel.
func TestValidate_RejectsNonFinite(t *testing.T) {
	bad := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range bad {
		pts := []geom.Point{geom.Pt("ok", 0, 0), geom.Pt("bad", 1, v)}
		err := geom.Validate(pts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, geom.ErrInvalidGeometry))
		assert.Contains(t, err.Error(), "#1")

		pts = []geom.Point{geom.Pt("bad", v, 0)}
		assert.ErrorIs(t, geom.Validate(pts), geom.ErrInvalidGeometry)
	}
}

// TestValidate_AcceptsFiniteAndEmpty checks the happy paths, including
// duplicates which are legal geometry.
func TestValidate_AcceptsFiniteAndEmpty(t *testing.T) {
	assert.NoError(t, geom.Validate(nil))
	assert.NoError(t, geom.Validate([]geom.Point{}))
	assert.NoError(t, geom.Validate([]geom.Point{
		geom.Pt("A", 0, 0), geom.Pt("A", 0, 0), geom.Pt("B", -math.MaxFloat64, math.MaxFloat64),
	}))
}

func TestBounds(t *testing.T) {
	_, _, _, _, ok := geom.Bounds(nil)
	assert.False(t, ok)

	minX, maxX, minY, maxY, ok := geom.Bounds([]geom.Point{
		geom.Pt("A", 3, -2), geom.Pt("B", -1, 5), geom.Pt("C", 7, 0),
	})
	require.True(t, ok)
	assert.Equal(t, -1.0, minX)
	assert.Equal(t, 7.0, maxX)
	assert.Equal(t, -2.0, minY)
	assert.Equal(t, 5.0, maxY)
}

func TestPointStringAndIDs(t *testing.T) {
	p := geom.Pt("City_1", 12.5, 0.1)
	assert.Equal(t, "City_1(12.5, 0.1)", p.String())
	assert.Equal(t, []string{"A", "B"}, geom.IDs([]geom.Point{geom.Pt("A", 0, 0), geom.Pt("B", 1, 1)}))
	assert.Nil(t, geom.IDs(nil))
}
