package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTourLength covers short sequences and open/closed forms.
func TestTourLength(t *testing.T) {
	a, b, c := geom.Pt("A", 0, 0), geom.Pt("B", 3, 4), geom.Pt("C", 3, 0)

	cases := []struct {
		name string
		pts  []geom.Point
		want float64
	}{
		{"nil", nil, 0},
		{"empty", []geom.Point{}, 0},
		{"single", []geom.Point{a}, 0},
		{"degenerate loop", []geom.Point{a, a}, 0},
		{"one edge", []geom.Point{a, b}, 5},
		{"open path", []geom.Point{a, b, c}, 9},
		{"closed triangle", []geom.Point{a, b, c, a}, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tsp.TourLength(tc.pts))
		})
	}
}

// TestTourLength_Idempotent: evaluation is pure, repeated calls agree bit for bit.
func TestTourLength_Idempotent(t *testing.T) {
	pts := randomPoints(t, 500, seedDet)
	tour, err := tsp.NearestNeighbor(pts, tsp.DefaultOptions())
	require.NoError(t, err)

	first := tour.Length()
	Repeat(t, 3, func(t *testing.T) {
		require.Equal(t, math.Float64bits(first), math.Float64bits(tour.Length()))
	})
	assert.Equal(t, first, tsp.TourLength(tour.Points))
}

// TestEdgeLengths sums to Length and has one entry per edge.
func TestEdgeLengths(t *testing.T) {
	tour, err := tsp.NearestNeighbor(squareACBD(), tsp.DefaultOptions())
	require.NoError(t, err)

	edges := tour.EdgeLengths()
	assert.Equal(t, []float64{10, 10, 10, 10}, edges)

	var sum float64
	for _, e := range edges {
		sum += e
	}
	assert.Equal(t, tour.Length(), sum)

	assert.Empty(t, tsp.Tour{}.EdgeLengths())
}

// TestSolve reports length and a non-negative elapsed time.
func TestSolve(t *testing.T) {
	res, err := tsp.Solve(squareACBD(), tsp.Options{Strategy: tsp.SortedBaseline})
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.Length)
	assert.Equal(t, tsp.SortedBaseline, res.Strategy)
	assert.GreaterOrEqual(t, int64(res.Elapsed), int64(0))
	assert.Equal(t, "[A B C D | A]", tsp.DebugString(res.Tour))

	_, err = tsp.Solve(nil, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}
