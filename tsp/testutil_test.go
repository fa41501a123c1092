// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package: fixtures, repeaters and an independent nearest-step checker.
package tsp_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/pointset"
	"github.com/katalvlaran/nntour/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed used by every randomized fixture.
	seedDet = int64(42)

	// epsTiny bounds float comparisons where summation order differs.
	epsTiny = 1e-9
)

// strategies lists every Strategy; tests that must hold for all of them range over it.
var strategies = []tsp.Strategy{tsp.LinearScan, tsp.SortedBaseline}

// squareACBD is the unit-10 square in input order A, C, B, D.
func squareACBD() []geom.Point {
	return []geom.Point{
		geom.Pt("A", 0, 0),
		geom.Pt("C", 10, 10),
		geom.Pt("B", 10, 0),
		geom.Pt("D", 0, 10),
	}
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// randomPoints returns n uniformly distributed points in [0,100)² using the
// pointset generator with a fixed seed.
func randomPoints(t testing.TB, n int, seed int64) []geom.Point {
	t.Helper()
	pts, err := pointset.Generate(n, pointset.DefaultBounds, pointset.WithSeed(seed))
	require.NoError(t, err)

	return pts
}

// shuffledGrid returns a side×side integer lattice in a seeded random order.
// Lattices produce many equidistant candidates, which stresses the tie-break.
func shuffledGrid(side int, seed int64) []geom.Point {
	pts := make([]geom.Point, 0, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			pts = append(pts, geom.Pt("", float64(x), float64(y)))
		}
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	for i := range pts {
		pts[i].ID = fmt.Sprintf("G%d", i)
	}

	return pts
}

// requireNearestSteps independently re-checks every step of a tour: the chosen
// point must be at minimal distance among the points still unvisited, and on a
// tie it must have the lowest index.
func requireNearestSteps(t *testing.T, input []geom.Point, tour tsp.Tour) {
	t.Helper()
	n := len(input)
	if n < 2 {
		return
	}
	visited := make([]bool, n)
	visited[tour.Order[0]] = true
	for k := 1; k < n; k++ {
		cur := input[tour.Order[k-1]]
		chosen := tour.Order[k]
		dc := geom.Distance(cur, input[chosen])
		for j := 0; j < n; j++ {
			if visited[j] || j == chosen {
				continue
			}
			dj := geom.Distance(cur, input[j])
			require.False(t, dj < dc, "step %d: %d is nearer than chosen %d", k, j, chosen)
			if dj == dc {
				require.Less(t, chosen, j, "step %d: tie must go to the lowest index", k)
			}
		}
		visited[chosen] = true
	}
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
