// Package tsp — timed entry point.
//
// Solve wraps NearestNeighbor with the evaluation and timing a reporting
// layer needs: the tour, its total length and the wall-clock time spent in
// construction (evaluation is excluded, as in the benchmark harness).
package tsp

import (
	"time"

	"github.com/katalvlaran/nntour/geom"
)

// Solve builds the Nearest-Neighbor tour for points and evaluates it.
//
// Errors: those of NearestNeighbor (ErrInvalidInput, geom.ErrInvalidGeometry,
// ErrUnsupportedStrategy, ErrInvalidOptions).
//
// Complexity: that of the selected Strategy plus O(n) evaluation.
func Solve(points []geom.Point, opts Options) (Result, error) {
	start := time.Now()
	tour, err := NearestNeighbor(points, opts)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:     tour,
		Length:   tour.Length(),
		Elapsed:  elapsed,
		Strategy: opts.Strategy,
	}, nil
}
