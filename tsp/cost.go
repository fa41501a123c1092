// Package tsp — tour length evaluation.
//
// TourLength sums Euclidean edge lengths along a sequence of points. It is
// pure and side-effect free: evaluating the same tour twice yields the same
// bits. No rounding is applied.
package tsp

import "github.com/katalvlaran/nntour/geom"

// TourLength returns Σ Distance(points[i], points[i+1]) for i in 0..len-2.
// Sequences with fewer than two points have length 0.
//
// The closing edge is not added implicitly: pass a closed tour (as returned by
// NearestNeighbor) to get the cycle length.
//
// Complexity: O(n) time, O(1) space.
func TourLength(points []geom.Point) float64 {
	var (
		sum float64
		i   int
		L   = len(points) - 1
	)
	for i = 0; i < L; i++ {
		sum += geom.Distance(points[i], points[i+1])
	}

	return sum
}

// Length returns the total length of the closed tour.
func (t Tour) Length() float64 {
	return TourLength(t.Points)
}

// EdgeLengths returns the length of every edge of the tour, in order.
// len(result) == len(t.Points)-1, or 0 for tours shorter than two points.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) EdgeLengths() []float64 {
	if len(t.Points) < 2 {
		return []float64{}
	}
	out := make([]float64, len(t.Points)-1)
	for i := range out {
		out[i] = geom.Distance(t.Points[i], t.Points[i+1])
	}

	return out
}
