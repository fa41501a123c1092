package geom

import "math"

// Distance returns the Euclidean distance between a and b.
//
// Computed as sqrt(dx*dx + dy*dy), not math.Hypot. Every tour strategy must
// see bit-identical distances, otherwise tie-breaks diverge.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Finite reports whether both coordinates of p are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
