// Package tsp builds closed Travelling Salesman tours over planar point sets
// with the Nearest-Neighbor construction heuristic.
//
// Starting from the first point of the input, the builder repeatedly moves to
// the closest point that has not been visited yet, and finally returns to the
// start. The result is a closed tour of n+1 points where tour[0] == tour[n].
//
//   - NearestNeighbor — builds the tour (Strategy selects the inner scan).
//   - TourLength      — sums edge lengths along a tour.
//   - Solve           — NearestNeighbor + TourLength + wall-clock timing.
//   - Start           — runs the builder in its own goroutine and streams a
//     Snapshot after every extension step (producer/consumer observation).
//
// Strategies:
//
//   - LinearScan (default): one pass over the unvisited points per step with a
//     running minimum. Complexity: O(n²) time, O(n) space, no per-step allocation.
//   - SortedBaseline: stable-sorts the unvisited points by distance each step and
//     takes the first. Same tour, O(n² log n) time. Reference baseline only.
//
// Tie-break policy: among unvisited points at the same minimal distance, the one
// with the lowest index in the input wins. Both strategies honor it, so the
// output is fully determined by the input order and coordinates.
//
// No spatial index is used: callers benchmark against the exact O(n²) behavior.
//
// Errors:
//
//	ErrInvalidInput         - the point set is nil.
//	geom.ErrInvalidGeometry - a coordinate is NaN or ±Inf.
//	ErrUnsupportedStrategy  - unknown Strategy value.
//	ErrInvalidOptions       - negative snapshot buffer.
//
// The builder is synchronous and CPU bound. It never logs, never panics on user
// input and exposes no cooperative cancellation point: once started it runs to
// completion.
package tsp
