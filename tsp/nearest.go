// Package tsp — Nearest-Neighbor tour construction.
//
// NearestNeighbor builds a closed tour greedily:
//
//  1. Validate input (nil set, non-finite coordinates, options).
//  2. n == 0 ⇒ empty tour; n == 1 ⇒ [P, P].
//  3. Start at index 0 and mark it visited.
//  4. Repeat n-1 times: pick the nearest unvisited point (first index wins on
//     ties), mark it, append it, make it current, then publish progress.
//  5. Append the start point to close the loop.
//
// The visited marker is a []bool of length n owned by a single call. The
// caller's slice is never mutated.
//
// Complexity:
//   - LinearScan:     O(n²) time, O(n) space.
//   - SortedBaseline: O(n² log n) time, O(n) space.
package tsp

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/nntour/geom"
)

// nextFunc returns the index of the unvisited point nearest to points[cur].
// At least one unvisited point must exist.
type nextFunc func(points []geom.Point, visited []bool, cur int) int

// NearestNeighbor builds a closed tour over points, starting at points[0].
//
// Contracts:
//   - points == nil ⇒ ErrInvalidInput; an empty non-nil slice ⇒ empty Tour.
//   - Any NaN/±Inf coordinate ⇒ geom.ErrInvalidGeometry.
//   - Observer (if set) is called after each of the n-1 extension steps.
//   - Progress (if set) is reset, updated under its write lock, and marked done.
//
// There is no partial result: on error the returned Tour is zero.
func NearestNeighbor(points []geom.Point, opts Options) (Tour, error) {
	n, err := validateInput(points, opts)
	if err != nil {
		return Tour{}, err
	}

	var next nextFunc
	switch opts.Strategy {
	case SortedBaseline:
		next = newSortedScanner(n).next
	default:
		next = nearestLinear
	}

	progress := opts.Progress // nil-safe receiver methods
	if n == 0 {
		progress.reset(0)
		progress.finish()
		return Tour{Points: []geom.Point{}, Order: []int{}}, nil
	}

	var (
		visited = make([]bool, n)
		order   = make([]int, 0, n+1)
		tour    = make([]geom.Point, 0, n+1)
		total   = n - 1 // number of extension steps
		cur     = 0     // current point index
		step    int
	)

	// Start point.
	visited[cur] = true
	order = append(order, cur)
	tour = append(tour, points[cur])
	progress.reset(total)
	progress.push(points[cur], 0)

	for step = 1; step <= total; step++ {
		cur = next(points, visited, cur)
		visited[cur] = true
		order = append(order, cur)
		tour = append(tour, points[cur])

		progress.push(points[cur], step)
		if opts.Observer != nil {
			// Clip capacity: earlier elements are never rewritten, later
			// appends must not be visible through the view.
			opts.Observer(Snapshot{Step: step, Total: total, Prefix: tour[:len(tour):len(tour)]})
		}
	}

	// Close the loop.
	order = append(order, order[0])
	tour = append(tour, tour[0])
	progress.push(tour[0], total)
	progress.finish()

	return Tour{Points: tour, Order: order}, nil
}

// nearestLinear scans unvisited points in ascending index order keeping a
// running minimum. The comparison is strict, so the first point reaching the
// minimal distance wins.
//
// Complexity: O(n) time, O(1) space.
func nearestLinear(points []geom.Point, visited []bool, cur int) int {
	var (
		c     = points[cur]
		best  = -1
		bestD float64
		d     float64
		j     int
	)
	for j = 0; j < len(points); j++ {
		if visited[j] {
			continue
		}
		d = geom.Distance(c, points[j])
		// best == -1 takes the first candidate even when every distance is +Inf.
		if best == -1 || d < bestD {
			best, bestD = j, d
		}
	}

	return best
}

// sortedScanner is the naive reference: collect the unvisited indices in
// ascending order, stable-sort them by distance to the current point, take
// the first. Stability preserves the ascending-index tie-break.
type sortedScanner struct {
	cand []int
}

func newSortedScanner(n int) *sortedScanner {
	return &sortedScanner{cand: make([]int, 0, n)}
}

// next implements nextFunc.
//
// Complexity: O(r log r) per step for r remaining points.
func (s *sortedScanner) next(points []geom.Point, visited []bool, cur int) int {
	s.cand = s.cand[:0]
	for j := range points {
		if !visited[j] {
			s.cand = append(s.cand, j)
		}
	}
	c := points[cur]
	slices.SortStableFunc(s.cand, func(a, b int) int {
		return cmp.Compare(geom.Distance(c, points[a]), geom.Distance(c, points[b]))
	})

	return s.cand[0]
}
