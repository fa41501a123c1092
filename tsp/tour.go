// Package tsp — tour utilities.
//
// Helpers that operate on the structure of a Tour:
//   - ValidateTour: enforce the closed-permutation invariants against an input.
//   - CopyTour: independent copy of a tour.
//   - IDs: point identifiers in visiting order.
//   - DebugString: compact printable form, e.g. "[A B C D | A]".
//
// No logging, no panics on user input; only sentinels from types.go.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nntour/geom"
)

// ValidateTour checks t against the input it was built from:
//
//	n == 0: both slices empty.
//	n ≥ 1:  len(Points) == len(Order) == n+1, Order[0] == Order[n] == 0,
//	        Order[0..n-1] is a permutation of 0..n-1,
//	        Points[i] == input[Order[i]] for every i.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, input []geom.Point) error {
	n := len(input)
	if len(t.Points) != len(t.Order) {
		return fmt.Errorf("tsp: %d points vs %d order entries: %w", len(t.Points), len(t.Order), ErrInvalidTour)
	}
	if n == 0 {
		if len(t.Order) != 0 {
			return fmt.Errorf("tsp: non-empty tour for empty input: %w", ErrInvalidTour)
		}
		return nil
	}
	if len(t.Order) != n+1 {
		return fmt.Errorf("tsp: tour length %d, want %d: %w", len(t.Order), n+1, ErrInvalidTour)
	}
	if t.Order[0] != 0 || t.Order[n] != 0 {
		return fmt.Errorf("tsp: tour must start and end at index 0: %w", ErrInvalidTour)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i <= n; i++ {
		v = t.Order[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: order[%d]=%d out of range: %w", i, v, ErrInvalidTour)
		}
		if t.Points[i] != input[v] {
			return fmt.Errorf("tsp: points[%d] does not match input[%d]: %w", i, v, ErrInvalidTour)
		}
		if i == n {
			break // closing repeat is checked above
		}
		if seen[v] {
			return fmt.Errorf("tsp: index %d visited twice: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of t.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(t Tour) Tour {
	var out Tour
	if t.Points != nil {
		out.Points = make([]geom.Point, len(t.Points))
		copy(out.Points, t.Points)
	}
	if t.Order != nil {
		out.Order = make([]int, len(t.Order))
		copy(out.Order, t.Order)
	}

	return out
}

// IDs returns the identifiers of the tour points in visiting order,
// closing repeat included.
func (t Tour) IDs() []string {
	return geom.IDs(t.Points)
}

// DebugString returns a compact printable form for tests and logs,
// e.g. "[A B C D | A]" where the bar marks the closure.
//
// Complexity: O(n) time, O(n) space.
func DebugString(t Tour) string {
	if len(t.Points) == 0 {
		return "[]"
	}
	var (
		b strings.Builder
		n = len(t.Points) - 1
		i int
	)
	b.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Points[i].ID)
	}
	b.WriteString(" | ")
	b.WriteString(t.Points[n].ID)
	b.WriteByte(']')

	return b.String()
}
