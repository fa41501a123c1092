package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/nntour/geom"
)

// Sentinel errors for tour construction.
var (
	// ErrInvalidInput indicates that the point set reference is nil.
	ErrInvalidInput = errors.New("tsp: point set is nil")

	// ErrUnsupportedStrategy indicates an unknown Strategy value.
	ErrUnsupportedStrategy = errors.New("tsp: unsupported strategy")

	// ErrInvalidOptions indicates an inconsistent Options value.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrInvalidTour is returned by ValidateTour when a tour breaks the
	// closed-permutation invariants.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Strategy selects how the next nearest point is found at each step.
type Strategy int

const (
	// LinearScan keeps a running minimum over a single pass. Default.
	LinearScan Strategy = iota

	// SortedBaseline sorts the remaining points by distance every step.
	// Functionally identical to LinearScan; kept as a naive reference.
	SortedBaseline
)

// String returns the canonical lower-case name of s.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case SortedBaseline:
		return "sorted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name ("linear", "sorted") to a Strategy.
// Matching is case-insensitive; "" means LinearScan.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear", "linear-scan", "scan":
		return LinearScan, nil
	case "sorted", "sorted-baseline", "sort":
		return SortedBaseline, nil
	default:
		return 0, fmt.Errorf("tsp: strategy %q: %w", name, ErrUnsupportedStrategy)
	}
}

// Snapshot is the observable state after one extension step.
//
// Step counts completed extension steps (1..Total). Prefix holds the Step+1
// points of the tour built so far, starting with the start point. Prefix must be
// treated as read-only.
type Snapshot struct {
	Step   int
	Total  int
	Prefix []geom.Point
}

// Current returns the point the builder just moved to.
func (s Snapshot) Current() (geom.Point, bool) {
	if len(s.Prefix) == 0 {
		return geom.Point{}, false
	}

	return s.Prefix[len(s.Prefix)-1], true
}

// Remaining returns the number of extension steps still to come.
func (s Snapshot) Remaining() int {
	return s.Total - s.Step
}

// Observer receives a Snapshot after every extension step. It runs on the
// builder's goroutine and the builder waits for it to return.
type Observer func(Snapshot)

// Options configures NearestNeighbor, Solve and Start.
//
// Fields:
//   - Strategy — inner-scan implementation (LinearScan by default).
//   - Observer — optional synchronous per-step callback.
//   - Progress — optional lock-guarded progress holder for concurrent readers.
//   - Buffer   — snapshot channel capacity used by Start (0 = unbuffered).
type Options struct {
	Strategy Strategy
	Observer Observer
	Progress *Progress
	Buffer   int
}

// DefaultOptions returns the recommended configuration: linear scan, no observation.
func DefaultOptions() Options {
	return Options{Strategy: LinearScan}
}

// Tour is a closed Nearest-Neighbor tour.
//
// For an input of n ≥ 1 points:
//
//	len(Points) == len(Order) == n+1
//	Order[0] == Order[n] == 0, Points[0] == Points[n]
//	Order[0..n-1] is a permutation of 0..n-1
//	Points[i] == input[Order[i]]
//
// For n == 0 both slices are empty.
type Tour struct {
	Points []geom.Point
	Order  []int
}

// Len returns the number of tour positions, including the closing repeat.
func (t Tour) Len() int { return len(t.Points) }

// Result bundles a tour with its total length and construction time.
type Result struct {
	Tour     Tour
	Length   float64
	Elapsed  time.Duration
	Strategy Strategy
}
