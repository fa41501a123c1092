package tsp

import (
	"sync"

	"github.com/katalvlaran/nntour/geom"
)

// Progress exposes the tour-so-far of a running NearestNeighbor call to
// concurrent readers.
//
// The builder holds the write lock while it appends a point and bumps the
// step counter; Snapshot holds the read lock while it copies, so a reader
// never sees a prefix mid-append. Readers cannot mutate builder state.
//
// A Progress may be reused: every NearestNeighbor call resets it first.
// The zero value is ready to use.
type Progress struct {
	mu     sync.RWMutex
	prefix []geom.Point
	step   int
	total  int
	done   bool
}

// NewProgress returns an empty Progress.
func NewProgress() *Progress {
	return &Progress{}
}

// Snapshot returns a consistent copy of the current state.
// After completion Prefix also holds the closing point (n+1 points).
//
// Complexity: O(k) for a prefix of k points.
func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]geom.Point, len(p.prefix))
	copy(out, p.prefix)

	return Snapshot{Step: p.step, Total: p.total, Prefix: out}
}

// Step returns the number of completed extension steps and the total.
func (p *Progress) Step() (step, total int) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.step, p.total
}

// Done reports whether the last build attached to p has completed.
func (p *Progress) Done() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.done
}

func (p *Progress) reset(total int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.prefix = make([]geom.Point, 0, total+2)
	p.step = 0
	p.total = total
	p.done = false
	p.mu.Unlock()
}

func (p *Progress) push(pt geom.Point, step int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.prefix = append(p.prefix, pt)
	p.step = step
	p.mu.Unlock()
}

func (p *Progress) finish() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.done = true
	p.mu.Unlock()
}
