package tsp

import (
	"context"

	"github.com/katalvlaran/nntour/geom"
)

// Run is a NearestNeighbor build executing on its own goroutine.
//
// The builder is the producer: after every extension step it sends a Snapshot
// on Snapshots() and does not continue until the send completes (or until ctx
// is cancelled). Any presentation layer is the consumer. The channel is closed
// once the build returns.
//
// Cancelling ctx stops snapshot delivery only. The build itself still runs to
// completion and Wait returns its tour.
type Run struct {
	snaps    chan Snapshot
	done     chan struct{}
	progress *Progress
	tour     Tour
	err      error
}

// Start launches NearestNeighbor(points, opts) in a new goroutine.
//
// opts.Buffer sets the snapshot channel capacity. opts.Observer, if set, is
// still called before each send. opts.Progress is created when nil so that
// pollers can use Run.Progress instead of draining the channel.
//
// The consumer must either drain Snapshots or cancel ctx; otherwise the
// producer blocks on the first send once the buffer is full.
func Start(ctx context.Context, points []geom.Point, opts Options) *Run {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Progress == nil {
		opts.Progress = NewProgress()
	}
	r := &Run{done: make(chan struct{}), progress: opts.Progress}

	if err := validateOptions(opts); err != nil {
		r.snaps = make(chan Snapshot)
		r.err = err
		close(r.snaps)
		close(r.done)
		return r
	}
	r.snaps = make(chan Snapshot, opts.Buffer)

	var (
		user       = opts.Observer
		delivering = true
	)
	opts.Observer = func(s Snapshot) {
		if user != nil {
			user(s)
		}
		if !delivering {
			return
		}
		// select picks at random among ready cases; a buffered send must not
		// win over an already cancelled ctx.
		if ctx.Err() != nil {
			delivering = false
			return
		}
		select {
		case r.snaps <- s:
		case <-ctx.Done():
			delivering = false
		}
	}

	go func() {
		defer close(r.done)
		defer close(r.snaps)
		r.tour, r.err = NearestNeighbor(points, opts)
	}()

	return r
}

// Snapshots returns the ordered stream of per-step snapshots.
func (r *Run) Snapshots() <-chan Snapshot { return r.snaps }

// Progress returns the lock-guarded progress holder of this run.
func (r *Run) Progress() *Progress { return r.progress }

// Done is closed when the build has returned.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the build returns and yields its result.
func (r *Run) Wait() (Tour, error) {
	<-r.done

	return r.tour, r.err
}
