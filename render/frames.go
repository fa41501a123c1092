package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/nntour/tsp"
)

// FrameName returns the file name of frame i inside dir.
func FrameName(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%06d.png", i))
}

// Frames drains snaps and writes every k-th snapshot (by Step) plus the last
// received one as numbered PNG frames in dir. k < 1 is treated as 1.
//
// It returns the number of frames written. It stops early with ctx.Err() when
// ctx is cancelled; the caller should cancel the producer's context too so the
// builder stops blocking on sends.
func Frames(ctx context.Context, r *Renderer, snaps <-chan tsp.Snapshot, dir string, k int) (int, error) {
	if k < 1 {
		k = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("render: frames dir: %w", err)
	}

	var (
		written int
		last    tsp.Snapshot
		pending bool
	)
	for {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		case s, ok := <-snaps:
			if !ok {
				if pending {
					if err := r.SavePNG(FrameName(dir, written), last.Prefix); err != nil {
						return written, err
					}
					written++
				}
				return written, nil
			}
			if s.Step%k == 0 || s.Step == s.Total {
				if err := r.SavePNG(FrameName(dir, written), s.Prefix); err != nil {
					return written, err
				}
				written++
				pending = false
				continue
			}
			last, pending = s, true
		}
	}
}
