// Package nntour builds closed Traveling-Salesman tours over named 2-D points
// with the greedy Nearest-Neighbor heuristic, and measures them.
//
// What is in the box?
//
//	geom/      — Point, Euclidean distance, coordinate validation
//	tsp/       — NearestNeighbor (linear scan and sorted baseline), tour
//	             length, tour validation, observable progress and the
//	             Start/Snapshots producer for visualizers
//	pointset/  — id|x|y point files, seeded random generation, load-or-generate
//	render/    — PNG rendering of partial and complete tours (fogleman/gg)
//	runlog/    — SQLite history of benchmark runs (gorm)
//	config/    — YAML + NNTOUR_* environment configuration
//	cmd/nntour — the benchmark command
//
// Guarantees
//
//   - Deterministic: the tour depends only on the input order and coordinates.
//     Ties go to the lowest input index.
//   - Closed: a tour over n ≥ 1 points has n+1 positions and ends where it starts.
//   - Pure library packages: geom, tsp, pointset and render never log and
//     never panic on user input; failures are sentinel errors wrapped with %w.
//
// Quick start
//
//	pts, _ := pointset.Generate(1000, pointset.DefaultBounds, pointset.WithSeed(1))
//	res, err := tsp.Solve(pts, tsp.DefaultOptions())
//	if err != nil { ... }
//	fmt.Printf("%.2f in %v\n", res.Length, res.Elapsed)
//
// Install the command:
//
//	go install github.com/katalvlaran/nntour/cmd/nntour@latest
package nntour
