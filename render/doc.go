// Package render draws Nearest-Neighbor tours and partial tours as PNG images
// with github.com/fogleman/gg.
//
// A Renderer is bound to one point set: it fits the set's bounding box into
// the canvas once, then draws any prefix of a tour over that set. Frames is
// the consumer side of tsp.Start: it drains a snapshot stream and writes
// every k-th step (plus the last one) as a numbered PNG frame.
//
// The package does not log and never panics on user input.
package render
