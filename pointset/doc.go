// Package pointset loads, saves and generates named point sets for nntour.
//
// File format: one record per line, three fields separated by '|':
//
//	id|x|y
//
// Blank lines are skipped. A decimal comma ("12,5") is accepted in coordinate
// fields because the field separator is '|'. Ids may be quoted CSV-style when
// they contain the separator or quotes.
//
// Generation is deterministic for a fixed seed: the same seed, count and
// bounds always yield the same set, including ids.
//
// The package does not log. All failures are reported through sentinel
// errors (ErrFormat, ErrBadCount, ErrBadBounds) wrapped with context.
package pointset
