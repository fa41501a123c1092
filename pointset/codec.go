package pointset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/nntour/geom"
)

// Separator is the field delimiter of the point file format.
const Separator = '|'

const fieldsPerRecord = 3

// Load reads id|x|y records from r.
//
// Empty and whitespace-only lines are skipped. Empty input yields an empty
// non-nil slice. Any malformed record (wrong field count, unparsable or
// non-finite coordinate, broken quoting) stops the read with ErrFormat
// wrapped with the 1-based line number.
//
// Complexity: O(n) time and space for n records.
func Load(r io.Reader) ([]geom.Point, error) {
	cr := newReader(r)
	pts := make([]geom.Point, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("pointset: line %d: %v: %w", pe.Line, pe.Err, ErrFormat)
			}
			return nil, fmt.Errorf("pointset: read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != fieldsPerRecord {
			return nil, fmt.Errorf("pointset: line %d: %d fields, want %d: %w", line, len(rec), fieldsPerRecord, ErrFormat)
		}
		p, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("pointset: line %d: %w", line, err)
		}
		pts = append(pts, p)
	}

	return pts, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

func parseRecord(rec []string) (geom.Point, error) {
	x, err := parseCoord(rec[1])
	if err != nil {
		return geom.Point{}, err
	}
	y, err := parseCoord(rec[2])
	if err != nil {
		return geom.Point{}, err
	}
	p := geom.Point{ID: rec[0], X: x, Y: y}
	if !p.Finite() {
		return geom.Point{}, fmt.Errorf("point %q: non-finite coordinate: %w", p.ID, ErrFormat)
	}

	return p, nil
}

// parseCoord accepts both "12.5" and "12,5".
func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate %q: %w", s, ErrFormat)
	}

	return v, nil
}

// Save writes points as id|x|y records using the shortest float form that
// parses back to the same value, so Load(Save(p)) reproduces p exactly.
// Non-finite coordinates are rejected with geom.ErrInvalidGeometry, and ids
// containing "\r\n" with ErrFormat (the reader folds it to "\n"), before
// anything is written.
//
// Complexity: O(n).
func Save(w io.Writer, points []geom.Point) error {
	if err := geom.Validate(points); err != nil {
		return fmt.Errorf("pointset: Save: %w", err)
	}
	for i := range points {
		if strings.Contains(points[i].ID, "\r\n") {
			return fmt.Errorf("pointset: Save: point #%d id %q contains CRLF: %w", i, points[i].ID, ErrFormat)
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	rec := make([]string, fieldsPerRecord)
	for i := range points {
		rec[0] = points[i].ID
		rec[1] = strconv.FormatFloat(points[i].X, 'g', -1, 64)
		rec[2] = strconv.FormatFloat(points[i].Y, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("pointset: Save: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("pointset: Save: %w", err)
	}

	return nil
}
