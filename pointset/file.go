package pointset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/nntour/geom"
)

// LoadFile reads a point file from path.
func LoadFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: LoadFile: %w", err)
	}
	defer f.Close()

	pts, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// SaveFile writes points to path, creating parent directories as needed and
// truncating an existing file.
func SaveFile(path string, points []geom.Point) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pointset: SaveFile: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pointset: SaveFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("pointset: SaveFile: %w", cerr)
		}
	}()

	return Save(f, points)
}

// LoadOrGenerate loads path if it exists. Otherwise it generates count points
// in b, saves them to path and reports generated == true. An empty path
// generates without saving.
func LoadOrGenerate(path string, count int, b Bounds, opts ...Option) (pts []geom.Point, generated bool, err error) {
	if path != "" {
		pts, err = LoadFile(path)
		if err == nil {
			return pts, false, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, err
		}
	}

	pts, err = Generate(count, b, opts...)
	if err != nil {
		return nil, false, err
	}
	if path != "" {
		if err = SaveFile(path, pts); err != nil {
			return nil, false, err
		}
	}

	return pts, true, nil
}
