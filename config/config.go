// Package config loads the nntour run configuration.
//
// Sources, lowest precedence first:
//
//  1. Default()
//  2. a YAML file (Load)
//  3. NNTOUR_* environment variables, optionally seeded from a .env file
//     (LoadDotEnv, ApplyEnv)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nntour/internal/logging"
	"github.com/katalvlaran/nntour/pointset"
	"github.com/katalvlaran/nntour/tsp"
)

// ErrInvalidConfig is returned by Validate and by loaders on bad values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NNTOUR_"

// Config is the full run configuration.
type Config struct {
	Points   PointsConfig `yaml:"points"`
	Strategy string       `yaml:"strategy"`
	Render   RenderConfig `yaml:"render"`
	Log      LogConfig    `yaml:"log"`

	// DB is the SQLite path of the run history. Empty disables it.
	DB string `yaml:"db"`

	// ProgressEvery logs a progress line every that many steps. 0 disables it.
	ProgressEvery int `yaml:"progress_every"`

	// PrintTour prints the visited order after the run.
	PrintTour bool `yaml:"print_tour"`
}

// PointsConfig selects the point set: File is loaded if it exists, otherwise
// Count points are generated in Bounds with Seed and saved to File.
type PointsConfig struct {
	File   string          `yaml:"file"`
	Count  int             `yaml:"count"`
	Seed   int64           `yaml:"seed"`
	Bounds pointset.Bounds `yaml:"bounds"`
}

// RenderConfig enables PNG frames when Dir is non-empty.
type RenderConfig struct {
	Dir    string `yaml:"dir"`
	Every  int    `yaml:"every"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LogConfig sets the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the benchmark configuration: 30 000 points in a 100×100
// square stored in cities.csv, linear scan, progress every 1000 steps.
func Default() Config {
	return Config{
		Points: PointsConfig{
			File:   "cities.csv",
			Count:  pointset.DefaultCount,
			Bounds: pointset.DefaultBounds,
		},
		Strategy: tsp.LinearScan.String(),
		Render: RenderConfig{
			Every:  1000,
			Width:  800,
			Height: 800,
		},
		Log:           LogConfig{Level: "info"},
		ProgressEvery: 1000,
	}
}

// Load returns Default() overlaid with the YAML file at path. An empty path
// returns the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = cfg.decode(data); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse overlays the YAML document data onto Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: dotenv %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides c from NNTOUR_* variables obtained through lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	var err error
	num := func(key string, set func(int64)) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || err != nil {
			return
		}
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			err = fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, ErrInvalidConfig)
			return
		}
		set(n)
	}

	str("POINTS_FILE", &c.Points.File)
	str("STRATEGY", &c.Strategy)
	str("RENDER_DIR", &c.Render.Dir)
	str("DB", &c.DB)
	str("LOG_LEVEL", &c.Log.Level)
	num("POINTS_COUNT", func(n int64) { c.Points.Count = int(n) })
	num("SEED", func(n int64) { c.Points.Seed = n })
	num("RENDER_EVERY", func(n int64) { c.Render.Every = int(n) })
	num("PROGRESS_EVERY", func(n int64) { c.ProgressEvery = int(n) })
	if v, ok := lookup(EnvPrefix + "PRINT_TOUR"); ok && err == nil {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return fmt.Errorf("config: %sPRINT_TOUR=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.PrintTour = b
	}

	return err
}

// Validate checks every field and reports the first problem wrapped around
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Points.Count < 0 {
		return fmt.Errorf("config: points.count %d: %w", c.Points.Count, ErrInvalidConfig)
	}
	if err := c.Points.Bounds.Validate(); err != nil {
		return fmt.Errorf("config: points.bounds: %v: %w", err, ErrInvalidConfig)
	}
	if _, err := tsp.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: %v: %w", err, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %v: %w", err, ErrInvalidConfig)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("config: progress_every %d: %w", c.ProgressEvery, ErrInvalidConfig)
	}
	if c.Render.Dir != "" {
		if c.Render.Every < 1 {
			return fmt.Errorf("config: render.every %d: %w", c.Render.Every, ErrInvalidConfig)
		}
		if c.Render.Width < 1 || c.Render.Height < 1 {
			return fmt.Errorf("config: render size %dx%d: %w", c.Render.Width, c.Render.Height, ErrInvalidConfig)
		}
	}

	return nil
}
