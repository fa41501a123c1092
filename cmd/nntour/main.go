// Command nntour builds a Nearest-Neighbor tour over a point set and reports
// its length and construction time.
//
// The point file is loaded if present, otherwise a random set is generated
// and saved there. Optionally the construction is rendered as PNG frames and
// each run is appended to a SQLite history.
//
// Usage:
//
//	nntour [-config nntour.yaml] [-points cities.csv] [-n 30000] [-seed 1]
//	       [-strategy linear|sorted] [-render dir] [-render-every 1000]
//	       [-db runs.db] [-history 5] [-print-tour] [-log-level info]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/nntour/config"
	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/internal/logging"
	"github.com/katalvlaran/nntour/pointset"
	"github.com/katalvlaran/nntour/render"
	"github.com/katalvlaran/nntour/runlog"
	"github.com/katalvlaran/nntour/tsp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "nntour:", err)
		os.Exit(1)
	}
}

// flags mirrors the overridable subset of config.Config.
type flags struct {
	configPath  string
	envFile     string
	points      string
	count       int
	seed        int64
	strategy    string
	renderDir   string
	renderEvery int
	db          string
	history     int
	printTour   bool
	logLevel    string
}

func parseFlags(args []string, stderr io.Writer) (flags, map[string]bool, error) {
	var f flags
	fs := flag.NewFlagSet("nntour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.envFile, "env", ".env", "dotenv file with NNTOUR_* overrides (skipped if missing)")
	fs.StringVar(&f.points, "points", "", "point file (id|x|y); generated and saved if missing")
	fs.IntVar(&f.count, "n", 0, "number of points to generate")
	fs.Int64Var(&f.seed, "seed", 0, "generator seed (0 = default seed)")
	fs.StringVar(&f.strategy, "strategy", "", "nearest search: linear or sorted")
	fs.StringVar(&f.renderDir, "render", "", "directory for PNG frames (empty = no rendering)")
	fs.IntVar(&f.renderEvery, "render-every", 0, "write a frame every k steps")
	fs.StringVar(&f.db, "db", "", "SQLite run history (empty = disabled)")
	fs.IntVar(&f.history, "history", 0, "print the last N recorded runs")
	fs.BoolVar(&f.printTour, "print-tour", false, "print the visited order")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return flags{}, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return f, set, nil
}

// loadConfig resolves defaults, YAML, dotenv, environment and flags, in that
// order of increasing precedence.
func loadConfig(f flags, set map[string]bool) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.envFile != "" {
		if err = config.LoadDotEnv(f.envFile); err != nil {
			return config.Config{}, err
		}
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	if set["points"] {
		cfg.Points.File = f.points
	}
	if set["n"] {
		cfg.Points.Count = f.count
	}
	if set["seed"] {
		cfg.Points.Seed = f.seed
	}
	if set["strategy"] {
		cfg.Strategy = f.strategy
	}
	if set["render"] {
		cfg.Render.Dir = f.renderDir
	}
	if set["render-every"] {
		cfg.Render.Every = f.renderEvery
	}
	if set["db"] {
		cfg.DB = f.db
	}
	if set["print-tour"] {
		cfg.PrintTour = f.printTour
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}

	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f, set)
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	log := logging.New(stderr, level)

	pts, generated, err := pointset.LoadOrGenerate(cfg.Points.File, cfg.Points.Count, cfg.Points.Bounds,
		pointset.WithSeed(cfg.Points.Seed))
	if err != nil {
		return err
	}
	if generated {
		log.Info("points generated", "count", len(pts), "seed", cfg.Points.Seed, "file", cfg.Points.File)
	} else {
		log.Info("points loaded", "count", len(pts), "file", cfg.Points.File)
	}

	strategy, _ := tsp.ParseStrategy(cfg.Strategy)
	opts := tsp.Options{Strategy: strategy}
	if every := cfg.ProgressEvery; every > 0 {
		opts.Observer = func(s tsp.Snapshot) {
			if s.Step%every == 0 {
				log.Info("progress", "step", s.Step, "remaining", s.Remaining())
			}
		}
	}

	var res tsp.Result
	switch {
	case cfg.Render.Dir != "" && len(pts) > 0:
		res, err = solveRendered(ctx, log, pts, opts, cfg.Render)
	case cfg.Render.Dir != "":
		log.Warn("nothing to render", "dir", cfg.Render.Dir)
		res, err = tsp.Solve(pts, opts)
	default:
		res, err = tsp.Solve(pts, opts)
	}
	if err != nil {
		return err
	}
	log.Info("tour built", "strategy", res.Strategy, "points", len(pts), "length", res.Length, "elapsed", res.Elapsed)

	fmt.Fprintf(stdout, "points: %d\n", len(pts))
	fmt.Fprintf(stdout, "strategy: %s\n", res.Strategy)
	fmt.Fprintf(stdout, "tour length: %.2f\n", res.Length)
	fmt.Fprintf(stdout, "elapsed: %d ms\n", res.Elapsed.Milliseconds())
	if cfg.PrintTour {
		fmt.Fprintf(stdout, "tour: %s\n", strings.Join(res.Tour.IDs(), " -> "))
	}

	if cfg.DB == "" {
		return nil
	}

	return recordRun(ctx, log, stdout, cfg, res, len(pts), f.history)
}

// solveRendered runs the build through tsp.Start and writes frames while it
// progresses, then renders the closed tour as the final image. The reported
// elapsed time includes frame encoding.
func solveRendered(ctx context.Context, log *slog.Logger, pts []geom.Point, opts tsp.Options, rc config.RenderConfig) (tsp.Result, error) {
	ro := render.DefaultOptions()
	ro.Width, ro.Height = rc.Width, rc.Height
	r, err := render.New(pts, ro)
	if err != nil {
		return tsp.Result{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	run := tsp.Start(ctx, pts, opts)
	n, ferr := render.Frames(ctx, r, run.Snapshots(), rc.Dir, rc.Every)
	if ferr != nil {
		// Unblock the producer; the build still completes.
		cancel()
	}
	tour, err := run.Wait()
	elapsed := time.Since(start)
	if err != nil {
		return tsp.Result{}, err
	}
	if ferr != nil {
		return tsp.Result{}, ferr
	}

	final := render.FrameName(rc.Dir, n)
	if err = r.SavePNG(final, tour.Points); err != nil {
		return tsp.Result{}, err
	}
	log.Info("frames written", "dir", rc.Dir, "count", n+1)

	return tsp.Result{Tour: tour, Length: tour.Length(), Elapsed: elapsed, Strategy: opts.Strategy}, nil
}

func recordRun(ctx context.Context, log *slog.Logger, stdout io.Writer, cfg config.Config, res tsp.Result, n, history int) error {
	ledger, err := runlog.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	defer ledger.Close()

	e, err := ledger.Record(ctx, runlog.NewEntry(res, n, cfg.Points.File, cfg.Points.Seed))
	if err != nil {
		return err
	}
	log.Info("run recorded", "id", e.ID, "db", cfg.DB)

	if best, ok, err := ledger.Best(ctx, n, res.Strategy); err == nil && ok {
		fmt.Fprintf(stdout, "best %s time for %d points: %d ms (run #%d)\n",
			best.Strategy, n, best.Elapsed().Milliseconds(), best.ID)
	}

	if history <= 0 {
		return nil
	}
	recent, err := ledger.Recent(ctx, history)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "recent runs:")
	for _, r := range recent {
		fmt.Fprintf(stdout, "  #%d %s %-6s n=%d length=%.2f elapsed=%dms\n",
			r.ID, r.CreatedAt.Format(logging.TimeFormat), r.Strategy, r.Points, r.Length, r.Elapsed().Milliseconds())
	}

	return nil
}
