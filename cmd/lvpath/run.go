package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/cmd/lvpath/internal/config"
	"github.com/katalvlaran/lvpath/cmd/lvpath/internal/render"
	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/score"
	"github.com/katalvlaran/lvpath/search"
)

var errBadPoint = errors.New("point must be x,y")

// runFlags holds the values of the run command's flags. Only flags the
// user set override the config file.
type runFlags struct {
	configPath string
	width      int
	height     int
	density    float64
	seed       uint64
	conn       int
	heuristic  string
	maxSteps   int
	timeout    time.Duration
	start      string
	goal       string
	jsonOut    bool
	metricsOut string
	pngOut     string
	pngScale   int
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a grid and find a path across it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.IntVar(&f.width, "width", 0, "grid width")
	fl.IntVar(&f.height, "height", 0, "grid height")
	fl.Float64Var(&f.density, "density", 0, "wall probability in [0,1]")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed")
	fl.IntVar(&f.conn, "conn", 0, "connectivity: 4 or 8")
	fl.StringVar(&f.heuristic, "heuristic", "", "one of "+strings.Join(config.Heuristics, "|"))
	fl.IntVar(&f.maxSteps, "max-steps", 0, "expansion budget, 0 = unlimited")
	fl.DurationVar(&f.timeout, "timeout", 0, "search timeout, 0 = none")
	fl.StringVar(&f.start, "start", "", "start cell x,y (default top-left)")
	fl.StringVar(&f.goal, "goal", "", "goal cell x,y (default bottom-right)")
	fl.BoolVar(&f.jsonOut, "json", false, "print a JSON report instead of the grid")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	fl.StringVar(&f.pngOut, "png", "", "also draw the result to this PNG file")
	fl.IntVar(&f.pngScale, "png-scale", 16, "PNG pixels per cell")

	return cmd
}

// resolve loads the config file and applies explicitly set flags.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("width") {
		cfg.Grid.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Grid.Height = f.height
	}
	if fl.Changed("density") {
		cfg.Grid.Density = f.density
	}
	if fl.Changed("seed") {
		cfg.Grid.Seed = f.seed
	}
	if fl.Changed("conn") {
		cfg.Grid.Conn = f.conn
	}
	if fl.Changed("heuristic") {
		cfg.Search.Heuristic = f.heuristic
	}
	if fl.Changed("max-steps") {
		cfg.Search.MaxSteps = f.maxSteps
	}
	if fl.Changed("timeout") {
		cfg.Search.Timeout = f.timeout
	}

	return cfg, cfg.Validate()
}

func runSearch(ctx context.Context, stdout, stderr io.Writer, cfg config.Config, f *runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := cfg.Log.NewLogger(stderr)

	// 1) Build the grid
	opts := gridOptions(cfg.Grid)
	gg, err := gridgraph.Random(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Density, cfg.Grid.Seed, opts)
	if err != nil {
		return err
	}
	start, err := cellFlag(gg, f.start, 0, 0)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	goal, err := cellFlag(gg, f.goal, gg.Width-1, gg.Height-1)
	if err != nil {
		return fmt.Errorf("--goal: %w", err)
	}
	// Endpoints are forced open.
	for _, id := range []nodegraph.NodeID{start, goal} {
		x, y := gg.Coordinate(id)
		if err := gg.SetWall(x, y, false); err != nil {
			return err
		}
	}
	log.Debug("grid ready",
		"width", gg.Width, "height", gg.Height,
		"edges", gg.Graph().EdgeCount(), "regions", len(gg.Regions()))

	// 2) Search
	h, err := heuristic(cfg.Search.Heuristic, opts)
	if err != nil {
		return err
	}
	if overestimates(cfg.Search.Heuristic, opts) {
		log.Warn("heuristic overestimates, paths may not be shortest",
			"heuristic", cfg.Search.Heuristic, "conn", cfg.Grid.Conn,
			"cardinal_cost", opts.CardinalCost, "diagonal_cost", opts.DiagonalCost)
	}
	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}
	if _, err := gg.Graph().ResetScores(start); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg, "lvpath")
	res, err := rec.FindPath(gg.Graph(), start, goal,
		search.WithHeuristic(h),
		search.WithContext(ctx),
		search.WithMaxSteps(cfg.Search.MaxSteps),
		search.WithTraceColors(),
		search.WithHighlight(nodegraph.ColorPath),
		search.WithLogger(log),
	)
	log.Info("search finished",
		"outcome", metrics.Outcome(res, err),
		"heuristic", cfg.Search.Heuristic,
		"expanded", res.Expanded)
	if f.metricsOut != "" {
		if werr := prometheus.WriteToTextfile(f.metricsOut, reg); werr != nil {
			log.Warn("metrics not written", "path", f.metricsOut, "err", werr)
		}
	}
	if err != nil {
		return err
	}

	// 3) Report
	if f.pngOut != "" {
		if err := writePNG(f.pngOut, gg, res, start, goal, f.pngScale); err != nil {
			return err
		}
		log.Debug("image written", "path", f.pngOut)
	}
	if f.jsonOut {
		return render.WriteJSON(stdout, render.NewReport(gg, res))
	}
	rd := render.New(lipgloss.NewRenderer(stdout))
	_, err = fmt.Fprintf(stdout, "%s\n%s\n", rd.Grid(gg, start, goal), rd.Summary(res))

	return err
}

func writePNG(path string, gg *gridgraph.GridGraph, res search.Result, start, goal nodegraph.NodeID, scale int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(out, gg, res, start, goal, scale); err != nil {
		_ = out.Close()
		return fmt.Errorf("png %s: %w", path, err)
	}

	return out.Close()
}

func gridOptions(c config.GridConfig) gridgraph.Options {
	opts := gridgraph.DefaultOptions()
	opts.CardinalCost = c.CardinalCost
	opts.DiagonalCost = c.DiagonalCost
	opts.Conn = gridgraph.Conn8
	if c.Conn == 4 {
		opts.Conn = gridgraph.Conn4
	}

	return opts
}

// heuristic maps a configured name to a score function scaled to the grid
// step costs. Octile and chebyshev keep their diagonal ratio but never
// charge a diagonal step more than the grid does.
func heuristic(name string, opts gridgraph.Options) (score.Func, error) {
	c := opts.CardinalCost
	switch name {
	case "zero":
		return score.Zero(), nil
	case "diagonal":
		return score.Diagonal(c, opts.DiagonalCost), nil
	case "octile":
		return score.Diagonal(c, math.Min(c*math.Sqrt2, diagonalStep(opts))), nil
	case "chebyshev":
		return score.Diagonal(c, math.Min(c, diagonalStep(opts))), nil
	case "manhattan":
		return score.Manhattan(opts.CardinalCost), nil
	case "euclidean":
		return score.Euclidean(math.Min(c, diagonalStep(opts)/math.Sqrt2)), nil
	}

	return nil, fmt.Errorf("%w: heuristic %q", config.ErrInvalid, name)
}

// overestimates reports whether the named heuristic can exceed the true
// path cost on opts' grid.
func overestimates(name string, opts gridgraph.Options) bool {
	switch name {
	case "diagonal":
		return !score.Admissible(opts.CardinalCost, opts.DiagonalCost)
	case "manhattan":
		return opts.Conn == gridgraph.Conn8 && diagonalStep(opts) < 2*opts.CardinalCost
	}

	return false
}

// diagonalStep is the cheapest way to cross one cell diagonally.
func diagonalStep(opts gridgraph.Options) float64 {
	if opts.Conn != gridgraph.Conn8 {
		return 2 * opts.CardinalCost
	}

	return math.Min(opts.DiagonalCost, 2*opts.CardinalCost)
}

// cellFlag parses "x,y" into a node id; an empty value picks (dx,dy).
func cellFlag(gg *gridgraph.GridGraph, v string, dx, dy int) (nodegraph.NodeID, error) {
	if v == "" {
		return gg.NodeAt(dx, dy)
	}
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return nodegraph.NoNode, fmt.Errorf("%w: %q", errBadPoint, v)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return nodegraph.NoNode, fmt.Errorf("%w: %q", errBadPoint, v)
	}

	return gg.NodeAt(x, y)
}
