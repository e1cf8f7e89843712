// Package search defines sentinel errors, the Result type and the
// functional options of the path search engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/score"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil *nodegraph.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound indicates a start or goal id outside the graph.
	// It is the nodegraph sentinel, so errors.Is matches either name.
	ErrNodeNotFound = nodegraph.ErrNodeNotFound

	// ErrNoPath indicates that no predecessor chain leads back to the start.
	ErrNoPath = errors.New("search: no path")

	// ErrNotAdjacent indicates two consecutive path nodes without an edge.
	ErrNotAdjacent = errors.New("search: path nodes are not adjacent")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepBudget indicates that WithMaxSteps stopped the run early.
	ErrStepBudget = errors.New("search: step budget exhausted")
)

// Result is the outcome of a search.
//
// Found reports whether goal was reached. When it was, Path runs from start
// to goal inclusive and Cost is the summed edge cost along it (equal to the
// goal's GScore). When it was not, Path is nil and Cost is +Inf.
// Expanded counts the nodes taken out of the open set.
type Result struct {
	Found    bool
	Path     []nodegraph.NodeID
	Cost     float64
	Expanded int
}

// Options configures a search run.
type Options struct {
	// Ctx allows cancellation; checked before every expansion.
	Ctx context.Context

	// Heuristic estimates the remaining cost to the goal. Default score.Zero().
	Heuristic score.Func

	// MaxSteps caps the number of expansions; 0 means unlimited.
	MaxSteps int

	// Isolated keeps scores in per-run storage instead of node fields.
	Isolated bool

	// Highlight colors the found path with HighlightColor.
	Highlight      bool
	HighlightColor nodegraph.Color

	// TraceColors colors nodes as they enter the open and closed sets.
	TraceColors bool

	// OnExpand is called with every expanded node id.
	OnExpand func(id nodegraph.NodeID)

	// Logger receives debug records; nil disables logging.
	Logger *slog.Logger

	// err records an invalid option value.
	err error
}

// Option is a functional option for FindPath and NewStepper.
type Option func(*Options)

// DefaultOptions returns the default configuration: background context,
// zero heuristic, no step cap, node-backed state, no coloring, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Heuristic:      score.Zero(),
		MaxSteps:       0,
		HighlightColor: nodegraph.ColorPath,
	}
}

// WithHeuristic sets the heuristic. A nil fn keeps the zero heuristic.
func WithHeuristic(fn score.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps limits the run to n expansions.
//
//	n > 0:  at most n expansions, then ErrStepBudget
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithIsolatedState keeps all search state in per-run arrays. Node fields
// are left untouched, so highlight and trace coloring are disabled.
func WithIsolatedState() Option {
	return func(o *Options) { o.Isolated = true }
}

// WithHighlight colors every node of a found path with c.
func WithHighlight(c nodegraph.Color) Option {
	return func(o *Options) {
		o.Highlight = true
		o.HighlightColor = c
	}
}

// WithTraceColors colors open nodes nodegraph.ColorOpen and expanded nodes
// nodegraph.ColorClosed while the search runs.
func WithTraceColors() Option {
	return func(o *Options) { o.TraceColors = true }
}

// WithOnExpand registers a hook called for every expanded walkable node.
func WithOnExpand(fn func(id nodegraph.NodeID)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
