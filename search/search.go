package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/score"
)

// FindPath computes a minimum-cost path from start to goal in g.
//
// Returns:
//
//   - Result{Found: true, Path, Cost, Expanded} when goal is reachable.
//   - Result{Found: false} with a nil error when it is not, including when
//     start or goal is not walkable.
//   - an error for invalid input (ErrNilGraph, ErrNodeNotFound,
//     ErrOptionViolation), a cancelled context or ErrStepBudget.
//
// Preconditions:
//   - Edge costs are non-negative (enforced by nodegraph.AddEdge).
//   - The heuristic is admissible if an optimal path is required.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func FindPath(g *nodegraph.Graph, start, goal nodegraph.NodeID, opts ...Option) (Result, error) {
	s, err := NewStepper(g, start, goal, opts...)
	if err != nil {
		return Result{Cost: math.Inf(1)}, err
	}

	return s.Run()
}

// Stepper runs a search one expansion at a time.
//
//	s, err := search.NewStepper(g, start, goal, search.WithTraceColors())
//	for !s.Done() {
//	    if _, err := s.Step(); err != nil { ... }
//	    draw(g) // open/closed colors are live
//	}
//	res := s.Result()
type Stepper struct {
	r *runner
}

// NewStepper validates the input and prepares a run without expanding
// anything yet.
func NewStepper(g *nodegraph.Graph, start, goal nodegraph.NodeID, opts ...Option) (*Stepper, error) {
	// 1) Build and validate options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("search: start: %w: id=%d", ErrNodeNotFound, start)
	}
	if !g.Has(goal) {
		return nil, fmt.Errorf("search: goal: %w: id=%d", ErrNodeNotFound, goal)
	}

	// 3) Choose where scores live
	nodes := g.Nodes()
	var store scoreStore
	if cfg.Isolated {
		store = newSliceStore(len(nodes))
	} else {
		store = &nodeStore{nodes: nodes, trace: cfg.TraceColors}
	}

	r := &runner{
		nodes:      nodes,
		start:      start,
		goal:       goal,
		opts:       cfg,
		store:      store,
		discovered: make([]bool, len(nodes)),
		closed:     make([]bool, len(nodes)),
		open:       newOpenSet(len(nodes)),
		current:    nodegraph.NoNode,
	}
	r.init()

	return &Stepper{r: r}, nil
}

// Step expands one node. It returns true once the run is over: goal found,
// open set exhausted, or an error. Calling Step after that is a no-op that
// returns true and the sticky error, if any.
func (s *Stepper) Step() (bool, error) {
	return s.r.step()
}

// Run steps until the run is over and returns the Result.
func (s *Stepper) Run() (Result, error) {
	for {
		done, err := s.r.step()
		if err != nil {
			return s.Result(), err
		}
		if done {
			return s.Result(), nil
		}
	}
}

// Done reports whether the run is over.
func (s *Stepper) Done() bool { return s.r.done }

// Current returns the most recently expanded node, or NoNode before the
// first step.
func (s *Stepper) Current() nodegraph.NodeID { return s.r.current }

// Result returns the outcome so far. Before the run is over it reports
// Found == false and the number of expansions made.
func (s *Stepper) Result() Result {
	return s.r.result
}

// runner holds the mutable state for a single search execution.
type runner struct {
	nodes      []*nodegraph.Node // arena snapshot; nodes are shared with the graph
	start      nodegraph.NodeID
	goal       nodegraph.NodeID
	opts       Options
	store      scoreStore
	discovered []bool // lazily initialised this run
	closed     []bool // expanded, score final
	open       openSet
	seq        uint64 // next discovery sequence number
	current    nodegraph.NodeID
	done       bool
	err        error
	result     Result
}

// init seeds the open set with start at g=0.
func (r *runner) init() {
	r.result = Result{Cost: math.Inf(1)}
	r.debug("search started",
		"start", r.start, "goal", r.goal,
		"nodes", len(r.nodes), "isolated", r.opts.Isolated)

	// A blocked endpoint cannot be part of any path.
	if !r.nodes[r.start].Walkable || !r.nodes[r.goal].Walkable {
		r.finish(false)
		return
	}

	r.discover(r.start)
	r.store.update(r.start, 0, nodegraph.NoNode)
	r.push(r.start)
}

// step is one iteration of the main loop.
func (r *runner) step() (bool, error) {
	if r.done {
		return true, r.err
	}

	// 1) Exhausted open set: no path, whatever the budget or context say
	if r.open.Len() == 0 {
		r.finish(false)
		return true, nil
	}

	// 2) Cancellation and budget
	select {
	case <-r.opts.Ctx.Done():
		return r.fail(r.opts.Ctx.Err())
	default:
	}
	if r.opts.MaxSteps > 0 && r.result.Expanded >= r.opts.MaxSteps {
		return r.fail(fmt.Errorf("%w: %d expansions", ErrStepBudget, r.result.Expanded))
	}

	// 3) Take the best node and close it
	cur := heap.Pop(&r.open).(*openItem).id
	r.closed[cur] = true
	r.current = cur
	r.result.Expanded++
	r.store.mark(cur, nodegraph.ColorClosed)

	if cur == r.goal {
		r.finish(true)
		return true, nil
	}

	n := r.nodes[cur]
	if !n.Walkable {
		return false, nil
	}
	if r.opts.OnExpand != nil {
		r.opts.OnExpand(cur)
	}

	// 4) Relax outgoing edges
	r.relax(n)

	return false, nil
}

// relax tries to improve every walkable, unclosed neighbour of n.
func (r *runner) relax(n *nodegraph.Node) {
	cur := n.ID()
	base := r.store.g(cur)

	var v nodegraph.NodeID
	var tentative float64
	for e := range n.Edges() {
		v = e.Target
		if r.closed[v] || !r.nodes[v].Walkable {
			continue
		}
		r.discover(v)

		tentative = base + score.EdgeCost(n, e)
		if tentative >= r.store.g(v) {
			continue
		}
		r.store.update(v, tentative, cur)

		// Refresh priority in place, or insert on first improvement.
		if it := r.open.lookup(v); it != nil {
			it.f = r.store.f(v)
			heap.Fix(&r.open, it.index)
		} else {
			r.push(v)
		}
	}
}

// discover initialises v the first time this run sees it.
func (r *runner) discover(v nodegraph.NodeID) {
	if r.discovered[v] {
		return
	}
	r.discovered[v] = true
	h := r.opts.Heuristic(r.nodes[v].Position(), r.nodes[r.goal].Position())
	r.store.discover(v, h)
}

// push inserts v into the open set with the next discovery number.
func (r *runner) push(v nodegraph.NodeID) {
	heap.Push(&r.open, &openItem{id: v, f: r.store.f(v), seq: r.seq})
	r.seq++
	r.store.mark(v, nodegraph.ColorOpen)
}

// finish closes the run and fills the result.
func (r *runner) finish(found bool) {
	r.done = true
	if found {
		path, err := reconstruct(r.store.previous, r.start, r.goal, len(r.nodes))
		if err != nil {
			// Unreachable with a consistent store; report as no path.
			found = false
		} else {
			r.result.Found = true
			r.result.Path = path
			r.result.Cost = r.store.g(r.goal)
			if r.opts.Highlight && !r.opts.Isolated {
				for _, id := range path {
					r.nodes[id].Color = r.opts.HighlightColor
				}
			}
		}
	}
	r.debug("search finished",
		"found", found, "expanded", r.result.Expanded, "cost", r.result.Cost)
}

// fail stops the run with a sticky error.
func (r *runner) fail(err error) (bool, error) {
	r.done = true
	r.err = err
	r.debug("search aborted", "expanded", r.result.Expanded, "err", err)

	return true, err
}

func (r *runner) debug(msg string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Debug(msg, args...)
	}
}
