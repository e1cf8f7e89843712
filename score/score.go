// Package score provides the cost functions used by the search engine:
// the edge traversal cost and a family of heuristic estimates of the
// remaining cost from a node to the goal.
//
// All functions are pure. They read positions and edge costs and never touch
// graph state.
//
// Admissibility:
//
//	A heuristic is admissible when it never overestimates the true remaining
//	cost. Only admissible heuristics guarantee optimal paths. Diagonal is
//	admissible on an 8-connected grid with unit spacing iff
//	diagonal <= 2*cardinal and the graph's edge costs are at least cardinal
//	per axis step and diagonal per diagonal step. Diagonal does not check
//	or clamp its constants: incompatible values produce a working but
//	possibly non-optimal search. Use Admissible to check them up front.
package score

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// Func estimates the cost of travelling from one position to the goal.
type Func func(from, goal orb.Point) float64

// EdgeCost returns the cost of traversing e out of n. The node is accepted
// for cost models that depend on the source; the default model reads e.Cost.
func EdgeCost(_ *nodegraph.Node, e nodegraph.Edge) float64 {
	return e.Cost
}

// DiagonalDistance is the diagonal-distance heuristic for 8-directional
// movement:
//
//	cardinal*(|dx|+|dy|) + (diagonal - 2*cardinal)*min(|dx|,|dy|)
//
// where dx and dy are the coordinate displacements between from and goal.
func DiagonalDistance(from, goal orb.Point, cardinal, diagonal float64) float64 {
	dx := math.Abs(from.X() - goal.X())
	dy := math.Abs(from.Y() - goal.Y())

	return cardinal*(dx+dy) + (diagonal-2*cardinal)*math.Min(dx, dy)
}

// Admissible reports whether cardinal and diagonal satisfy
// diagonal <= 2*cardinal, the precondition of an admissible Diagonal.
func Admissible(cardinal, diagonal float64) bool {
	return diagonal <= 2*cardinal
}

// Zero always returns 0, turning the search into plain Dijkstra.
func Zero() Func {
	return func(_, _ orb.Point) float64 { return 0 }
}

// Diagonal returns DiagonalDistance bound to the given step costs.
func Diagonal(cardinal, diagonal float64) Func {
	return func(from, goal orb.Point) float64 {
		return DiagonalDistance(from, goal, cardinal, diagonal)
	}
}

// Octile is Diagonal(1, √2), exact on an obstacle-free 8-connected grid
// with Euclidean step costs.
func Octile() Func { return Diagonal(1, math.Sqrt2) }

// Chebyshev is Diagonal(1, 1): max(|dx|, |dy|).
func Chebyshev() Func { return Diagonal(1, 1) }

// Manhattan is cardinal*(|dx|+|dy|), admissible on 4-connected grids.
func Manhattan(cardinal float64) Func {
	return func(from, goal orb.Point) float64 {
		return cardinal * (math.Abs(from.X()-goal.X()) + math.Abs(from.Y()-goal.Y()))
	}
}

// Euclidean is scale times the straight-line distance, admissible whenever
// every edge costs at least scale times its length.
func Euclidean(scale float64) Func {
	return func(from, goal orb.Point) float64 {
		return scale * planar.Distance(from, goal)
	}
}
