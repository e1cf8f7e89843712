package search

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// ReconstructPath rebuilds the path start→end from the Previous links left
// by a successful node-backed search. The walk goes back from end and stops
// at start; the result is in start→end order and contains both ends.
//
// Errors:
//   - ErrNilGraph, ErrNodeNotFound for invalid input.
//   - ErrNoPath if the chain ends before start or loops, which is what a
//     graph without a prior successful search looks like.
//
// Complexity: O(path length).
func ReconstructPath(g *nodegraph.Graph, start, end nodegraph.NodeID) ([]nodegraph.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(start) || !g.Has(end) {
		return nil, fmt.Errorf("search: reconstruct %d→%d: %w", start, end, ErrNodeNotFound)
	}
	nodes := g.Nodes()
	prev := func(id nodegraph.NodeID) nodegraph.NodeID {
		if !g.Has(id) {
			return nodegraph.NoNode
		}
		return nodes[id].Previous
	}

	return reconstruct(prev, start, end, len(nodes))
}

// reconstruct walks prev from end to start. limit bounds the walk so a
// corrupted chain with a cycle cannot spin forever.
func reconstruct(prev func(nodegraph.NodeID) nodegraph.NodeID, start, end nodegraph.NodeID, limit int) ([]nodegraph.NodeID, error) {
	path := []nodegraph.NodeID{end}
	for cur := end; cur != start; {
		cur = prev(cur)
		if cur == nodegraph.NoNode || len(path) >= limit {
			return nil, fmt.Errorf("%w: chain from %d does not reach %d", ErrNoPath, end, start)
		}
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// HighlightPath sets the color of every node on path to c. It is a display
// helper layered on top of reconstruction.
func HighlightPath(g *nodegraph.Graph, path []nodegraph.NodeID, c nodegraph.Color) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, id := range path {
		n, err := g.Node(id)
		if err != nil {
			return err
		}
		n.Color = c
	}

	return nil
}

// PathCost sums, for each consecutive pair of path, the cheapest edge from
// the first node to the second. Paths with fewer than two nodes cost 0.
//
// Errors:
//   - ErrNilGraph, ErrNodeNotFound for invalid input.
//   - ErrNotAdjacent if a pair has no connecting edge.
func PathCost(g *nodegraph.Graph, path []nodegraph.NodeID) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		from, err := g.Node(path[i])
		if err != nil {
			return 0, err
		}
		if !g.Has(path[i+1]) {
			return 0, fmt.Errorf("search: path[%d]: %w: id=%d", i+1, ErrNodeNotFound, path[i+1])
		}
		best, ok := math.Inf(1), false
		for e := range from.Edges() {
			if e.Target == path[i+1] && (!ok || e.Cost < best) {
				best, ok = e.Cost, true
			}
		}
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrNotAdjacent, path[i], path[i+1])
		}
		total += best
	}

	return total, nil
}
