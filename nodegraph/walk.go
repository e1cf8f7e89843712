package nodegraph

import (
	"errors"
	"fmt"
)

// SkipAll may be returned by a VisitFunc to stop the walk without error.
var SkipAll = errors.New("nodegraph: skip remaining nodes")

// VisitFunc is called once for every node reached by Walk.
// Returning SkipAll stops the walk cleanly; any other error aborts it.
type VisitFunc func(n *Node) error

// Walk visits every node reachable from start exactly once, depth-first,
// pre-order. Edges are explored in insertion order; walkability is ignored
// because traversal follows topology, not passability.
//
// An explicit stack replaces recursion, so depth is bounded by memory rather
// than the goroutine stack. A node is marked on pop, which keeps the visiting
// order identical to the recursive formulation.
//
// Errors:
//   - ErrNodeNotFound if start is unknown.
//   - the error returned by visit, wrapped with the node id.
//
// Complexity: O(V + E) time, O(V + E) memory.
func (g *Graph) Walk(start NodeID, visit VisitFunc) error {
	if !g.Has(start) {
		return fmt.Errorf("%w: start=%d", ErrNodeNotFound, start)
	}

	visited := make([]bool, len(g.nodes))
	stack := make([]NodeID, 0, 16)
	stack = append(stack, start)

	var id NodeID
	for len(stack) > 0 {
		// 1. Pop
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		// 2. Pre-order hook
		n := g.nodes[id]
		if err := visit(n); err != nil {
			if errors.Is(err, SkipAll) {
				return nil
			}

			return fmt.Errorf("nodegraph: visit %d: %w", id, err)
		}

		// 3. Push unvisited targets in reverse so the first edge pops first
		for i := len(n.edges) - 1; i >= 0; i-- {
			if t := n.edges[i].Target; !visited[t] {
				stack = append(stack, t)
			}
		}
	}

	return nil
}

// Reachable returns the ids reachable from start in Walk order, start first.
func (g *Graph) Reachable(start NodeID) ([]NodeID, error) {
	var out []NodeID
	err := g.Walk(start, func(n *Node) error {
		out = append(out, n.id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
