package nodegraph

// ResetScores restores the initial search state of every node reachable
// from start and returns how many nodes were reset.
//
// GScore and FScore go back to +Inf, HScore to 0, Previous to NoNode and
// Color to the node's default color. Position, edges and the walkable flag
// are left alone. Each reachable node is reset exactly once, whatever the
// cycles or reconvergent paths in the graph.
//
// Errors:
//   - ErrNodeNotFound if start is unknown.
//
// Complexity: O(V + E).
func (g *Graph) ResetScores(start NodeID) (int, error) {
	count := 0
	err := g.Walk(start, func(n *Node) error {
		n.Reset()
		count++

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ResetAll restores the initial search state of every node in the graph,
// reachable or not.
// Complexity: O(V).
func (g *Graph) ResetAll() {
	for _, n := range g.nodes {
		n.Reset()
	}
}
