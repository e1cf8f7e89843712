// Package nodegraph is the graph model behind lvpath: a sparse, weighted,
// directed multigraph whose nodes live at fixed positions in the plane and
// carry the per-node state of a shortest-path search.
//
// What:
//
//   - Graph is an arena of *Node records addressed by a stable NodeID handle.
//     Edges store NodeID targets, and Node.Previous is a NodeID back-reference,
//     so cycles in the topology never turn into ownership cycles.
//   - Each Node owns its outgoing edges. Edge costs are fixed when the edge is
//     added and are only exposed as value copies.
//   - Search state (GScore, HScore, FScore, Previous, Color) is exported so the
//     search engine can update it and a renderer can read it.
//
// Traversal:
//
//   - Walk visits every node reachable from a start node exactly once, in
//     depth-first pre-order, using an explicit stack and a visited bitset.
//     Cycles, self-loops and diamond-shaped reconvergence are all safe.
//   - ResetScores is built on Walk and restores every reachable node to the
//     initial search state (GScore=+Inf, HScore=0, FScore=+Inf,
//     Previous=NoNode, Color=node default). Position and edges are untouched.
//
// Spatial lookup:
//
//   - Nearest and Within answer "which node is under the cursor" style queries
//     through an R-tree that is kept in sync by AddNode.
//
// Errors:
//
//   - ErrNodeNotFound: a NodeID does not belong to the graph.
//   - ErrBadCost:      an edge cost is negative or NaN.
//   - ErrEmptyGraph:   a spatial query ran on a graph without nodes.
//
// Complexity:
//
//   - AddNode O(log V) amortized (R-tree insert), AddEdge O(1) amortized.
//   - Walk, Reachable, ResetScores O(V + E) time, O(V + E) memory.
//
// Thread safety:
//
//   - A Graph is not safe for concurrent mutation. Searches that write node
//     state must not overlap on the same graph; see search.WithIsolatedState
//     for concurrent read-only use.
package nodegraph
