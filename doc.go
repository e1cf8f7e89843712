// Package lvpath is a small toolkit for single-pair pathfinding on graphs
// whose nodes live in the plane: road maps, game grids, navigation meshes.
//
// What is lvpath?
//
//	A library plus a demo binary that bring together:
//		• Graph model: arena of nodes with stable ids, weighted directed edges,
//		  per-node search state and presentation colors (nodegraph)
//		• Heuristics: diagonal-distance family, Manhattan, Euclidean (score)
//		• Search: Dijkstra / A* with a binary-heap open set, step-by-step
//		  driving, isolated concurrent mode and path reconstruction (search)
//		• Grids: 2D cell maps to graphs, walkable regions, random maps (gridgraph)
//		• Metrics: Prometheus collectors for search outcomes (metrics)
//
// Layout:
//
//	nodegraph/  Node, Edge, Graph, Walk, ResetScores, spatial lookup
//	score/      EdgeCost and heuristic constructors
//	search/     FindPath, Stepper, ReconstructPath, HighlightPath, PathCost
//	gridgraph/  grid construction collaborator
//	metrics/    Recorder
//	cmd/lvpath/ cobra CLI rendering searches with lipgloss
//
// Quick start:
//
//	g := nodegraph.NewGraph()
//	a := g.AddNode(orb.Point{0, 0})
//	b := g.AddNode(orb.Point{3, 4})
//	_ = g.Connect(a, b, 5)
//	res, err := search.FindPath(g, a, b, search.WithHeuristic(score.Euclidean(1)))
//
// See the package docs and example_test.go files for details.
package lvpath
