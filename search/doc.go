// Package search finds a minimum-cost path between two nodes of a
// nodegraph.Graph using best-first search. With the zero heuristic it is
// Dijkstra's algorithm; with an admissible heuristic it is A*.
//
// Overview:
//
//   - FindPath(g, start, goal, opts...) runs the search to completion and
//     returns a Result. A missing path is a normal outcome (Result.Found ==
//     false, nil error); only invalid input, cancellation or an exhausted
//     step budget produce an error.
//   - Stepper runs the same search one expansion per Step call, so an
//     interactive front end can draw the open and closed sets as they grow.
//   - ReconstructPath rebuilds start→end from Node.Previous links after a
//     successful node-backed search; HighlightPath tags a path for display.
//
// Algorithm:
//
//  1. start.GScore = 0, open = {start}, closed = {}.
//  2. Pop the open node with the smallest FScore = GScore + HScore.
//     Ties go to the node discovered first (FIFO by discovery order), so the
//     choice among equal-cost routes is reproducible.
//  3. Close it. Stop on goal. Non-walkable nodes are never entered.
//  4. Relax each edge to a walkable, unclosed neighbour: if
//     GScore(current) + cost < GScore(neighbour), record the new score and
//     predecessor and insert the neighbour or refresh its priority.
//  5. An empty open set means there is no path.
//
// Node state is initialised lazily the first time a run discovers a node,
// so leftovers from an earlier run never leak into a new one. Calling
// nodegraph.Graph.ResetScores before a run is still the way to clear what a
// renderer shows.
//
// Complexity:
//
//   - Time:  O((V + E) log V). The open set is a binary heap with
//     decrease-key (heap.Fix), so each relaxation costs O(log V) and no
//     step scans the whole open set.
//   - Space: O(V) for the closed bitset, discovery flags and heap index.
//
// Options:
//
//   - WithHeuristic(score.Func)   estimate to the goal; default score.Zero().
//   - WithContext(ctx)            checked before every expansion.
//   - WithMaxSteps(n)             expansion budget; ErrStepBudget when hit.
//   - WithIsolatedState()         keep scores in per-run arrays; node fields
//     are not written and concurrent searches on an unmodified graph are safe.
//   - WithHighlight(color)        color the found path (node-backed runs).
//   - WithTraceColors()           color open and closed nodes (node-backed runs).
//   - WithOnExpand(fn)            called for every expanded node.
//   - WithLogger(*slog.Logger)    debug logging of run start and outcome.
//
// Errors:
//
//   - ErrNilGraph         graph pointer is nil.
//   - ErrNodeNotFound     start or goal is not a node of the graph.
//   - ErrOptionViolation  an option received an invalid value.
//   - ErrStepBudget       WithMaxSteps budget exhausted before an answer.
//   - ErrNoPath           ReconstructPath found no chain back to start.
//   - ErrNotAdjacent      PathCost was given two unconnected consecutive nodes.
//   - ctx.Err()           the context was cancelled.
//
// Thread safety:
//
//   - Node-backed runs write node fields and must not overlap on one graph.
//   - Isolated runs only read the graph.
package search
