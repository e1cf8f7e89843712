// Package gridgraph builds nodegraph graphs from 2D grids of integer cell
// values, the usual map format of tile-based games and level editors.
//
// What:
//
//   - Every cell (x, y) becomes one node at position (x*Spacing, y*Spacing),
//     with NodeID y*Width + x.
//   - Cells with value < WalkableThreshold become non-walkable "walls"
//     colored nodegraph.ColorWall. They keep their edges so a wall can be
//     toggled later with SetWall.
//   - Neighbouring cells are joined in both directions: N/E/S/W with
//     CardinalCost, plus the four diagonals with DiagonalCost under Conn8.
//   - Regions lists the connected walkable areas, which is a cheap way to
//     tell whether two cells can be joined at all before searching.
//
// Why:
//
//   - Game maps: unit movement with 4- or 8-directional steps.
//   - Heuristic tuning: the edge costs here match score.Diagonal(CardinalCost,
//     DiagonalCost) when Spacing == 1, which makes that heuristic exact on
//     an open grid.
//
// Complexity:
//
//   - New:     O(W×H×d) time and memory, d = 4 or 8.
//   - Regions: O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    coordinate or id outside the grid.
//   - ErrBadOptions:     negative/NaN costs, non-positive spacing, density
//     outside [0, 1].
package gridgraph
