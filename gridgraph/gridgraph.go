package gridgraph

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// New constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
//
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadOptions for
// negative/NaN costs or a non-positive spacing.
// Complexity: O(W×H×d) time and memory.
func New(values [][]int, opts Options) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if err := validate(opts); err != nil {
		return nil, err
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		opts:            opts,
		graph:           nodegraph.NewGraph(nodegraph.WithCapacity(w * h)),
		neighborOffsets: offsets,
	}
	if err := gg.build(); err != nil {
		return nil, err
	}

	return gg, nil
}

func validate(opts Options) error {
	switch {
	case math.IsNaN(opts.CardinalCost) || opts.CardinalCost < 0:
		return fmt.Errorf("%w: CardinalCost=%v", ErrBadOptions, opts.CardinalCost)
	case opts.Conn == Conn8 && (math.IsNaN(opts.DiagonalCost) || opts.DiagonalCost < 0):
		return fmt.Errorf("%w: DiagonalCost=%v", ErrBadOptions, opts.DiagonalCost)
	case !(opts.Spacing > 0):
		return fmt.Errorf("%w: Spacing=%v", ErrBadOptions, opts.Spacing)
	case opts.Conn != Conn4 && opts.Conn != Conn8:
		return fmt.Errorf("%w: Conn=%d", ErrBadOptions, opts.Conn)
	}

	return nil
}

// build adds one node per cell in row-major order, then the edges.
func (gg *GridGraph) build() error {
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			pos := orb.Point{float64(x) * gg.opts.Spacing, float64(y) * gg.opts.Spacing}
			if gg.walkableValue(gg.CellValues[y][x]) {
				gg.graph.AddNode(pos)
			} else {
				gg.graph.AddNode(pos,
					nodegraph.WithWalkable(false),
					nodegraph.WithColor(nodegraph.ColorWall))
			}
		}
	}

	// Each neighbour pair is visited from both sides, so every edge gets
	// its reciprocal without calling Connect.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.id(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				cost := gg.opts.CardinalCost
				if d[0] != 0 && d[1] != 0 {
					cost = gg.opts.DiagonalCost
				}
				if err := gg.graph.AddEdge(u, gg.id(nx, ny), cost); err != nil {
					return fmt.Errorf("gridgraph: edge (%d,%d)→(%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	return nil
}

func (gg *GridGraph) walkableValue(v int) bool {
	return v >= gg.opts.WalkableThreshold
}

// Graph returns the backing graph.
func (gg *GridGraph) Graph() *nodegraph.Graph { return gg.graph }

// Options returns the options the grid was built with.
func (gg *GridGraph) Options() Options { return gg.opts }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// id maps (x,y) to the row-major node id: y*Width + x.
func (gg *GridGraph) id(x, y int) nodegraph.NodeID {
	return nodegraph.NodeID(y*gg.Width + x)
}

// NodeAt returns the node id of cell (x,y).
func (gg *GridGraph) NodeAt(x, y int) (nodegraph.NodeID, error) {
	if !gg.InBounds(x, y) {
		return nodegraph.NoNode, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return gg.id(x, y), nil
}

// Coordinate converts a node id back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id nodegraph.NodeID) (x, y int) {
	return int(id) % gg.Width, int(id) / gg.Width
}

// Cell returns the cell behind a node id.
func (gg *GridGraph) Cell(id nodegraph.NodeID) (Cell, error) {
	if id < 0 || int(id) >= gg.Width*gg.Height {
		return Cell{}, fmt.Errorf("%w: id=%d", ErrOutOfBounds, id)
	}
	x, y := gg.Coordinate(id)

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, nil
}

// SetWall toggles the wall state of (x,y): the node's walkable flag and
// color change together. The stored cell value is not modified, and
// ResetScores restores the color the cell was built with.
func (gg *GridGraph) SetWall(x, y int, wall bool) error {
	id, err := gg.NodeAt(x, y)
	if err != nil {
		return err
	}
	n, err := gg.graph.Node(id)
	if err != nil {
		return err
	}
	n.Walkable = !wall
	if wall {
		n.Color = nodegraph.ColorWall
	} else {
		n.Color = nodegraph.ColorDefault
	}

	return nil
}
