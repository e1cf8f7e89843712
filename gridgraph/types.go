// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvpath.
package gridgraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate or node id outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadOptions indicates invalid Options or generator parameters.
	ErrBadOptions = errors.New("gridgraph: invalid options")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// WalkableThreshold is the minimum cell value of a walkable cell.
	WalkableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CardinalCost is the cost of an N/E/S/W step.
	CardinalCost float64
	// DiagonalCost is the cost of a diagonal step (Conn8 only).
	DiagonalCost float64
	// Spacing is the distance between neighbouring cell positions.
	Spacing float64
}

// DefaultOptions returns Options with default settings:
// WalkableThreshold=1, Conn=Conn8, CardinalCost=1, DiagonalCost=√2, Spacing=1.
func DefaultOptions() Options {
	return Options{
		WalkableThreshold: 1,
		Conn:              Conn8,
		CardinalCost:      1,
		DiagonalCost:      math.Sqrt2,
		Spacing:           1,
	}
}

// GridGraph is a rectangular grid backed by a *nodegraph.Graph.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// The topology is fixed once built; walkability and search state live on
// the graph's nodes.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	opts            Options
	graph           *nodegraph.Graph
	neighborOffsets [][2]int
}
