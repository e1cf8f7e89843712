// Package nodegraph defines the Node, Edge and Graph types, sentinel errors,
// the color palette consumed by renderers and the functional options used by
// Graph and Node construction.
package nodegraph

import (
	"errors"
	"iter"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Sentinel errors for nodegraph operations.
var (
	// ErrNodeNotFound indicates a NodeID that does not belong to the graph.
	ErrNodeNotFound = errors.New("nodegraph: node not found")

	// ErrBadCost indicates a negative or NaN edge cost.
	ErrBadCost = errors.New("nodegraph: edge cost must be a non-negative number")

	// ErrEmptyGraph indicates a query that needs at least one node.
	ErrEmptyGraph = errors.New("nodegraph: graph has no nodes")

	// ErrBadBound indicates a search box with non-finite or inverted corners.
	ErrBadBound = errors.New("nodegraph: invalid bound")
)

// NodeID is a stable handle of a Node inside its Graph.
type NodeID int

// NoNode is the "nil" handle. It marks a missing back-reference.
const NoNode NodeID = -1

// Color is a 0xRRGGBB value attached to a node for presentation.
type Color uint32

// Palette used by the search engine and the grid builder.
const (
	ColorDefault Color = 0xFFFFFF // untouched node
	ColorWall    Color = 0x505050 // non-walkable node
	ColorOpen    Color = 0x00A0FF // discovered, waiting in the open set
	ColorClosed  Color = 0xFF4040 // expanded
	ColorPath    Color = 0xFFFF00 // on the reconstructed path
	ColorStart   Color = 0x00FF00
	ColorGoal    Color = 0xFF00FF
)

// Edge is a one-way connection to Target with a fixed traversal Cost.
type Edge struct {
	Target NodeID
	Cost   float64
}

// Node is a vertex of the graph together with its search state.
//
// Position and edges define graph identity and never change after
// construction. The exported fields are transient search state: the search
// engine writes them and ResetScores restores them.
type Node struct {
	id        NodeID
	position  orb.Point
	edges     []Edge
	baseColor Color

	// GScore is the best known cost from the search start to this node.
	GScore float64
	// HScore is the heuristic estimate from this node to the goal.
	HScore float64
	// FScore is GScore + HScore, the open-set priority.
	FScore float64
	// Previous is the predecessor on the best known path, or NoNode.
	Previous NodeID
	// Color is the presentation color.
	Color Color
	// Walkable nodes may be expanded and entered by a search.
	Walkable bool
}

// ID returns the node handle.
func (n *Node) ID() NodeID { return n.id }

// Position returns the node position.
func (n *Node) Position() orb.Point { return n.position }

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.edges) }

// DefaultColor returns the color ResetScores restores.
func (n *Node) DefaultColor() Color { return n.baseColor }

// Edges yields copies of the outgoing edges in insertion order.
func (n *Node) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range n.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Reset restores the initial search state of a single node.
func (n *Node) Reset() {
	n.GScore = math.Inf(1)
	n.HScore = 0
	n.FScore = math.Inf(1)
	n.Previous = NoNode
	n.Color = n.baseColor
}

// NodeOption configures a Node when it is added to a Graph.
type NodeOption func(*Node)

// WithWalkable sets the walkable flag. Nodes are walkable by default.
func WithWalkable(walkable bool) NodeOption {
	return func(n *Node) { n.Walkable = walkable }
}

// WithColor sets the default color of the node.
func WithColor(c Color) NodeOption {
	return func(n *Node) { n.baseColor = c }
}

// GraphOption configures a Graph before creation.
type GraphOption func(*Graph)

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]*Node, 0, n)
		}
	}
}

// WithPickTolerance sets the half-size of the box each node occupies in the
// spatial index. Default is 1e-6.
func WithPickTolerance(tol float64) GraphOption {
	return func(g *Graph) {
		if tol > 0 {
			g.pickTol = tol
		}
	}
}

// Graph is an arena of nodes addressed by NodeID.
//
// Nodes are appended and never removed, so a NodeID stays valid for the life
// of the graph. index mirrors node positions for spatial queries.
type Graph struct {
	nodes   []*Node
	edges   int
	index   *rtreego.Rtree
	pickTol float64
}
