package nodegraph

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pickTol: 1e-6,
		index:   rtreego.NewTree(2, 25, 50),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode appends a node at pos and returns its handle.
//
// The node starts walkable, with ColorDefault and a reset search state.
// Complexity: O(log V) amortized.
func (g *Graph) AddNode(pos orb.Point, opts ...NodeOption) NodeID {
	n := &Node{
		id:        NodeID(len(g.nodes)),
		position:  pos,
		baseColor: ColorDefault,
		Walkable:  true,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.Reset()

	g.nodes = append(g.nodes, n)
	g.index.Insert(&indexEntry{id: n.id, rect: toPoint(pos).ToRect(g.pickTol)})

	return n.id
}

// AddEdge adds a one-way edge from → to with the given cost.
// Parallel edges and self-loops are allowed.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is unknown.
//   - ErrBadCost if cost is negative or NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, cost float64) error {
	if !g.Has(from) {
		return fmt.Errorf("%w: from=%d", ErrNodeNotFound, from)
	}
	if !g.Has(to) {
		return fmt.Errorf("%w: to=%d", ErrNodeNotFound, to)
	}
	if math.IsNaN(cost) || cost < 0 {
		return fmt.Errorf("%w: %d→%d cost=%v", ErrBadCost, from, to, cost)
	}

	src := g.nodes[from]
	src.edges = append(src.edges, Edge{Target: to, Cost: cost})
	g.edges++

	return nil
}

// Connect adds the edges a → b and b → a, both with the given cost.
func (g *Graph) Connect(a, b NodeID, cost float64) error {
	if err := g.AddEdge(a, b, cost); err != nil {
		return err
	}

	return g.AddEdge(b, a, cost)
}

// Has reports whether id belongs to the graph.
func (g *Graph) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node for id, or ErrNodeNotFound.
func (g *Graph) Node(id NodeID) (*Node, error) {
	if !g.Has(id) {
		return nil, fmt.Errorf("%w: id=%d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns the nodes in NodeID order. The slice is a copy; the nodes
// are shared with the graph.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// SetWalkable changes the walkable flag of a node between searches.
func (g *Graph) SetWalkable(id NodeID, walkable bool) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.Walkable = walkable

	return nil
}

// Bound returns the bounding box of all node positions.
// An empty graph yields the zero Bound.
func (g *Graph) Bound() orb.Bound {
	if len(g.nodes) == 0 {
		return orb.Bound{}
	}
	b := g.nodes[0].position.Bound()
	for _, n := range g.nodes[1:] {
		b = b.Extend(n.position)
	}

	return b
}
