package nodegraph

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// indexEntry is the R-tree record of one node.
type indexEntry struct {
	id   NodeID
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect { return e.rect }

func toPoint(p orb.Point) rtreego.Point {
	return rtreego.Point{p.X(), p.Y()}
}

// Nearest returns the node closest to p, typically the node under a cursor.
//
// Errors:
//   - ErrEmptyGraph if the graph has no nodes.
//
// Complexity: O(log V) expected.
func (g *Graph) Nearest(p orb.Point) (NodeID, error) {
	if len(g.nodes) == 0 {
		return NoNode, ErrEmptyGraph
	}
	hit := g.index.NearestNeighbor(toPoint(p))
	if hit == nil {
		return NoNode, ErrEmptyGraph
	}

	return hit.(*indexEntry).id, nil
}

// Within returns the ids of nodes whose position lies inside b, in
// ascending id order.
//
// Errors:
//   - ErrBadBound if b has a NaN or infinite coordinate or Min > Max on
//     either axis. An empty graph with a valid b yields (nil, nil).
func (g *Graph) Within(b orb.Bound) ([]NodeID, error) {
	for _, v := range [...]float64{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrBadBound, b)
		}
	}
	if b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() {
		return nil, fmt.Errorf("%w: min %v above max %v", ErrBadBound, b.Min, b.Max)
	}
	if len(g.nodes) == 0 {
		return nil, nil
	}
	// rtreego rejects zero-length sides, so degenerate bounds are padded.
	w := math.Max(b.Max.X()-b.Min.X(), g.pickTol)
	h := math.Max(b.Max.Y()-b.Min.Y(), g.pickTol)
	rect, err := rtreego.NewRect(toPoint(b.Min), []float64{w, h})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadBound, err)
	}

	hits := g.index.SearchIntersect(rect)
	seen := make([]bool, len(g.nodes))
	for _, s := range hits {
		id := s.(*indexEntry).id
		if b.Contains(g.nodes[id].position) {
			seen[id] = true
		}
	}

	var out []NodeID
	for i, ok := range seen {
		if ok {
			out = append(out, NodeID(i))
		}
	}

	return out, nil
}
