package search

import (
	"math"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// scoreStore holds the per-node scores of one run. nodeStore writes them into
// the graph's nodes for renderers; sliceStore keeps them private to the run.
type scoreStore interface {
	// discover initialises id on first sight: g=+Inf, f=+Inf, prev=NoNode.
	discover(id nodegraph.NodeID, h float64)
	g(id nodegraph.NodeID) float64
	f(id nodegraph.NodeID) float64
	previous(id nodegraph.NodeID) nodegraph.NodeID
	// update records a better path to id through prev.
	update(id nodegraph.NodeID, g float64, prev nodegraph.NodeID)
	mark(id nodegraph.NodeID, c nodegraph.Color)
}

// nodeStore keeps scores on the nodes themselves.
type nodeStore struct {
	nodes []*nodegraph.Node
	trace bool
}

func (s *nodeStore) discover(id nodegraph.NodeID, h float64) {
	n := s.nodes[id]
	n.GScore = math.Inf(1)
	n.HScore = h
	n.FScore = math.Inf(1)
	n.Previous = nodegraph.NoNode
}

func (s *nodeStore) g(id nodegraph.NodeID) float64 { return s.nodes[id].GScore }

func (s *nodeStore) f(id nodegraph.NodeID) float64 { return s.nodes[id].FScore }

func (s *nodeStore) previous(id nodegraph.NodeID) nodegraph.NodeID { return s.nodes[id].Previous }

func (s *nodeStore) update(id nodegraph.NodeID, g float64, prev nodegraph.NodeID) {
	n := s.nodes[id]
	n.GScore = g
	n.FScore = g + n.HScore
	n.Previous = prev
}

func (s *nodeStore) mark(id nodegraph.NodeID, c nodegraph.Color) {
	if s.trace {
		s.nodes[id].Color = c
	}
}

// sliceStore keeps scores in arrays indexed by NodeID.
type sliceStore struct {
	gs   []float64
	hs   []float64
	prev []nodegraph.NodeID
}

func newSliceStore(n int) *sliceStore {
	return &sliceStore{
		gs:   make([]float64, n),
		hs:   make([]float64, n),
		prev: make([]nodegraph.NodeID, n),
	}
}

func (s *sliceStore) discover(id nodegraph.NodeID, h float64) {
	s.gs[id] = math.Inf(1)
	s.hs[id] = h
	s.prev[id] = nodegraph.NoNode
}

func (s *sliceStore) g(id nodegraph.NodeID) float64 { return s.gs[id] }

func (s *sliceStore) f(id nodegraph.NodeID) float64 { return s.gs[id] + s.hs[id] }

func (s *sliceStore) previous(id nodegraph.NodeID) nodegraph.NodeID { return s.prev[id] }

func (s *sliceStore) update(id nodegraph.NodeID, g float64, prev nodegraph.NodeID) {
	s.gs[id] = g
	s.prev[id] = prev
}

func (s *sliceStore) mark(nodegraph.NodeID, nodegraph.Color) {}
