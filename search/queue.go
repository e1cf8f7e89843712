package search

import "github.com/katalvlaran/lvpath/nodegraph"

// openItem is one node waiting in the open set.
type openItem struct {
	id    nodegraph.NodeID
	f     float64 // priority: GScore + HScore
	seq   uint64  // discovery order, breaks ties between equal f
	index int     // position in the heap, maintained by Swap/Push/Pop
}

// openSet is a min-heap of *openItem ordered by (f, seq) with an id lookup
// so a node whose score improves can be fixed in place (decrease-key)
// instead of being pushed twice.
type openSet struct {
	items []*openItem
	byID  []*openItem // byID[id] != nil iff id is in the heap
}

func newOpenSet(n int) openSet {
	return openSet{
		items: make([]*openItem, 0, 16),
		byID:  make([]*openItem, n),
	}
}

// Len returns the number of items in the heap.
func (q openSet) Len() int { return len(q.items) }

// Less orders by priority, then by discovery order (FIFO among ties).
func (q openSet) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// Swap swaps two elements and keeps their heap indices current.
func (q openSet) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push adds x, which must be a *openItem. Called by heap.Push.
func (q *openSet) Push(x interface{}) {
	it := x.(*openItem)
	it.index = len(q.items)
	q.items = append(q.items, it)
	q.byID[it.id] = it
}

// Pop removes the last element. Called by heap.Pop.
func (q *openSet) Pop() interface{} {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	q.items = old[:n-1]
	q.byID[it.id] = nil

	return it
}

// lookup returns the queued item for id, or nil.
func (q *openSet) lookup(id nodegraph.NodeID) *openItem {
	return q.byID[id]
}
