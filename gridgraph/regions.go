package gridgraph

import (
	"slices"

	"github.com/katalvlaran/lvpath/nodegraph"
)

// Regions finds all contiguous walkable areas of the grid, according to
// gg.Conn connectivity. Walkability is read from the nodes, so walls
// toggled with SetWall are honoured.
//
// Each region lists node ids in ascending order; regions are ordered by
// their smallest id.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions() [][]nodegraph.NodeID {
	total := gg.Width * gg.Height
	nodes := gg.graph.Nodes()
	seen := make([]bool, total)
	var regions [][]nodegraph.NodeID

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !nodes[i0].Walkable {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []nodegraph.NodeID

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, nodegraph.NodeID(u))
			ux, uy := gg.Coordinate(nodegraph.NodeID(u))
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := int(gg.id(vx, vy))
				if !seen[vi] && nodes[vi].Walkable {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		slices.Sort(region)
		regions = append(regions, region)
	}

	return regions
}

// SameRegion reports whether a and b are walkable cells joined by walkable
// neighbours. It runs a full Regions pass; callers that ask repeatedly
// should keep the Regions result instead.
func (gg *GridGraph) SameRegion(ax, ay, bx, by int) (bool, error) {
	a, err := gg.NodeAt(ax, ay)
	if err != nil {
		return false, err
	}
	b, err := gg.NodeAt(bx, by)
	if err != nil {
		return false, err
	}
	for _, r := range gg.Regions() {
		_, okA := slices.BinarySearch(r, a)
		_, okB := slices.BinarySearch(r, b)
		if okA || okB {
			return okA && okB, nil
		}
	}

	return false, nil
}
