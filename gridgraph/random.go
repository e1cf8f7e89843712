package gridgraph

import (
	"fmt"
	"math/rand/v2"
)

// RandomValues returns a w×h grid where each cell is a wall with
// probability density. Walls get WalkableThreshold-1, open cells
// WalkableThreshold, so the result round-trips through New with the same
// opts. The same seed always yields the same grid.
func RandomValues(w, h int, density float64, seed uint64, opts Options) ([][]int, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("%w: density=%v", ErrBadOptions, density)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	values := make([][]int, h)
	for y := 0; y < h; y++ {
		row := make([]int, w)
		for x := 0; x < w; x++ {
			row[x] = opts.WalkableThreshold
			if rng.Float64() < density {
				row[x] = opts.WalkableThreshold - 1
			}
		}
		values[y] = row
	}

	return values, nil
}

// Random builds a GridGraph from RandomValues(w, h, density, seed, opts).
func Random(w, h int, density float64, seed uint64, opts Options) (*GridGraph, error) {
	values, err := RandomValues(w, h, density, seed, opts)
	if err != nil {
		return nil, err
	}

	return New(values, opts)
}
