package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/search"
)

// Report is the machine-readable form of one run.
type Report struct {
	Found    bool     `json:"found"`
	Cost     float64  `json:"cost,omitempty"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
}

// NewReport converts node ids on res.Path to grid coordinates.
func NewReport(gg *gridgraph.GridGraph, res search.Result) Report {
	rep := Report{Found: res.Found, Expanded: res.Expanded, Path: [][2]int{}}
	if !res.Found {
		return rep
	}
	rep.Cost = res.Cost
	for _, id := range res.Path {
		x, y := gg.Coordinate(id)
		rep.Path = append(rep.Path, [2]int{x, y})
	}

	return rep
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
