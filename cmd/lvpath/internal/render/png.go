package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/search"
)

func hex(c nodegraph.Color) string { return fmt.Sprintf("#%06X", uint32(c)) }

// Image paints every cell with its node color, scale pixels per cell, then
// draws the path as a polyline with start and goal markers.
func Image(grid *gridgraph.GridGraph, res search.Result, start, goal nodegraph.NodeID, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)
	dc := gg.NewContext(grid.Width*scale, grid.Height*scale)
	dc.SetHexColor(hex(nodegraph.ColorDefault))
	dc.Clear()

	// 1) Cells
	for _, n := range grid.Graph().Nodes() {
		x, y := grid.Coordinate(n.ID())
		c := n.Color
		if !n.Walkable {
			c = nodegraph.ColorWall
		}
		dc.SetHexColor(hex(c))
		dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
		dc.Fill()
	}

	center := func(id nodegraph.NodeID) (float64, float64) {
		x, y := grid.Coordinate(id)
		return (float64(x) + 0.5) * s, (float64(y) + 0.5) * s
	}

	// 2) Path
	if res.Found && len(res.Path) > 1 {
		dc.SetHexColor("#000000")
		dc.SetLineWidth(s / 4)
		dc.MoveTo(center(res.Path[0]))
		for _, id := range res.Path[1:] {
			dc.LineTo(center(id))
		}
		dc.Stroke()
	}

	// 3) Endpoints
	for _, m := range []struct {
		id nodegraph.NodeID
		c  nodegraph.Color
	}{{start, nodegraph.ColorStart}, {goal, nodegraph.ColorGoal}} {
		if m.id == nodegraph.NoNode {
			continue
		}
		cx, cy := center(m.id)
		dc.SetHexColor(hex(m.c))
		dc.DrawCircle(cx, cy, s/3)
		dc.Fill()
	}

	return dc.Image()
}

// WritePNG encodes Image as PNG to w.
func WritePNG(w io.Writer, grid *gridgraph.GridGraph, res search.Result, start, goal nodegraph.NodeID, scale int) error {
	return gg.NewContextForImage(Image(grid, res, start, goal, scale)).EncodePNG(w)
}
