// Package render draws a searched grid and its result for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/search"
)

// Glyphs per node color. Unlisted colors fall back to the empty cell.
var glyphs = map[nodegraph.Color]string{
	nodegraph.ColorWall:   "#",
	nodegraph.ColorOpen:   "o",
	nodegraph.ColorClosed: ".",
	nodegraph.ColorPath:   "*",
	nodegraph.ColorStart:  "S",
	nodegraph.ColorGoal:   "G",
}

// Renderer turns grids into styled text.
type Renderer struct {
	r     *lipgloss.Renderer
	frame lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	miss  lipgloss.Style
}

// New returns a Renderer that styles output for r.
func New(r *lipgloss.Renderer) *Renderer {
	return &Renderer{
		r: r,
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#16858E")),
		label: r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		value: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		miss:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
	}
}

// Rows renders one line per grid row from the node colors, marking start
// and goal on top.
func (rd *Renderer) Rows(gg *gridgraph.GridGraph, start, goal nodegraph.NodeID) []string {
	nodes := gg.Graph().Nodes()
	rows := make([]string, gg.Height)

	var sb strings.Builder
	for y := 0; y < gg.Height; y++ {
		sb.Reset()
		for x := 0; x < gg.Width; x++ {
			n := nodes[y*gg.Width+x]
			c := n.Color
			switch {
			case n.ID() == start:
				c = nodegraph.ColorStart
			case n.ID() == goal:
				c = nodegraph.ColorGoal
			case !n.Walkable:
				c = nodegraph.ColorWall
			}
			sb.WriteString(rd.cell(c))
		}
		rows[y] = sb.String()
	}

	return rows
}

func (rd *Renderer) cell(c nodegraph.Color) string {
	g, ok := glyphs[c]
	if !ok {
		return " "
	}

	return rd.r.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)))).Render(g)
}

// Grid renders the framed grid.
func (rd *Renderer) Grid(gg *gridgraph.GridGraph, start, goal nodegraph.NodeID) string {
	return rd.frame.Render(strings.Join(rd.Rows(gg, start, goal), "\n"))
}

// Summary renders the search outcome as label/value lines.
func (rd *Renderer) Summary(res search.Result) string {
	if !res.Found {
		return rd.miss.Render("no path") + "\n" +
			rd.line("expanded", fmt.Sprintf("%d", res.Expanded))
	}

	return strings.Join([]string{
		rd.line("cost", fmt.Sprintf("%.3f", res.Cost)),
		rd.line("steps", fmt.Sprintf("%d", len(res.Path)-1)),
		rd.line("expanded", fmt.Sprintf("%d", res.Expanded)),
	}, "\n")
}

func (rd *Renderer) line(label, value string) string {
	return rd.label.Render(fmt.Sprintf("%-9s", label)) + rd.value.Render(value)
}
