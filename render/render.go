package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Canvas is the drawing surface. tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Theme maps every mark to a style.
type Theme struct {
	Walkable tcell.Style
	Slow     tcell.Style
	Obstacle tcell.Style
	Path     tcell.Style
	Waypoint tcell.Style
	Endpoint tcell.Style
}

// DefaultTheme returns the colors used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Walkable: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Slow:     tcell.StyleDefault.Foreground(tcell.ColorBlue),
		Obstacle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		Path:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Waypoint: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		Endpoint: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

type mark uint8

const (
	markNone mark = iota
	markPath
	markWaypoint
	markStart
	markGoal
)

// marks overlays res on the grid cells. Waypoints are only marked when
// smoothing dropped some cells; otherwise every path cell would be one.
func marks(g *gridgraph.Grid, res *astar.Result) []mark {
	out := make([]mark, g.Len())
	if res == nil || len(res.Cells) == 0 {
		return out
	}
	for _, c := range res.Cells {
		out[g.Index(c.X, c.Y)] = markPath
	}
	if len(res.Waypoints) < len(res.Cells) {
		for _, wp := range res.Waypoints {
			out[g.WorldToCell(wp.Position).Index()] = markWaypoint
		}
	}
	out[g.Index(res.Start.X, res.Start.Y)] = markStart
	out[g.Index(res.Goal.X, res.Goal.Y)] = markGoal
	return out
}

func glyph(c *gridgraph.Cell, m mark, th *Theme) (rune, tcell.Style) {
	switch m {
	case markPath:
		return '*', th.Path
	case markWaypoint:
		return 'o', th.Waypoint
	case markStart:
		return 'S', th.Endpoint
	case markGoal:
		return 'G', th.Endpoint
	}
	switch c.Class {
	case gridgraph.Slow:
		return c.Class.Glyph(), th.Slow
	case gridgraph.Obstacle:
		return c.Class.Glyph(), th.Obstacle
	default:
		return c.Class.Glyph(), th.Walkable
	}
}

// Draw paints g with res overlaid (res may be nil) so that cell (0,0)
// lands at canvas position (x0,y0).
func Draw(cv Canvas, g *gridgraph.Grid, res *astar.Result, x0, y0 int, th Theme) {
	ms := marks(g, res)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			r, st := glyph(g.At(idx), ms[idx], &th)
			cv.SetContent(x0+x, y0+y, r, nil, st)
		}
	}
}

// DrawText writes s starting at (x,y), one cell per rune.
func DrawText(cv Canvas, x, y int, s string, st tcell.Style) {
	for _, r := range s {
		cv.SetContent(x, y, r, nil, st)
		x++
	}
}

// String renders g with res overlaid as text, one line per row.
func String(g *gridgraph.Grid, res *astar.Result) string {
	ms := marks(g, res)
	th := Theme{}
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			r, _ := glyph(g.At(idx), ms[idx], &th)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Caption summarizes res in one line.
func Caption(res *astar.Result, err error) string {
	if err != nil {
		return "no path: " + err.Error()
	}
	if res == nil {
		return "no path"
	}
	return fmt.Sprintf("cost=%.2f cells=%d waypoints=%d expanded=%d",
		res.Cost, len(res.Cells), len(res.Waypoints), res.Expanded)
}
