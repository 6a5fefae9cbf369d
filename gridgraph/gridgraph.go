// Package gridgraph provides the cell grid that grid searches run over.
// It supports:
//
//   - Four- or eight-connectivity neighbor enumeration (Conn4 or Conn8)
//   - A bijective mapping between grid coordinates and world positions
//   - Per-cell Walkable / Slow / Obstacle classification and its refresh
//   - Snapping an obstacle cell to the closest non-obstacle cell
//   - Connected regions of traversable cells
package gridgraph

import (
	"fmt"
	"math"
)

// Neighbor offsets in a fixed order so searches are reproducible.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGrid constructs a w×h grid of Walkable cells.
// Returns ErrEmptyGrid if w or h is not positive, ErrBadCellSize if
// opts.CellSize is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(w, h int, opts GridOptions) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if !(opts.CellSize > 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}

	g := &Grid{
		Width:    w,
		Height:   h,
		CellSize: opts.CellSize,
		Origin:   opts.Origin,
		cells:    make([]Cell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := g.Index(x, y)
			g.cells[i] = Cell{
				X:     x,
				Y:     y,
				Class: Walkable,
				World: g.CellToWorld(x, y),
				idx:   i,
			}
			g.cells[i].Reset()
		}
	}

	return g, nil
}

// FromClasses builds a grid from rows[y][x] classifications.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromClasses(rows [][]Classification, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(w, len(rows), opts)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, c := range row {
			g.cells[g.Index(x, y)].Class = c
		}
	}

	return g, nil
}

// Parse builds a grid from text rows, one glyph per cell: '.' walkable,
// '~' slow, '#' obstacle. rows[0] is y=0.
func Parse(rows []string, opts GridOptions) (*Grid, error) {
	classes := make([][]Classification, len(rows))
	for y, line := range rows {
		row := make([]Classification, 0, len(line))
		for x, r := range line {
			c, ok := ClassFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, r, x, y)
			}
			row = append(row, c)
		}
		classes[y] = row
	}

	return FromClasses(classes, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell at (x,y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// At returns the cell with arena index idx. It panics when idx is out of range.
func (g *Grid) At(idx int) *Cell { return &g.cells[idx] }

// CellToWorld returns the world position of the center of cell (x,y).
func (g *Grid) CellToWorld(x, y int) Vec2 {
	return Vec2{
		X: g.Origin.X + (float64(x)+0.5)*g.CellSize,
		Y: g.Origin.Y + (float64(y)+0.5)*g.CellSize,
	}
}

// WorldToCell returns the cell containing p. Points outside the grid are
// clamped to the nearest border cell, so the result is never nil.
func (g *Grid) WorldToCell(p Vec2) *Cell {
	x := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	y := int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	x = clamp(x, 0, g.Width-1)
	y = clamp(y, 0, g.Height-1)

	return &g.cells[g.Index(x, y)]
}

// Neighbors appends the in-bounds neighbor indices of idx to dst and returns
// it. Order is N, E, S, W for Conn4 and clockwise from N for Conn8.
// Classification is not filtered here.
func (g *Grid) Neighbors(idx int, conn Connectivity, dst []int) []int {
	x, y := g.Coordinate(idx)
	for _, d := range neighborOffsets(conn) {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, g.Index(nx, ny))
		}
	}
	return dst
}

// SetClass sets the classification of (x,y). Out-of-bounds is a no-op and
// reports false.
func (g *Grid) SetClass(x, y int, c Classification) bool {
	cell := g.Cell(x, y)
	if cell == nil {
		return false
	}
	cell.Class = c
	return true
}

// StampRect classifies the (2·halfW+1)×(2·halfH+1) block of cells centered on
// the cell containing center as c, clipped to the grid. It is the footprint
// of a dynamic obstacle. Returns the indices that were stamped.
func (g *Grid) StampRect(center Vec2, halfW, halfH int, c Classification) []int {
	mid := g.WorldToCell(center)
	var stamped []int
	for dy := -halfH; dy <= halfH; dy++ {
		for dx := -halfW; dx <= halfW; dx++ {
			cell := g.Cell(mid.X+dx, mid.Y+dy)
			if cell == nil {
				continue
			}
			cell.Class = c
			stamped = append(stamped, cell.idx)
		}
	}
	return stamped
}

// Refresh re-classifies every cell by asking cl about the area of the given
// radius around the cell center.
// Complexity: O(W×H) calls to cl.
func (g *Grid) Refresh(cl Classifier, radius float64) {
	for i := range g.cells {
		g.cells[i].Class = cl.Classify(g.cells[i].World, radius)
	}
}

// ResetSearch clears G, H, Parent and the heap index of every cell.
// Complexity: O(W×H).
func (g *Grid) ResetSearch() {
	for i := range g.cells {
		g.cells[i].Reset()
	}
}

// Classes returns a copy of the classification layout as rows[y][x].
func (g *Grid) Classes() [][]Classification {
	out := make([][]Classification, g.Height)
	for y := range out {
		row := make([]Classification, g.Width)
		for x := range row {
			row[x] = g.cells[g.Index(x, y)].Class
		}
		out[y] = row
	}
	return out
}

func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
