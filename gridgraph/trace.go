package gridgraph

import "math"

// Trace visits, in order, every cell the segment a→b passes through,
// starting with the cell of a and ending with the cell of b. Where the
// segment crosses a cell corner exactly, both side cells are visited as
// well. Trace stops early when visit returns false. Endpoints outside the
// grid are clamped like WorldToCell.
//
// Complexity: O(|dx|+|dy|) in cells.
func (g *Grid) Trace(a, b Vec2, visit func(c *Cell) bool) {
	from, to := g.WorldToCell(a), g.WorldToCell(b)
	x, y := from.X, from.Y
	if !visit(from) {
		return
	}

	// 1) remaining moves per axis; the walk always lands on b's cell
	rx, ry := abs(to.X-x), abs(to.Y-y)
	stepX, stepY := sign(to.X-x), sign(to.Y-y)

	// 2) parametric distance to the next vertical / horizontal boundary
	fx, fy := (a.X-g.Origin.X)/g.CellSize, (a.Y-g.Origin.Y)/g.CellSize
	dx, dy := (b.X-a.X)/g.CellSize, (b.Y-a.Y)/g.CellSize
	tMaxX, tDeltaX := boundary(fx, dx, x)
	tMaxY, tDeltaY := boundary(fy, dy, y)

	const eps = 1e-9
	for rx > 0 || ry > 0 {
		switch {
		case ry == 0 || (rx > 0 && tMaxX < tMaxY-eps):
			x += stepX
			rx--
			tMaxX += tDeltaX
		case rx == 0 || tMaxY < tMaxX-eps:
			y += stepY
			ry--
			tMaxY += tDeltaY
		default:
			// exact corner: touch both neighbors before the diagonal cell
			if !visit(&g.cells[g.Index(x+stepX, y)]) || !visit(&g.cells[g.Index(x, y+stepY)]) {
				return
			}
			x += stepX
			y += stepY
			rx--
			ry--
			tMaxX += tDeltaX
			tMaxY += tDeltaY
		}
		if !visit(&g.cells[g.Index(x, y)]) {
			return
		}
	}
}

// boundary returns the segment parameter at which coordinate f first
// leaves cell c moving by d per unit, and the parameter span of one cell.
func boundary(f, d float64, c int) (tMax, tDelta float64) {
	switch {
	case d > 0:
		return (float64(c+1) - f) / d, 1 / d
	case d < 0:
		return (f - float64(c)) / -d, -1 / d
	default:
		return math.Inf(1), math.Inf(1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
