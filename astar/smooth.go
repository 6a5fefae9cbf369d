package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// castInset shortens each clearance cast, as a fraction of the cell size,
// so a disc resting on the test point does not graze the next wall.
const castInset = 0.1

// smooth reduces a cell-center path to the points where line of sight
// breaks.
//
// Walking the raw path with an anchor, the segment anchor→raw[i] is
// blocked when the caster reports a hit or the segment crosses any
// Obstacle or Slow cell other than the anchor's own. A blocked segment
// commits raw[i-1] and makes it the new anchor. The first and last points are always kept.
func (p *Planner) smooth(raw []gridgraph.Vec2) []gridgraph.Vec2 {
	if len(raw) <= 2 {
		return raw
	}

	out := []gridgraph.Vec2{raw[0]}
	anchor := 0
	for i := 1; i < len(raw); i++ {
		if !p.segmentBlocked(raw[anchor], raw[i]) {
			continue
		}
		// An adjacent raw step is part of the searched path already.
		if i-1 == anchor {
			continue
		}
		out = append(out, raw[i-1])
		anchor = i - 1
	}

	return append(out, raw[len(raw)-1])
}

func (p *Planner) segmentBlocked(a, b gridgraph.Vec2) bool {
	g := p.grid
	d := b.Sub(a)
	length := d.Len()
	if length == 0 {
		return false
	}

	reach := length - castInset*g.CellSize
	if p.opts.Caster != nil && reach > 0 {
		end := a.Add(d.Scale(reach / length))
		if p.opts.Caster.SegmentBlocked(a, end, p.opts.SmoothingRadius) {
			return true
		}
	}

	blocked := false
	own := g.WorldToCell(a)
	g.Trace(a, b, func(c *gridgraph.Cell) bool {
		if c == own {
			return true
		}
		blocked = c.Class == gridgraph.Obstacle || c.Class == gridgraph.Slow
		return !blocked
	})
	return blocked
}
