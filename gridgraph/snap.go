package gridgraph

import "math"

// ClosestWalkable returns the non-obstacle cell nearest to the cell at idx.
// A cell that is not an Obstacle is returned as is.
//
// Behavior:
//  1. Breadth-first expansion over 8-neighborhoods, i.e. square rings of
//     growing Chebyshev radius, ignoring classification while expanding.
//  2. Once a non-obstacle cell is found, expansion continues while the
//     next ring's radius could still hold a cell at least as close; a
//     ring-r corner sits at r·√2, farther than edge cells of later rings.
//  3. The smallest Euclidean distance wins, ties by lowest index.
//  4. ErrNoWalkableCell when the whole grid is obstacle.
//
// Complexity: O(W·H) worst case. Memory: O(W·H).
func (g *Grid) ClosestWalkable(idx int) (*Cell, error) {
	origin := &g.cells[idx]
	if origin.Class != Obstacle {
		return origin, nil
	}

	seen := make([]bool, len(g.cells))
	seen[idx] = true
	ring := []int{idx}
	var next, nbrs []int

	best, bestD := -1, math.Inf(1)
	for r := 1; len(ring) > 0; r++ {
		next = next[:0]
		for _, u := range ring {
			nbrs = g.Neighbors(u, Conn8, nbrs[:0])
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					next = append(next, v)
				}
			}
		}

		for _, v := range next {
			c := &g.cells[v]
			if c.Class == Obstacle {
				continue
			}
			dx, dy := float64(c.X-origin.X), float64(c.Y-origin.Y)
			d := dx*dx + dy*dy
			if d < bestD || (d == bestD && v < best) {
				best, bestD = v, d
			}
		}
		// every cell of ring r+1 is at least r+1 away
		if best >= 0 && float64((r+1)*(r+1)) > bestD {
			break
		}
		ring, next = next, ring
	}

	if best < 0 {
		return nil, ErrNoWalkableCell
	}
	return &g.cells[best], nil
}
