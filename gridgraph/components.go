package gridgraph

// Regions finds all contiguous regions of traversable cells (Class !=
// Obstacle) under the given connectivity.
// Returns a slice of regions; each region is a slice of cell indices
// in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(conn Connectivity) [][]int {
	labels := g.RegionLabels(conn)
	var regions [][]int
	for i, l := range labels {
		if l < 0 {
			continue
		}
		if l == len(regions) {
			regions = append(regions, nil)
		}
		regions[l] = append(regions[l], i)
	}
	return regions
}

// RegionLabels assigns each cell the number of its region, or -1 for
// obstacle cells. Two cells can reach each other under conn exactly when
// they carry the same non-negative label. Labels are numbered in row-major
// order of each region's first cell.
//
// Time:   O(W·H·d). Memory: O(W·H).
func (g *Grid) RegionLabels(conn Connectivity) []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	var (
		next  int
		queue []int
		nbrs  []int
	)

	for i := range g.cells {
		if g.cells[i].Class == Obstacle || labels[i] >= 0 {
			continue
		}
		// BFS to label the region
		labels[i] = next
		queue = append(queue[:0], i)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbrs = g.Neighbors(u, conn, nbrs[:0])
			for _, v := range nbrs {
				if labels[v] >= 0 || g.cells[v].Class == Obstacle {
					continue
				}
				labels[v] = next
				queue = append(queue, v)
			}
		}
		next++
	}
	return labels
}
