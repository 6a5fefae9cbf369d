// Package gridgraph treats a rectangular world area as a grid of cells,
// the search space for the astar planner.
//
// What:
//
//   - Grid is a flat arena of Cells (row-major) with a fixed CellSize and Origin.
//   - Each cell is Walkable, Slow or Obstacle; classification is refreshed
//     by an external Classifier or edited directly (SetClass, StampRect).
//   - Cells carry search scratch (G, H, Parent, heap index) reused by every
//     search; ResetSearch clears it in one pass.
//   - ClosestWalkable snaps an obstacle cell to the nearest traversable one.
//   - Trace lists the cells a segment crosses, for line-of-sight checks.
//   - Regions / RegionLabels group traversable cells into connected areas.
//
// Why:
//
//   - Game maps: endpoint sanitizing, reachability checks before planning.
//   - Dynamic obstacles: stamp footprints, re-plan.
//
// Complexity:
//
//   - NewGrid, Refresh, ResetSearch: O(W×H).
//   - WorldToCell, Cell, Neighbors:  O(1).
//   - ClosestWalkable, Regions:      O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not positive.
//   - ErrBadGlyph: Parse met a character other than '.', '~', '#'.
//   - ErrNoWalkableCell: every cell is an obstacle.
package gridgraph
