// Package astar plans routes over a gridgraph.Grid with an A* best-first
// search.
//
// Overview:
//
//   - A Planner owns one open-set heap sized to the grid and serializes
//     requests, because searches write their scratch state (G, H, Parent,
//     heap index) into the shared cells.
//   - RequestPath(from, to) returns world-space waypoints; an empty slice
//     is the normal "no route" answer. FindPath returns the full Result and
//     a typed error instead.
//   - Obstacle endpoints are snapped to the closest non-obstacle cell.
//   - Slow cells are traversable at SlowMultiplier times the step cost.
//   - Optional smoothing turns the cell path into line-of-sight waypoints,
//     checked against every cell the segment crosses and an optional
//     SegmentCaster.
//
// Ordering:
//
//   - The open set pops the lowest F = G + H; ties go to the lower H.
//     Neighbor order is fixed, so identical grids and endpoints always
//     produce identical paths.
//
// Metrics:
//
//   - Manhattan (Conn4 default), Euclidean, Chebyshev, Octile,
//     Custom (14/10 integer octile, Conn8 default) and OctileLegacy.
//   - The same metric prices steps and estimates the remaining distance.
//
// Complexity:
//
//   - Time:  O(N log N) per request for N cells, plus O(N) for the scratch reset.
//   - Space: O(N) for the closed set; the heap is preallocated.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        NewPlanner(nil).
//   - ErrNoPath:         the goal is unreachable.
//   - ErrNoWalkableCell: an endpoint cannot be snapped (all obstacle).
//   - ErrBudgetExceeded: WithMaxIterations cap hit.
//   - Option constructors panic on invalid arguments
//     (ErrBadSlowMultiplier, ErrBadSmoothingRadius, ErrBadMaxIterations).
//
// Thread safety:
//
//   - Calls on one Planner are safe from multiple goroutines; they run one
//     at a time. Editing the grid directly while a request runs is not;
//     use Planner.Refresh or synchronize externally.
//   - Paths previously returned are never re-validated. When the world
//     changes, refresh the classification and request again.
package astar
