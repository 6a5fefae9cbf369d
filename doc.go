// Package gridpath is a grid A* pathfinding toolkit: a cell grid with
// walkable, slow and obstacle terrain, a planner that turns two world
// positions into a route, and the tools around it.
//
// What is in the box?
//
//	pqueue/      generic binary min-heap with index tracking and decrease-key
//	gridgraph/   cell arena, world↔cell mapping, neighbors, snapping, regions
//	astar/       Planner: A* search, distance metrics, retrace, smoothing
//	physics/     static obstacle world (Chipmunk) used to classify cells and
//	             to check smoothed segments
//	mapfile/     YAML scenarios: rows, shapes, planner settings, endpoints
//	render/      ASCII and tcell drawing of grids and paths
//	watch/       debounced file watching for live re-planning
//	cmd/gridpath command line front end
//
// Quick ASCII example (S start, G goal, * path, # wall):
//
//	S***.
//	###*.
//	G***.
//
// Every search reuses the grid's cells as scratch space, so a Planner
// serializes its requests; use one Planner per goroutine for parallel
// planning over separate grids.
//
//	go run ./cmd/gridpath -map maps/courtyard.yaml -tui
package gridpath
