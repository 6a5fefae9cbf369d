// Package physics keeps the static collision geometry of a map in a
// Chipmunk space (github.com/jakecoffman/cp) and answers the two queries
// the planner needs from it:
//
//   - Classify: does a disc around a world point overlap an obstacle or a
//     slow zone? World satisfies gridgraph.Classifier, so Grid.Refresh can
//     rebuild cell classes from geometry.
//   - SegmentBlocked: does a disc swept along a segment hit an obstacle?
//     World satisfies astar.SegmentCaster for path smoothing.
//
// Obstacles and slow zones live on separate collision categories, so one
// space serves both queries. FromGrid builds a world from an already
// classified grid by merging runs of equal cells into boxes.
//
// Shapes are static. A World is safe for concurrent queries; adding shapes
// while queries run is also serialized.
package physics
