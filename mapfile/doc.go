// Package mapfile reads planning scenarios from YAML.
//
// A scenario carries a text grid (one glyph per cell, row 0 first), its
// world geometry, optional extra obstacle and slow-zone shapes, the planner
// settings and a start/goal pair:
//
//	name: corridor
//	cell_size: 1
//	origin: {x: 0, y: 0}
//	diagonal: true
//	metric: octile
//	slow_multiplier: 2
//	smoothing: {enabled: true, radius: 0.25}
//	rows:
//	  - "....."
//	  - ".###."
//	  - "....."
//	obstacles:
//	  - {min: {x: 2, y: 0}, max: {x: 3, y: 1}}
//	slow_zones:
//	  - {center: {x: 0.5, y: 2.5}, radius: 0.4}
//	start: {x: 0.5, y: 0.5}
//	goal:  {x: 4.5, y: 0.5}
//
// Build turns a scenario into a classified grid and a physics world; the
// shapes are folded into the grid by probing every cell center, and the
// world covers both the shapes and the obstacle rows so it can serve as
// the smoothing caster.
package mapfile
