// Package render draws a grid and a planned path, either onto a tcell
// screen (or anything with a compatible SetContent) or as plain text.
//
// Glyphs:
//
//	.  walkable     ~  slow       #  obstacle
//	*  path cell    o  waypoint   S/G start and goal
//
// Row 0 is drawn at the top, matching the row order of map files.
package render
