package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive")
	// ErrBadGlyph indicates an unknown character in a textual grid.
	ErrBadGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrNoWalkableCell indicates no non-obstacle cell exists to snap to.
	ErrNoWalkableCell = errors.New("gridgraph: no walkable cell near endpoint")
)
