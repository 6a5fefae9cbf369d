package physics

import (
	"errors"

	"github.com/jakecoffman/cp"
)

// ErrDegenerateShape is returned when a box has no area or a circle has a
// non-positive radius.
var ErrDegenerateShape = errors.New("physics: degenerate shape")

// Collision categories for static shapes.
const (
	CategoryObstacle uint = 1 << iota
	CategorySlow
)

var (
	obstacleFilter = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: CategoryObstacle}
	slowFilter     = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: CategorySlow}
)

// Kind tells which layer a shape belongs to.
type Kind int

const (
	// KindObstacle shapes block movement and line of sight.
	KindObstacle Kind = iota
	// KindSlow shapes mark slow terrain; they never block.
	KindSlow
)

// String returns "obstacle" or "slow".
func (k Kind) String() string {
	if k == KindSlow {
		return "slow"
	}
	return "obstacle"
}

func (k Kind) filter() cp.ShapeFilter {
	if k == KindSlow {
		return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: CategorySlow, Mask: cp.ALL_CATEGORIES}
	}
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: CategoryObstacle, Mask: cp.ALL_CATEGORIES}
}
