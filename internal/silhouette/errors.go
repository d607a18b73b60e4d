package silhouette

import (
	"errors"
	"fmt"
)

// ErrInsufficientPoints is returned, wrapped in an [*InsufficientPointsError],
// when a point set cannot form a polygon with a non-zero area.
var ErrInsufficientPoints = errors.New("silhouette: insufficient points for hull")

// InsufficientPointsError describes a degenerate hull input.
type InsufficientPointsError struct {
	// Count is the number of distinct input points.
	Count int

	// Collinear is set when there were enough points but all of them lay on
	// a single line.
	Collinear bool
}

func (e *InsufficientPointsError) Error() string {
	if e.Collinear {
		return fmt.Sprintf("silhouette: %d collinear points do not enclose an area", e.Count)
	}
	return fmt.Sprintf("silhouette: hull needs at least 3 distinct points, got %d", e.Count)
}

// Unwrap lets errors.Is match [ErrInsufficientPoints].
func (e *InsufficientPointsError) Unwrap() error {
	return ErrInsufficientPoints
}
