package silhouette

import (
	"cmp"
	"slices"
)

// ComputeHull returns the convex hull of points using Andrew's monotone
// chain. The input slice is not modified.
//
// Vertices start at the lowest-X (then lowest-Y) point and follow a
// consistent rotation with positive [Polygon.SignedArea]; in image space,
// where Y grows downward, that is clockwise on screen. Points lying on a
// hull edge are omitted.
//
// Fewer than three distinct points, or points that are all collinear,
// produce an [*InsufficientPointsError].
func ComputeHull(points []Point) (Polygon, error) {
	pts := make([]Vec, 0, len(points))
	for _, p := range points {
		pts = append(pts, p.Vec())
	}
	slices.SortFunc(pts, func(a, b Vec) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)

	if len(pts) < 3 {
		return nil, &InsufficientPointsError{Count: len(pts)}
	}

	lower := make([]Vec, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross3(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Vec, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross3(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Last point of each chain is the first point of the other.
	hull := append(Polygon(lower[:len(lower)-1]), upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, &InsufficientPointsError{Count: len(pts), Collinear: true}
	}
	return hull, nil
}
