package silhouette

// ChamferRadius is the corner cut applied to every extracted hull.
const ChamferRadius = 10

// Chamfer replaces each vertex with two points, one on each adjacent edge at
// distance radius from the vertex, and returns the resulting polygon in the
// same rotational order.
//
// A cut never reaches past the midpoint of its edge, so cuts from
// neighbouring corners cannot cross; where two cuts meet exactly they
// collapse into one vertex. A radius of zero or less, or a polygon with
// fewer than three vertices, yields an unmodified copy.
func Chamfer(poly Polygon, radius float64) Polygon {
	if radius <= 0 || len(poly) < 3 {
		return poly.Clone()
	}

	n := len(poly)
	out := make(Polygon, 0, 2*n)
	push := func(v Vec) {
		if len(out) > 0 && out[len(out)-1] == v {
			return
		}
		out = append(out, v)
	}
	for i, v := range poly {
		prev := poly[(i+n-1)%n]
		next := poly[(i+1)%n]
		push(cutToward(v, prev, radius))
		push(cutToward(v, next, radius))
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// cutToward returns the point at distance radius from v toward target,
// clamped to half the segment.
func cutToward(v, target Vec, radius float64) Vec {
	d := target.Sub(v)
	length := d.Length()
	if length == 0 {
		return v
	}
	r := min(radius, length/2)
	return v.Add(d.Mul(r / length))
}
