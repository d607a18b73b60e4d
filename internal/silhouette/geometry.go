package silhouette

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Vec returns p as a floating-point vector.
func (p Point) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Vec is a 2D point or vector with floating-point components.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the vector sum.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the vector difference.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales the vector.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// cross3 is the cross product of OA and OB.
func cross3(o, a, b Vec) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.MinX + r.Width()/2 }

// Polygon is an ordered, implicitly closed sequence of vertices.
type Polygon []Vec

// Clone returns an independent copy.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	return append(Polygon(nil), p...)
}

// Bounds returns the bounding box. The zero Rect is returned for an empty
// polygon.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, v := range p[1:] {
		r.MinX = math.Min(r.MinX, v.X)
		r.MinY = math.Min(r.MinY, v.Y)
		r.MaxX = math.Max(r.MaxX, v.X)
		r.MaxY = math.Max(r.MaxY, v.Y)
	}
	return r
}

// SignedArea returns the shoelace area. It is positive for the vertex order
// produced by [ComputeHull].
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		sum += p[i].Cross(p[(i+1)%n])
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area centroid. Polygons without area fall back to
// the mean of their vertices.
func (p Polygon) Centroid() Vec {
	n := len(p)
	if n == 0 {
		return Vec{}
	}
	a := p.SignedArea()
	if a == 0 {
		var sum Vec
		for _, v := range p {
			sum = sum.Add(v)
		}
		return Vec{X: sum.X / float64(n), Y: sum.Y / float64(n)}
	}
	var c Vec
	for i := range p {
		j := (i + 1) % n
		f := p[i].Cross(p[j])
		c.X += (p[i].X + p[j].X) * f
		c.Y += (p[i].Y + p[j].Y) * f
	}
	return Vec{X: c.X / (6 * a), Y: c.Y / (6 * a)}
}

// Translate returns the polygon moved by d.
func (p Polygon) Translate(d Vec) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// Contains reports whether q lies inside or on the boundary of a convex
// polygon. Either winding is accepted.
func (p Polygon) Contains(q Vec) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	var pos, neg bool
	for i := range p {
		c := cross3(p[i], p[(i+1)%n], q)
		if c > 1e-9 {
			pos = true
		} else if c < -1e-9 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// RemoveCollinear drops vertices whose turning angle is below
// thresholdAngle (radians), repeating until every remaining vertex turns
// by at least the threshold. A zero threshold removes only exactly
// collinear vertices. Triangles are never reduced further.
func (p Polygon) RemoveCollinear(thresholdAngle float64) Polygon {
	out := p.Clone()
	for removed := true; removed && len(out) > 3; {
		removed = false
		for i := len(out) - 1; len(out) > 3 && i >= 0; i-- {
			n := len(out)
			if i >= n {
				continue
			}
			a, b, c := out[(i-1+n)%n], out[i], out[(i+1)%n]
			if collinear(a, b, c, thresholdAngle) {
				out = append(out[:i], out[i+1:]...)
				removed = true
			}
		}
	}
	return out
}

func collinear(a, b, c Vec, thresholdAngle float64) bool {
	if thresholdAngle == 0 {
		return cross3(a, b, c) == 0
	}
	ab, bc := b.Sub(a), c.Sub(b)
	mag := ab.Length() * bc.Length()
	if mag == 0 {
		return true
	}
	cos := math.Max(-1, math.Min(1, ab.Dot(bc)/mag))
	return math.Acos(cos) < thresholdAngle
}
