package game

import (
	"fmt"
	"image"

	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// bodyCollinearity is the turning angle, in radians, below which a body
// vertex is merged into its neighbours.
const bodyCollinearity = 0.01

// Body is an ingredient placed in the world.
type Body struct {
	// Round is the round the ingredient was dropped in. Zero until dropped.
	Round int `json:"round"`

	// Sprite is the image path the ingredient was built from.
	Sprite string `json:"sprite"`

	// Polygon is the collision outline in world coordinates.
	Polygon silhouette.Polygon `json:"polygon"`

	// Bounds is the bounding box of Polygon.
	Bounds silhouette.Rect `json:"bounds"`

	// Position is the polygon centroid.
	Position silhouette.Vec `json:"position"`

	// Offset maps the source image into the world: image pixel p sits at
	// p + Offset.
	Offset silhouette.Vec `json:"offset"`
}

// NewBody builds a body from an outline in image pixel space, moving it so
// its centroid sits at (x, y).
func NewBody(outline silhouette.Polygon, sprite string, x, y float64) (Body, error) {
	poly := outline.RemoveCollinear(bodyCollinearity)
	if len(poly) < 3 || poly.Area() == 0 {
		return Body{}, fmt.Errorf("ingredient %s: %w", sprite, silhouette.ErrInsufficientPoints)
	}

	b := Body{Sprite: sprite, Polygon: poly}
	b.translate(silhouette.Vec{X: x, Y: y}.Sub(poly.Centroid()))
	return b, nil
}

// Clone returns a deep copy of b.
func (b Body) Clone() Body {
	b.Polygon = b.Polygon.Clone()
	return b
}

func (b *Body) translate(d silhouette.Vec) {
	b.Polygon = b.Polygon.Translate(d)
	b.Offset = b.Offset.Add(d)
	b.Bounds = b.Polygon.Bounds()
	b.Position = b.Polygon.Centroid()
}

// Bread is a slice of bread. Its particles are reduced to their bounds.
type Bread struct {
	Columns int             `json:"columns"`
	Rows    int             `json:"rows"`
	Bounds  silhouette.Rect `json:"bounds"`
}

// Bread layout.
const (
	// BreadMargin is the gap between each world wall and the bread.
	BreadMargin = 100

	// BreadRows is the thickness of a slice in particles.
	BreadRows = 3
)

// NewBread lays out a slice at the top of the world: columns of particles
// of the configured radius filling the width between the margins.
func NewBread(cfg Config) Bread {
	d := 2 * cfg.ParticleRadius
	cols := (cfg.Width - 2*BreadMargin) / d
	return Bread{
		Columns: cols,
		Rows:    BreadRows,
		Bounds: silhouette.Rect{
			MinX: BreadMargin,
			MinY: 0,
			MaxX: float64(BreadMargin + cols*d),
			MaxY: float64(BreadRows * d),
		},
	}
}

// Rectangle returns the bread bounds snapped to whole pixels.
func (b Bread) Rectangle() image.Rectangle {
	return image.Rect(int(b.Bounds.MinX), int(b.Bounds.MinY), int(b.Bounds.MaxX), int(b.Bounds.MaxY))
}

func overlapsX(a, b silhouette.Rect) bool {
	return a.MinX < b.MaxX && a.MaxX > b.MinX
}

// fallDistance returns how far r moves down before resting on the floor or
// on the highest support sharing part of its horizontal extent. A negative
// result lifts r out of a stack that already reaches past it.
func fallDistance(r silhouette.Rect, supports []silhouette.Rect, floor float64) float64 {
	surface := floor
	for _, s := range supports {
		if overlapsX(r, s) && s.MinY < surface {
			surface = s.MinY
		}
	}
	return surface - r.MaxY
}

// dropBread lets a slice fall onto whatever is below it.
func dropBread(br Bread, supports []silhouette.Rect, floor float64) Bread {
	dy := fallDistance(br.Bounds, supports, floor)
	br.Bounds.MinY += dy
	br.Bounds.MaxY += dy
	return br
}
