package silhouette

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Fallback selects what [Extractor.Extract] does when the boundary points
// cannot form a hull.
type Fallback int

const (
	// FallbackReject returns the [*InsufficientPointsError].
	FallbackReject Fallback = iota

	// FallbackBounds substitutes the full image rectangle for the hull.
	// Images narrower or shorter than 2 pixels are still rejected.
	FallbackBounds
)

func (f Fallback) String() string {
	switch f {
	case FallbackReject:
		return "reject"
	case FallbackBounds:
		return "bounds"
	default:
		return fmt.Sprintf("Fallback(%d)", int(f))
	}
}

// ParseFallback parses "reject" or "bounds" (case-insensitive).
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject", "":
		return FallbackReject, nil
	case "bounds":
		return FallbackBounds, nil
	default:
		return FallbackReject, fmt.Errorf("unknown hull fallback %q (want reject or bounds)", s)
	}
}

// Extractor runs the silhouette pipeline. The zero value rejects degenerate
// images and chamfers with [ChamferRadius].
type Extractor struct {
	// Radius is the chamfer radius. Zero means [ChamferRadius]; a negative
	// value disables chamfering.
	Radius float64

	// Fallback is the policy for images yielding fewer than three usable
	// boundary points.
	Fallback Fallback
}

// Result holds every stage of one extraction.
type Result struct {
	// Width and Height are the source image dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Samples lists all eight marches in order, including misses.
	Samples []Sample `json:"samples"`

	// Points are the found, de-duplicated boundary points in march order.
	Points []Point `json:"points"`

	// Hull is the convex hull of Points (or the synthesized outline).
	Hull Polygon `json:"hull"`

	// Polygon is Hull after chamfering; this is the body outline.
	Polygon Polygon `json:"polygon"`

	Bounds   Rect    `json:"bounds"`
	Area     float64 `json:"area"`
	Centroid Vec     `json:"centroid"`

	// Synthesized is set when Hull came from the fallback policy rather
	// than from the image.
	Synthesized bool `json:"synthesized"`
}

// Extract runs buffer → boundary points → hull → chamfer on a decoded image.
func (e Extractor) Extract(img image.Image) (*Result, error) {
	return e.ExtractBuffer(NewBuffer(img))
}

// ExtractBuffer is Extract for a prepared alpha buffer.
func (e Extractor) ExtractBuffer(buf *Buffer) (*Result, error) {
	samples := SampleBoundary(buf)
	res := &Result{
		Width:   buf.Width(),
		Height:  buf.Height(),
		Samples: samples,
		Points:  uniquePoints(samples),
	}

	hull, err := ComputeHull(res.Points)
	if err != nil {
		var ipe *InsufficientPointsError
		if e.Fallback != FallbackBounds || !errors.As(err, &ipe) || res.Width < 2 || res.Height < 2 {
			return nil, err
		}
		Logger().Warn("degenerate silhouette, using image bounds",
			"points", len(res.Points), "width", res.Width, "height", res.Height)
		hull = rectHull(res.Width, res.Height)
		res.Synthesized = true
	}

	res.Hull = hull
	res.Polygon = Chamfer(hull, e.radius())
	res.Bounds = res.Polygon.Bounds()
	res.Area = res.Polygon.Area()
	res.Centroid = res.Polygon.Centroid()

	Logger().Debug("silhouette extracted",
		"points", len(res.Points), "hull", len(res.Hull), "polygon", len(res.Polygon),
		"synthesized", res.Synthesized)
	return res, nil
}

func (e Extractor) radius() float64 {
	if e.Radius == 0 {
		return ChamferRadius
	}
	return e.Radius
}

// rectHull is the w×h image rectangle in hull order. Both sides must be
// at least 2 pixels for it to enclose an area.
func rectHull(w, h int) Polygon {
	maxX, maxY := float64(w-1), float64(h-1)
	return Polygon{{0, 0}, {maxX, 0}, {maxX, maxY}, {0, maxY}}
}
