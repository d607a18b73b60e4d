package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// Default overlay colors.
const (
	DefaultHullColor    = "#00A0FF60"
	DefaultPolygonColor = "#FF6A0080"
	DefaultPointColor   = "#FF0000"
)

// pointSize is the side of the square marker drawn at each boundary point.
const pointSize = 5

// OverlayOptions controls what Overlay draws.
type OverlayOptions struct {
	// HullColor fills the raw convex hull. Empty means DefaultHullColor.
	HullColor string

	// PolygonColor fills the chamfered body outline. Empty means DefaultPolygonColor.
	PolygonColor string

	// PointColor marks boundary points. Empty means DefaultPointColor.
	PointColor string

	// ShowMask draws the binary opacity mask instead of the source pixels,
	// which makes thin or semi-transparent regions easy to spot.
	ShowMask bool

	// ShowLabels prints "index: x,y" next to every boundary point.
	ShowLabels bool
}

// OverlayResult is the rendered overlay plus a summary of what was drawn.
type OverlayResult struct {
	ImageResult

	Points          int  `json:"points"`
	HullVertices    int  `json:"hull_vertices"`
	PolygonVertices int  `json:"polygon_vertices"`
	Synthesized     bool `json:"synthesized"`
}

// Overlay renders an extraction result on top of its source image.
//
// Layers, bottom to top: the image (or its opacity mask), the convex hull,
// the chamfered polygon, and the boundary point markers with optional
// labels. res must come from extracting img; its coordinates are read in
// img's rebased pixel space.
func Overlay(img image.Image, res *silhouette.Result, opts OverlayOptions) (*OverlayResult, error) {
	if res == nil {
		return nil, fmt.Errorf("overlay requires an extraction result")
	}

	hullColor, err := colorOr(opts.HullColor, DefaultHullColor)
	if err != nil {
		return nil, err
	}
	polyColor, err := colorOr(opts.PolygonColor, DefaultPolygonColor)
	if err != nil {
		return nil, err
	}
	pointColor, err := colorOr(opts.PointColor, DefaultPointColor)
	if err != nil {
		return nil, err
	}

	var base image.Image = img
	if opts.ShowMask {
		base = OpaqueMask(img, OpacityLevel)
	}
	canvas := imaging.Clone(base)

	fillPolygon(canvas, res.Hull, hullColor)
	fillPolygon(canvas, res.Polygon, polyColor)

	labelFG := color.NRGBA{255, 255, 255, 255}
	labelBG := color.NRGBA{0, 0, 0, 180}
	for i, p := range res.Points {
		marker := image.Rect(p.X, p.Y, p.X+pointSize, p.Y+pointSize)
		draw.Draw(canvas, marker, image.NewUniform(pointColor), image.Point{}, draw.Over)
		if opts.ShowLabels {
			drawLabel(canvas, p.X+pointSize+2, p.Y, fmt.Sprintf("%d: %d,%d", i, p.X, p.Y), labelFG, labelBG)
		}
	}

	encoded, err := encodePNG(canvas)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		ImageResult:     *encoded,
		Points:          len(res.Points),
		HullVertices:    len(res.Hull),
		PolygonVertices: len(res.Polygon),
		Synthesized:     res.Synthesized,
	}, nil
}

// fillPolygon rasterizes poly onto dst with anti-aliased edges. Vertices
// are pixel coordinates, so they are shifted to pixel centers.
func fillPolygon(dst draw.Image, poly silhouette.Polygon, c color.Color) {
	if len(poly) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(float32(poly[0].X-float64(b.Min.X))+0.5, float32(poly[0].Y-float64(b.Min.Y))+0.5)
	for _, v := range poly[1:] {
		r.LineTo(float32(v.X-float64(b.Min.X))+0.5, float32(v.Y-float64(b.Min.Y))+0.5)
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawLabel draws text with a filled background box whose top-left corner
// is at (x, y).
func drawLabel(dst draw.Image, x, y int, text string, fg, bg color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	box := image.Rect(x-1, y-1, x+width+1, y+face.Height+1)
	draw.Draw(dst, box, image.NewUniform(bg), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}
