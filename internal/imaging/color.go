package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/channel"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// OpacityLevel is the alpha value a pixel must exceed to be treated as part
// of an ingredient's silhouette.
const OpacityLevel = silhouette.OpacityThreshold

// ParseColor parses a hex color string like "#A52A2A" or "#FF000080".
//
// The RGB part is parsed by go-colorful, which also accepts the short
// "#RGB" form. An optional two-digit suffix sets the alpha; without it the
// color is opaque.
func ParseColor(hex string) (color.NRGBA, error) {
	s := strings.TrimSpace(hex)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// mustColor parses a built-in default color.
func mustColor(hex string) color.NRGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// colorOr parses hex, falling back to def for an empty string.
func colorOr(hex, def string) (color.NRGBA, error) {
	if hex == "" {
		return mustColor(def), nil
	}
	return ParseColor(hex)
}

// AlphaPlane returns the alpha channel of img as a grayscale image with its
// origin at (0,0).
func AlphaPlane(img image.Image) *image.Gray {
	return channel.Extract(imaging.Clone(img), channel.Alpha)
}

// OpaqueMask returns a binary mask of img: white where alpha exceeds level,
// black elsewhere.
func OpaqueMask(img image.Image, level uint8) *image.Gray {
	if level == 255 {
		return image.NewGray(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	}
	return segment.Threshold(AlphaPlane(img), level+1)
}

// CoverageResult reports how much of an image is opaque.
type CoverageResult struct {
	OpaquePixels int     `json:"opaque_pixels"`
	TotalPixels  int     `json:"total_pixels"`
	Fraction     float64 `json:"fraction"`
}

// Coverage counts the pixels whose alpha exceeds level.
func Coverage(img image.Image, level uint8) CoverageResult {
	mask := OpaqueMask(img, level)
	total := mask.Rect.Dx() * mask.Rect.Dy()
	opaque := 0
	for _, v := range mask.Pix {
		if v != 0 {
			opaque++
		}
	}
	res := CoverageResult{OpaquePixels: opaque, TotalPixels: total}
	if total > 0 {
		res.Fraction = float64(opaque) / float64(total)
	}
	return res
}
