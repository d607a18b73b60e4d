package silhouette

import (
	"image"

	"github.com/anthonynsimon/bild/channel"
	"github.com/disintegration/imaging"
)

// OpacityThreshold is the alpha value (of 255) a pixel must exceed to count
// as part of the silhouette.
const OpacityThreshold = 200

// Buffer holds the alpha plane of a decoded image with its origin at (0,0).
// It is read-only after construction.
type Buffer struct {
	alpha *image.Gray
}

// NewBuffer copies the alpha channel of img. Images whose bounds do not
// start at (0,0) are rebased first, so buffer coordinates always run from
// 0 to width-1 and 0 to height-1.
func NewBuffer(img image.Image) *Buffer {
	return &Buffer{alpha: channel.Extract(imaging.Clone(img), channel.Alpha)}
}

// NewBufferFromAlpha wraps an existing alpha plane without copying it.
func NewBufferFromAlpha(alpha *image.Gray) *Buffer {
	if alpha.Rect.Min != (image.Point{}) {
		alpha = channel.Extract(imaging.Clone(alpha), channel.Red)
	}
	return &Buffer{alpha: alpha}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.alpha.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.alpha.Rect.Dy() }

// Alpha returns the alpha value at (x, y). Coordinates outside the buffer
// read as fully transparent.
func (b *Buffer) Alpha(x, y int) uint8 {
	if !b.In(x, y) {
		return 0
	}
	return b.alpha.Pix[y*b.alpha.Stride+x]
}

// Opaque reports whether the pixel at (x, y) exceeds [OpacityThreshold].
func (b *Buffer) Opaque(x, y int) bool {
	return b.Alpha(x, y) > OpacityThreshold
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width() && y < b.Height()
}
