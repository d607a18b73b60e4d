package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// DefaultCanvasSize is the side of the square scratch canvas an ingredient
// is drawn onto before its silhouette is sampled.
const DefaultCanvasSize = 400

// ClipToCanvas places img at the top-left of a width×height canvas and
// returns the visible part, rebased to origin (0,0).
//
// Pixels beyond the canvas are cut off, so an oversized ingredient is
// sampled only where it would actually be drawn. When scale is positive and
// not 1.0 the image is resized with a Lanczos filter before clipping.
func ClipToCanvas(img image.Image, width, height int, scale float64) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d: dimensions must be positive", width, height)
	}

	src := imaging.Clone(img)
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(src.Bounds().Dx()) * scale)
		newHeight := int(float64(src.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f shrinks %dx%d image to nothing", scale, src.Bounds().Dx(), src.Bounds().Dy())
		}
		src = imaging.Resize(src, newWidth, newHeight, imaging.Lanczos)
	}

	b := src.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return src, nil
	}
	return imaging.Crop(src, image.Rect(0, 0, min(width, b.Dx()), min(height, b.Dy()))), nil
}

// ImageResult is a rendered image encoded for a JSON response.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// encodePNG encodes img as a base64 PNG ImageResult.
func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
