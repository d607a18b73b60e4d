package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestClipToCanvas_SmallImageUnchanged(t *testing.T) {
	img := createInMemoryImage(120, 80, color.NRGBA{255, 0, 0, 255})

	got, err := ClipToCanvas(img, DefaultCanvasSize, DefaultCanvasSize, 1.0)
	if err != nil {
		t.Fatalf("ClipToCanvas failed: %v", err)
	}
	if got.Bounds() != image.Rect(0, 0, 120, 80) {
		t.Errorf("bounds: got %v, want (0,0)-(120,80)", got.Bounds())
	}
}

func TestClipToCanvas_CropsOversized(t *testing.T) {
	img := createInMemoryImage(600, 300, color.NRGBA{0, 255, 0, 255})

	got, err := ClipToCanvas(img, 400, 400, 1.0)
	if err != nil {
		t.Fatalf("ClipToCanvas failed: %v", err)
	}
	if got.Bounds().Dx() != 400 || got.Bounds().Dy() != 300 {
		t.Errorf("dimensions: got %dx%d, want 400x300", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestClipToCanvas_KeepsTopLeft(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(49, 49, color.NRGBA{0, 0, 255, 255})

	got, err := ClipToCanvas(img, 20, 20, 1.0)
	if err != nil {
		t.Fatalf("ClipToCanvas failed: %v", err)
	}
	if c := got.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("pixel (0,0): got %v, want opaque red", c)
	}
}

func TestClipToCanvas_RebasesOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(30, 30, 60, 60))

	got, err := ClipToCanvas(img, 100, 100, 1.0)
	if err != nil {
		t.Fatalf("ClipToCanvas failed: %v", err)
	}
	if got.Bounds().Min != (image.Point{}) {
		t.Errorf("origin: got %v, want (0,0)", got.Bounds().Min)
	}
}

func TestClipToCanvas_Scale(t *testing.T) {
	img := createInMemoryImage(100, 50, color.NRGBA{10, 20, 30, 255})

	tests := []struct {
		name         string
		scale        float64
		wantW, wantH int
	}{
		{"double", 2.0, 200, 100},
		{"half", 0.5, 50, 25},
		{"zero ignored", 0, 100, 50},
		{"clipped after scaling", 5.0, 300, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClipToCanvas(img, 300, 300, tt.scale)
			if err != nil {
				t.Fatalf("ClipToCanvas failed: %v", err)
			}
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", got.Bounds().Dx(), got.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestClipToCanvas_InvalidSize(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-5, 10}} {
		if _, err := ClipToCanvas(img, size[0], size[1], 1.0); err == nil {
			t.Errorf("expected error for canvas %dx%d", size[0], size[1])
		}
	}
	if _, err := ClipToCanvas(img, 10, 10, 0.01); err == nil {
		t.Error("expected error when scale shrinks the image to nothing")
	}
}

func TestEncodePNG(t *testing.T) {
	img := createInMemoryImage(16, 9, color.NRGBA{1, 2, 3, 255})

	res, err := encodePNG(img)
	if err != nil {
		t.Fatalf("encodePNG failed: %v", err)
	}
	if res.Width != 16 || res.Height != 9 || res.MimeType != "image/png" {
		t.Errorf("unexpected result header: %+v", res)
	}

	decoded, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	back, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if back.Bounds().Dx() != 16 {
		t.Errorf("decoded width: got %d, want 16", back.Bounds().Dx())
	}
}
