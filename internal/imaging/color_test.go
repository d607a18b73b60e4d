package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createIngredientImage returns a transparent image with an opaque block
// covering [x1,x2)×[y1,y2).
func createIngredientImage(width, height, x1, y1, x2, y2 int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{230, 180, 40, 255})
		}
	}
	return img
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex     string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantA   uint8
		wantErr bool
	}{
		{"#FF0000", 255, 0, 0, 255, false},
		{"#00FF00", 0, 255, 0, 255, false},
		{"#A52A2A", 165, 42, 42, 255, false},
		{"#ffffff", 255, 255, 255, 255, false},
		{"FF0000", 255, 0, 0, 255, false},     // without #
		{"#FF000080", 255, 0, 0, 128, false},  // with alpha
		{"FF000080", 255, 0, 0, 128, false},   // without # with alpha
		{"#F00", 255, 0, 0, 255, false},       // short form
		{"  #00A0FF  ", 0, 160, 255, 255, false},
		{"", 0, 0, 0, 0, true},
		{"#GGGGGG", 0, 0, 0, 0, true},
		{"#FF0000ZZ", 0, 0, 0, 0, true},
		{"#FF00", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := ParseColor(tt.hex)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", c)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB || c.A != tt.wantA {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					c.R, c.G, c.B, c.A, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestColorOr(t *testing.T) {
	c, err := colorOr("", DefaultBreadColor)
	if err != nil {
		t.Fatalf("colorOr failed: %v", err)
	}
	if c != (color.NRGBA{165, 42, 42, 255}) {
		t.Errorf("default: got %v, want bread brown", c)
	}

	if _, err := colorOr("not-a-color", DefaultBreadColor); err == nil {
		t.Error("expected error for an invalid explicit color")
	}
}

func TestAlphaPlane(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	img.SetNRGBA(5, 5, color.NRGBA{0, 0, 0, 77})
	img.SetNRGBA(14, 14, color.NRGBA{255, 255, 255, 255})

	plane := AlphaPlane(img)
	if plane.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("bounds: got %v, want (0,0)-(10,10)", plane.Bounds())
	}
	if got := plane.GrayAt(0, 0).Y; got != 77 {
		t.Errorf("alpha at origin: got %d, want 77", got)
	}
	if got := plane.GrayAt(9, 9).Y; got != 255 {
		t.Errorf("alpha at corner: got %d, want 255", got)
	}
	if got := plane.GrayAt(4, 4).Y; got != 0 {
		t.Errorf("alpha of transparent pixel: got %d, want 0", got)
	}
}

func TestOpaqueMask(t *testing.T) {
	img := createIngredientImage(40, 40, 10, 10, 30, 30)

	mask := OpaqueMask(img, OpacityLevel)
	if mask.Bounds() != image.Rect(0, 0, 40, 40) {
		t.Fatalf("bounds: got %v", mask.Bounds())
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{9, 9, 0},
		{10, 10, 255},
		{20, 20, 255},
		{29, 29, 255},
		{30, 30, 0},
		{39, 0, 0},
	}
	for _, tt := range tests {
		if got := mask.GrayAt(tt.x, tt.y).Y; got != tt.want {
			t.Errorf("mask at (%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOpaqueMask_MaxLevel(t *testing.T) {
	img := createInMemoryImage(8, 8, color.NRGBA{10, 10, 10, 255})

	mask := OpaqueMask(img, 255)
	for _, v := range mask.Pix {
		if v != 0 {
			t.Fatal("no alpha can exceed 255, mask should be empty")
		}
	}
}

func TestCoverage(t *testing.T) {
	tests := []struct {
		name       string
		img        image.Image
		wantOpaque int
		wantTotal  int
		wantFrac   float64
	}{
		{"fully opaque", createInMemoryImage(10, 10, color.NRGBA{1, 2, 3, 255}), 100, 100, 1},
		{"fully transparent", image.NewNRGBA(image.Rect(0, 0, 10, 10)), 0, 100, 0},
		{"quarter", createIngredientImage(20, 20, 0, 0, 10, 10), 100, 400, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coverage(tt.img, OpacityLevel)
			if got.OpaquePixels != tt.wantOpaque || got.TotalPixels != tt.wantTotal {
				t.Errorf("got %d/%d, want %d/%d", got.OpaquePixels, got.TotalPixels, tt.wantOpaque, tt.wantTotal)
			}
			if got.Fraction != tt.wantFrac {
				t.Errorf("Fraction: got %v, want %v", got.Fraction, tt.wantFrac)
			}
		})
	}
}

func TestCoverage_Empty(t *testing.T) {
	got := Coverage(image.NewNRGBA(image.Rect(0, 0, 0, 0)), OpacityLevel)
	if got.TotalPixels != 0 || got.Fraction != 0 {
		t.Errorf("empty image: got %+v", got)
	}
}
