package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Score card defaults, matching the game's look.
const (
	DefaultBackgroundColor = "#FFF8E7"
	DefaultBreadColor      = "#A52A2A"
	DefaultTextColor       = "#202020"
	DefaultSpriteScale     = 0.9
)

// Sprite is an ingredient image placed in world space.
type Sprite struct {
	Image image.Image

	// CenterX and CenterY locate the middle of the image in the scene.
	CenterX, CenterY float64

	// Scale shrinks or enlarges the sprite around its center. Zero means
	// DefaultSpriteScale.
	Scale float64
}

// Scene describes the final frame of a game.
type Scene struct {
	Width, Height int

	// Bread holds the bread slices as scene rectangles.
	Bread []image.Rectangle

	Sprites []Sprite

	// Title is drawn first, then a "Scores" heading and one line per entry
	// of Lines.
	Title string
	Lines []string

	BackgroundColor string
	BreadColor      string
	TextColor       string
}

// Text layout of the score card, in pixels.
const (
	textLeft       = 100
	titleTop       = 100
	scoresTop      = 140
	firstLineTop   = 180
	lineSpacing    = 18
	scoresHeadline = "Scores"
)

// RenderScoreCard draws the finished sandwich with the score summary.
func RenderScoreCard(scene Scene) (*ImageResult, error) {
	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", scene.Width, scene.Height)
	}

	bg, err := colorOr(scene.BackgroundColor, DefaultBackgroundColor)
	if err != nil {
		return nil, err
	}
	breadColor, err := colorOr(scene.BreadColor, DefaultBreadColor)
	if err != nil {
		return nil, err
	}
	textColor, err := colorOr(scene.TextColor, DefaultTextColor)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(scene.Width, scene.Height, bg)

	for _, slice := range scene.Bread {
		draw.Draw(canvas, slice, image.NewUniform(breadColor), image.Point{}, draw.Over)
	}

	for _, s := range scene.Sprites {
		canvas = drawSprite(canvas, s)
	}

	noBackground := color.NRGBA{}
	if scene.Title != "" {
		drawLabel(canvas, textLeft, titleTop, scene.Title, textColor, noBackground)
	}
	if len(scene.Lines) > 0 {
		drawLabel(canvas, textLeft, scoresTop, scoresHeadline, textColor, noBackground)
		for i, line := range scene.Lines {
			drawLabel(canvas, textLeft, firstLineTop+i*lineSpacing, line, textColor, noBackground)
		}
	}

	return encodePNG(canvas)
}

// drawSprite composites a scaled sprite centered on its position.
func drawSprite(canvas *image.NRGBA, s Sprite) *image.NRGBA {
	if s.Image == nil {
		return canvas
	}
	scale := s.Scale
	if scale == 0 {
		scale = DefaultSpriteScale
	}

	b := s.Image.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 || h < 1 {
		return canvas
	}
	sprite := imaging.Resize(s.Image, w, h, imaging.Lanczos)

	pos := image.Pt(int(s.CenterX)-w/2, int(s.CenterY)-h/2)
	return imaging.Overlay(canvas, sprite, pos, 1.0)
}
