// Package raster draws a grid into a PNG image, one fixed-size cell per character.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"asciicanvas/internal/grid"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultCellSize is the width and height of an exported cell in pixels.
const DefaultCellSize = 20

// ErrNoSurface is returned when no drawing surface can be set up for a grid.
var ErrNoSurface = errors.New("raster: drawing surface unavailable")

// maxPixels bounds the canvas area so a bad cell size cannot exhaust memory.
const maxPixels = 1 << 26

var (
	monoOnce sync.Once
	monoFont *opentype.Font
	monoErr  error
)

func loadMono() (*opentype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = opentype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// FaceSize returns the font size used for a cell of the given height.
// A 20px cell gets a 14px face.
func FaceSize(cellHeight int) float64 {
	return float64(cellHeight) * 0.7
}

// NewFace builds a Go Mono face of the given size in pixels.
func NewFace(size float64) (font.Face, error) {
	f, err := loadMono()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font: %v", ErrNoSurface, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: building face: %v", ErrNoSurface, err)
	}
	return face, nil
}

// MissingGlyph is drawn in place of characters the face cannot render, so a
// painted cell never comes out blank.
const MissingGlyph = '?'

// Render draws g onto a (cols*cellW) x (rows*cellH) canvas. Every cell is
// filled with background; non-blank cells get their character centered in
// text color. Characters the face has no glyph for are drawn as MissingGlyph.
func Render(g *grid.Grid, cellW, cellH int, text, background color.Color) (*image.RGBA, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrNoSurface)
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrNoSurface, cellW, cellH)
	}
	width, height := g.Cols()*cellW, g.Rows()*cellH
	if width*height > maxPixels {
		return nil, fmt.Errorf("%w: canvas %dx%d too large", ErrNoSurface, width, height)
	}

	mono, err := loadMono()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font: %v", ErrNoSurface, err)
	}
	face, err := NewFace(FaceSize(cellH))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(text),
		Face: face,
	}
	metrics := face.Metrics()
	// Vertical middle of the cell, as a text baseline.
	baseline := (fixed.I(cellH) + metrics.Ascent - metrics.Descent) / 2
	var buf sfnt.Buffer

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			ch := g.At(r, c)
			if ch == grid.Blank {
				continue
			}
			if idx, err := mono.GlyphIndex(&buf, ch); err != nil || idx == 0 {
				ch = MissingGlyph
			}
			advance, ok := face.GlyphAdvance(ch)
			if !ok {
				ch = MissingGlyph
				advance, _ = face.GlyphAdvance(ch)
			}
			d.Dot = fixed.Point26_6{
				X: fixed.I(c*cellW) + (fixed.I(cellW)-advance)/2,
				Y: fixed.I(r*cellH) + baseline,
			}
			d.DrawString(string(ch))
		}
	}

	return img, nil
}

// EncodePNG renders g and writes it to w as a PNG.
func EncodePNG(w io.Writer, g *grid.Grid, cellW, cellH int, text, background color.Color) error {
	img, err := Render(g, cellW, cellH, text, background)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
