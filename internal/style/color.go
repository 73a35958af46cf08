// Package style holds the two-color style state used for rendering and export.
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor is returned for strings that are not #RGB or #RRGGBB.
var ErrMalformedColor = errors.New("malformed color")

// Color is a 24-bit RGB color. It implements image/color.Color as fully opaque.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xff, 0xff, 0xff}
)

// ParseHex parses "#RRGGBB" or the "#RGB" shorthand. The leading '#' is optional
// and hex digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	for _, ch := range s[1:] {
		if !isHexDigit(ch) {
			return Color{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
		}
	}

	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrMalformedColor, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for constants; it panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Hex formats c as lowercase "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// Colorful converts c to a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Opposite complements each channel (255 - channel). Used for grid borders.
func (c Color) Opposite() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// OppositeHex parses s and returns the hex of its opposite color.
func OppositeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Opposite().Hex(), nil
}

// Pair is the foreground/background style state.
type Pair struct {
	Text       Color
	Background Color
}

// DefaultPair is black text on a white background.
var DefaultPair = Pair{Text: Black, Background: White}

// Border returns the color used for grid borders: the opposite of the background.
func (p Pair) Border() Color {
	return p.Background.Opposite()
}
