// Package palette holds ordered ribbon colors with wraparound lookup.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered, non-empty list of colors.
type Palette []colorful.Color

// Autumn is navy, mustard, maroon and olive.
var Autumn = MustParse("#1f3b75", "#d69836", "#a33232", "#6b8e23")

// Named palettes selectable from config.
var Named = map[string][]string{
	"autumn":  {"#1f3b75", "#d69836", "#a33232", "#6b8e23"},
	"ocean":   {"#0077be", "#00a8cc", "#ffd700", "#4488aa"},
	"sunset":  {"#ff6b6b", "#feca57", "#ff9ff3", "#8b6b8c"},
	"mono":    {"#e0e0e0", "#9e9e9e"},
	"rainbow": {"#e6194b", "#f58231", "#ffe119", "#3cb44b", "#4363d8", "#911eb4"},
}

// Parse converts hex strings ("#rrggbb" or "#rgb") into a palette.
func Parse(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette: empty")
	}
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}

func MustParse(hexes ...string) Palette {
	p, err := Parse(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup resolves a palette name, or parses hexes when name is empty.
func Lookup(name string, hexes []string) (Palette, error) {
	if name == "" {
		return Parse(hexes...)
	}
	named, ok := Named[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("palette: unknown palette %q", name)
	}
	return Parse(named...)
}

// ParseColor parses a single hex color.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("palette: %q: %w", hex, err)
	}
	return c, nil
}

// At returns p[index mod len(p)]. Negative indices wrap as well.
func (p Palette) At(index int) colorful.Color {
	n := len(p)
	return p[((index%n)+n)%n]
}

// Hex returns the color for index as "#rrggbb".
func (p Palette) Hex(index int) string {
	return p.At(index).Hex()
}

func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Shade blends c toward bg by amount in [0,1] in Lab space, used for depth
// cueing of far ribbon segments.
func Shade(c, bg colorful.Color, amount float64) colorful.Color {
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return bg
	}
	return c.BlendLab(bg, amount).Clamped()
}

// RGBA converts to an opaque image/color value.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
