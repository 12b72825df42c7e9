// Package colorconv converts colors between RGB triples, hexadecimal strings
// and HSL triples.
//
// All functions are pure and safe for concurrent use. Invalid input is
// reported as a *RangeError (numeric bounds) or a *SyntaxError (hex parsing).
package colorconv

import (
	"fmt"
	"image/color"
)

// RGB is a color with 8-bit channels stored as ints in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL is a color with hue in degrees [0, 360] and saturation and lightness
// in percent [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

var _ color.Color = RGB{}

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp8(c.R))
	g = uint32(clamp8(c.G))
	b = uint32(clamp8(c.B))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// Hex returns the "#rrggbb" form of c. Channels outside [0, 255] are clamped.
func (c RGB) Hex() string {
	return formatHex(clamp8(c.R), clamp8(c.G), clamp8(c.B))
}

// HSL returns c in HSL space. Channels outside [0, 255] are clamped.
func (c RGB) HSL() HSL {
	return rgbToHSL(clamp8(c.R), clamp8(c.G), clamp8(c.B))
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// FromColor converts any color.Color to 8-bit RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
