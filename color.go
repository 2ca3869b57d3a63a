package lottie

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a straight (non-premultiplied) RGBA8888 color. Components
// are in [0, 255]; this is the wire format of painted pixels and the
// unit the rasterizer blends in.
type Color struct {
	R, G, B, A uint8
}

// Color returns c as an image/color.Color (a color.NRGBA), so it can be
// handed to stdlib image helpers.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStdColor converts a standard color.Color to a straight Color.
func FromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGB constructs an opaque color from normalized [0,1] components.
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

// RGBA constructs a color from normalized [0,1] components.
func RGBA(r, g, b, a float32) Color {
	return Color{
		R: clampByte(r * 255),
		G: clampByte(g * 255),
		B: clampByte(b * 255),
		A: clampByte(a * 255),
	}
}

func clampByte(x float32) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x + 0.5)
}

// Hex parses a color from a hex string in "RGB", "RGBA", "RRGGBB", or
// "RRGGBBAA" form, with an optional leading '#'.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHexDigits(hex[0:1], &r)
		parseHexDigits(hex[1:2], &g)
		parseHexDigits(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHexDigits(hex[0:1], &r)
		parseHexDigits(hex[1:2], &g)
		parseHexDigits(hex[2:3], &b)
		parseHexDigits(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHexDigits(hex[0:2], &r)
		parseHexDigits(hex[2:4], &g)
		parseHexDigits(hex[4:6], &b)
	case 8:
		parseHexDigits(hex[0:2], &r)
		parseHexDigits(hex[2:4], &g)
		parseHexDigits(hex[4:6], &b)
		parseHexDigits(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

func parseHexDigits(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Premultiply returns c with RGB scaled by its own alpha.
func (c Color) Premultiply() Color {
	a := float32(c.A) / 255
	return Color{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: c.A,
	}
}

// Lerp linearly interpolates between c and other by t, in straight
// color space (no premultiply round-trip), matching the gradient
// sampler's blend rule.
func (c Color) Lerp(other Color, t float32) Color {
	lerp := func(a, b uint8) uint8 {
		return clampByte(float32(a) + (float32(b)-float32(a))*t)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Common colors.
var (
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Transparent = Color{}
)

// GradientStop is one color stop of a linear or radial gradient paint,
// positioned at a normalized offset along the gradient axis.
type GradientStop struct {
	Offset float32
	Color  Color
}

// HSL constructs an opaque color from hue [0,360), saturation [0,1],
// and lightness [0,1].
func HSL(h, s, l float32) Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math32.Abs(2*l-1)) * s
	x := c * (1 - math32.Abs(math32.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float32
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}
