package rampcache

import (
	"image/color"

	icolor "github.com/gogpu/rampcache/internal/color"
)

// RGBA represents a straight-alpha color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
//
// Colors passed to the cache are always straight alpha. Colors read back
// from a ramp are premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: icolor.Unorm8(c.R),
		G: icolor.Unorm8(c.G),
		B: icolor.Unorm8(c.B),
		A: icolor.Unorm8(c.A),
	}
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// components, treating c as straight alpha.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	p := c.Premultiply()
	return unorm16(p.R), unorm16(p.G), unorm16(p.B), unorm16(p.A)
}

func unorm16(v float64) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// FromColor converts a standard color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3, 4:
		r, ok = hexNibbles(hex[0:1], ok)
		g, ok = hexNibbles(hex[1:2], ok)
		b, ok = hexNibbles(hex[2:3], ok)
		r, g, b = r*17, g*17, b*17
		if len(hex) == 4 {
			a, ok = hexNibbles(hex[3:4], ok)
			a *= 17
		}
	case 6, 8:
		r, ok = hexNibbles(hex[0:2], ok)
		g, ok = hexNibbles(hex[2:4], ok)
		b, ok = hexNibbles(hex[4:6], ok)
		if len(hex) == 8 {
			a, ok = hexNibbles(hex[6:8], ok)
		}
	default:
		ok = false
	}
	if !ok {
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// hexNibbles parses s as hexadecimal. ok is threaded through so a sequence
// of calls fails as a whole once any digit is invalid.
func hexNibbles(s string, ok bool) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, ok
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs component-wise linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func (c RGBA) f64() icolor.F64 {
	return icolor.F64{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromF64(c icolor.F64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
