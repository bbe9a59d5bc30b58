// Package color provides the color space math behind ramp sampling:
// sRGB transfer functions, interpolation in a chosen space, and
// quantization to 8-bit channels.
package color

// Space selects the space in which two colors are interpolated.
type Space uint8

const (
	// SpaceSRGB interpolates the encoded sRGB components directly.
	SpaceSRGB Space = iota
	// SpaceLinearSRGB decodes to linear light, interpolates, then re-encodes.
	SpaceLinearSRGB
)

// String returns the name of the space.
func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "srgb"
	case SpaceLinearSRGB:
		return "linear-srgb"
	default:
		return "unknown"
	}
}

// F64 is a straight-alpha color with float64 components in [0,1].
// RGB components are in the space indicated by context.
// Alpha is always linear (never gamma-encoded).
type F64 struct {
	R, G, B, A float64
}

// Lerp interpolates from a to b by t in the given space.
// a and b are sRGB-encoded; the result is sRGB-encoded as well.
func Lerp(a, b F64, t float64, space Space) F64 {
	if space == SpaceLinearSRGB {
		return FromLinear(lerp(ToLinear(a), ToLinear(b), t))
	}
	return lerp(a, b, t)
}

func lerp(a, b F64, t float64) F64 {
	return F64{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
