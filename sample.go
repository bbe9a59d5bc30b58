package rampcache

import (
	icolor "github.com/gogpu/rampcache/internal/color"
)

// SamplesPerRamp is the horizontal resolution of every ramp.
const SamplesPerRamp = 512

// degenerateSpan is the interval width below which two stops are treated
// as coincident and no interpolation is attempted.
const degenerateSpan = 1e-9

// Interpolation selects the color space in which adjacent stops are blended.
type Interpolation uint8

const (
	// InterpolateSRGB blends the given component values directly.
	InterpolateSRGB Interpolation = iota
	// InterpolateLinearSRGB blends in linear light and re-encodes to sRGB.
	// Mid-ramp colors come out brighter than with InterpolateSRGB.
	InterpolateLinearSRGB
)

// String returns the name of the interpolation space.
func (i Interpolation) String() string {
	return i.space().String()
}

func (i Interpolation) space() icolor.Space {
	if i == InterpolateLinearSRGB {
		return icolor.SpaceLinearSRGB
	}
	return icolor.SpaceSRGB
}

// MakeRamp samples stops into a freshly allocated ramp of SamplesPerRamp
// premultiplied colors using InterpolateSRGB.
func MakeRamp(stops Stops) []RGBA {
	dst := make([]RGBA, SamplesPerRamp)
	makeRamp(stops, dst, InterpolateSRGB)
	return dst
}

// makeRamp writes SamplesPerRamp premultiplied samples of stops into dst,
// which must hold at least SamplesPerRamp colors.
//
// Sample i is taken at u = i/(SamplesPerRamp-1). The first sample is always
// the first stop's color, whatever its offset. Stops are consumed in order
// and never revisited, so unsorted stops give an unspecified ramp.
// An empty stop list yields a transparent ramp.
func makeRamp(stops Stops, dst []RGBA, interp Interpolation) {
	dst = dst[:SamplesPerRamp]
	if len(stops) == 0 {
		clear(dst)
		return
	}

	space := interp.space()
	lastU, lastC := 0.0, stops[0].Color
	thisU, thisC := lastU, lastC
	j := 0

	for i := range dst {
		u := float64(i) / float64(SamplesPerRamp-1)
		for u > thisU {
			lastU, lastC = thisU, thisC
			if j+1 >= len(stops) {
				break
			}
			j++
			thisU, thisC = stops[j].Offset, stops[j].Color
		}

		c := thisC
		if du := thisU - lastU; du >= degenerateSpan {
			t := (u - lastU) / du
			c = fromF64(icolor.Lerp(lastC.f64(), thisC.f64(), t, space))
		}
		dst[i] = c.Premultiply()
	}
}
