// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rampcache

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/gogpu/gputypes"

	icolor "github.com/gogpu/rampcache/internal/color"
)

// Ramps is a read-only view of a cache's resolved ramps: Height rows of
// Width premultiplied samples each, where row n is the ramp for slot id n.
//
// Data aliases the cache's buffer. It must not be modified and must not be
// used after the next mutating call on the cache.
type Ramps struct {
	Data   []RGBA
	Width  uint32
	Height uint32

	dirtyLo, dirtyHi uint32
}

// Row returns the ramp stored in slot, or nil if slot is out of range.
func (r Ramps) Row(slot uint32) []RGBA {
	if slot >= r.Height {
		return nil
	}
	start := int(slot) * int(r.Width)
	return r.Data[start : start+int(r.Width) : start+int(r.Width)]
}

// Dirty returns the rows [lo, hi) written since the cache was last marked
// uploaded. ok is false when nothing changed.
func (r Ramps) Dirty() (lo, hi uint32, ok bool) {
	if r.dirtyLo >= r.dirtyHi {
		return 0, 0, false
	}
	return r.dirtyLo, r.dirtyHi, true
}

// Extent returns the size of the ramp texture.
func (r Ramps) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(r.Width, r.Height)
}

// TextureDescriptor describes a 2D texture able to hold the ramps in the
// given format. Use gputypes.TextureFormatRGBA8Unorm with RGBA8 data or
// gputypes.TextureFormatRGBA32Float with Float32 data.
func (r Ramps) TextureDescriptor(format gputypes.TextureFormat) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         "rampcache.ramps",
		Size:          r.Extent(),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// RGBA8 encodes the ramps as tightly packed premultiplied 8-bit RGBA rows,
// appending to dst[:0]. The result is len(Data)*4 bytes.
func (r Ramps) RGBA8(dst []byte) []byte {
	return appendRGBA8(dst[:0], r.Data)
}

// RGBA8Rows encodes rows [lo, hi) the same way as RGBA8.
func (r Ramps) RGBA8Rows(dst []byte, lo, hi uint32) []byte {
	hi = min(hi, r.Height)
	if lo >= hi {
		return dst[:0]
	}
	w := int(r.Width)
	return appendRGBA8(dst[:0], r.Data[int(lo)*w:int(hi)*w])
}

func appendRGBA8(dst []byte, data []RGBA) []byte {
	for _, c := range data {
		dst = append(dst,
			icolor.Unorm8(c.R),
			icolor.Unorm8(c.G),
			icolor.Unorm8(c.B),
			icolor.Unorm8(c.A))
	}
	return dst
}

// Float32 encodes the ramps as premultiplied float32 components, four per
// sample, appending to dst[:0].
func (r Ramps) Float32(dst []float32) []float32 {
	dst = dst[:0]
	for _, c := range r.Data {
		dst = append(dst, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	}
	return dst
}

// Float32Bytes encodes the ramps as little-endian float32 bytes, the
// layout of a gputypes.TextureFormatRGBA32Float texture.
func (r Ramps) Float32Bytes(dst []byte) []byte {
	dst = dst[:0]
	for _, c := range r.Data {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c.R)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c.G)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c.B)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c.A)))
	}
	return dst
}

// Image returns the ramps as an image. image.RGBA is premultiplied, so the
// samples are stored without conversion beyond 8-bit quantization.
func (r Ramps) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(r.Width), int(r.Height)))
	img.Pix = r.RGBA8(img.Pix)
	return img
}
