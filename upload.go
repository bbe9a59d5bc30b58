// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rampcache

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Upload errors.
var (
	// ErrNilCreator is returned by Upload when the Uploader has no texture
	// creator.
	ErrNilCreator = errors.New("rampcache: texture creator is nil")

	// ErrUploaderClosed is returned by Upload after Close.
	ErrUploaderClosed = errors.New("rampcache: uploader is closed")
)

// Source is what an Uploader reads ramps from. *Cache implements it.
type Source interface {
	// Ramps returns the current view of the ramp buffer.
	Ramps() Ramps
	// MarkUploaded clears the dirty row range once the view is on the GPU.
	MarkUploaded()
}

// textureDestroyer is implemented by textures that own GPU memory.
type textureDestroyer interface {
	Destroy()
}

// Uploader keeps a GPU texture in sync with a ramp Source.
//
// The texture is created on the first Upload and recreated whenever the
// number of rows changes. A replaced texture may still be referenced by
// in-flight command buffers, so it is not destroyed right away: it is kept
// until the next recreate, ReleaseStale or Close.
//
// Otherwise only the rows written since the last upload are sent, through
// gpucontext.TextureRegionUpdater when the texture supports it and a full
// gpucontext.TextureUpdater write when it does not.
//
// Uploader is not safe for concurrent use.
type Uploader struct {
	creator gpucontext.TextureCreator
	texture    gpucontext.Texture
	oldTexture gpucontext.Texture // replaced texture awaiting deferred destruction
	buf        []byte
	closed     bool
}

// NewUploader creates an uploader that allocates textures with creator.
func NewUploader(creator gpucontext.TextureCreator) *Uploader {
	return &Uploader{creator: creator}
}

// Texture returns the current texture, or nil before the first upload.
func (u *Uploader) Texture() gpucontext.Texture {
	return u.texture
}

// Upload brings the texture up to date with src and returns it.
// An empty source uploads nothing and returns the current texture.
func (u *Uploader) Upload(src Source) (gpucontext.Texture, error) {
	if u.closed {
		return nil, ErrUploaderClosed
	}
	if u.creator == nil {
		return nil, ErrNilCreator
	}

	r := src.Ramps()
	if r.Height == 0 {
		return u.texture, nil
	}

	if u.texture == nil || u.texture.Height() != int(r.Height) || u.texture.Width() != int(r.Width) {
		u.buf = r.RGBA8(u.buf)
		tex, err := u.creator.NewTextureFromRGBA(int(r.Width), int(r.Height), u.buf)
		if err != nil {
			return nil, fmt.Errorf("rampcache: create %dx%d ramp texture: %w", r.Width, r.Height, err)
		}
		if u.texture != nil {
			destroy(u.oldTexture)
			u.oldTexture = u.texture
		}
		u.texture = tex
		src.MarkUploaded()
		return u.texture, nil
	}

	lo, hi, dirty := r.Dirty()
	if !dirty {
		return u.texture, nil
	}

	switch tex := u.texture.(type) {
	case gpucontext.TextureRegionUpdater:
		u.buf = r.RGBA8Rows(u.buf, lo, hi)
		if err := tex.UpdateRegion(0, int(lo), int(r.Width), int(hi-lo), u.buf); err != nil {
			return nil, fmt.Errorf("rampcache: update ramp rows [%d, %d): %w", lo, hi, err)
		}
	case gpucontext.TextureUpdater:
		u.buf = r.RGBA8(u.buf)
		if err := tex.UpdateData(u.buf); err != nil {
			return nil, fmt.Errorf("rampcache: update ramp texture: %w", err)
		}
	default:
		Logger().Warn("rampcache: texture does not support updates, ramps are stale",
			"type", fmt.Sprintf("%T", u.texture))
		return u.texture, nil
	}

	src.MarkUploaded()
	return u.texture, nil
}

// ReleaseStale destroys the texture replaced by the last recreate, if any.
// Call it once the GPU has finished the frames that sampled that texture.
func (u *Uploader) ReleaseStale() {
	destroy(u.oldTexture)
	u.oldTexture = nil
}

// Close releases the current and any replaced texture. After Close, Upload
// fails.
// Close is idempotent.
func (u *Uploader) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	u.release()
	u.buf = nil
	return nil
}

func (u *Uploader) release() {
	u.ReleaseStale()
	destroy(u.texture)
	u.texture = nil
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
