// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewport"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the texture cannot be drawn.
	ErrInvalidDrawContext = errors.New("gpuview: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no
	// texture creator.
	ErrInvalidRenderer = errors.New("gpuview: draw context has no texture creator")
)

// pendingTexture holds pixel data until a texture creator is available
// in RenderTo.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

// Flush redraws the scene if needed and prepares the pixel data for
// upload. It returns the current texture, which is a pending placeholder
// until the first RenderTo.
func (v *View) Flush() (any, error) {
	if _, err := v.Redraw(); err != nil {
		return nil, err
	}

	if v.sizeChanged {
		if v.texture != nil {
			destroy(v.oldTexture)
			v.oldTexture = v.texture
			v.texture = nil
		}
		v.sizeChanged = false
	}

	if v.uploaded && v.texture != nil {
		return v.texture, nil
	}

	// Non-fatal: CPU-rendered content is already in the pixmap.
	if err := v.ctx.FlushGPU(); err != nil {
		viewport.Logger().Warn("gpuview: GPU flush failed, uploading CPU pixels", "err", err)
	}
	data := v.ctx.ResizeTarget().Data()

	if v.texture == nil {
		if _, ok := v.oldTexture.(*pendingTexture); ok {
			v.oldTexture = nil
		}
		v.texture = &pendingTexture{width: v.width, height: v.height, data: data}
		v.uploaded = true
		return v.texture, nil
	}

	if updater, ok := v.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpuview: texture update failed: %w", err)
		}
	}
	v.uploaded = true
	return v.texture, nil
}

// RenderTo redraws the scene if the transform changed and draws it to dc
// at the window origin.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    view.RenderTo(dc.AsTextureDrawer())
//	})
func (v *View) RenderTo(dc gpucontext.TextureDrawer) error {
	if v.closed {
		return ErrViewClosed
	}
	tex, err := v.Flush()
	if err != nil {
		return err
	}

	if pending, ok := tex.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gpuview: NewTextureFromRGBA failed: %w", err)
		}
		// gg pixmaps are premultiplied.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		v.texture = realTex
		tex = realTex

		// The GPU is idle after the upload, so the old texture can go.
		destroy(v.oldTexture)
		v.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}
