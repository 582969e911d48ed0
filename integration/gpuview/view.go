// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/preview"
)

// Common errors returned by View operations.
var (
	// ErrViewClosed is returned when operations are attempted on a closed view.
	ErrViewClosed = errors.New("gpuview: view is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gpuview: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpuview: nil DeviceProvider")
)

type textureDestroyer interface {
	Destroy()
}

// View renders a scene under a viewport transform into a GPU texture.
type View struct {
	ctx      *gg.Context
	provider gpucontext.DeviceProvider
	engine   *viewport.Engine
	scene    preview.Scene
	opts     []preview.Option

	texture    any
	oldTexture any // replaced texture, destroyed once the GPU is idle

	dirty       bool // scene must be redrawn
	uploaded    bool // pixmap matches the texture
	sizeChanged bool
	width       int
	height      int
	closed      bool
	frames      int
}

// Option configures a View.
type Option func(*View)

// WithEngine uses e instead of a default engine.
func WithEngine(e *viewport.Engine) Option {
	return func(v *View) { v.engine = e }
}

// WithPreviewOptions passes opts to preview.Render on every redraw.
func WithPreviewOptions(opts ...preview.Option) Option {
	return func(v *View) { v.opts = append(v.opts, opts...) }
}

// New creates a View of the given size in pixels. A nil scene shows
// only the background, grid and HUD.
// The provider should come from gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, width, height int, scene preview.Scene, opts ...Option) (*View, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// Non-fatal: the accelerator may not support device sharing.
	_ = gg.SetAcceleratorDeviceProvider(provider)

	v := &View{
		ctx:      gg.NewContext(width, height),
		provider: provider,
		scene:    scene,
		width:    width,
		height:   height,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.engine == nil {
		v.engine = viewport.MustNew()
	}
	v.engine.OnChange(func(_, _ viewport.Transform) {
		v.dirty = true
	})
	return v, nil
}

// Engine returns the engine driving the view.
func (v *View) Engine() *viewport.Engine {
	return v.engine
}

// Context returns the gg drawing context, or nil if the view is closed.
func (v *View) Context() *gg.Context {
	if v.closed {
		return nil
	}
	return v.ctx
}

// Size returns the view size in pixels.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Rect returns the container rect of the view. The view fills the
// window, so its origin is (0, 0).
func (v *View) Rect() viewport.Rect {
	return viewport.Rect{Width: float64(v.width), Height: float64(v.height)}
}

// IsDirty reports whether the scene needs to be redrawn.
func (v *View) IsDirty() bool {
	return v.dirty
}

// Invalidate forces a redraw on the next Redraw or RenderTo, for scenes
// that change independently of the transform.
func (v *View) Invalidate() {
	v.dirty = true
}

// Frames returns the number of times the scene has been drawn.
func (v *View) Frames() int {
	return v.frames
}

// Resize changes the view size. The container rect changes with it, so
// the scene is redrawn on the next frame.
func (v *View) Resize(width, height int) error {
	if v.closed {
		return ErrViewClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if v.width == width && v.height == height {
		return nil
	}
	if err := v.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("gpuview: context resize failed: %w", err)
	}
	v.width = width
	v.height = height
	v.sizeChanged = true
	v.dirty = true
	return nil
}

// Wheel forwards a wheel event. Ctrl or Meta zooms around the cursor,
// otherwise the view pans.
func (v *View) Wheel(ev viewport.WheelEvent) bool {
	return v.engine.HandleWheel(ev, v.Rect())
}

// PointerDown starts a drag pan at (x, y).
func (v *View) PointerDown(x, y float64) {
	v.engine.StartPan(x, y)
}

// PointerMove continues a drag pan. It does nothing when no pan is active.
func (v *View) PointerMove(x, y float64) {
	v.engine.UpdatePan(x, y)
}

// PointerUp ends a drag pan after applying the final position.
func (v *View) PointerUp(x, y float64) {
	v.engine.UpdatePan(x, y)
	v.engine.EndPan()
}

// PointerLeave ends a drag pan when the pointer leaves the window.
func (v *View) PointerLeave() {
	v.cancelPan("pointer leave")
}

// Blur ends a drag pan when the window loses focus.
func (v *View) Blur() {
	v.cancelPan("blur")
}

func (v *View) cancelPan(reason string) {
	if !v.engine.IsPanning() {
		return
	}
	viewport.Logger().Debug("gpuview: ending pan", "reason", reason)
	v.engine.EndPan()
}

// Redraw draws the scene into the context if the view is dirty.
// It reports whether a redraw happened.
func (v *View) Redraw() (bool, error) {
	if v.closed {
		return false, ErrViewClosed
	}
	if !v.dirty {
		return false, nil
	}
	if err := preview.Render(v.ctx, v.engine.Transform(), v.scene, v.opts...); err != nil {
		return false, fmt.Errorf("gpuview: render failed: %w", err)
	}
	v.dirty = false
	v.uploaded = false
	v.frames++
	return true, nil
}

// Texture returns the current texture without flushing, or nil before
// the first Flush.
func (v *View) Texture() any {
	return v.texture
}

// Close releases the textures and the drawing context.
// Close is idempotent.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true

	destroy(v.oldTexture)
	destroy(v.texture)
	v.oldTexture, v.texture = nil, nil

	if v.ctx != nil {
		_ = v.ctx.Close()
		v.ctx = nil
	}
	v.provider = nil
	return nil
}

// Provider returns the DeviceProvider of the view, or nil if closed.
func (v *View) Provider() gpucontext.DeviceProvider {
	if v.closed {
		return nil
	}
	return v.provider
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
