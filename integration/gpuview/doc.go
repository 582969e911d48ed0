// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuview shows a viewport-driven gg scene in a gogpu window.
//
// A View owns a gg.Context sized to the window, a viewport.Engine and the
// scene to draw. Pointer and wheel input is forwarded to the engine; every
// transform change marks the view dirty and the next RenderTo redraws the
// scene through preview.Render and uploads it as a texture:
//
//	input -> viewport.Engine -> preview.Render -> Pixmap -> GPU Texture -> Window
//
// # Usage
//
//	v, err := gpuview.New(app.GPUContextProvider(), 800, 600, scene)
//	if err != nil { ... }
//	defer v.Close()
//
//	app.OnScroll(func(ev viewport.WheelEvent) { v.Wheel(ev) })
//	app.OnPointerDown(func(x, y float64) { v.PointerDown(x, y) })
//	app.OnPointerMove(func(x, y float64) { v.PointerMove(x, y) })
//	app.OnPointerUp(func(x, y float64) { v.PointerUp(x, y) })
//	app.OnDraw(func(dc *gogpu.Context) { v.RenderTo(dc.AsTextureDrawer()) })
//
// PointerLeave and Blur must be wired as well; a drag pan has no timeout.
//
// # Thread Safety
//
// View is NOT safe for concurrent use. Call it from the window's event
// goroutine.
package gpuview
