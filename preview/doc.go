// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package preview renders a canvas scene through a viewport transform
// with gg.
//
// Render draws, in order:
//
//   - the background
//   - a canvas-space grid covering the visible region, with the canvas
//     axes highlighted; grid spacing doubles until lines are at least
//     MinGridPixels apart on screen
//   - the scene, with the viewport matrix installed on the context
//   - a HUD label with the zoom percentage, formatted for the
//     configured language
//
// The container is the full context: Rect{0, 0, dc.Width(), dc.Height()}.
//
// Usage:
//
//	dc := gg.NewContext(800, 600)
//	scene := preview.SceneFunc(func(dc *gg.Context) {
//	    dc.SetRGB(1, 0, 0)
//	    dc.DrawRectangle(0, 0, 100, 100)
//	    _ = dc.Fill()
//	})
//	if err := preview.Render(dc, engine.Transform(), scene); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("view.png")
package preview
