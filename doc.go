// Package viewport provides a viewport transform engine for interactive
// 2D canvases.
//
// # Overview
//
// viewport keeps a scale and translation for a pannable, zoomable
// surface and implements the interactions editors need on top of it:
// step and absolute zoom, cursor-anchored wheel zoom, wheel pan, drag pan
// and screen<->canvas coordinate mapping. It does no rendering; callers
// feed it input events and draw with the resulting [Transform].
//
// # Quick Start
//
//	import "github.com/gogpu/viewport"
//
//	e := viewport.MustNew()
//
//	// Ctrl+wheel (or trackpad pinch) zooms around the cursor,
//	// plain wheel pans.
//	e.HandleWheel(viewport.WheelEvent{DeltaY: -100, ClientX: 320, ClientY: 240,
//	    Modifiers: viewport.ModCtrl}, rect)
//
//	// Drag pan.
//	e.StartPan(x0, y0)
//	e.UpdatePan(x1, y1)
//	e.EndPan()
//
//	// Render with gg.
//	dc.SetTransform(e.Matrix())
//
// # State Model
//
// The engine is a thin holder around a pure reducer:
//
//	next := viewport.Apply(state, cfg, viewport.ZoomIn{})
//
// [State] bundles the [Transform] and the drag [PanSession]. Every
// operation is also available as a method on [Config] that takes and
// returns a Transform, so each transition can be used and tested in
// isolation.
//
// # Invariants
//
//   - MinZoom <= Scale <= MaxZoom after every operation. Out-of-range
//     requests are clamped, never rejected.
//   - A wheel zoom keeps the canvas point under the cursor fixed.
//   - ScreenToCanvas and CanvasToScreen are exact inverses for a given
//     Transform and Rect.
//
// # Coordinate System
//
// Canvas space is the logical coordinate system of the content. Screen
// space is the coordinate system of pointer events; the container [Rect]
// locates the canvas within it. A canvas point p is drawn at
//
//	screen = p*Scale + (TranslateX, TranslateY) + (rect.Left, rect.Top)
//
// which is the CSS transform translate(tx, ty) scale(s) applied inside
// the container.
//
// # Pan Sessions
//
// There is no timeout on a drag pan. Embedders must call EndPan on
// pointer-up and also on pointer-leave, pointer-cancel and focus loss,
// otherwise the session stays active.
package viewport
