// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termview drives a viewport.Engine from tcell terminal events
// and draws a canvas-space grid into a tcell.Screen.
//
// Terminal cells are taller than they are wide. A cell (cx, cy) is
// treated as the screen point (cx+0.5, (cy+0.5)*CellAspect), so zooming
// looks uniform on both axes.
//
// # Input Mapping
//
//   - wheel up/down: pan vertically; with Ctrl, zoom around the cursor
//   - wheel left/right: pan horizontally
//   - left button press/drag/release: drag pan
//   - focus loss: ends any drag pan
//   - '+' '=' zoom in, '-' zoom out, '0' reset, 'f' fit to view,
//     arrow keys pan
//   - 'q', Escape, Ctrl-C quit
//
// # Thread Safety
//
// Controller is NOT safe for concurrent use. Feed it events from the
// goroutine that polls the screen.
package termview
