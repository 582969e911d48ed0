// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/preview"
)

// GridSpacing is the base grid spacing in canvas units.
const GridSpacing = 10.0

// Grid runes.
const (
	runeCross      = '┼'
	runeVertical   = '│'
	runeHorizontal = '─'
	runeNode       = '█'
)

// Draw renders the canvas area and status line for the controller's
// current transform. nodes are canvas-space rectangles drawn filled.
// cursorX and cursorY are the cell under the mouse, shown in canvas
// coordinates on the status line.
func (c *Controller) Draw(screen tcell.Screen, nodes []gg.Rect, cursorX, cursorY int) {
	t := c.engine.Transform()
	rect := c.Rect()
	step := preview.GridStep(GridSpacing, t.Scale)

	screen.Clear()
	rows := c.height - 1
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < c.width; cx++ {
			r, style, ok := c.cell(t, rect, step, nodes, cx, cy)
			if ok {
				screen.SetContent(cx, cy, r, nil, style)
			}
		}
	}
	c.drawStatus(screen, t, rect, cursorX, cursorY)
	screen.Show()
}

// cell returns the rune and style of canvas cell (cx, cy).
func (c *Controller) cell(t viewport.Transform, rect viewport.Rect, step float64, nodes []gg.Rect, cx, cy int) (rune, tcell.Style, bool) {
	// Canvas-space span of the cell.
	top := t.ScreenToCanvas(gg.Pt(float64(cx), float64(cy)*c.cellAspect), rect)
	bottom := t.ScreenToCanvas(gg.Pt(float64(cx+1), float64(cy+1)*c.cellAspect), rect)
	center := top.Lerp(bottom, 0.5)

	for i, n := range nodes {
		if n.Contains(center) {
			return runeNode, tcell.StyleDefault.Foreground(nodeColor(i)), true
		}
	}

	kx, onX := crossing(top.X, bottom.X, step)
	ky, onY := crossing(top.Y, bottom.Y, step)
	switch {
	case onX && onY:
		return runeCross, tcell.StyleDefault.Foreground(lineColor(kx == 0 || ky == 0, t)), true
	case onX:
		return runeVertical, tcell.StyleDefault.Foreground(lineColor(kx == 0, t)), true
	case onY:
		return runeHorizontal, tcell.StyleDefault.Foreground(lineColor(ky == 0, t)), true
	}
	return 0, tcell.StyleDefault, false
}

// crossing reports whether a multiple of step lies in [lo, hi) and
// returns its index.
func crossing(lo, hi, step float64) (int, bool) {
	k := math.Ceil(lo / step)
	if k*step < hi {
		return int(k), true
	}
	return 0, false
}

// lineColor shades grid lines by zoom level so scale changes are
// visible as well as spacing changes.
func lineColor(axis bool, t viewport.Transform) tcell.Color {
	if axis {
		return toTcell(colorful.Hcl(40, 0.6, 0.75))
	}
	l := 0.35 + 0.1*math.Log2(t.Scale)
	return toTcell(colorful.Hcl(220, 0.15, l))
}

// nodeColor gives each node a distinct hue.
func nodeColor(i int) tcell.Color {
	return toTcell(colorful.Hcl(math.Mod(float64(i)*67, 360), 0.5, 0.65))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *Controller) drawStatus(screen tcell.Screen, t viewport.Transform, rect viewport.Rect, cursorX, cursorY int) {
	sx, sy := c.CellToScreen(cursorX, cursorY)
	p := t.ScreenToCanvas(gg.Pt(sx, sy), rect)

	mode := "idle"
	if c.engine.IsPanning() {
		mode = "panning"
	}
	line := fmt.Sprintf(" %d%%  x=%.1f y=%.1f  %s  [+/-] zoom [0] reset [q] quit",
		t.ZoomPercentage(), p.X, p.Y, mode)

	style := tcell.StyleDefault.Reverse(true)
	row := c.height - 1
	x := 0
	for _, r := range line {
		if x >= c.width {
			break
		}
		screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < c.width; x++ {
		screen.SetContent(x, row, ' ', nil, style)
	}
}

// StatusLine returns the text of the status line row of screen.
func StatusLine(screen tcell.Screen) string {
	w, h := screen.Size()
	runes := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, h-1) //nolint:staticcheck // GetContent is the correct API
		runes = append(runes, r)
	}
	return string(runes)
}
