// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/viewport"
)

// DefaultCellAspect is the height/width ratio of a terminal cell.
const DefaultCellAspect = 2.0

// Controller translates tcell events into viewport actions.
type Controller struct {
	engine     *viewport.Engine
	cellAspect float64
	// buttonDown tracks Button1 so press and release can be told apart
	// from drag motion; tcell reports all three as EventMouse.
	buttonDown bool
	width      int
	height     int
}

// NewController creates a Controller for e and a screen of the given
// size in cells.
func NewController(e *viewport.Engine, width, height int) *Controller {
	return &Controller{
		engine:     e,
		cellAspect: DefaultCellAspect,
		width:      width,
		height:     height,
	}
}

// Engine returns the controlled engine.
func (c *Controller) Engine() *viewport.Engine {
	return c.engine
}

// Rect returns the container rect of the canvas area: every row except
// the status line.
func (c *Controller) Rect() viewport.Rect {
	rows := c.height - 1
	if rows < 0 {
		rows = 0
	}
	return viewport.Rect{Width: float64(c.width), Height: float64(rows) * c.cellAspect}
}

// CellToScreen returns the screen point at the center of cell (cx, cy).
func (c *Controller) CellToScreen(cx, cy int) (float64, float64) {
	return float64(cx) + 0.5, (float64(cy) + 0.5) * c.cellAspect
}

// Actions returns the viewport actions for ev. Resize events update the
// canvas size and produce no actions.
func (c *Controller) Actions(ev tcell.Event) []viewport.Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return c.mouseActions(ev)
	case *tcell.EventKey:
		return c.keyActions(ev)
	case *tcell.EventFocus:
		if !ev.Focused && c.buttonDown {
			c.buttonDown = false
			viewport.Logger().Debug("termview: focus lost during drag, ending pan")
			return []viewport.Action{viewport.PanEnd{}}
		}
	case *tcell.EventResize:
		c.width, c.height = ev.Size()
	}
	return nil
}

// Handle applies ev to the engine. It reports whether the transform
// changed and whether ev asks to quit.
func (c *Controller) Handle(ev tcell.Event) (changed, quit bool) {
	if IsQuit(ev) {
		return false, true
	}
	for _, a := range c.Actions(ev) {
		if c.engine.Dispatch(a) {
			changed = true
		}
	}
	return changed, false
}

// IsQuit reports whether ev is a quit key.
func IsQuit(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch k.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return k.Rune() == 'q'
	}
	return false
}

func (c *Controller) mouseActions(ev *tcell.EventMouse) []viewport.Action {
	cx, cy := ev.Position()
	x, y := c.CellToScreen(cx, cy)
	buttons := ev.Buttons()

	if wheel, ok := wheelEvent(buttons, convertMod(ev.Modifiers()), x, y); ok {
		return []viewport.Action{viewport.Wheel{Event: wheel, Rect: c.Rect()}}
	}

	pressed := buttons&tcell.Button1 != 0
	switch {
	case pressed && !c.buttonDown:
		c.buttonDown = true
		return []viewport.Action{viewport.PanStart{X: x, Y: y}}
	case pressed:
		return []viewport.Action{viewport.PanMove{X: x, Y: y}}
	case c.buttonDown:
		c.buttonDown = false
		return []viewport.Action{viewport.PanMove{X: x, Y: y}, viewport.PanEnd{}}
	}
	return nil
}

// wheelEvent converts tcell wheel buttons to a line-mode wheel event of
// one notch.
func wheelEvent(b tcell.ButtonMask, mods viewport.Modifiers, x, y float64) (viewport.WheelEvent, bool) {
	ev := viewport.WheelEvent{DeltaMode: viewport.DeltaLine, ClientX: x, ClientY: y, Modifiers: mods}
	switch {
	case b&tcell.WheelUp != 0:
		ev.DeltaY = -1
	case b&tcell.WheelDown != 0:
		ev.DeltaY = 1
	case b&tcell.WheelLeft != 0:
		ev.DeltaX = -1
	case b&tcell.WheelRight != 0:
		ev.DeltaX = 1
	default:
		return viewport.WheelEvent{}, false
	}
	return ev, true
}

func (c *Controller) keyActions(ev *tcell.EventKey) []viewport.Action {
	pan := func(dx, dy float64) []viewport.Action {
		return []viewport.Action{viewport.WheelPan{Event: viewport.WheelEvent{
			DeltaX: dx, DeltaY: dy, DeltaMode: viewport.DeltaLine,
		}}}
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return pan(0, -1)
	case tcell.KeyDown:
		return pan(0, 1)
	case tcell.KeyLeft:
		return pan(-1, 0)
	case tcell.KeyRight:
		return pan(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=':
			return []viewport.Action{viewport.ZoomIn{}}
		case '-':
			return []viewport.Action{viewport.ZoomOut{}}
		case '0':
			return []viewport.Action{viewport.Reset{}}
		case 'f':
			return []viewport.Action{viewport.FitToView{}}
		}
	}
	viewport.Logger().Debug("termview: unbound key", "key", ev.Name())
	return nil
}

// convertMod converts a tcell modifier mask to viewport modifiers.
func convertMod(m tcell.ModMask) viewport.Modifiers {
	var result viewport.Modifiers
	if m&tcell.ModShift != 0 {
		result |= viewport.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= viewport.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= viewport.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= viewport.ModMeta
	}
	return result
}
