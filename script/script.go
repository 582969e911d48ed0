// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script parses JSON gesture scripts into viewport actions.
//
// A script is either a JSON array of steps or an object with a "steps"
// array and an optional container "rect":
//
//	{
//	  "rect": {"left": 0, "top": 0, "width": 800, "height": 600},
//	  "steps": [
//	    {"op": "wheel", "dy": -100, "x": 400, "y": 300, "ctrl": true},
//	    {"op": "pan_start", "x": 10, "y": 10},
//	    {"op": "pan_move", "x": 60, "y": 40},
//	    {"op": "pan_end"},
//	    {"op": "zoom_in"}
//	  ]
//	}
//
// Supported ops: zoom_in, zoom_out, set_zoom (scale), zoom_to (scale, x,
// y), reset, fit, fit_content (min_x, min_y, max_x, max_y, padding),
// wheel, wheel_zoom and wheel_pan (dx, dy, mode, x, y, ctrl, meta, shift,
// alt), pan_start, pan_move (x, y) and pan_end. Wheel operands and
// padding are optional; every other listed operand must be a number.
package script

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/tidwall/gjson"

	"github.com/gogpu/viewport"
)

// ErrInvalidJSON is returned for input that is not valid JSON.
var ErrInvalidJSON = errors.New("script: invalid JSON")

// StepError reports a step that could not be converted.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("script: step %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("script: step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Step errors.
var (
	ErrMissingOp = errors.New("missing op")
	ErrUnknownOp = errors.New("unknown op")
	// ErrMissingField is returned when a required operand is absent or
	// an operand is not a number.
	ErrMissingField = errors.New("missing or non-numeric field")
	ErrNoSteps   = errors.New("script: no steps array")
)

// Script is a parsed gesture script.
type Script struct {
	Rect    viewport.Rect
	Actions []viewport.Action
}

// Parse parses a JSON gesture script.
func Parse(data []byte) (*Script, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)

	var s Script
	steps := doc
	if doc.IsObject() {
		s.Rect = parseRect(doc.Get("rect"))
		steps = doc.Get("steps")
	}
	if !steps.IsArray() {
		return nil, ErrNoSteps
	}

	for i, step := range steps.Array() {
		a, err := parseStep(i, step, s.Rect)
		if err != nil {
			return nil, err
		}
		s.Actions = append(s.Actions, a)
	}
	return &s, nil
}

// Run parses data and dispatches every action to e. It returns the
// number of dispatches that changed the transform.
func Run(e *viewport.Engine, data []byte) (int, error) {
	s, err := Parse(data)
	if err != nil {
		viewport.Logger().Warn("script: rejected", "err", err)
		return 0, err
	}
	changed := 0
	for _, a := range s.Actions {
		if e.Dispatch(a) {
			changed++
		}
	}
	viewport.Logger().Debug("script: replayed", "steps", len(s.Actions), "changed", changed)
	return changed, nil
}

func parseRect(r gjson.Result) viewport.Rect {
	return viewport.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// fields reads numeric operands of a step and keeps the first error.
type fields struct {
	step gjson.Result
	err  error
}

// need returns a required operand.
func (f *fields) need(key string) float64 {
	v := f.step.Get(key)
	if v.Type != gjson.Number {
		if f.err == nil {
			f.err = fmt.Errorf("%w %q", ErrMissingField, key)
		}
		return 0
	}
	return v.Float()
}

// opt returns an optional operand, 0 when absent.
func (f *fields) opt(key string) float64 {
	if !f.step.Get(key).Exists() {
		return 0
	}
	return f.need(key)
}

func parseStep(index int, step gjson.Result, rect viewport.Rect) (viewport.Action, error) {
	op := step.Get("op")
	if !op.Exists() || op.String() == "" {
		return nil, &StepError{Index: index, Err: ErrMissingOp}
	}
	name := op.String()

	if r := step.Get("rect"); r.Exists() {
		rect = parseRect(r)
	}
	f := &fields{step: step}

	var a viewport.Action
	switch name {
	case "zoom_in":
		a = viewport.ZoomIn{}
	case "zoom_out":
		a = viewport.ZoomOut{}
	case "set_zoom":
		a = viewport.SetZoom{Scale: f.need("scale")}
	case "zoom_to":
		a = viewport.ZoomTo{Scale: f.need("scale"), Anchor: gg.Pt(f.need("x"), f.need("y")), Rect: rect}
	case "reset":
		a = viewport.Reset{}
	case "fit":
		a = viewport.FitToView{}
	case "fit_content":
		content := gg.NewRect(
			gg.Pt(f.need("min_x"), f.need("min_y")),
			gg.Pt(f.need("max_x"), f.need("max_y")),
		)
		a = viewport.FitContent{Content: content, Rect: rect, Padding: f.opt("padding")}
	case "wheel":
		a = viewport.Wheel{Event: parseWheel(f), Rect: rect}
	case "wheel_zoom":
		a = viewport.WheelZoom{Event: parseWheel(f), Rect: rect}
	case "wheel_pan":
		a = viewport.WheelPan{Event: parseWheel(f)}
	case "pan_start":
		a = viewport.PanStart{X: f.need("x"), Y: f.need("y")}
	case "pan_move":
		a = viewport.PanMove{X: f.need("x"), Y: f.need("y")}
	case "pan_end":
		a = viewport.PanEnd{}
	default:
		return nil, &StepError{Index: index, Op: name, Err: ErrUnknownOp}
	}
	if f.err != nil {
		return nil, &StepError{Index: index, Op: name, Err: f.err}
	}
	return a, nil
}

// parseWheel reads a wheel event. Every operand is optional.
func parseWheel(f *fields) viewport.WheelEvent {
	var mods viewport.Modifiers
	for name, bit := range map[string]viewport.Modifiers{
		"shift": viewport.ModShift,
		"ctrl":  viewport.ModCtrl,
		"alt":   viewport.ModAlt,
		"meta":  viewport.ModMeta,
	} {
		if f.step.Get(name).Bool() {
			mods |= bit
		}
	}
	return viewport.WheelEvent{
		DeltaX:    f.opt("dx"),
		DeltaY:    f.opt("dy"),
		DeltaMode: viewport.DeltaMode(int(f.opt("mode"))),
		ClientX:   f.opt("x"),
		ClientY:   f.opt("y"),
		Modifiers: mods,
	}
}
