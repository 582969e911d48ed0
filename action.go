package viewport

import "github.com/gogpu/gg"

// State is the complete interaction state of a viewport: the transform
// and the drag-pan session.
type State struct {
	Transform Transform
	Pan       PanSession
}

// InitialState returns the state an engine starts in for cfg.
func InitialState(cfg Config) State {
	return State{Transform: cfg.Reset()}
}

// Action is an input the viewport reacts to. Actions are applied with
// Apply or Engine.Dispatch.
//
// The set of actions is closed; see the types in this file.
type Action interface {
	apply(s State, cfg Config) State
}

// Apply returns the state that results from applying a to s under cfg.
// It is a pure function: s is not modified.
func Apply(s State, cfg Config, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s, cfg)
}

// ZoomIn zooms in by one ZoomStep.
type ZoomIn struct{}

// ZoomOut zooms out by one ZoomStep.
type ZoomOut struct{}

// SetZoom sets an absolute scale.
type SetZoom struct {
	Scale float64
}

// ZoomTo sets an absolute scale anchored at a screen point.
type ZoomTo struct {
	Scale  float64
	Anchor gg.Point
	Rect   Rect
}

// Reset restores the identity transform.
type Reset struct{}

// FitToView fits the view. It currently behaves like Reset.
type FitToView struct{}

// FitContent fits canvas-space bounds into the container.
type FitContent struct {
	Content gg.Rect
	Rect    Rect
	Padding float64
}

// WheelZoom is a cursor-anchored wheel zoom.
type WheelZoom struct {
	Event WheelEvent
	Rect  Rect
}

// WheelPan is a two-axis wheel pan.
type WheelPan struct {
	Event WheelEvent
}

// Wheel is a wheel event routed to zoom or pan by its modifiers.
type Wheel struct {
	Event WheelEvent
	Rect  Rect
}

// PanStart begins a drag pan at (X, Y).
type PanStart struct {
	X, Y float64
}

// PanMove continues a drag pan to (X, Y).
type PanMove struct {
	X, Y float64
}

// PanEnd finishes a drag pan.
type PanEnd struct{}

func (ZoomIn) apply(s State, cfg Config) State {
	s.Transform = cfg.ZoomIn(s.Transform)
	return s
}

func (ZoomOut) apply(s State, cfg Config) State {
	s.Transform = cfg.ZoomOut(s.Transform)
	return s
}

func (a SetZoom) apply(s State, cfg Config) State {
	s.Transform = cfg.SetZoom(s.Transform, a.Scale)
	return s
}

func (a ZoomTo) apply(s State, cfg Config) State {
	s.Transform = cfg.ZoomAt(s.Transform, a.Scale, a.Anchor, a.Rect)
	return s
}

func (Reset) apply(s State, cfg Config) State {
	s.Transform = cfg.Reset()
	return s
}

func (FitToView) apply(s State, cfg Config) State {
	s.Transform = cfg.FitToView()
	return s
}

func (a FitContent) apply(s State, cfg Config) State {
	s.Transform = cfg.FitContent(a.Content, a.Rect, a.Padding)
	return s
}

func (a WheelZoom) apply(s State, cfg Config) State {
	s.Transform, _ = cfg.WheelZoom(s.Transform, a.Event, a.Rect)
	return s
}

func (a WheelPan) apply(s State, cfg Config) State {
	s.Transform = cfg.WheelPan(s.Transform, a.Event)
	return s
}

func (a Wheel) apply(s State, cfg Config) State {
	s.Transform, _ = cfg.Wheel(s.Transform, a.Event, a.Rect)
	return s
}

func (a PanStart) apply(s State, _ Config) State {
	s.Pan = s.Pan.Start(gg.Pt(a.X, a.Y))
	return s
}

func (a PanMove) apply(s State, _ Config) State {
	s.Transform, s.Pan = s.Pan.Update(s.Transform, gg.Pt(a.X, a.Y))
	return s
}

func (PanEnd) apply(s State, _ Config) State {
	s.Pan = s.Pan.End()
	return s
}
