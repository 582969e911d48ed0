package viewport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
)

// Engine holds the viewport state and applies actions to it.
//
// Engine is NOT safe for concurrent use. It is meant to be driven from a
// single UI or event goroutine; every call completes synchronously.
type Engine struct {
	cfg       Config
	state     State
	listeners []func(prev, next Transform)
}

// New creates an Engine at the identity transform.
// Returns an error wrapping ErrInvalidConfig if the options produce an
// unusable configuration.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, state: InitialState(cfg)}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded options).
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current interaction state.
func (e *Engine) State() State {
	return e.state
}

// Transform returns the current transform.
func (e *Engine) Transform() Transform {
	return e.state.Transform
}

// Matrix returns the current canvas-to-container matrix.
func (e *Engine) Matrix() gg.Matrix {
	return e.state.Transform.Matrix()
}

// ZoomPercentage returns the current scale as a rounded percentage.
func (e *Engine) ZoomPercentage() int {
	return e.state.Transform.ZoomPercentage()
}

// IsPanning reports whether a drag pan is in progress.
func (e *Engine) IsPanning() bool {
	return e.state.Pan.Active
}

// OnChange registers fn to be called after every dispatch that changes
// the transform. Listeners run synchronously in registration order.
func (e *Engine) OnChange(fn func(prev, next Transform)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

// Dispatch applies a to the current state and reports whether the
// transform changed.
func (e *Engine) Dispatch(a Action) bool {
	prev := e.state
	e.state = Apply(prev, e.cfg, a)
	e.logTransition(a, prev, e.state)

	if e.state.Transform == prev.Transform {
		return false
	}
	for _, fn := range e.listeners {
		fn(prev.Transform, e.state.Transform)
	}
	return true
}

func (e *Engine) logTransition(a Action, prev, next State) {
	log := Logger()
	switch a := a.(type) {
	case PanStart:
		if prev.Pan.Active {
			log.Debug("viewport: pan restarted without end", "x", a.X, "y", a.Y)
		} else {
			log.Debug("viewport: pan started", "x", a.X, "y", a.Y)
		}
	case PanEnd:
		if prev.Pan.Active {
			log.Debug("viewport: pan ended", "transform", next.Transform)
		}
	case SetZoom:
		if a.Scale != next.Transform.Scale {
			log.Debug("viewport: zoom clamped", "requested", a.Scale, "scale", next.Transform.Scale)
		}
	case WheelZoom, Wheel:
		if prev.Transform == next.Transform && log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("viewport: wheel skipped", "action", fmt.Sprintf("%T", a), "scale", next.Transform.Scale)
		}
	}
}

// ZoomIn zooms in by one step.
func (e *Engine) ZoomIn() { e.Dispatch(ZoomIn{}) }

// ZoomOut zooms out by one step.
func (e *Engine) ZoomOut() { e.Dispatch(ZoomOut{}) }

// SetZoom sets an absolute scale, clamped to the configured bounds.
func (e *Engine) SetZoom(scale float64) { e.Dispatch(SetZoom{Scale: scale}) }

// ResetTransform restores the identity transform.
func (e *Engine) ResetTransform() { e.Dispatch(Reset{}) }

// FitToView fits the view. It currently behaves like ResetTransform.
func (e *Engine) FitToView() { e.Dispatch(FitToView{}) }

// HandleWheel routes a wheel event to zoom (Ctrl or Meta held) or pan.
func (e *Engine) HandleWheel(ev WheelEvent, rect Rect) bool {
	return e.Dispatch(Wheel{Event: ev, Rect: rect})
}

// WheelZoom applies a cursor-anchored wheel zoom.
func (e *Engine) WheelZoom(ev WheelEvent, rect Rect) bool {
	return e.Dispatch(WheelZoom{Event: ev, Rect: rect})
}

// WheelPan applies a wheel pan.
func (e *Engine) WheelPan(ev WheelEvent) bool {
	return e.Dispatch(WheelPan{Event: ev})
}

// StartPan begins a drag pan at (x, y).
func (e *Engine) StartPan(x, y float64) { e.Dispatch(PanStart{X: x, Y: y}) }

// UpdatePan continues a drag pan. It has no effect without a preceding
// StartPan.
func (e *Engine) UpdatePan(x, y float64) { e.Dispatch(PanMove{X: x, Y: y}) }

// EndPan finishes a drag pan.
func (e *Engine) EndPan() { e.Dispatch(PanEnd{}) }

// ScreenToCanvas converts a screen point to canvas space using the
// current transform.
func (e *Engine) ScreenToCanvas(x, y float64, rect Rect) (float64, float64) {
	p := e.state.Transform.ScreenToCanvas(gg.Pt(x, y), rect)
	return p.X, p.Y
}

// CanvasToScreen converts a canvas point to screen space using the
// current transform.
func (e *Engine) CanvasToScreen(x, y float64, rect Rect) (float64, float64) {
	p := e.state.Transform.CanvasToScreen(gg.Pt(x, y), rect)
	return p.X, p.Y
}
