package viewport

import "github.com/gogpu/gg"

// PanSession is the state of a drag-pan gesture.
//
// The zero value is Idle. Start moves to Panning, Update applies pointer
// motion while Panning, and End returns to Idle. A session never times
// out: the embedding UI must call End on pointer-up, pointer-leave and
// pointer-cancel alike.
type PanSession struct {
	Active bool
	// Anchor is the last pointer position seen by the session.
	Anchor gg.Point
}

// Start begins a session anchored at p. Starting an active session
// re-anchors it.
func (s PanSession) Start(p gg.Point) PanSession {
	return PanSession{Active: true, Anchor: p}
}

// Update translates t by the pointer motion since the last anchor and
// moves the anchor to p. Motion therefore accumulates incrementally:
// each call contributes only its own delta.
//
// Without an active session, t and s are returned unchanged.
func (s PanSession) Update(t Transform, p gg.Point) (Transform, PanSession) {
	if !s.Active {
		return t, s
	}
	delta := p.Sub(s.Anchor)
	s.Anchor = p
	return t.Translate(delta.X, delta.Y), s
}

// End finishes the session.
func (s PanSession) End() PanSession {
	return PanSession{}
}
