package viewport

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestPanAccumulation(t *testing.T) {
	start := Transform{Scale: 1.5, TranslateX: 7, TranslateY: -3}

	var s PanSession
	s = s.Start(gg.Pt(0, 0))
	tr, s := s.Update(start, gg.Pt(10, 5))
	tr, s = s.Update(tr, gg.Pt(20, 15))

	if dx, dy := tr.TranslateX-start.TranslateX, tr.TranslateY-start.TranslateY; dx != 20 || dy != 15 {
		t.Errorf("cumulative delta = (%v, %v), want (20, 15)", dx, dy)
	}
	if tr.Scale != start.Scale {
		t.Errorf("pan changed scale to %v", tr.Scale)
	}
	if s.Anchor != gg.Pt(20, 15) {
		t.Errorf("Anchor = %v, want (20, 15)", s.Anchor)
	}
}

func TestPanIdleNoOp(t *testing.T) {
	start := Transform{Scale: 2, TranslateX: 1, TranslateY: 2}
	var s PanSession

	tr, next := s.Update(start, gg.Pt(50, 60))
	if tr != start {
		t.Errorf("Update() while idle = %v, want %v", tr, start)
	}
	if next != s {
		t.Errorf("Update() while idle changed session to %+v", next)
	}
}

func TestPanEndClearsSession(t *testing.T) {
	s := PanSession{}.Start(gg.Pt(4, 5))
	if !s.Active || s.Anchor != gg.Pt(4, 5) {
		t.Fatalf("Start() = %+v", s)
	}
	s = s.End()
	if s != (PanSession{}) {
		t.Errorf("End() = %+v, want zero session", s)
	}

	tr, _ := s.Update(Identity(), gg.Pt(100, 100))
	if tr != Identity() {
		t.Errorf("Update() after End() = %v, want identity", tr)
	}
}

func TestPanRestartReanchors(t *testing.T) {
	s := PanSession{}.Start(gg.Pt(0, 0))
	s = s.Start(gg.Pt(100, 100))
	tr, _ := s.Update(Identity(), gg.Pt(110, 95))
	if tr.TranslateX != 10 || tr.TranslateY != -5 {
		t.Errorf("Update() after restart = %v, want translate (10, -5)", tr)
	}
}
