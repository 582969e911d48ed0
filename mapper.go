package viewport

import "github.com/gogpu/gg"

// Rect is the on-screen bounding box the canvas is rendered into.
//
// The engine does not validate rects. A zero-sized rect still produces
// finite coordinates as long as the scale is positive; callers are
// responsible for passing the real container bounds.
type Rect struct {
	Left, Top, Width, Height float64
}

// Origin returns the top-left corner of the rect.
func (r Rect) Origin() gg.Point {
	return gg.Pt(r.Left, r.Top)
}

// Center returns the center of the rect in screen coordinates.
func (r Rect) Center() gg.Point {
	return gg.Pt(r.Left+r.Width/2, r.Top+r.Height/2)
}

// Contains reports whether the screen point p lies inside the rect.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.Left && p.X <= r.Left+r.Width &&
		p.Y >= r.Top && p.Y <= r.Top+r.Height
}

// local converts a screen point to container-relative coordinates.
func (r Rect) local(p gg.Point) gg.Point {
	return p.Sub(r.Origin())
}

// ScreenToCanvas converts a screen point to canvas space.
func (t Transform) ScreenToCanvas(p gg.Point, rect Rect) gg.Point {
	return gg.Point{
		X: (p.X - rect.Left - t.TranslateX) / t.Scale,
		Y: (p.Y - rect.Top - t.TranslateY) / t.Scale,
	}
}

// CanvasToScreen converts a canvas point to screen space.
// It is the exact inverse of ScreenToCanvas for the same t and rect.
func (t Transform) CanvasToScreen(p gg.Point, rect Rect) gg.Point {
	return gg.Point{
		X: p.X*t.Scale + t.TranslateX + rect.Left,
		Y: p.Y*t.Scale + t.TranslateY + rect.Top,
	}
}

// VisibleRect returns the region of canvas space currently visible in
// a container of the given rect.
func (t Transform) VisibleRect(rect Rect) gg.Rect {
	topLeft := t.ScreenToCanvas(rect.Origin(), rect)
	bottomRight := t.ScreenToCanvas(gg.Pt(rect.Left+rect.Width, rect.Top+rect.Height), rect)
	return gg.NewRect(topLeft, bottomRight)
}
