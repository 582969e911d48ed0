package viewport

import (
	"math"

	"github.com/gogpu/gg"
)

// ZoomIn increases the scale by ZoomStep, clamped to the zoom bounds.
// The translation is left untouched.
func (c Config) ZoomIn(t Transform) Transform {
	t.Scale = c.clampScale(t.Scale + c.ZoomStep)
	return t
}

// ZoomOut decreases the scale by ZoomStep, clamped to the zoom bounds.
// The translation is left untouched.
func (c Config) ZoomOut(t Transform) Transform {
	t.Scale = c.clampScale(t.Scale - c.ZoomStep)
	return t
}

// SetZoom sets an absolute scale, clamped to the zoom bounds.
// A NaN scale leaves t unchanged.
func (c Config) SetZoom(t Transform, scale float64) Transform {
	if math.IsNaN(scale) {
		return t
	}
	t.Scale = c.clampScale(scale)
	return t
}

// Reset returns the identity transform. When the zoom bounds exclude 1
// the scale is clamped into them.
func (c Config) Reset() Transform {
	return Transform{Scale: c.clampScale(1)}
}

// FitToView currently returns the same transform as Reset.
// Use FitContent to fit known content bounds.
func (c Config) FitToView() Transform {
	return c.Reset()
}

// ZoomAt sets an absolute scale while keeping the canvas point under the
// screen position anchor fixed.
func (c Config) ZoomAt(t Transform, scale float64, anchor gg.Point, rect Rect) Transform {
	if math.IsNaN(scale) {
		return t
	}
	return anchorZoom(t, c.clampScale(scale), rect.local(anchor))
}

// anchorZoom rescales t to newScale so that the container-relative
// point cursor maps to the same canvas point before and after.
func anchorZoom(t Transform, newScale float64, cursor gg.Point) Transform {
	point := cursor.Sub(gg.Pt(t.TranslateX, t.TranslateY)).Div(t.Scale)
	translate := cursor.Sub(point.Mul(newScale))
	return Transform{
		Scale:      newScale,
		TranslateX: translate.X,
		TranslateY: translate.Y,
	}
}

// FitContent returns a transform that fits the canvas-space bounds
// content inside a container of the given rect, leaving padding pixels
// on every side, and centers it. The scale is clamped to the zoom
// bounds, so very large or very small content may not fit exactly.
//
// Empty content, or a container smaller than twice the padding,
// yields FitToView.
func (c Config) FitContent(content gg.Rect, rect Rect, padding float64) Transform {
	w, h := content.Width(), content.Height()
	availW := rect.Width - 2*padding
	availH := rect.Height - 2*padding
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return c.FitToView()
	}

	scale := c.clampScale(math.Min(availW/w, availH/h))
	center := content.Min.Lerp(content.Max, 0.5)
	return Transform{
		Scale:      scale,
		TranslateX: rect.Width/2 - center.X*scale,
		TranslateY: rect.Height/2 - center.Y*scale,
	}
}
