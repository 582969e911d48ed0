package viewport

import (
	"math"

	"github.com/gogpu/gg"
)

// DeltaMode classifies the units of a wheel delta.
type DeltaMode int

// Wheel delta modes, numbered as in DOM WheelEvent.deltaMode.
const (
	DeltaPixel DeltaMode = 0
	DeltaLine  DeltaMode = 1
	DeltaPage  DeltaMode = 2
)

// Pixel multipliers for line and page deltas.
const (
	lineHeight = 16.0
	pageHeight = 100.0
)

// minScaleChange is the smallest scale change a wheel zoom applies.
// Smaller changes, typically at a clamp boundary, are skipped.
const minScaleChange = 0.001

// Multiplier returns the factor converting a delta in mode m to pixels.
// Unknown modes are treated as pixels.
func (m DeltaMode) Multiplier() float64 {
	switch m {
	case DeltaLine:
		return lineHeight
	case DeltaPage:
		return pageHeight
	default:
		return 1
	}
}

// String implements fmt.Stringer.
func (m DeltaMode) String() string {
	switch m {
	case DeltaPixel:
		return "pixel"
	case DeltaLine:
		return "line"
	case DeltaPage:
		return "page"
	default:
		return "unknown"
	}
}

// Modifiers is a bit set of keyboard modifiers held during an event.
type Modifiers uint8

// Modifier bits.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether all bits of m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// WheelEvent is a wheel or trackpad scroll event.
//
// ClientX and ClientY are screen coordinates in the same space as the
// container Rect.
type WheelEvent struct {
	DeltaX    float64
	DeltaY    float64
	DeltaMode DeltaMode
	ClientX   float64
	ClientY   float64
	Modifiers Modifiers
}

// Client returns the cursor position of the event.
func (e WheelEvent) Client() gg.Point {
	return gg.Pt(e.ClientX, e.ClientY)
}

// PixelDelta returns the event deltas converted to pixels.
func (e WheelEvent) PixelDelta() (dx, dy float64) {
	m := e.DeltaMode.Multiplier()
	return e.DeltaX * m, e.DeltaY * m
}

// IsZoomGesture reports whether the event requests zoom rather than
// pan. Browsers and most toolkits report trackpad pinch as a wheel
// event with Ctrl held.
func (e WheelEvent) IsZoomGesture() bool {
	return e.Modifiers&(ModCtrl|ModMeta) != 0
}

// WheelZoom zooms continuously around the cursor.
//
// The zoom factor is exponential in the pixel-normalized DeltaY, so equal
// wheel motion gives the same perceived zoom rate at any scale. Negative
// DeltaY zooms in. The canvas point under the cursor stays under the
// cursor.
//
// The second result is false when the scale change is below the skip
// threshold and t is returned unchanged.
func (c Config) WheelZoom(t Transform, ev WheelEvent, rect Rect) (Transform, bool) {
	_, dy := ev.PixelDelta()
	factor := math.Exp2(-dy * c.ZoomSensitivity)
	newScale := c.clampScale(t.Scale * factor)
	if math.IsNaN(newScale) || math.Abs(newScale-t.Scale) < minScaleChange {
		return t, false
	}
	return anchorZoom(t, newScale, rect.local(ev.Client())), true
}

// WheelPan translates the view by the pixel-normalized wheel deltas
// scaled by PanSensitivity. Content moves opposite to the gesture.
func (c Config) WheelPan(t Transform, ev WheelEvent) Transform {
	dx, dy := ev.PixelDelta()
	return t.Translate(-dx*c.PanSensitivity, -dy*c.PanSensitivity)
}

// Wheel routes ev to WheelZoom when it is a zoom gesture and to WheelPan
// otherwise. The second result reports whether t changed.
func (c Config) Wheel(t Transform, ev WheelEvent, rect Rect) (Transform, bool) {
	if ev.IsZoomGesture() {
		return c.WheelZoom(t, ev, rect)
	}
	next := c.WheelPan(t, ev)
	return next, next != t
}
