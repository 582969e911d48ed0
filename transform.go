package viewport

import (
	"fmt"
	"math"
)

// Transform is the viewport state: a uniform scale followed by a
// translation, both expressed in container pixels.
//
// A canvas point p is shown at container position p*Scale + (TranslateX, TranslateY).
// Transform is a value type; every operation returns a new Transform.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity returns the identity transform {1, 0, 0}.
func Identity() Transform {
	return Transform{Scale: 1}
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t.Scale == 1 && t.TranslateX == 0 && t.TranslateY == 0
}

// ZoomPercentage returns the scale as a rounded percentage (1.25 -> 125).
func (t Transform) ZoomPercentage() int {
	return int(math.Round(t.Scale * 100))
}

// Translate returns t shifted by (dx, dy) container pixels.
func (t Transform) Translate(dx, dy float64) Transform {
	t.TranslateX += dx
	t.TranslateY += dy
	return t
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("scale=%.4g translate=(%.4g, %.4g)", t.Scale, t.TranslateX, t.TranslateY)
}
