package viewport

import "github.com/gogpu/gg"

// Matrix returns the canvas-to-container transform as a gg.Matrix.
//
// The matrix applies the translation after the scale, matching the CSS
// form translate(tx, ty) scale(s):
//
//	| s  0  tx |
//	| 0  s  ty |
//
// It can be passed directly to gg.Context.SetTransform.
func (t Transform) Matrix() gg.Matrix {
	return gg.Translate(t.TranslateX, t.TranslateY).Multiply(gg.Scale(t.Scale, t.Scale))
}

// ScreenMatrix returns the canvas-to-screen transform for a container
// placed at rect.
func (t Transform) ScreenMatrix(rect Rect) gg.Matrix {
	return gg.Translate(rect.Left, rect.Top).Multiply(t.Matrix())
}

// InverseMatrix returns the container-to-canvas transform.
func (t Transform) InverseMatrix() gg.Matrix {
	return t.Matrix().Invert()
}
