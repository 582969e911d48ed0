// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/viewport"
)

// ErrNilContext is returned when Render is called without a context.
var ErrNilContext = errors.New("preview: nil context")

// Scene draws canvas content. Draw is called with the viewport matrix
// installed, so it uses canvas coordinates.
type Scene interface {
	Draw(dc *gg.Context)
}

// SceneFunc adapts a function to Scene.
type SceneFunc func(dc *gg.Context)

// Draw calls f(dc).
func (f SceneFunc) Draw(dc *gg.Context) { f(dc) }

// hudFont is parsed once and shared by every Render call.
var hudFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Render draws scene into dc as seen through t. A nil scene renders only
// the background, grid and HUD.
func Render(dc *gg.Context, t viewport.Transform, scene Scene, opts ...Option) error {
	if dc == nil {
		return ErrNilContext
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rect := viewport.Rect{Width: float64(dc.Width()), Height: float64(dc.Height())}

	dc.Identity()
	dc.ClearWithColor(o.Background)

	if o.GridSpacing > 0 {
		if err := drawGrid(dc, t, rect, o); err != nil {
			return fmt.Errorf("preview: grid: %w", err)
		}
	}

	if scene != nil {
		dc.Push()
		dc.SetTransform(t.Matrix())
		scene.Draw(dc)
		dc.Pop()
	}

	if o.HUD {
		if err := drawHUD(dc, t, o); err != nil {
			return fmt.Errorf("preview: hud: %w", err)
		}
	}
	return nil
}

// GridStep returns the grid spacing in canvas units for scale: the base
// spacing doubled until lines are at least MinGridPixels apart.
func GridStep(base, scale float64) float64 {
	if base <= 0 || scale <= 0 {
		return 0
	}
	step := base
	for step*scale < MinGridPixels {
		step *= 2
	}
	return step
}

func drawGrid(dc *gg.Context, t viewport.Transform, rect viewport.Rect, o Options) error {
	step := GridStep(o.GridSpacing, t.Scale)
	visible := t.VisibleRect(rect)

	dc.SetLineWidth(1)
	for k := math.Ceil(visible.Min.X / step); k*step <= visible.Max.X; k++ {
		setLineColor(dc, k == 0, o)
		x := t.CanvasToScreen(gg.Pt(k*step, 0), rect).X
		dc.DrawLine(x, 0, x, rect.Height)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	for k := math.Ceil(visible.Min.Y / step); k*step <= visible.Max.Y; k++ {
		setLineColor(dc, k == 0, o)
		y := t.CanvasToScreen(gg.Pt(0, k*step), rect).Y
		dc.DrawLine(0, y, rect.Width, y)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func setLineColor(dc *gg.Context, axis bool, o Options) {
	c := o.GridColor
	if axis {
		c = o.AxisColor
	}
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func drawHUD(dc *gg.Context, t viewport.Transform, o Options) error {
	src, err := hudFont()
	if err != nil {
		return err
	}
	dc.SetFont(src.Face(o.FontSize))
	dc.SetRGBA(o.HUDColor.R, o.HUDColor.G, o.HUDColor.B, o.HUDColor.A)
	dc.DrawString(Label(t, o.Language), 8, 8+o.FontSize)
	return nil
}

// Label returns the HUD text for t, e.g. "125%", with digits grouped
// for tag.
func Label(t viewport.Transform, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%d%%", t.ZoomPercentage())
}
