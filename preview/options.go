// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// MinGridPixels is the smallest on-screen distance between grid lines.
const MinGridPixels = 8.0

// Options controls preview rendering.
type Options struct {
	Background gg.RGBA
	GridColor  gg.RGBA
	AxisColor  gg.RGBA
	// GridSpacing is the base grid spacing in canvas units. Zero
	// disables the grid.
	GridSpacing float64

	HUD      bool
	HUDColor gg.RGBA
	FontSize float64
	Language language.Tag
}

// Option configures Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Background:  gg.Hex("#f4f4f0"),
		GridColor:   gg.Hex("#d8d8d0"),
		AxisColor:   gg.Hex("#8a8a80"),
		GridSpacing: 50,
		HUD:         true,
		HUDColor:    gg.Hex("#303030"),
		FontSize:    14,
		Language:    language.English,
	}
}

// WithBackground sets the background color.
func WithBackground(c gg.RGBA) Option {
	return func(o *Options) { o.Background = c }
}

// WithGrid sets the base grid spacing and line color. A spacing <= 0
// disables the grid.
func WithGrid(spacing float64, c gg.RGBA) Option {
	return func(o *Options) {
		o.GridSpacing = spacing
		o.GridColor = c
	}
}

// WithoutHUD disables the zoom label.
func WithoutHUD() Option {
	return func(o *Options) { o.HUD = false }
}

// WithLanguage sets the language used to format the HUD label.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) { o.Language = tag }
}

// WithFontSize sets the HUD font size in points.
func WithFontSize(size float64) Option {
	return func(o *Options) { o.FontSize = size }
}
