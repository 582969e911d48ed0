// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads viewport configuration from TOML files.
//
// The file format is a single [viewport] table; every key is optional
// and falls back to the viewport defaults:
//
//	[viewport]
//	min_zoom = 0.25
//	max_zoom = 4.0
//	zoom_step = 0.25
//	zoom_sensitivity = 0.008
//	pan_sensitivity = 1.0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/viewport"
)

// ParseError reports a file that could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// File is the decoded form of a configuration file. Pointer fields are
// nil when the key is absent.
type File struct {
	Viewport Section `toml:"viewport"`
}

// Section is the [viewport] table.
type Section struct {
	MinZoom         *float64 `toml:"min_zoom"`
	MaxZoom         *float64 `toml:"max_zoom"`
	ZoomStep        *float64 `toml:"zoom_step"`
	ZoomSensitivity *float64 `toml:"zoom_sensitivity"`
	PanSensitivity  *float64 `toml:"pan_sensitivity"`
}

// Options converts the keys present in s to viewport options.
func (s Section) Options() []viewport.Option {
	var opts []viewport.Option
	if s.MinZoom != nil {
		opts = append(opts, viewport.WithMinZoom(*s.MinZoom))
	}
	if s.MaxZoom != nil {
		opts = append(opts, viewport.WithMaxZoom(*s.MaxZoom))
	}
	if s.ZoomStep != nil {
		opts = append(opts, viewport.WithZoomStep(*s.ZoomStep))
	}
	if s.ZoomSensitivity != nil {
		opts = append(opts, viewport.WithZoomSensitivity(*s.ZoomSensitivity))
	}
	if s.PanSensitivity != nil {
		opts = append(opts, viewport.WithPanSensitivity(*s.PanSensitivity))
	}
	return opts
}

// Parse decodes TOML data. source names the data in errors.
// Unknown keys are rejected so typos do not silently fall back to
// defaults.
func Parse(source string, data []byte) (File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return f, nil
}

// LoadFile reads and validates the configuration at path.
// A missing file yields the default configuration.
func LoadFile(path string) (viewport.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			viewport.Logger().Debug("config: file not found, using defaults", "path", path)
			return viewport.DefaultConfig(), nil
		}
		return viewport.Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return load(path, data)
}

// LoadReader reads and validates a configuration from r.
func LoadReader(r io.Reader) (viewport.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return viewport.Config{}, fmt.Errorf("config: reading: %w", err)
	}
	return load("<reader>", data)
}

func load(source string, data []byte) (viewport.Config, error) {
	f, err := Parse(source, data)
	if err != nil {
		return viewport.Config{}, err
	}
	cfg, err := viewport.NewConfig(f.Viewport.Options()...)
	if err != nil {
		return viewport.Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Encode writes cfg as a TOML document in the format read by LoadFile.
func Encode(w io.Writer, cfg viewport.Config) error {
	f := File{Viewport: Section{
		MinZoom:         &cfg.MinZoom,
		MaxZoom:         &cfg.MaxZoom,
		ZoomStep:        &cfg.ZoomStep,
		ZoomSensitivity: &cfg.ZoomSensitivity,
		PanSensitivity:  &cfg.PanSensitivity,
	}}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
