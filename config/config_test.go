// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/viewport"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewport.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[viewport]
max_zoom = 8.0
zoom_step = 0.5
pan_sensitivity = -1.0
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want := viewport.DefaultConfig()
	want.MaxZoom = 8
	want.ZoomStep = 0.5
	want.PanSensitivity = -1
	if cfg != want {
		t.Errorf("LoadFile() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg != viewport.DefaultConfig() {
		t.Errorf("LoadFile(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadFileParseError(t *testing.T) {
	path := writeFile(t, "[viewport\nmax_zoom = ")
	_, err := LoadFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("LoadFile() error = %v, want *ParseError", err)
	}
	if pe.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
	}
	if pe.Unwrap() == nil {
		t.Error("ParseError.Unwrap() = nil")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := LoadReader(strings.NewReader("[viewport]\nmax_zom = 3.0\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("LoadReader() error = %v, want *ParseError", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := LoadReader(strings.NewReader("[viewport]\nmin_zoom = 5.0\nmax_zoom = 2.0\n"))
	if !errors.Is(err, viewport.ErrInvalidConfig) {
		t.Errorf("LoadReader() error = %v, want ErrInvalidConfig", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg, err := viewport.NewConfig(viewport.WithMinZoom(0.1), viewport.WithZoomSensitivity(0.02))
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "min_zoom") {
		t.Errorf("Encode() output missing min_zoom:\n%s", buf.String())
	}
	got, err := LoadReader(&buf)
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
