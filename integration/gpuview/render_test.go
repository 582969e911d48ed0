// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewport"
)

// mockTexture implements gpucontext.Texture and gpucontext.TextureUpdater.
type mockTexture struct {
	width         int
	height        int
	data          []byte
	destroyed     bool
	updated       int
	premultiplied bool
	failUpdate    bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) error {
	if m.failUpdate {
		return errors.New("mock update failed")
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.updated++
	return nil
}

func (m *mockTexture) SetPremultiplied(v bool) { m.premultiplied = v }

func (m *mockTexture) Destroy() {
	m.destroyed = true
}

// Compile-time checks.
var (
	_ gpucontext.Texture        = (*mockTexture)(nil)
	_ gpucontext.TextureUpdater = (*mockTexture)(nil)
)

// mockRenderer implements gpucontext.TextureCreator.
type mockRenderer struct {
	textures  []*mockTexture
	failNext  bool
	returnNil bool
}

func (m *mockRenderer) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	if m.returnNil {
		return nil, nil
	}
	tex := &mockTexture{
		width:  width,
		height: height,
		data:   make([]byte, len(data)),
	}
	copy(tex.data, data)
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawContext implements gpucontext.TextureDrawer.
type mockDrawContext struct {
	renderer     *mockRenderer
	drawnTexture gpucontext.Texture
	drawnX       float32
	drawnY       float32
	drawCount    int
}

func (m *mockDrawContext) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawnTexture = tex
	m.drawnX = x
	m.drawnY = y
	m.drawCount++
	return nil
}

func (m *mockDrawContext) TextureCreator() gpucontext.TextureCreator {
	if m.renderer == nil {
		return nil
	}
	return m.renderer
}

var _ gpucontext.TextureDrawer = (*mockDrawContext)(nil)

func TestRenderToCreatesTexture(t *testing.T) {
	v := newView(t)
	renderer := &mockRenderer{}
	dc := &mockDrawContext{renderer: renderer}

	if err := v.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if len(renderer.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(renderer.textures))
	}
	tex := renderer.textures[0]
	if tex.width != 64 || tex.height != 48 || len(tex.data) != 64*48*4 {
		t.Errorf("texture = %dx%d with %d bytes, want 64x48", tex.width, tex.height, len(tex.data))
	}
	if !tex.premultiplied {
		t.Error("texture not marked premultiplied")
	}
	if dc.drawnTexture != tex || dc.drawnX != 0 || dc.drawnY != 0 {
		t.Errorf("drew %v at (%v, %v), want the created texture at origin", dc.drawnTexture, dc.drawnX, dc.drawnY)
	}
	if v.Texture() != tex {
		t.Error("Texture() is not the created texture")
	}

	// No transform change: the texture is drawn again without an upload.
	if err := v.RenderTo(dc); err != nil {
		t.Fatalf("second RenderTo() error = %v", err)
	}
	if len(renderer.textures) != 1 || tex.updated != 0 {
		t.Errorf("second frame created %d textures, %d uploads; want reuse", len(renderer.textures), tex.updated)
	}
	if dc.drawCount != 2 || v.Frames() != 1 {
		t.Errorf("drawCount = %d, Frames() = %d; want 2 and 1", dc.drawCount, v.Frames())
	}
}

func TestRenderToUpdatesAfterZoom(t *testing.T) {
	v := newView(t)
	renderer := &mockRenderer{}
	dc := &mockDrawContext{renderer: renderer}

	if err := v.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if !v.Wheel(viewport.WheelEvent{DeltaY: -100, ClientX: 32, ClientY: 24, Modifiers: viewport.ModCtrl}) {
		t.Fatal("Wheel() = false, want true")
	}
	if err := v.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() after zoom error = %v", err)
	}

	if len(renderer.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(renderer.textures))
	}
	if got := renderer.textures[0].updated; got != 1 {
		t.Errorf("UpdateData calls = %d, want 1", got)
	}
	if v.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", v.Frames())
	}
}

func TestRenderToAfterResize(t *testing.T) {
	v := newView(t)
	renderer := &mockRenderer{}
	dc := &mockDrawContext{renderer: renderer}

	if err := v.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if err := v.Resize(32, 24); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if err := v.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() after resize error = %v", err)
	}

	if len(renderer.textures) != 2 {
		t.Fatalf("created %d textures, want 2", len(renderer.textures))
	}
	old, cur := renderer.textures[0], renderer.textures[1]
	if !old.destroyed {
		t.Error("old texture not destroyed after resize")
	}
	if cur.destroyed {
		t.Error("new texture destroyed")
	}
	if cur.width != 32 || cur.height != 24 {
		t.Errorf("new texture = %dx%d, want 32x24", cur.width, cur.height)
	}
	if dc.drawnTexture != cur {
		t.Error("RenderTo() did not draw the new texture")
	}
}

func TestRenderToErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, v *View, dc *mockDrawContext)
		wantErr error
		wantMsg string
	}{
		{
			name:    "nil creator",
			setup:   func(_ *testing.T, _ *View, dc *mockDrawContext) { dc.renderer = nil },
			wantErr: ErrInvalidRenderer,
		},
		{
			name:    "creator fails",
			setup:   func(_ *testing.T, _ *View, dc *mockDrawContext) { dc.renderer.failNext = true },
			wantMsg: "NewTextureFromRGBA failed",
		},
		{
			name:    "creator returns no texture",
			setup:   func(_ *testing.T, _ *View, dc *mockDrawContext) { dc.renderer.returnNil = true },
			wantErr: ErrInvalidDrawContext,
		},
		{
			name: "update fails",
			setup: func(t *testing.T, v *View, dc *mockDrawContext) {
				if err := v.RenderTo(dc); err != nil {
					t.Fatalf("RenderTo() error = %v", err)
				}
				dc.renderer.textures[0].failUpdate = true
				v.Invalidate()
			},
			wantMsg: "texture update failed",
		},
		{
			name:    "closed",
			setup:   func(_ *testing.T, v *View, _ *mockDrawContext) { _ = v.Close() },
			wantErr: ErrViewClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newView(t)
			dc := &mockDrawContext{renderer: &mockRenderer{}}
			tt.setup(t, v, dc)
			drawn := dc.drawCount

			err := v.RenderTo(dc)
			if err == nil {
				t.Fatal("RenderTo() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("RenderTo() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("RenderTo() error = %q, want it to contain %q", err, tt.wantMsg)
			}
			if dc.drawCount != drawn {
				t.Error("RenderTo() drew a texture despite the error")
			}
		})
	}
}

func TestCloseDestroysTextures(t *testing.T) {
	t.Run("current", func(t *testing.T) {
		v := newView(t)
		renderer := &mockRenderer{}
		if err := v.RenderTo(&mockDrawContext{renderer: renderer}); err != nil {
			t.Fatalf("RenderTo() error = %v", err)
		}
		_ = v.Close()
		if !renderer.textures[0].destroyed {
			t.Error("Close() did not destroy the current texture")
		}
		if v.Texture() != nil {
			t.Error("Texture() after Close should be nil")
		}
	})

	t.Run("replaced by resize", func(t *testing.T) {
		v := newView(t)
		renderer := &mockRenderer{}
		if err := v.RenderTo(&mockDrawContext{renderer: renderer}); err != nil {
			t.Fatalf("RenderTo() error = %v", err)
		}
		if err := v.Resize(16, 16); err != nil {
			t.Fatalf("Resize() error = %v", err)
		}
		// Flush stages the new size; the old texture waits for RenderTo.
		if _, err := v.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
		if renderer.textures[0].destroyed {
			t.Fatal("old texture destroyed before the GPU was idle")
		}
		_ = v.Close()
		if !renderer.textures[0].destroyed {
			t.Error("Close() did not destroy the replaced texture")
		}
	})

	t.Run("both", func(t *testing.T) {
		v := newView(t)
		cur, old := &mockTexture{}, &mockTexture{}
		v.texture, v.oldTexture = cur, old
		_ = v.Close()
		if !cur.destroyed || !old.destroyed {
			t.Errorf("destroyed current=%v old=%v, want both", cur.destroyed, old.destroyed)
		}
	})
}
