package viewport

import (
	"strings"
	"testing"
)

func TestIdentity(t *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		t.Errorf("Identity() = %v, IsIdentity() = false", id)
	}
	if (Transform{Scale: 1, TranslateX: 0.5}).IsIdentity() {
		t.Error("translated transform reported as identity")
	}
}

func TestZoomPercentage(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{1, 100},
		{0.25, 25},
		{1.25, 125},
		{1.7411011265922482, 174},
		{0.333, 33},
		{4, 400},
	}
	for _, tt := range tests {
		if got := (Transform{Scale: tt.scale}).ZoomPercentage(); got != tt.want {
			t.Errorf("ZoomPercentage(%v) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestTransformTranslate(t *testing.T) {
	got := Transform{Scale: 2, TranslateX: 1, TranslateY: 1}.Translate(3, -4)
	if got != (Transform{Scale: 2, TranslateX: 4, TranslateY: -3}) {
		t.Errorf("Translate() = %v", got)
	}
}

func TestTransformString(t *testing.T) {
	s := Transform{Scale: 1.5, TranslateX: -2, TranslateY: 3}.String()
	for _, want := range []string{"scale=1.5", "-2", "3"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
