package viz

import (
	"math"
	"testing"
)

func colorNear(a, b RGBA) bool {
	const eps = 1e-2
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   RGBA
		wantOK bool
	}{
		{"short hex", "#f00", RGBA{1, 0, 0, 1}, true},
		{"short hex alpha", "#f008", RGBA{1, 0, 0, 0.533}, true},
		{"long hex", "#4e79a7", RGBA{0.306, 0.475, 0.655, 1}, true},
		{"long hex alpha", "#4e79a780", RGBA{0.306, 0.475, 0.655, 0.502}, true},
		{"named", "rebeccapurple", RGBA{0.4, 0.2, 0.6, 1}, true},
		{"named white", "white", RGBA{1, 1, 1, 1}, true},
		{"unknown name", "notacolor", RGBA{0, 0, 0, 1}, false},
		{"bad hex length", "#12345", RGBA{0, 0, 0, 1}, false},
		{"bad hex digit", "#zzz", RGBA{0, 0, 0, 1}, false},
		{"empty", "", RGBA{0, 0, 0, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAHexRoundTrip(t *testing.T) {
	c, ok := ParseColor("#4e79a7")
	if !ok {
		t.Fatal("parse failed")
	}
	if got := c.Hex(); got != "#4e79a7" {
		t.Errorf("Hex() = %q, want #4e79a7", got)
	}
	if got := c.WithAlpha(0.5).Hex(); got != "#4e79a77f" {
		t.Errorf("Hex() with alpha = %q, want #4e79a77f", got)
	}
}

func TestFadeColor(t *testing.T) {
	// A parseable color picks up the scaled alpha.
	if got := fadeColor("#ff0000", 0.5); got != "#ff00007f" {
		t.Errorf("fadeColor(#ff0000, 0.5) = %q", got)
	}
	// Unparseable strings pass through so external palettes survive.
	if got := fadeColor("var(--accent)", 0.5); got != "var(--accent)" {
		t.Errorf("fadeColor(var) = %q, want passthrough", got)
	}
	if got := fadeColor("currentColor", 0.3); got != "currentColor" {
		t.Errorf("fadeColor(currentColor) = %q, want passthrough", got)
	}
}
