package viz

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Hex returns the color as a #rrggbb or #rrggbbaa string, the form the
// RenderModel carries in paint attributes.
func (c RGBA) Hex() string {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// WithAlpha returns a copy of the color with the alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ParseColor resolves a CSS-style color string: "#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA", or a named color such as "rebeccapurple" (SVG 1.1 names via
// golang.org/x/image/colornames). The second result reports whether the
// string was recognized; unrecognized input yields opaque black.
func ParseColor(s string) (RGBA, bool) {
	if s == "" {
		return RGBA{A: 1}, false
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, true
	}
	return RGBA{A: 1}, false
}

// parseHexColor parses the digits of a hex color (no leading '#').
func parseHexColor(hex string) (RGBA, bool) {
	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return RGBA{A: 1}, false
	}
	if !ok {
		return RGBA{A: 1}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// fadeColor returns the color string with its alpha scaled by alpha.
// Unparseable colors pass through unchanged so external palettes (CSS
// variables, currentColor) survive the round trip.
func fadeColor(s string, alpha float64) string {
	c, ok := ParseColor(s)
	if !ok {
		return s
	}
	return c.WithAlpha(c.A * clamp01(alpha)).Hex()
}

// clamp255 clamps a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
