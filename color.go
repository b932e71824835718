package uitext

import "github.com/gogpu/uitext/internal/color"

// Color is a non-premultiplied sRGB color with components in [0, 1].
type Color [4]float32

// RGB creates an opaque color from sRGB components.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// RGBA creates a color from sRGB components.
func RGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3, 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		if len(hex) == 4 {
			parseHex(hex[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			parseHex(hex[6:8], &a)
		}
	default:
		return Black
	}

	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
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
			return
		}
	}
}

// Linear converts the color to linear RGBA. Alpha is unchanged.
func (c Color) Linear() [4]float32 {
	return color.ToLinear(color.RGBA(c))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// tintColor returns the linear tint of an element, white if untinted.
func tintColor(tint *Color) color.RGBA {
	if tint == nil {
		return color.White
	}
	return color.ToLinear(color.RGBA(*tint))
}
