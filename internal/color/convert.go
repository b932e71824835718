package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// ToLinear converts a full color from sRGB to linear space.
// Only RGB components are converted; alpha is passed through.
func ToLinear(c RGBA) RGBA {
	return RGBA{
		SRGBToLinear(c[0]),
		SRGBToLinear(c[1]),
		SRGBToLinear(c[2]),
		c[3],
	}
}

// MulBlend multiplies two linear colors component-wise.
func MulBlend(a, b RGBA) RGBA {
	return RGBA{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// MulBlendSRGB converts both sRGB colors to linear space and multiplies them.
func MulBlendSRGB(c, tint RGBA) RGBA {
	return MulBlend(ToLinear(c), ToLinear(tint))
}

// LinearToSRGB converts a linear component to sRGB (inverse EOTF).
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// ToSRGB converts a full color from linear to sRGB space. Alpha is passed through.
func ToSRGB(c RGBA) RGBA {
	return RGBA{
		LinearToSRGB(c[0]),
		LinearToSRGB(c[1]),
		LinearToSRGB(c[2]),
		c[3],
	}
}
