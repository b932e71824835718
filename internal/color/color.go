// Package color provides the color conversions used to build glyph and
// selection vertices.
//
// UI colors are authored in sRGB. Vertices carry linear RGBA, and every
// tint is applied in linear space by component-wise multiplication.
package color

// RGBA is a color with float32 components in [0,1], stored as
// [R, G, B, A]. The color space is given by context.
// Alpha is always linear (never gamma-encoded).
type RGBA [4]float32

// White is opaque white. It is the identity for MulBlend.
var White = RGBA{1, 1, 1, 1}
