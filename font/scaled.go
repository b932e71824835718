package font

import (
	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Scaled is a Font at a pixel size. It is a small value and cheap to copy.
type Scaled struct {
	font  *Font
	size  float32
	scale float32 // pixels per font unit
}

// Font returns the underlying font.
func (s Scaled) Font() *Font {
	return s.font
}

// Size returns the pixel size.
func (s Scaled) Size() float32 {
	return s.size
}

// GlyphID maps a character to its nominal glyph.
// Characters missing from the font map to glyph 0 (.notdef).
func (s Scaled) GlyphID(r rune) GlyphID {
	gid, ok := s.font.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// Advance returns the horizontal advance of a glyph in pixels.
func (s Scaled) Advance(id GlyphID) float32 {
	return s.font.face.HorizontalAdvance(gotext.GID(id)) * s.scale
}

// Kern returns the kerning adjustment between two glyphs in pixels.
// Fonts without a kern table report 0.
func (s Scaled) Kern(a, b GlyphID) float32 {
	buf := s.font.buffer()
	defer s.font.release(buf)

	k, err := s.font.outlines.Kern(buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), s.ppem(), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat32(k)
}

// Ascent returns the distance from the baseline to the ascender (positive).
func (s Scaled) Ascent() float32 {
	return s.font.ascender * s.scale
}

// Descent returns the distance from the baseline to the descender (negative).
func (s Scaled) Descent() float32 {
	return s.font.descender * s.scale
}

// LineGap returns the recommended gap between lines.
func (s Scaled) LineGap() float32 {
	return s.font.lineGap * s.scale
}

// Height returns Ascent() - Descent(). It equals Size().
func (s Scaled) Height() float32 {
	return s.Ascent() - s.Descent()
}

// ppem returns pixels per em in 26.6 fixed point.
func (s Scaled) ppem() fixed.Int26_6 {
	return fixed.Int26_6(s.scale*s.font.upem*64 + 0.5)
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64.0
}
