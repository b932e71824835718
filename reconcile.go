package uitext

import "github.com/gogpu/uitext/layout"

// reconcileGlyphs builds the glyph cache of content, one entry per
// character, from the laid-out glyphs.
//
// Characters and laid-out glyphs are walked in lockstep. While the glyph
// of the next character matches the next laid-out glyph, the laid-out
// position is taken and both cursors advance. Characters layout did not
// emit (control characters, whitespace at a wrap) are placed after the
// previous cached glyph using their own advance.
func reconcileGlyphs(dst []CachedGlyph, content string, glyphs []layout.Glyph, m layout.Metrics) []CachedGlyph {
	next := 0
	var last CachedGlyph
	hasLast := false

	for _, r := range content {
		id := m.GlyphID(r)
		var g CachedGlyph
		if next < len(glyphs) && glyphs[next].ID == id {
			lg := glyphs[next]
			g = CachedGlyph{X: lg.X, Y: -lg.Y, Advance: m.Advance(lg.ID)}
			next++
		} else {
			if hasLast {
				g.X, g.Y = last.X+last.Advance, last.Y
			}
			g.Advance = m.Advance(id)
		}
		dst = append(dst, g)
		last, hasLast = g, true
	}
	return dst
}

// maskedGlyphs builds the glyph cache of password content directly from
// the laid-out bullets.
func maskedGlyphs(dst []CachedGlyph, glyphs []layout.Glyph, m layout.Metrics) []CachedGlyph {
	for _, lg := range glyphs {
		dst = append(dst, CachedGlyph{X: lg.X, Y: -lg.Y, Advance: m.Advance(lg.ID)})
	}
	return dst
}
