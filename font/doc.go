// Package font is the font metrics and glyph rasterization service used by
// the text layout engine and the glyph atlas.
//
// A Font is parsed once from TTF/OTF data and shared by handle across every
// text element that uses it. Scaled views of a Font answer the questions the
// layout engine asks (glyph identifier, horizontal advance, kerning, ascent
// and descent) at a pixel size, and rasterize glyph coverage for the atlas.
//
// Metrics come from github.com/go-text/typesetting; outlines and kerning
// come from golang.org/x/image/font/sfnt and are rasterized with
// golang.org/x/image/vector.
//
// # Pixel size
//
// The pixel size of a Scaled font is the height of its line box: the
// distance between ascender and descender. A 32px font therefore has
// Ascent()-Descent() == 32.
//
//	f, err := font.Parse(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := f.Scaled(32)
//	id := s.GlyphID('A')
//	adv := s.Advance(id)
package font
