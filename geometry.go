package uitext

import (
	"github.com/gogpu/uitext/atlas"
	"github.com/gogpu/uitext/layout"
)

// glyphColorBias makes glyph quads take their alpha from the atlas.
var glyphColorBias = [4]float32{1, 1, 1, 0}

// fullTexCoords covers the whole texture.
var fullTexCoords = [4]float32{0, 0, 1, 1}

// glyphVertex clips a glyph box to its section bounds and converts it to
// a Y-up quad. Every clipped edge rescales its texture coordinate by the
// fraction of the box that remains.
func glyphVertex(v atlas.GlyphVertex) Vertex {
	b := v.Bounds
	uv := v.TexCoords
	c := v.PixelCoords

	if c.MaxX > b.MaxX {
		old := c.MaxX - c.MinX
		c.MaxX = b.MaxX
		uv.MaxX = uv.MinX + (uv.MaxX-uv.MinX)*(c.MaxX-c.MinX)/old
	}
	if c.MinX < b.MinX {
		old := c.MaxX - c.MinX
		c.MinX = b.MinX
		uv.MinX = uv.MaxX - (uv.MaxX-uv.MinX)*(c.MaxX-c.MinX)/old
	}
	if c.MaxY > b.MaxY {
		old := c.MaxY - c.MinY
		c.MaxY = b.MaxY
		uv.MaxY = uv.MinY + (uv.MaxY-uv.MinY)*(c.MaxY-c.MinY)/old
	}
	if c.MinY < b.MinY {
		old := c.MaxY - c.MinY
		c.MinY = b.MinY
		uv.MinY = uv.MaxY - (uv.MaxY-uv.MinY)*(c.MaxY-c.MinY)/old
	}

	return Vertex{
		Position:   [2]float32{(c.MaxX + c.MinX) / 2, -(c.MaxY + c.MinY) / 2},
		Dimensions: [2]float32{c.MaxX - c.MinX, c.MaxY - c.MinY},
		TexCoords:  [4]float32{uv.MinX, uv.MinY, uv.MaxX, uv.MaxY},
		Color:      v.Color,
		ColorBias:  glyphColorBias,
	}
}

// lineMetrics is the vertical placement of cursor and selection quads.
type lineMetrics struct {
	offset float32 // (ascent + descent) / 2
	height float32 // ascent - descent
}

func lineMetricsOf(m layout.Metrics) lineMetrics {
	return lineMetrics{
		offset: (m.Ascent() + m.Descent()) / 2,
		height: m.Ascent() - m.Descent(),
	}
}

// selectionVertices returns one quad per highlighted glyph.
func selectionVertices(glyphs []CachedGlyph, ed Editing, lm lineMetrics, c [4]float32) []Vertex {
	start, end := HighlightedRange(ed, len(glyphs))
	if start == end {
		return nil
	}
	out := make([]Vertex, 0, end-start)
	for _, g := range glyphs[start:end] {
		out = append(out, Vertex{
			Position:   [2]float32{g.X + g.Advance/2, g.Y + lm.offset},
			Dimensions: [2]float32{g.Advance, lm.height},
			TexCoords:  fullTexCoords,
			Color:      c,
		})
	}
	return out
}

// cursorPosition places the cursor on the glyph at index pos, after the
// last glyph when pos is at or past the end, or at origin for empty text.
func cursorPosition(glyphs []CachedGlyph, pos int, lm lineMetrics, origin [2]float32) [2]float32 {
	pos = max(pos, 0)
	switch {
	case pos < len(glyphs):
		g := glyphs[pos]
		return [2]float32{g.X, g.Y + lm.offset}
	case len(glyphs) > 0:
		g := glyphs[len(glyphs)-1]
		return [2]float32{g.X + g.Advance, g.Y + lm.offset}
	default:
		return origin
	}
}
