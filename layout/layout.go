package layout

import (
	"unicode"

	"github.com/gogpu/uitext/font"
)

// Metrics is the font capability layout needs. font.Scaled implements it.
type Metrics interface {
	GlyphID(r rune) font.GlyphID
	Advance(id font.GlyphID) float32
	Kern(a, b font.GlyphID) float32
	Ascent() float32
	Descent() float32
	LineGap() float32
}

// Run is a span of text sharing one color.
type Run struct {
	Text string

	// Color is linear RGBA. Layout does not interpret it.
	Color [4]float32
}

// Section is one layout request.
type Section struct {
	// X, Y is the section position in screen space (Y down).
	X, Y float32

	// Width, Height are the section bounds. Width limits wrapped lines.
	Width, Height float32

	HAlign  HAlign
	VAlign  VAlign
	Breaker Breaker

	Runs []Run
}

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Rect returns the section bounds after alignment.
func (s Section) Rect() Rect {
	var r Rect
	switch s.HAlign {
	case HAlignCenter:
		r.MinX = s.X - s.Width/2
	case HAlignRight:
		r.MinX = s.X - s.Width
	default:
		r.MinX = s.X
	}
	switch s.VAlign {
	case VAlignCenter:
		r.MinY = s.Y - s.Height/2
	case VAlignBottom:
		r.MinY = s.Y - s.Height
	default:
		r.MinY = s.Y
	}
	r.MaxX = r.MinX + s.Width
	r.MaxY = r.MinY + s.Height
	return r
}

// Glyph is a positioned glyph.
type Glyph struct {
	ID font.GlyphID

	// Run is the index of the run the glyph belongs to.
	Run int

	// Byte is the byte offset of the glyph's character within the run text.
	Byte int

	// X, Y is the pen position on the baseline (Y down).
	X, Y float32
}

// Layout positions the glyphs of s.
//
// Control characters are never emitted. In wrap mode, whitespace ending a
// soft-wrapped line is not emitted either, and mandatory breaks start a new
// line. Layout is deterministic: equal inputs yield equal glyph sequences.
func Layout(s Section, m Metrics) []Glyph {
	chars, runes := flatten(s.Runs)
	if len(chars) == 0 {
		return nil
	}

	b := lineBuilder{
		metrics:  m,
		maxWidth: s.Width,
		wrap:     s.Breaker != BreakerNone,
	}
	b.reset()

	start := 0
	for _, br := range s.Breaker.Breaks(runes) {
		b.addWord(chars[start:br.Offset], true)
		if br.Mandatory {
			b.newLine(false)
		}
		start = br.Offset
	}
	if start < len(chars) {
		b.addWord(chars[start:], true)
	}
	b.lines = append(b.lines, b.cur)

	return b.position(s)
}

// char is one character of the concatenated runs.
type char struct {
	r    rune
	run  int
	byte int
}

func flatten(runs []Run) ([]char, []rune) {
	var n int
	for _, run := range runs {
		n += len(run.Text)
	}
	chars := make([]char, 0, n)
	runes := make([]rune, 0, n)
	for i, run := range runs {
		for off, r := range run.Text {
			chars = append(chars, char{r: r, run: i, byte: off})
			runes = append(runes, r)
		}
	}
	return chars, runes
}

// placed is a glyph positioned relative to its line start.
type placed struct {
	id    font.GlyphID
	run   int
	byte  int
	x     float32
	space bool
}

type line struct {
	glyphs []placed
	width  float32 // right edge of the last visible glyph
}

type lineBuilder struct {
	metrics  Metrics
	maxWidth float32
	wrap     bool

	lines []line
	cur   line

	caret   float32
	prev    font.GlyphID
	hasPrev bool

	scratch []placed
}

func (b *lineBuilder) reset() {
	b.cur = line{}
	b.caret = 0
	b.hasPrev = false
}

// addWord appends word to the current line, wrapping first when the visible
// part of the word would cross the width limit of a non-empty line.
func (b *lineBuilder) addWord(word []char, mayWrap bool) {
	caret, prev, hasPrev := b.caret, b.prev, b.hasPrev
	visibleEnd := float32(-1)

	b.scratch = b.scratch[:0]
	for _, c := range word {
		if unicode.IsControl(c.r) {
			hasPrev = false
			continue
		}
		id := b.metrics.GlyphID(c.r)
		if hasPrev {
			caret += b.metrics.Kern(prev, id)
		}
		p := placed{id: id, run: c.run, byte: c.byte, x: caret, space: unicode.IsSpace(c.r)}
		caret += b.metrics.Advance(id)
		if !p.space {
			visibleEnd = caret
		}
		b.scratch = append(b.scratch, p)
		prev, hasPrev = id, true
	}

	if mayWrap && b.wrap && len(b.cur.glyphs) > 0 && visibleEnd > b.maxWidth {
		b.newLine(true)
		b.addWord(word, false)
		return
	}

	b.cur.glyphs = append(b.cur.glyphs, b.scratch...)
	if visibleEnd >= 0 {
		b.cur.width = visibleEnd
	}
	b.caret, b.prev, b.hasPrev = caret, prev, hasPrev
}

// newLine ends the current line. Soft breaks drop trailing whitespace.
func (b *lineBuilder) newLine(soft bool) {
	if soft {
		g := b.cur.glyphs
		for len(g) > 0 && g[len(g)-1].space {
			g = g[:len(g)-1]
		}
		b.cur.glyphs = g
	}
	b.lines = append(b.lines, b.cur)
	b.reset()
}

func (b *lineBuilder) position(s Section) []Glyph {
	ascent := b.metrics.Ascent()
	height := ascent - b.metrics.Descent()
	gap := b.metrics.LineGap()

	n := float32(len(b.lines))
	block := n*height + (n-1)*gap

	y0 := s.Y
	switch s.VAlign {
	case VAlignCenter:
		y0 -= block / 2
	case VAlignBottom:
		y0 -= block
	}

	var count int
	for _, ln := range b.lines {
		count += len(ln.glyphs)
	}
	out := make([]Glyph, 0, count)

	for i, ln := range b.lines {
		baseline := y0 + float32(i)*(height+gap) + ascent

		x0 := s.X
		switch s.HAlign {
		case HAlignCenter:
			x0 -= ln.width / 2
		case HAlignRight:
			x0 -= ln.width
		}

		for _, p := range ln.glyphs {
			out = append(out, Glyph{
				ID:   p.id,
				Run:  p.run,
				Byte: p.byte,
				X:    x0 + p.x,
				Y:    baseline,
			})
		}
	}
	return out
}
