package font

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// GlyphID is the glyph index within a font.
type GlyphID uint16

// Font is a parsed font shared by many text elements.
//
// Font is not safe for concurrent use: the underlying go-text face keeps
// internal caches. The glyph pass owns its fonts for the duration of a cycle.
type Font struct {
	face     *gotext.Face
	outlines *sfnt.Font

	// bufs pools sfnt buffers for outline and kerning lookups.
	bufs sync.Pool

	// Font-unit metrics, descender is negative.
	upem      float32
	ascender  float32
	descender float32
	lineGap   float32

	name string
}

// Parse parses TTF or OTF data.
// The data must not be modified while the Font is in use.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse outlines: %w", err)
	}

	f := &Font{
		face:     face,
		outlines: outlines,
		upem:     float32(face.Upem()),
		bufs: sync.Pool{
			New: func() any { return &sfnt.Buffer{} },
		},
	}

	if ext, ok := face.FontHExtents(); ok {
		f.ascender = ext.Ascender
		f.descender = ext.Descender
		f.lineGap = ext.LineGap
	} else {
		// No hhea/OS2 extents: use the conventional 80/20 split of the em.
		f.ascender = 0.8 * f.upem
		f.descender = -0.2 * f.upem
	}
	if f.ascender-f.descender <= 0 {
		return nil, ErrInvalidMetrics
	}

	if name, err := outlines.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}

	return f, nil
}

// Name returns the font family name, or "" when the font has none.
func (f *Font) Name() string {
	return f.name
}

// UnitsPerEm returns the design units per em.
func (f *Font) UnitsPerEm() float32 {
	return f.upem
}

// Scaled returns a view of f at the given pixel size.
func (f *Font) Scaled(size float32) Scaled {
	return Scaled{
		font:  f,
		size:  size,
		scale: size / (f.ascender - f.descender),
	}
}

func (f *Font) buffer() *sfnt.Buffer {
	return f.bufs.Get().(*sfnt.Buffer)
}

func (f *Font) release(b *sfnt.Buffer) {
	f.bufs.Put(b)
}
