package font

import "errors"

// Sentinel errors for font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrInvalidMetrics is returned when a font's ascender is not above its descender.
	ErrInvalidMetrics = errors.New("font: ascender must be above descender")
)

// GlyphError is returned when a glyph outline cannot be loaded.
type GlyphError struct {
	Glyph GlyphID
	Err   error
}

func (e *GlyphError) Error() string {
	return "font: failed to load glyph: " + e.Err.Error()
}

// Unwrap returns the underlying outline error.
func (e *GlyphError) Unwrap() error {
	return e.Err
}
