package uitext

import "errors"

// Sentinel errors for the uitext package.
var (
	// ErrNilFontSource is returned by New without a font source.
	ErrNilFontSource = errors.New("uitext: font source is nil")

	// ErrNilFactory is returned by New without a texture factory.
	ErrNilFactory = errors.New("uitext: texture factory is nil")
)
