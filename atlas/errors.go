package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the atlas package.
var (
	// ErrTextureLimit is returned when the atlas would have to grow beyond
	// the configured maximum texture size.
	ErrTextureLimit = errors.New("atlas: glyphs do not fit the maximum texture size")

	// ErrInvalidSize is returned by Resize for non-positive or oversized dimensions.
	ErrInvalidSize = errors.New("atlas: invalid texture size")
)

// TextureTooSmallError reports that the queued glyphs do not fit the
// current texture. Width and Height are the suggested new dimensions.
type TextureTooSmallError struct {
	Width, Height int
}

func (e *TextureTooSmallError) Error() string {
	return fmt.Sprintf("atlas: texture too small, suggested %dx%d", e.Width, e.Height)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
