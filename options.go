package uitext

import (
	"log/slog"

	"github.com/gogpu/uitext/atlas"
)

// Option configures a Pass during creation.
//
// Example:
//
//	pass, err := uitext.New(fonts, factory,
//	    uitext.WithInitialCacheSize(1024, 1024),
//	    uitext.WithLogger(slog.Default()),
//	)
type Option func(*options)

// options holds optional configuration for Pass creation.
type options struct {
	atlas  atlas.Config
	logger *slog.Logger
}

// defaultOptions returns the default pass options.
func defaultOptions() options {
	return options{
		atlas:  atlas.DefaultConfig(),
		logger: nil, // Logger() at creation time
	}
}

// WithInitialCacheSize sets the initial glyph texture size.
// The texture doubles when glyphs no longer fit. Default: 512x512.
func WithInitialCacheSize(width, height int) Option {
	return func(o *options) {
		o.atlas.Width = width
		o.atlas.Height = height
	}
}

// WithMaxTextureSize bounds the glyph texture dimensions. Default: 8192.
func WithMaxTextureSize(n int) Option {
	return func(o *options) {
		o.atlas.MaxSize = n
	}
}

// WithPadding sets the padding between packed glyphs in pixels. Default: 1.
func WithPadding(px int) Option {
	return func(o *options) {
		o.atlas.Padding = px
	}
}

// WithLogger sets the logger of the pass, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
