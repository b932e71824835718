package atlas

// Config holds atlas configuration.
type Config struct {
	// Width, Height are the initial texture dimensions in pixels.
	// Default: 512x512
	Width, Height int

	// MaxSize bounds both texture dimensions when the atlas grows.
	// Default: 8192
	MaxSize int

	// Padding between packed glyphs to prevent bleeding.
	// Default: 1
	Padding int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:   512,
		Height:  512,
		MaxSize: 8192,
		Padding: 1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.MaxSize < 1 {
		return &ConfigError{Field: "MaxSize", Reason: "must be positive"}
	}
	if c.Width > c.MaxSize {
		return &ConfigError{Field: "Width", Reason: "must be at most MaxSize"}
	}
	if c.Height > c.MaxSize {
		return &ConfigError{Field: "Height", Reason: "must be at most MaxSize"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	return nil
}
