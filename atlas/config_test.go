package atlas

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"default", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.Width = 0 }, "Width"},
		{"zero height", func(c *Config) { c.Height = 0 }, "Height"},
		{"zero max", func(c *Config) { c.MaxSize = 0 }, "MaxSize"},
		{"width over max", func(c *Config) { c.Width = c.MaxSize + 1 }, "Width"},
		{"height over max", func(c *Config) { c.Height = c.MaxSize + 1 }, "Height"},
		{"negative padding", func(c *Config) { c.Padding = -1 }, "Padding"},
		{"no padding", func(c *Config) { c.Padding = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New[int](Config{}); err == nil {
		t.Error("New(Config{}) succeeded, want error")
	}
}
