// Package config loads optional viewer settings for the otx tool: per-layer
// color and visibility overrides applied on top of the standard layer table
// after a board is decoded.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// LayerOverride adjusts one layer of the standard table.
type LayerOverride struct {
	ID      int     `yaml:"id"`
	Visible *bool   `yaml:"visible,omitempty"`
	Color   *string `yaml:"color,omitempty"` // "#RRGGBB"
}

// Config holds the complete otx settings file.
type Config struct {
	Layers []LayerOverride `yaml:"layers,omitempty"`
}

// Default returns an empty configuration (no overrides).
func Default() *Config {
	return &Config{}
}

// Load reads and validates a YAML settings file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML settings bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks override entries for malformed values.
func (c *Config) Validate() error {
	for _, o := range c.Layers {
		if o.ID <= 0 {
			return fmt.Errorf("layer override with invalid id %d", o.ID)
		}
		if o.Color != nil {
			if _, err := parseColor(*o.Color); err != nil {
				return fmt.Errorf("layer %d: %w", o.ID, err)
			}
		}
	}
	return nil
}

// Apply writes the overrides into a board's layer table. Overrides naming
// layers the table does not contain are ignored.
func (c *Config) Apply(b *board.Board) {
	lm := b.LayerMap()
	for _, o := range c.Layers {
		layer, ok := lm.GetByID(o.ID)
		if !ok {
			continue
		}
		if o.Visible != nil {
			layer.Visible = *o.Visible
		}
		if o.Color != nil {
			if color, err := parseColor(*o.Color); err == nil {
				layer.Color = color
			}
		}
	}
}

// parseColor decodes a "#RRGGBB" string.
func parseColor(s string) (board.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return board.Color{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return board.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return board.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1.0,
	}, nil
}
