// Package config provides YAML-based configuration loading for the game
// rules and color themes.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config contains all configuration for tui-2048.
type Config struct {
	Rules        RulesConfig   `yaml:"rules"`
	DefaultTheme string        `yaml:"default_theme"`
	Themes       []ThemeConfig `yaml:"themes"`
}

// RulesConfig defines the tunable game rules.
type RulesConfig struct {
	WinTile    int     `yaml:"win_tile"`    // Tile value that wins the game; 2048 is the standard rule
	Spawn4Prob float64 `yaml:"spawn4_prob"` // Chance a spawned tile is a 4 instead of a 2
}

// ThemeConfig is a named color palette. All colors are "#rrggbb" hex strings.
type ThemeConfig struct {
	Name       string         `yaml:"name"`
	Background string         `yaml:"background"`
	Grid       string         `yaml:"grid"`
	Text       string         `yaml:"text"`      // Light text, drawn on dark tiles
	TextDark   string         `yaml:"text_dark"` // Dark text, drawn on light tiles and the HUD
	Muted      string         `yaml:"muted"`
	Accent     string         `yaml:"accent"`
	Tiles      map[int]string `yaml:"tiles"`    // Tile value (0 = empty) -> background color
	Overflow   string         `yaml:"overflow"` // Background for tiles above the palette
}

// TileColor returns the background color for a tile value.
func (t ThemeConfig) TileColor(value int) string {
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Overflow
}

// Theme looks up a theme by name (case-insensitive).
func (c Config) Theme(name string) (ThemeConfig, bool) {
	for _, t := range c.Themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return ThemeConfig{}, false
}

// ThemeIndex returns the position of the named theme, or 0 if it is unknown.
func (c Config) ThemeIndex(name string) int {
	for i, t := range c.Themes {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return 0
}

// ThemeNames returns theme names in configuration order.
func (c Config) ThemeNames() []string {
	names := make([]string, len(c.Themes))
	for i, t := range c.Themes {
		names[i] = t.Name
	}
	return names
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	w := c.Rules.WinTile
	if w < 4 || w&(w-1) != 0 {
		errs = append(errs, fmt.Errorf("rules.win_tile must be a power of two >= 4, got %d", w))
	}
	if c.Rules.Spawn4Prob < 0 || c.Rules.Spawn4Prob > 1 {
		errs = append(errs, fmt.Errorf("rules.spawn4_prob must be within [0, 1], got %g", c.Rules.Spawn4Prob))
	}

	if len(c.Themes) == 0 {
		errs = append(errs, errors.New("at least one theme is required"))
	}

	seen := make(map[string]bool)
	for i, t := range c.Themes {
		key := strings.ToLower(t.Name)
		if key == "" {
			errs = append(errs, fmt.Errorf("themes[%d]: name is required", i))
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("themes[%d]: duplicate name %q", i, t.Name))
		}
		seen[key] = true

		if len(t.Tiles) == 0 {
			errs = append(errs, fmt.Errorf("theme %q: no tile colors", t.Name))
		}
		for field, v := range map[string]string{
			"background": t.Background,
			"grid":       t.Grid,
			"text":       t.Text,
			"text_dark":  t.TextDark,
			"muted":      t.Muted,
			"accent":     t.Accent,
			"overflow":   t.Overflow,
		} {
			if !isHexColor(v) {
				errs = append(errs, fmt.Errorf("theme %q: %s %q is not a #rrggbb color", t.Name, field, v))
			}
		}
		for value, v := range t.Tiles {
			if !isHexColor(v) {
				errs = append(errs, fmt.Errorf("theme %q: tile %d color %q is not a #rrggbb color", t.Name, value, v))
			}
		}
	}

	if c.DefaultTheme != "" {
		if _, ok := c.Theme(c.DefaultTheme); !ok {
			errs = append(errs, fmt.Errorf("default_theme %q is not defined", c.DefaultTheme))
		}
	}

	return errors.Join(errs...)
}

// isHexColor reports whether s looks like "#rrggbb".
func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
