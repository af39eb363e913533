package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme contains the styles for one color palette.
type Theme struct {
	Name string

	// cells maps core.Color slots to styles for screen rendering.
	cells map[core.Color]lipgloss.Style

	// Menu and scoreboard styles
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// NewTheme builds the lipgloss styles for a configured palette.
// A nil renderer uses the default one; SSH sessions pass their own so colors
// match the remote terminal.
func NewTheme(cfg config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	bg := lipgloss.Color(cfg.Background)
	base := r.NewStyle().Background(bg)

	t := Theme{
		Name:  cfg.Name,
		cells: make(map[core.Color]lipgloss.Style),

		Title:    r.NewStyle().Foreground(lipgloss.Color(cfg.Accent)).Bold(true),
		Text:     r.NewStyle().Foreground(lipgloss.Color(cfg.TextDark)),
		Muted:    r.NewStyle().Foreground(lipgloss.Color(cfg.Muted)),
		Selected: r.NewStyle().Foreground(lipgloss.Color(cfg.Text)).Background(lipgloss.Color(cfg.Accent)).Bold(true),
		Border:   r.NewStyle().BorderForeground(lipgloss.Color(cfg.Grid)),
	}

	t.cells[core.ColorDefault] = base.Foreground(lipgloss.Color(cfg.TextDark))
	t.cells[core.ColorGrid] = base.Foreground(lipgloss.Color(cfg.Grid))
	t.cells[core.ColorText] = base.Foreground(lipgloss.Color(cfg.TextDark)).Bold(true)
	t.cells[core.ColorMuted] = base.Foreground(lipgloss.Color(cfg.Muted))
	t.cells[core.ColorAccent] = base.Foreground(lipgloss.Color(cfg.Accent)).Bold(true)
	t.cells[core.ColorTileEmpty] = r.NewStyle().Background(lipgloss.Color(cfg.TileColor(0)))

	for c := core.ColorTile2; c < core.ColorTileSuper; c++ {
		value := core.TileValue(c)
		fg := cfg.Text
		if value <= 4 {
			fg = cfg.TextDark
		}
		t.cells[c] = r.NewStyle().
			Background(lipgloss.Color(cfg.TileColor(value))).
			Foreground(lipgloss.Color(fg)).
			Bold(true)
	}
	t.cells[core.ColorTileSuper] = r.NewStyle().
		Background(lipgloss.Color(cfg.Overflow)).
		Foreground(lipgloss.Color(cfg.Text)).
		Bold(true)

	return t
}

// Style returns the style for a palette slot.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return t.cells[core.ColorDefault]
}

// ThemeSet is the cyclable list of themes for one session.
type ThemeSet struct {
	themes  []Theme
	current int
}

// NewThemeSet builds every configured theme and selects the named one
// (falling back to the configured default, then the first).
func NewThemeSet(cfg config.Config, name string, r *lipgloss.Renderer) *ThemeSet {
	if len(cfg.Themes) == 0 {
		cfg = config.DefaultConfig()
	}

	set := &ThemeSet{themes: make([]Theme, len(cfg.Themes))}
	for i, tc := range cfg.Themes {
		set.themes[i] = NewTheme(tc, r)
	}

	if name == "" {
		name = cfg.DefaultTheme
	}
	set.current = cfg.ThemeIndex(name)
	return set
}

// Current returns the active theme.
func (s *ThemeSet) Current() Theme {
	return s.themes[s.current]
}

// Next switches to the next theme, wrapping around, and returns it.
func (s *ThemeSet) Next() Theme {
	s.current = (s.current + 1) % len(s.themes)
	return s.Current()
}

// Prev switches to the previous theme, wrapping around, and returns it.
func (s *ThemeSet) Prev() Theme {
	s.current = (s.current - 1 + len(s.themes)) % len(s.themes)
	return s.Current()
}

// Len returns the number of themes.
func (s *ThemeSet) Len() int {
	return len(s.themes)
}
