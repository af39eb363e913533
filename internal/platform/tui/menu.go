package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceNewGame
	MenuChoiceScores
	MenuChoiceQuit
)

// menuItem is one line of the main menu.
type menuItem int

const (
	itemNewGame menuItem = iota
	itemScores
	itemTheme
	itemQuit
)

var menuItems = []menuItem{itemNewGame, itemScores, itemTheme, itemQuit}

// MenuModel is the Bubble Tea model for the start screen.
type MenuModel struct {
	themes *ThemeSet
	keys   MenuKeyMap
	help   help.Model
	cursor int
	width  int
	height int

	bestScore int
	games     int

	choice MenuChoice
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(themes *ThemeSet, store ResultStore, width, height int) MenuModel {
	m := MenuModel{
		themes: themes,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	if store != nil {
		if stats, err := store.Stats(); err == nil {
			m.bestScore = stats.HighScore
			m.games = stats.Games
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = core.Clamp(m.cursor-1, 0, len(menuItems)-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = core.Clamp(m.cursor+1, 0, len(menuItems)-1)

	case key.Matches(msg, m.keys.Left):
		if menuItems[m.cursor] == itemTheme {
			m.themes.Prev()
		}

	case key.Matches(msg, m.keys.Right):
		if menuItems[m.cursor] == itemTheme {
			m.themes.Next()
		}

	case key.Matches(msg, m.keys.Select):
		switch menuItems[m.cursor] {
		case itemNewGame:
			m.choice = MenuChoiceNewGame
			return m, tea.Quit
		case itemScores:
			m.choice = MenuChoiceScores
			return m, tea.Quit
		case itemTheme:
			m.themes.Next()
		case itemQuit:
			m.choice = MenuChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

// label returns the display text for a menu item.
func (m MenuModel) label(item menuItem) string {
	switch item {
	case itemNewGame:
		return "New Game"
	case itemScores:
		return "High Scores"
	case itemTheme:
		return fmt.Sprintf("Theme: < %s >", m.themes.Current().Name)
	case itemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	theme := m.themes.Current()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")

	subtitle := "Join the tiles, get to 2048!"
	if m.games > 0 {
		subtitle = fmt.Sprintf("Best: %d  |  Games played: %d", m.bestScore, m.games)
	}
	b.WriteString(centerText(theme.Muted.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + m.label(item) + "  "
		if i == m.cursor {
			line = theme.Selected.Render(line)
		} else {
			line = theme.Text.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width. ANSI styling is ignored when measuring.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
