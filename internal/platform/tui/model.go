package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// statusHeight is the number of rows below the game screen for messages and help.
const statusHeight = 1

// ResultStore persists finished games. *storage.Store implements it.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
	TopResults(limit int) ([]storage.Result, error)
	Stats() (*storage.Stats, error)
}

var _ ResultStore = (*storage.Store)(nil)

// GameOptions configures a GameModel.
type GameOptions struct {
	Rules  t2048.Rules
	Config core.RuntimeConfig
	Store  ResultStore // Optional
	Logger *log.Logger // Optional
	Themes *ThemeSet   // Optional; defaults to the built-in themes
	Player string

	// ScreenshotDir is where ctrl+s writes plain-text screenshots.
	// Defaults to ~/.t2048/screenshots.
	ScreenshotDir string

	// Embedded is set when the game runs inside a session; back returns to the menu.
	Embedded bool
}

// GameModel is the Bubble Tea model for a 2048 game.
// Every key press runs one full turn synchronously; there is no tick loop.
type GameModel struct {
	game   *t2048.Game
	screen *core.Screen
	opts   GameOptions
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model
	logger *log.Logger

	gameID      string // UUID of the current game, used as the result key
	resultSaved bool   // Whether the current game has been stored
	showHelp    bool

	flash   string
	flashID int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts the first game.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	if opts.Themes == nil {
		opts.Themes = NewThemeSet(config.DefaultConfig(), "", nil)
	}
	if opts.Rules.WinTile == 0 {
		opts.Rules = t2048.DefaultRules()
	}

	cfg := opts.Config
	if cfg.ScreenW == 0 || cfg.ScreenH == 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	m := GameModel{
		game:   t2048.New(opts.Rules),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-statusHeight),
		opts:   opts,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
	}
	m.help.Width = cfg.ScreenW
	m.newGame(cfg.Seed)
	return m
}

// newGame resets the board. A zero seed picks one from the clock.
func (m *GameModel) newGame(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.config.Seed = seed

	gameCfg := m.config
	gameCfg.ScreenH -= statusHeight
	m.game.Reset(gameCfg)

	m.gameID = uuid.NewString()
	m.resultSaved = false

	m.logger.Debug("game started", "game", m.gameID, "seed", seed, "player", m.opts.Player)
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case clearFlashMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		return m.saveScreenshot()
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.opts.Embedded {
			m.abandon()
			m.backToMenu = true
		}
		return m, nil

	case core.ActionRestart:
		m.abandon()
		m.newGame(0)
		return m.setFlash("New game")

	case core.ActionTheme:
		theme := m.opts.Themes.Next()
		return m.setFlash("Theme: " + theme.Name)

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if m.showHelp {
			return m, nil
		}
		result := m.game.Step(core.FrameOf(action))
		if result.State.GameOver {
			outcome := storage.OutcomeLost
			if result.State.Won {
				outcome = storage.OutcomeWon
			}
			m.saveResult(outcome)
		}
	}

	return m, nil
}

// handleResize keeps the board; only the layout changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-statusHeight)
	m.game.Resize(msg.Width, msg.Height-statusHeight)
	m.help.Width = msg.Width
	return m, nil
}

// abandon stores an unfinished game that has any progress.
func (m *GameModel) abandon() {
	if m.resultSaved || m.game.State().Score == 0 {
		return
	}
	m.saveResult(storage.OutcomeAbandoned)
}

// saveResult stores the current game once. Failures are logged, never fatal.
func (m *GameModel) saveResult(outcome storage.Outcome) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true

	snap := m.game.Snapshot()
	m.logger.Info("game finished",
		"game", m.gameID,
		"outcome", outcome,
		"score", snap.Score,
		"max_tile", snap.MaxTile,
		"moves", snap.Moves,
	)

	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		GameID:  m.gameID,
		Player:  m.opts.Player,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Outcome: outcome,
		Board:   snap.Cells[:],
		Seed:    m.config.Seed,
	})
	if err != nil {
		m.logger.Error("could not save result", "game", m.gameID, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m GameModel) saveScreenshot() (tea.Model, tea.Cmd) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			return m.setFlash("Screenshot failed")
		}
		dir = filepath.Join(home, ".t2048", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return m.setFlash("Screenshot failed")
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", t2048.GameID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return m.setFlash("Screenshot failed")
	}

	m.logger.Info("screenshot saved", "path", path)
	return m.setFlash("Saved " + filepath.Base(path))
}

// setFlash shows a status message that clears itself.
func (m GameModel) setFlash(text string) (tea.Model, tea.Cmd) {
	m.flashID++
	m.flash = text
	return m, clearFlashCmd(m.flashID)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.opts.Themes.Current()

	if m.showHelp {
		return m.helpView(theme)
	}

	m.game.Render(m.screen)

	status := m.flash
	if status == "" {
		status = m.help.ShortHelpView(m.keys.ShortHelp())
	} else {
		status = theme.Title.Render(status)
	}

	return RenderScreen(m.screen, theme) + "\n" + centerText(status, m.config.ScreenW)
}

// helpView renders the full key binding list.
func (m GameModel) helpView(theme Theme) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("C O N T R O L S"), m.config.ScreenW))
	b.WriteString("\n\n")

	panel := theme.Border.
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString(lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, panel))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Muted.Render("? or esc: back to the board"), m.config.ScreenW))

	return b.String()
}

// Game returns the underlying game.
func (m GameModel) Game() *t2048.Game {
	return m.game
}

// GameID returns the UUID of the current game.
func (m GameModel) GameID() string {
	return m.gameID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame starts a standalone game in the terminal.
func RunGame(opts GameOptions) error {
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
