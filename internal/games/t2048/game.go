package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "2048"

// Game adapts a Board to the platform: input frames in, screen buffer out.
type Game struct {
	rules Rules
	rng   *rand.Rand
	board *Board

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
}

// New creates a 2048 game with the given rules. Call Reset before use.
func New(rules Rules) *Game {
	return &Game{
		rules: rules.withDefaults(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.rng, g.rules)
	g.board.Reset()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Board exposes the underlying board.
func (g *Game) Board() *Board {
	return g.board
}

// Step applies at most one directional move from the input frame.
// Moves are ignored while the window is too small or the game is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.board.Play(dir)
	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFromInput picks the move direction from an input frame.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.board.Status()
	return core.GameState{
		Score:    g.board.Score(),
		MaxTile:  g.board.MaxTile(),
		Moves:    g.board.Moves(),
		GameOver: status.Terminal(),
		Won:      status == StatusWon,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: New | T: Theme | Q: Quit"
}
