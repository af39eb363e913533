package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and result storage.
type Snapshot struct {
	Cells   Cells
	Score   int
	Moves   int
	MaxTile int
	Status  Status
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := g.board.Status()

	state := StatePlaying
	switch {
	case status == StatusWon:
		state = StateWin
	case status == StatusLost:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Cells:   g.board.Cells(),
		Score:   g.board.Score(),
		Moves:   g.board.Moves(),
		MaxTile: g.board.MaxTile(),
		Status:  status,
		State:   state,
	}
}
