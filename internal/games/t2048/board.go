// Package t2048 implements the 2048 sliding-tile puzzle: board state, the
// slide-and-merge move engine, tile spawning and win/loss detection.
package t2048

import "fmt"

// BoardSize is the board dimension. The grid is always BoardSize x BoardSize.
const BoardSize = 4

// CellCount is the number of cells on the board.
const CellCount = BoardSize * BoardSize

// Cells is the flat, row-major grid: index = row*BoardSize + col.
type Cells [CellCount]int

// At returns the value at the given row and column.
func (c Cells) At(row, col int) int {
	return c[row*BoardSize+col]
}

// Status is the game status derived from the board after each accepted move.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted until reset.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Rand is the randomness source used for tile spawns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Rules holds the tunable parts of the game.
type Rules struct {
	WinTile    int     // Reaching this tile wins the game
	Spawn4Prob float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// DefaultRules returns the classic rules: win at 2048, 10% chance of a 4.
func DefaultRules() Rules {
	return Rules{
		WinTile:    2048,
		Spawn4Prob: 0.10,
	}
}

// Board owns the grid, score and status of a single game.
// A Board is not safe for concurrent use; each game session owns its own.
type Board struct {
	cells  Cells
	score  int
	moves  int
	status Status
	rules  Rules
	rng    Rand
}

// withDefaults fills zero fields from DefaultRules.
// Panics if the win tile is not a power of two >= 4.
func (r Rules) withDefaults() Rules {
	if r.WinTile == 0 {
		r.WinTile = DefaultRules().WinTile
	}
	if r.WinTile < 4 || !validTile(r.WinTile) {
		panic(fmt.Sprintf("t2048: win tile must be a power of two >= 4, got %d", r.WinTile))
	}
	return r
}

// NewBoard creates an empty board. Call Reset to start a game.
// A zero WinTile means the standard 2048.
func NewBoard(rng Rand, rules Rules) *Board {
	if rng == nil {
		panic("t2048: nil random source")
	}
	return &Board{
		rng:   rng,
		rules: rules.withDefaults(),
	}
}

// BoardFromCells builds a board with the given cells and zero score.
// The status is evaluated from the cells. Panics if the cells are not a valid grid.
func BoardFromCells(cells []int, rng Rand, rules Rules) *Board {
	if len(cells) != CellCount {
		panic(fmt.Sprintf("t2048: board must have %d cells, got %d", CellCount, len(cells)))
	}

	b := NewBoard(rng, rules)
	for i, v := range cells {
		if !validTile(v) {
			panic(fmt.Sprintf("t2048: invalid tile value %d at index %d", v, i))
		}
		b.cells[i] = v
	}
	b.status = Evaluate(b.cells, b.rules.WinTile)
	return b
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Reset clears the grid, zeros the score and spawns the two starting tiles.
func (b *Board) Reset() {
	b.cells = Cells{}
	b.score = 0
	b.moves = 0
	b.status = StatusInProgress

	b.SpawnTile()
	b.SpawnTile()
}

// Cells returns a copy of the grid.
func (b *Board) Cells() Cells {
	return b.cells
}

// Score returns the current score.
func (b *Board) Score() int {
	return b.score
}

// Status returns the status computed after the last accepted move.
func (b *Board) Status() Status {
	return b.status
}

// Moves returns the number of moves that changed the board since the last reset.
func (b *Board) Moves() int {
	return b.moves
}

// Rules returns the rules this board plays by.
func (b *Board) Rules() Rules {
	return b.rules
}

// MaxTile returns the highest tile currently on the board.
func (b *Board) MaxTile() int {
	return MaxTile(b.cells)
}

// Play runs one full turn: move, spawn a tile if anything changed, then
// re-evaluate the status. Returns whether the board changed.
func (b *Board) Play(dir Direction) bool {
	if b.status.Terminal() {
		return false
	}

	if !b.ApplyMove(dir) {
		return false
	}

	b.SpawnTile()
	b.CheckStatus()
	return true
}
