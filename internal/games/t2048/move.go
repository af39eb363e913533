package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name or a single-letter alias (hjkl, wasd) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h", "a":
		return DirLeft, nil
	case "right", "l", "d":
		return DirRight, nil
	case "up", "k", "w":
		return DirUp, nil
	case "down", "j", "s":
		return DirDown, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// slideLine compacts and merges a line toward index 0.
// Merging is single pass: a tile produced by a merge does not merge again in the same move.
func slideLine(line [BoardSize]int) (result [BoardSize]int, gained int) {
	writePos := 0
	merged := false // whether result[writePos-1] came from a merge

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			gained += result[writePos-1]
			merged = true
			continue
		}

		result[writePos] = v
		writePos++
		merged = false
	}

	return result, gained
}

// lineIndices returns the cell indices of line n ordered so that the move
// in direction dir travels toward position 0.
func lineIndices(dir Direction, n int) [BoardSize]int {
	var idx [BoardSize]int
	for i := range BoardSize {
		switch dir {
		case DirLeft:
			idx[i] = n*BoardSize + i
		case DirRight:
			idx[i] = n*BoardSize + (BoardSize - 1 - i)
		case DirUp:
			idx[i] = i*BoardSize + n
		case DirDown:
			idx[i] = (BoardSize-1-i)*BoardSize + n
		default:
			panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
		}
	}
	return idx
}

// Slide applies a move to a grid without touching any game state.
// Returns the new grid, the score gained from merges and whether any cell changed.
func Slide(cells Cells, dir Direction) (Cells, int, bool) {
	out := cells
	totalGained := 0
	changed := false

	for n := range BoardSize {
		idx := lineIndices(dir, n)

		var line [BoardSize]int
		for i, at := range idx {
			line[i] = cells[at]
		}

		newLine, gained := slideLine(line)
		totalGained += gained

		if newLine != line {
			changed = true
		}

		for i, at := range idx {
			out[at] = newLine[i]
		}
	}

	return out, totalGained, changed
}

// ApplyMove slides the board in the given direction and adds merge points to the score.
// It does not spawn a tile or re-evaluate the status; see Play for a full turn.
// Returns false without touching the board when the game is already over.
func (b *Board) ApplyMove(dir Direction) bool {
	if b.status.Terminal() {
		return false
	}

	cells, gained, changed := Slide(b.cells, dir)
	if !changed {
		return false
	}

	b.cells = cells
	b.score += gained
	b.moves++
	return true
}
