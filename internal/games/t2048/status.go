package t2048

// Evaluate derives the status of a grid.
// A winning tile anywhere wins, even on an otherwise dead board.
func Evaluate(cells Cells, winTile int) Status {
	for _, v := range cells {
		if v == winTile {
			return StatusWon
		}
	}

	if !CanMove(cells) {
		return StatusLost
	}
	return StatusInProgress
}

// CheckStatus re-evaluates the board status, stores it and returns it.
func (b *Board) CheckStatus() Status {
	b.status = Evaluate(b.cells, b.rules.WinTile)
	return b.status
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(cells Cells) bool {
	for _, v := range cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
// Empty cells are not tiles and never count as a merge.
// Horizontal neighbours never wrap: the last column is not adjacent to the
// first column of the next row.
func HasPossibleMerge(cells Cells) bool {
	for i := range CellCount {
		if cells[i] == 0 {
			continue
		}
		if i%BoardSize != BoardSize-1 && cells[i] == cells[i+1] {
			return true
		}
		if i < CellCount-BoardSize && cells[i] == cells[i+BoardSize] {
			return true
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(cells Cells) bool {
	return HasEmptyCell(cells) || HasPossibleMerge(cells)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(cells Cells) int {
	maxVal := 0
	for _, v := range cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
