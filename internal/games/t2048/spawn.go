package t2048

// EmptyIndices returns the indices of all empty cells in row-major order.
func EmptyIndices(cells Cells) []int {
	var empty []int
	for i, v := range cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// SpawnTile places a 2 (or a 4, with probability Rules.Spawn4Prob) on a
// uniformly chosen empty cell. It is a no-op when the board is full.
// Returns the index and value of the new tile and whether one was placed.
func (b *Board) SpawnTile() (index, value int, ok bool) {
	empty := EmptyIndices(b.cells)
	if len(empty) == 0 {
		return 0, 0, false
	}

	index = empty[b.rng.Intn(len(empty))]

	value = 2
	if b.rng.Float64() < b.rules.Spawn4Prob {
		value = 4
	}

	b.cells[index] = value
	return index, value, true
}
