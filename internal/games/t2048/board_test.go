package t2048

import (
	"math/rand"
	"strconv"
	"testing"
)

// fixedRand is a Rand that always picks the same slot and coin value.
type fixedRand struct {
	index int
	coin  float64
}

func (r fixedRand) Intn(n int) int {
	if r.index >= n {
		return n - 1
	}
	return r.index
}

func (r fixedRand) Float64() float64 {
	return r.coin
}

func countTiles(c Cells) int {
	n := 0
	for _, v := range c {
		if v != 0 {
			n++
		}
	}
	return n
}

func sumTiles(c Cells) int {
	sum := 0
	for _, v := range c {
		sum += v
	}
	return sum
}

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "compaction without merge",
			input:    [4]int{2, 0, 4, 0},
			expected: [4]int{2, 4, 0, 0},
			score:    0,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "empty line",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "merge after non-matching tile",
			input:    [4]int{4, 2, 2, 8},
			expected: [4]int{4, 4, 8, 0},
			score:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideAllDirections(t *testing.T) {
	board := Cells{
		2, 2, 0, 0,
		4, 0, 4, 0,
		2, 2, 2, 2,
		0, 0, 0, 2,
	}

	tests := []struct {
		dir      Direction
		expected Cells
		score    int
	}{
		{
			dir: DirLeft,
			expected: Cells{
				4, 0, 0, 0,
				8, 0, 0, 0,
				4, 4, 0, 0,
				2, 0, 0, 0,
			},
			score: 4 + 8 + 8,
		},
		{
			dir: DirRight,
			expected: Cells{
				0, 0, 0, 4,
				0, 0, 0, 8,
				0, 0, 4, 4,
				0, 0, 0, 2,
			},
			score: 4 + 8 + 8,
		},
		{
			dir: DirUp,
			expected: Cells{
				2, 4, 4, 4,
				4, 0, 2, 0,
				2, 0, 0, 0,
				0, 0, 0, 0,
			},
			score: 4 + 4,
		},
		{
			dir: DirDown,
			expected: Cells{
				0, 0, 0, 0,
				2, 0, 0, 0,
				4, 0, 4, 0,
				2, 4, 2, 4,
			},
			score: 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, score, changed := Slide(board, tt.dir)
			if result != tt.expected {
				t.Errorf("Slide(%s): got\n%v\nwant\n%v", tt.dir, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%s) score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%s) should report a change", tt.dir)
			}
		})
	}
}

func TestApplyMoveRowOfTwos(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected []int
	}{
		{DirLeft, []int{4, 4, 0, 0}},
		{DirRight, []int{0, 0, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := BoardFromCells([]int{
				2, 2, 2, 2,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			}, fixedRand{}, DefaultRules())

			if !b.ApplyMove(tt.dir) {
				t.Fatal("ApplyMove should report a change")
			}

			cells := b.Cells()
			for i, want := range tt.expected {
				if cells[i] != want {
					t.Errorf("row 0 = %v, want %v", cells[:4], tt.expected)
					break
				}
			}
			if b.Score() != 8 {
				t.Errorf("Score() = %d, want 8", b.Score())
			}
		})
	}
}

func TestApplyMoveCompactionOnly(t *testing.T) {
	b := BoardFromCells([]int{
		2, 0, 4, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, fixedRand{}, DefaultRules())

	if !b.ApplyMove(DirLeft) {
		t.Fatal("sliding a gap should count as a change")
	}

	cells := b.Cells()
	if cells[0] != 2 || cells[1] != 4 || cells[2] != 0 || cells[3] != 0 {
		t.Errorf("row 0 = %v, want [2 4 0 0]", cells[:4])
	}
	if b.Score() != 0 {
		t.Errorf("Score() = %d, want 0", b.Score())
	}
}

func TestApplyMoveNoChangeIsIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		dir   Direction
	}{
		{
			name:  "empty board",
			cells: make([]int, CellCount),
			dir:   DirLeft,
		},
		{
			name: "already left aligned",
			cells: []int{
				4, 2, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
			dir: DirLeft,
		},
		{
			name: "packed lines without pairs",
			cells: []int{
				2, 4, 8, 16,
				4, 8, 16, 32,
				2, 4, 8, 16,
				4, 8, 16, 32,
			},
			dir: DirRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoardFromCells(tt.cells, fixedRand{}, DefaultRules())
			before := b.Cells()

			if b.ApplyMove(tt.dir) {
				t.Fatal("first move should not change the board")
			}
			if b.ApplyMove(tt.dir) {
				t.Fatal("second move should not change the board either")
			}
			if b.Cells() != before {
				t.Errorf("board drifted:\n%v\nwant\n%v", b.Cells(), before)
			}
			if b.Score() != 0 || b.Moves() != 0 {
				t.Errorf("score/moves = %d/%d, want 0/0", b.Score(), b.Moves())
			}
		})
	}
}

func TestApplyMoveConservesTiles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		var cells Cells
		for j := range cells {
			if rng.Intn(3) == 0 {
				continue
			}
			cells[j] = 2 << rng.Intn(4)
		}

		for _, dir := range Directions {
			out, gained, changed := Slide(cells, dir)

			if countTiles(out) > countTiles(cells) {
				t.Fatalf("Slide(%s) grew tile count: %v -> %v", dir, cells, out)
			}
			if sumTiles(out) != sumTiles(cells) {
				t.Fatalf("Slide(%s) changed tile sum: %v -> %v", dir, cells, out)
			}
			if gained%4 != 0 {
				t.Fatalf("Slide(%s) gained %d, merges always produce >= 4", dir, gained)
			}
			if !changed && out != cells {
				t.Fatalf("Slide(%s) reported no change but grid differs", dir)
			}
			if !changed {
				if _, _, again := Slide(out, dir); again {
					t.Fatalf("Slide(%s) not idempotent on unchanged grid %v", dir, out)
				}
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		cells    Cells
		expected Status
	}{
		{
			name: "win anywhere",
			cells: Cells{
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 2048,
				0, 0, 0, 0,
			},
			expected: StatusWon,
		},
		{
			name: "win beats a dead board",
			cells: Cells{
				2, 4, 2, 4,
				4, 2, 4, 2,
				2, 4, 2048, 4,
				4, 2, 4, 2,
			},
			expected: StatusWon,
		},
		{
			name: "checkerboard is lost",
			cells: Cells{
				2, 4, 2, 4,
				4, 2, 4, 2,
				2, 4, 2, 4,
				4, 2, 4, 2,
			},
			expected: StatusLost,
		},
		{
			name: "full board with horizontal pair",
			cells: Cells{
				2, 2, 8, 16,
				32, 64, 128, 256,
				512, 1024, 4, 8,
				16, 32, 64, 128,
			},
			expected: StatusInProgress,
		},
		{
			name: "full board with vertical pair",
			cells: Cells{
				2, 4, 8, 16,
				32, 64, 128, 16,
				512, 1024, 4, 8,
				16, 32, 64, 128,
			},
			expected: StatusInProgress,
		},
		{
			name: "empty cell keeps game going",
			cells: Cells{
				2, 4, 2, 4,
				4, 2, 4, 2,
				2, 4, 0, 4,
				4, 2, 4, 2,
			},
			expected: StatusInProgress,
		},
		{
			name: "equal values across a row boundary are not adjacent",
			cells: Cells{
				2, 4, 8, 16,
				16, 8, 4, 2,
				2, 4, 8, 16,
				16, 8, 4, 2,
			},
			expected: StatusLost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cells, 2048); got != tt.expected {
				t.Errorf("Evaluate() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestSpawnTile(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := NewBoard(rng, DefaultRules())

	for i := 1; i <= CellCount; i++ {
		before := b.Cells()
		idx, val, ok := b.SpawnTile()
		if !ok {
			t.Fatalf("spawn %d: expected a tile on a board with empty cells", i)
		}
		if before[idx] != 0 {
			t.Fatalf("spawn %d: placed on occupied cell %d", i, idx)
		}
		if val != 2 && val != 4 {
			t.Fatalf("spawn %d: value %d, want 2 or 4", i, val)
		}
		if countTiles(b.Cells()) != i {
			t.Fatalf("spawn %d: tile count = %d", i, countTiles(b.Cells()))
		}
	}

	full := b.Cells()
	if _, _, ok := b.SpawnTile(); ok {
		t.Error("SpawnTile on a full board should be a no-op")
	}
	if b.Cells() != full {
		t.Error("SpawnTile on a full board changed cells")
	}
}

func TestSpawnTileValue(t *testing.T) {
	tests := []struct {
		name     string
		coin     float64
		expected int
	}{
		{"low roll spawns four", 0.05, 4},
		{"high roll spawns two", 0.95, 2},
		{"boundary spawns two", 0.10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(fixedRand{index: 3, coin: tt.coin}, DefaultRules())
			idx, val, ok := b.SpawnTile()
			if !ok || idx != 3 {
				t.Fatalf("SpawnTile() = (%d, %d, %v), want index 3", idx, val, ok)
			}
			if val != tt.expected {
				t.Errorf("value = %d, want %d", val, tt.expected)
			}
		})
	}
}

func TestReset(t *testing.T) {
	b := BoardFromCells([]int{
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 4,
		4, 2, 4, 2,
	}, rand.New(rand.NewSource(1)), DefaultRules())
	b.score = 1234

	if b.Status() != StatusLost {
		t.Fatalf("precondition: status = %s, want lost", b.Status())
	}

	b.Reset()

	if n := countTiles(b.Cells()); n != 2 {
		t.Errorf("tiles after reset = %d, want 2", n)
	}
	if b.Score() != 0 {
		t.Errorf("score after reset = %d, want 0", b.Score())
	}
	if b.Status() != StatusInProgress {
		t.Errorf("status after reset = %s, want in_progress", b.Status())
	}
	if b.Moves() != 0 {
		t.Errorf("moves after reset = %d, want 0", b.Moves())
	}
}

func TestDeterministicReset(t *testing.T) {
	b1 := NewBoard(rand.New(rand.NewSource(12345)), DefaultRules())
	b1.Reset()

	b2 := NewBoard(rand.New(rand.NewSource(12345)), DefaultRules())
	b2.Reset()

	if b1.Cells() != b2.Cells() {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", b1.Cells(), b2.Cells())
	}
}

func TestPlaySpawnsAndEvaluates(t *testing.T) {
	b := BoardFromCells([]int{
		1024, 1024, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, fixedRand{index: 0, coin: 0.5}, DefaultRules())

	if !b.Play(DirLeft) {
		t.Fatal("Play should report a change")
	}

	if b.Status() != StatusWon {
		t.Errorf("status = %s, want won", b.Status())
	}
	if b.Score() != 2048 {
		t.Errorf("score = %d, want 2048", b.Score())
	}
	// One merge (2 -> 1 tiles) plus one spawned tile.
	if n := countTiles(b.Cells()); n != 2 {
		t.Errorf("tiles = %d, want 2", n)
	}
	if b.Moves() != 1 {
		t.Errorf("moves = %d, want 1", b.Moves())
	}
}

func TestPlayWithoutChangeDoesNotSpawn(t *testing.T) {
	b := BoardFromCells([]int{
		2, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, fixedRand{}, DefaultRules())

	if b.Play(DirLeft) {
		t.Fatal("Play should not report a change")
	}
	if n := countTiles(b.Cells()); n != 1 {
		t.Errorf("tiles = %d, want 1 (no spawn on a no-op move)", n)
	}
}

func TestTerminalStatusIsSticky(t *testing.T) {
	b := BoardFromCells([]int{
		2048, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 2,
	}, fixedRand{}, DefaultRules())

	if b.Status() != StatusWon {
		t.Fatalf("status = %s, want won", b.Status())
	}

	before := b.Cells()
	for _, dir := range Directions {
		if b.Play(dir) {
			t.Errorf("Play(%s) accepted a move after the game was won", dir)
		}
		if b.ApplyMove(dir) {
			t.Errorf("ApplyMove(%s) accepted a move after the game was won", dir)
		}
	}
	if b.Cells() != before {
		t.Error("board changed after a terminal status")
	}
}

func TestPlayUntilOver(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(3)), DefaultRules())
	b.Reset()

	lastScore := 0
	for i := 0; i < 10000 && !b.Status().Terminal(); i++ {
		b.Play(Directions[i%len(Directions)])
		if b.Score() < lastScore {
			t.Fatalf("score decreased from %d to %d", lastScore, b.Score())
		}
		lastScore = b.Score()
	}

	if !b.Status().Terminal() {
		t.Fatal("game should end within 10000 moves")
	}
	if b.Status() == StatusLost && CanMove(b.Cells()) {
		t.Error("lost board still has a move")
	}
}

func TestBoardFromCellsPanics(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
	}{
		{"too short", []int{2, 2}},
		{"too long", make([]int, CellCount+1)},
		{"not a power of two", append([]int{3}, make([]int, CellCount-1)...)},
		{"one is not a tile", append([]int{1}, make([]int, CellCount-1)...)},
		{"negative", append([]int{-2}, make([]int, CellCount-1)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			BoardFromCells(tt.cells, fixedRand{}, DefaultRules())
		})
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an invalid direction")
		}
	}()
	b := BoardFromCells(make([]int, CellCount), fixedRand{}, DefaultRules())
	b.ApplyMove(Direction(42))
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
	}{
		{"left", DirLeft},
		{"H", DirLeft},
		{" right ", DirRight},
		{"l", DirRight},
		{"up", DirUp},
		{"w", DirUp},
		{"Down", DirDown},
		{"j", DirDown},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.expected)
		}
	}

	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection(diagonal) should fail")
	}
}

func TestZeroRulesUseStandardWinTile(t *testing.T) {
	b := NewBoard(rand.New(rand.NewSource(1)), Rules{})
	b.Reset()

	if b.Rules().WinTile != 2048 {
		t.Fatalf("WinTile = %d, want 2048", b.Rules().WinTile)
	}

	moved := false
	for _, dir := range Directions {
		if b.Play(dir) {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("no direction changed a fresh board")
	}
	if b.Status() != StatusInProgress {
		t.Errorf("status after one move = %s, want in_progress (cells %v)", b.Status(), b.Cells())
	}

	g := New(Rules{})
	if g.rules.WinTile != 2048 {
		t.Errorf("game WinTile = %d, want 2048", g.rules.WinTile)
	}
}

func TestInvalidWinTilePanics(t *testing.T) {
	for _, win := range []int{-2, 1, 2, 3, 100} {
		t.Run(strconv.Itoa(win), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for win tile %d", win)
				}
			}()
			NewBoard(fixedRand{}, Rules{WinTile: win})
		})
	}
}

func TestSpawnDistribution(t *testing.T) {
	const draws = 20000
	b := NewBoard(rand.New(rand.NewSource(99)), DefaultRules())

	fours := 0
	perCell := make([]int, CellCount)
	for i := 0; i < draws; i++ {
		b.cells = Cells{}
		idx, val, ok := b.SpawnTile()
		if !ok {
			t.Fatal("SpawnTile on an empty board failed")
		}
		perCell[idx]++
		if val == 4 {
			fours++
		}
	}

	if share := float64(fours) / draws; share < 0.08 || share > 0.12 {
		t.Errorf("share of 4s = %.3f, want about 0.10", share)
	}

	// Expected 1250 per cell; allow 20% either way.
	for i, n := range perCell {
		if n < 1000 || n > 1500 {
			t.Errorf("cell %d chosen %d times, want about %d", i, n, draws/CellCount)
		}
	}
}

func TestHasPossibleMerge(t *testing.T) {
	tests := []struct {
		name     string
		cells    Cells
		expected bool
	}{
		{"empty board", Cells{}, false},
		{"lone tiles", Cells{2, 0, 4, 0, 0, 8, 0, 16}, false},
		{"horizontal pair", Cells{2, 2}, true},
		{"vertical pair", Cells{0, 0, 0, 8, 0, 0, 0, 8}, true},
		{"pair across row end", Cells{0, 0, 0, 4, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPossibleMerge(tt.cells); got != tt.expected {
				t.Errorf("HasPossibleMerge(%v) = %v, want %v", tt.cells, got, tt.expected)
			}
		})
	}
}
