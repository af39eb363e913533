package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 4 // Height of each cell (including top border)

	boardW    = BoardSize*cellWidth + 1  // +1 for right border
	boardH    = BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight = 3

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 1 // +1 for the controls line
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	controls := g.Controls()
	if len(controls) > g.screenW {
		controls = "Arrows: Move | R: New | Q: Quit"
	}
	dst.DrawTextColor(core.Max(0, (g.screenW-len(controls))/2), boardY+boardH, controls, core.ColorMuted)

	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and progress info.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2 0 4 8"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorAccent)

	dst.DrawTextColor(boardX, 1, "Score:", core.ColorMuted)
	dst.DrawTextColor(boardX+7, 1, strconv.Itoa(g.board.Score()), core.ColorText)

	maxStr := strconv.Itoa(g.board.MaxTile())
	dst.DrawTextColor(boardX+boardW-len(maxStr)-5, 1, "Max:", core.ColorMuted)
	dst.DrawTextColor(boardX+boardW-len(maxStr), 1, maxStr, core.ColorText)

	movesStr := fmt.Sprintf("Moves: %d  Goal: %d", g.board.Moves(), g.rules.WinTile)
	dst.DrawTextColor(boardX+(boardW-len(movesStr))/2, 2, movesStr, core.ColorMuted)
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGrid)

	// Inner separators
	for i := 1; i < BoardSize; i++ {
		x := boardX + i*cellWidth
		y := boardY + i*cellHeight
		for yy := boardY + 1; yy < boardY+boardH-1; yy++ {
			dst.SetCell(x, yy, '│', core.ColorGrid)
		}
		for xx := boardX + 1; xx < boardX+boardW-1; xx++ {
			dst.SetCell(xx, y, '─', core.ColorGrid)
		}
	}
	for i := 1; i < BoardSize; i++ {
		for j := 1; j < BoardSize; j++ {
			dst.SetCell(boardX+i*cellWidth, boardY+j*cellHeight, '┼', core.ColorGrid)
		}
		dst.SetCell(boardX+i*cellWidth, boardY, '┬', core.ColorGrid)
		dst.SetCell(boardX+i*cellWidth, boardY+boardH-1, '┴', core.ColorGrid)
		dst.SetCell(boardX, boardY+i*cellHeight, '├', core.ColorGrid)
		dst.SetCell(boardX+boardW-1, boardY+i*cellHeight, '┤', core.ColorGrid)
	}

	cells := g.board.Cells()
	for row := range BoardSize {
		for col := range BoardSize {
			val := cells.At(row, col)
			color := core.TileColor(val)

			inner := core.NewRect(
				boardX+col*cellWidth+1,
				boardY+row*cellHeight+1,
				cellWidth-1,
				cellHeight-1,
			)
			dst.FillRect(inner, ' ', color)

			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((inner.W-len(valStr))/2, 0)
			dst.DrawTextColor(inner.X+padLeft, inner.Y+inner.H/2, valStr, color)
		}
	}
}

// renderOverlays draws the win/loss message over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch g.board.Status() {
	case StatusWon:
		g.drawOverlay(dst, centerX, centerY,
			"YOU WIN!",
			fmt.Sprintf("Score: %d", g.board.Score()),
			"R: new game",
		)
	case StatusLost:
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", g.board.MaxTile()),
			"R: new game",
		)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAccent)

	for i, line := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorAccent
		}
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
