package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

const (
	cellWidth = 2  // Terminal columns per grid cell
	hudGap    = 2  // Space between the well and the score panel
	hudWidth  = 14 // Width of the score panel
	hudHeight = 13 // Four label/value pairs plus the preset line
	titleRows = 1  // Title line above the well
)

// minScreen returns the smallest screen that fits the well and the panel.
func (g *Game) minScreen() (int, int) {
	wellW, wellH := g.wellSize()
	return wellW + hudGap + hudWidth, max(wellH, hudHeight) + titleRows
}

// wellSize returns the bordered well dimensions in screen cells.
func (g *Game) wellSize() (int, int) {
	return g.cfg.Board.Cols*cellWidth + 2, g.cfg.Board.Rows + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW, wellH := g.wellSize()
	totalW := wellW + hudGap + hudWidth
	well := core.NewRect(
		max(0, (g.screenW-totalW)/2),
		max(titleRows, (g.screenH-wellH)/2),
		wellW, wellH,
	)

	dst.DrawTextColored(well.X+(wellW-len("BLOCKS"))/2, well.Y-1, "BLOCKS", core.ColorWhite)
	dst.DrawBox(well, core.ColorGray)

	g.renderGrid(dst, well)
	g.renderHUD(dst, well.Right()+hudGap, well.Y)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreen()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderGrid draws settled cells, the landing preview and the falling piece.
func (g *Game) renderGrid(dst *core.Screen, well core.Rect) {
	grid := g.session.Grid()
	originX, originY := well.X+1, well.Y+1

	for row := range grid.Rows() {
		for col := range grid.Cols() {
			x := originX + col*cellWidth
			y := originY + row
			if k := grid.At(col, row); k != engine.KindNone {
				drawCell(dst, x, y, BlockGlyph, ColorOf(k))
			} else {
				dst.SetColored(x, y, EmptyGlyph, core.ColorGray)
			}
		}
	}

	if g.session.GameOver() {
		return
	}

	piece := g.session.Piece()
	ghost := piece.Clone()
	for engine.SoftDrop(ghost, grid) == engine.DropMoved {
	}
	for _, c := range ghost.Cells() {
		if c.Y >= 0 {
			drawCell(dst, originX+c.X*cellWidth, originY+c.Y, GhostGlyph, core.ColorGray)
		}
	}
	for _, c := range piece.Cells() {
		if c.Y >= 0 {
			drawCell(dst, originX+c.X*cellWidth, originY+c.Y, BlockGlyph, ColorOf(piece.Kind))
		}
	}
}

func drawCell(dst *core.Screen, x, y int, glyph rune, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, glyph, c)
	}
}

// renderHUD draws the score panel to the right of the well.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	st := g.session.Stats()
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", st.Score)},
		{"LEVEL", fmt.Sprintf("%d", st.Level)},
		{"LINES", fmt.Sprintf("%d", st.Lines)},
		{"SPEED", fmt.Sprintf("%dms", g.session.DropInterval())},
	}
	for i, r := range rows {
		dst.DrawTextColored(x, y+i*3, r.label, core.ColorGray)
		dst.DrawTextColored(x, y+i*3+1, r.value, core.ColorWhite)
	}

	if preset := g.cfg.Difficulty.Preset; preset != "" {
		dst.DrawTextColored(x, y+len(rows)*3, preset, core.ColorGray)
	}
}

// renderOverlays draws pause and game over boxes over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	switch {
	case g.session.GameOver():
		score := fmt.Sprintf("Score: %d", g.session.Stats().Score)
		drawOverlay(dst, well, core.ColorRed, "GAME OVER", score, "R to restart")
	case g.session.Paused():
		drawOverlay(dst, well, core.ColorYellow, "PAUSED", "P to resume")
	}
}

// drawOverlay draws a boxed, centered message inside r.
func drawOverlay(dst *core.Screen, r core.Rect, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := r.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
