package tetrois

import (
	"fmt"

	"github.com/vporoshin/tetrois/internal/core"
)

// Cell strings are three characters wide so blocks read as squares in a
// terminal's tall glyph grid.
const (
	cellW    = 3
	strBlock = "[#]"
	strGhost = " # "
	strEmpty = " . "
)

// Panel layout constants.
const (
	panelGap     = 2
	panelW       = 18
	titleH       = 1
	stackedLines = 16 // stats + NEXT preview + controls legend
)

const gameTitle = "T E T R O I S"

// Render draws the full frame: title, bordered grid, and either a side
// panel (when the terminal is wide enough) or a stacked panel below the
// grid. The view is centered; the grid is always drawn at full size, so a
// too-small terminal clips at the screen edges rather than shrinking the
// playfield. Game state is not mutated.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := g.board.Rows()
	cols := g.board.Cols()

	innerW := cols * cellW
	gridW := innerW + 2
	gridH := rows + 2
	stackedH := stackedLines + 2

	sidePanel := dst.Width() >= gridW+panelGap+panelW

	viewW := gridW
	viewH := titleH + gridH
	if sidePanel {
		viewW = gridW + panelGap + panelW
	} else {
		viewH += stackedH
	}

	originX := core.Max(0, (dst.Width()-viewW)/2)
	originY := core.Max(0, (dst.Height()-viewH)/2)

	titleX := originX + core.Max(0, (viewW-len(gameTitle))/2)
	dst.DrawTextColor(titleX, originY, gameTitle, core.ColorMagenta)

	gridX := originX
	gridY := originY + titleH
	g.renderGrid(dst, gridX, gridY)

	if sidePanel {
		g.renderSidePanel(dst, gridX+gridW+panelGap, gridY)
	} else {
		g.renderStackedPanel(dst, gridX, gridY+gridH, gridW)
	}

	if g.gameOver {
		g.renderGameOver(dst)
	}
}

// renderGrid draws the bordered playfield. Cell priority, highest first:
// active piece, ghost marker, settled block, empty filler. Ghost cells are
// never drawn over settled occupants.
func (g *Game) renderGrid(dst *core.Screen, gridX, gridY int) {
	rows := g.board.Rows()
	cols := g.board.Cols()

	dst.DrawBox(gridX, gridY, cols*cellW+2, rows+2)

	curMask := g.blockMask(g.current)
	ghostMask := g.blockMask(g.board.Ghost(g.current))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := core.Vec{X: x, Y: y}
			cell := g.board.At(p)

			str := strEmpty
			color := core.ColorDefault

			switch {
			case curMask[p]:
				str = strBlock
				color = g.current.Color
			case ghostMask[p] && !cell.Occupied:
				str = strGhost
				color = core.ColorGray
			case cell.Occupied:
				str = strBlock
				color = cell.Color
			}

			dst.DrawTextColor(gridX+1+x*cellW, gridY+1+y, str, color)
		}
	}
}

// blockMask returns the set of in-bounds cells covered by the piece.
func (g *Game) blockMask(p Piece) map[core.Vec]bool {
	mask := make(map[core.Vec]bool, len(p.Blocks))
	for _, b := range p.Blocks {
		if g.board.Inside(b) {
			mask[b] = true
		}
	}
	return mask
}

// renderSidePanel draws the stats column to the right of the grid, aligned
// with the grid box. Content rows follow the grid's cell rows.
func (g *Game) renderSidePanel(dst *core.Screen, panelX, panelY int) {
	rows := g.board.Rows()

	line := func(row int, text string, color core.Color) {
		if len(text) > panelW {
			text = text[:panelW]
		}
		dst.DrawTextColor(panelX, panelY+1+row, text, color)
	}

	line(1, "SCORE", core.ColorYellow)
	line(2, fmt.Sprintf("%d", g.score), core.ColorGreen)
	line(4, "LEVEL", core.ColorYellow)
	line(5, fmt.Sprintf("%d", g.level), core.ColorCyan)
	line(7, "LINES", core.ColorYellow)
	line(8, fmt.Sprintf("%d", g.lines), core.ColorBlue)
	line(10, "HIGHSCORE", core.ColorYellow)
	line(11, fmt.Sprintf("%d", g.highScore), core.ColorRed)

	line(12, "NEXT", core.ColorYellow)
	mini := g.next.MiniDisplay()
	line(13, mini[0], g.next.Color)
	line(14, mini[1], g.next.Color)

	line(rows-5, "CONTROLS", core.ColorYellow)
	line(rows-4, "A/D: Move", core.ColorDefault)
	line(rows-3, "W: Rotate", core.ColorDefault)
	line(rows-2, "S: Down", core.ColorDefault)
	line(rows-1, "Space: Drop", core.ColorDefault)
}

// renderStackedPanel draws a boxed stats block under the grid for narrow
// terminals. Content is truncated to the grid width.
func (g *Game) renderStackedPanel(dst *core.Screen, x, y, w int) {
	dst.DrawBox(x, y, w, stackedLines+2)

	contentW := w - 2
	row := y + 1
	line := func(text string, color core.Color) {
		if len(text) > contentW {
			text = text[:contentW]
		}
		dst.DrawTextColor(x+1, row, text, color)
		row++
	}

	line(fmt.Sprintf("SCORE: %d", g.score), core.ColorGreen)
	line(fmt.Sprintf("LEVEL: %d", g.level), core.ColorCyan)
	line(fmt.Sprintf("LINES: %d", g.lines), core.ColorBlue)
	line(fmt.Sprintf("HIGHSCORE: %d", g.highScore), core.ColorRed)
	line("NEXT", core.ColorYellow)
	mini := g.next.MiniDisplay()
	line(mini[0], g.next.Color)
	line(mini[1], g.next.Color)
	line("", core.ColorDefault)
	line("", core.ColorDefault)
	line("", core.ColorDefault)
	line("", core.ColorDefault)
	line("CONTROLS", core.ColorYellow)
	line("A/D: Move", core.ColorDefault)
	line("W: Rotate", core.ColorDefault)
	line("S: Down", core.ColorDefault)
	line("Space: Drop", core.ColorDefault)
}

// renderGameOver draws a centered overlay with the final score and restart
// hint on top of the frozen playfield.
func (g *Game) renderGameOver(dst *core.Screen) {
	line1 := "GAME OVER"
	line2 := fmt.Sprintf("Final Score: %d", g.score)
	line3 := "R: Restart  Q: Quit"

	boxW := core.Max(core.Max(len(line1), len(line2)), len(line3)) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Blank the interior so the overlay is readable over the grid
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	center := func(text string, row int, color core.Color) {
		dst.DrawTextColor(boxX+(boxW-len(text))/2, boxY+row, text, color)
	}
	center(line1, 1, core.ColorRed)
	center(line2, 3, core.ColorGreen)
	center(line3, 5, core.ColorYellow)
}
