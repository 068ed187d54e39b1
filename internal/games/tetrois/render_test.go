package tetrois

import (
	"strings"
	"testing"

	"github.com/vporoshin/tetrois/internal/core"
)

func renderTestGame(t *testing.T, w, h int) (*Game, *core.Screen) {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: 60,
		Seed:     1,
	})
	return g, core.NewScreen(w, h)
}

func TestRenderWideLayoutUsesSidePanel(t *testing.T) {
	g, screen := renderTestGame(t, 80, 24)
	g.Render(screen)

	// 10-column grid: 32-wide box plus gap and an 18-wide panel fits in 80,
	// centered at x=14 with the panel starting at x=48.
	frame := screen.String()
	if !strings.Contains(frame, "T E T R O I S") {
		t.Error("frame should contain the title")
	}
	if !strings.Contains(frame, "SCORE") {
		t.Error("frame should contain the stats panel")
	}
	if strings.Contains(frame, "SCORE:") {
		t.Error("wide layout should not use the stacked panel format")
	}

	if got := screen.Get(14, 1); got != '┌' {
		t.Errorf("grid corner at (14,1) = %q, expected box corner", got)
	}
	if !strings.HasPrefix(screen.Row(3)[48:], "SCORE") {
		t.Errorf("panel row = %q, expected SCORE at column 48", screen.Row(3)[48:])
	}
}

func TestRenderNarrowLayoutStacksPanel(t *testing.T) {
	g, screen := renderTestGame(t, 40, 50)
	g.Render(screen)

	frame := screen.String()
	if !strings.Contains(frame, "SCORE: 0") {
		t.Errorf("narrow frame should contain the stacked stats block:\n%s", frame)
	}
	if !strings.Contains(frame, "HIGHSCORE: 0") {
		t.Error("stacked panel should list the high score")
	}

	// Grid box centered at x=4, title above it, stacked box below
	if got := screen.Get(4, 5); got != '┌' {
		t.Errorf("grid corner at (4,5) = %q, expected box corner", got)
	}
	if got := screen.Get(4, 27); got != '┌' {
		t.Errorf("stacked panel corner at (4,27) = %q, expected box corner", got)
	}
}

func TestRenderDrawsActivePieceAndGhost(t *testing.T) {
	g, screen := renderTestGame(t, 80, 24)
	g.current = NewPiece(KindO, g.board.Cols())
	g.Render(screen)

	// O piece at spawn: blocks (4,0)(5,0)(4,1)(5,1); grid interior starts at
	// (15, 2) with 3 columns per cell.
	for _, b := range g.current.Blocks {
		x := 15 + b.X*cellW
		y := 2 + b.Y
		if got := screen.Row(y)[x : x+cellW]; got != strBlock {
			t.Errorf("active cell (%d,%d) = %q, expected %q", b.X, b.Y, got, strBlock)
		}
		cell := screen.GetCell(x, y)
		if cell.Color != g.current.Color {
			t.Errorf("active cell color = %v, expected %v", cell.Color, g.current.Color)
		}
	}

	// Ghost of the O rests on the bottom rows 18/19 in the same columns
	for _, b := range []core.Vec{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		x := 15 + b.X*cellW
		y := 2 + b.Y
		if got := screen.Row(y)[x : x+cellW]; got != strGhost {
			t.Errorf("ghost cell (%d,%d) = %q, expected %q", b.X, b.Y, got, strGhost)
		}
		if screen.GetCell(x+1, y).Color != core.ColorGray {
			t.Errorf("ghost cell (%d,%d) should be gray", b.X, b.Y)
		}
	}
}

func TestRenderSettledBlocksWinOverGhost(t *testing.T) {
	g, screen := renderTestGame(t, 80, 24)
	g.current = NewPiece(KindO, g.board.Cols())

	// Settle a block inside the ghost's footprint; ghost now rests on top
	occupy(g.board, 4, 19, core.ColorRed)
	occupy(g.board, 5, 19, core.ColorRed)
	g.Render(screen)

	for _, x := range []int{4, 5} {
		sx := 15 + x*cellW
		if got := screen.Row(21)[sx : sx+cellW]; got != strBlock {
			t.Errorf("settled cell (%d,19) = %q, expected %q", x, got, strBlock)
		}
		if screen.GetCell(sx+1, 21).Color != core.ColorRed {
			t.Errorf("settled cell (%d,19) should keep its own color", x)
		}
	}
}

func TestRenderEmptyCellsUseFiller(t *testing.T) {
	g, screen := renderTestGame(t, 80, 24)
	g.Render(screen)

	// Column 0 row 10: no piece, ghost, or settled block there at spawn
	if got := screen.Row(12)[15 : 15+cellW]; got != strEmpty {
		t.Errorf("empty cell = %q, expected %q", got, strEmpty)
	}
}

func TestRenderDoesNotMutateGame(t *testing.T) {
	g, screen := renderTestGame(t, 80, 24)
	before := g.Snapshot()

	g.Render(screen)
	g.Render(screen)

	if g.Snapshot() != before {
		t.Errorf("Render mutated session state:\n%+v\n%+v", g.Snapshot(), before)
	}
	if countOccupied(g.board) != 0 {
		t.Error("Render mutated the board")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g, screen := renderTestGame(t, 80, 24)
	g.score = 1234
	g.gameOver = true
	g.Render(screen)

	frame := screen.String()
	if !strings.Contains(frame, "GAME OVER") {
		t.Error("overlay should announce game over")
	}
	if !strings.Contains(frame, "Final Score: 1234") {
		t.Error("overlay should show the final score")
	}
	if !strings.Contains(frame, "R: Restart  Q: Quit") {
		t.Error("overlay should show restart and quit hints")
	}
}

func TestRenderTinyScreenStillDrawsGrid(t *testing.T) {
	g, screen := renderTestGame(t, 20, 10)
	g.Render(screen)

	// The grid is clipped, never shrunk: the top-left corner stays visible
	if got := screen.Get(0, 1); got != '┌' {
		t.Errorf("clipped grid corner = %q, expected box corner", got)
	}
}
