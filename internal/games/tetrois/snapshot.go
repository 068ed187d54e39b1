package tetrois

import (
	"github.com/vporoshin/tetrois/internal/core"
)

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Score          int
	Level          int
	Lines          int
	HighScore      int
	DropIntervalMs int
	CurrentKind    Kind
	CurrentBlocks  [4]core.Vec
	NextKind       Kind
	GameOver       bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Level:          g.level,
		Lines:          g.lines,
		HighScore:      g.highScore,
		DropIntervalMs: g.dropIntervalMs,
		CurrentKind:    g.current.Kind,
		CurrentBlocks:  g.current.Blocks,
		NextKind:       g.next.Kind,
		GameOver:       g.gameOver,
	}
}
