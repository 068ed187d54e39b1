// Package tetrois implements the falling-block puzzle game: piece and board
// model, collision and locking rules, line clearing, scoring, and leveling.
// All logic is pure and tick-driven; the platform layer owns the terminal.
package tetrois

import (
	"math/rand"

	"github.com/vporoshin/tetrois/internal/config"
	"github.com/vporoshin/tetrois/internal/core"
	"github.com/vporoshin/tetrois/internal/registry"
)

// forceLockMs is assigned to the gravity accumulator after a hard drop so
// the next gravity evaluation locks the piece immediately.
const forceLockMs = 1 << 20

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the tetrois session: board, active and next piece,
// score state, and gravity timing. It satisfies registry.Game.
type Game struct {
	tuning config.TetroisConfig
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	tick   uint64

	board   *Board
	current Piece
	next    Piece

	score     int
	level     int
	lines     int
	highScore int // Carried across Reset; seeded from storage by the platform

	dropIntervalMs int
	sinceDropMs    int
	msPerTick      int

	screenW  int
	screenH  int
	gameOver bool
}

// New creates a new game. State is established by Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetrois", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetrois"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetrois"
}

// Reset initializes or restarts the session. The board is rebuilt empty,
// both piece slots are drawn from the seeded RNG, and score state returns
// to its starting values. The in-memory high score survives restarts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tuning, err := config.Load(configPath)
	if err != nil {
		tuning = config.DefaultConfig()
	}
	g.tuning = tuning

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.msPerTick = cfg.MillisPerTick()

	g.board = NewBoard(tuning.Grid.Rows, tuning.Grid.Cols)
	g.current = g.spawnPiece()
	g.next = g.spawnPiece()

	g.score = 0
	g.level = 1
	g.lines = 0
	g.gameOver = false
	g.dropIntervalMs = tuning.Gravity.InitialMs
	g.sinceDropMs = 0
}

// spawnPiece draws a uniformly random piece at the spawn position.
func (g *Game) spawnPiece() Piece {
	kind := Kind(g.rng.Intn(KindCount))
	return NewPiece(kind, g.board.Cols())
}

// SetScreenSize records new terminal dimensions after a resize. The board
// and session state are untouched; the next Render adapts its layout.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
}

// SetHighScore seeds the in-memory high score, typically with the persisted
// value loaded at session start.
func (g *Game) SetHighScore(hs int) {
	g.highScore = hs
}

// HighScore returns the in-memory high score.
func (g *Game) HighScore() int {
	return g.highScore
}

// Step advances the simulation by one tick: applies at most one pending
// input action, then runs at most one gravity evaluation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)
	g.applyGravity()

	return core.StepResult{State: g.State()}
}

// processInput applies the tick's action to the active piece.
// Translations and rotations are probed on a scratch copy and committed only
// if collision-free; illegal moves are discarded silently.
func (g *Game) processInput(in core.InputFrame) {
	switch in.Action {
	case core.ActionLeft:
		g.tryMove(core.VecLeft)
	case core.ActionRight:
		g.tryMove(core.VecRight)
	case core.ActionSoftDrop:
		g.tryMove(core.VecDown)
	case core.ActionRotate:
		g.tryRotate()
	case core.ActionHardDrop:
		g.hardDrop()
	}
}

// tryMove commits a translation of the active piece if it stays
// collision-free.
func (g *Game) tryMove(delta core.Vec) bool {
	probe := g.current
	probe.Move(delta)
	if g.board.CheckCollision(probe) {
		return false
	}
	g.current = probe
	return true
}

// tryRotate rotates the active piece, falling back to wall kicks in fixed
// order: one cell right, else two cells left of the rotated layout. If no
// candidate is collision-free the rotation is abandoned.
func (g *Game) tryRotate() {
	rotated := g.current
	rotated.Rotate()
	if !g.board.CheckCollision(rotated) {
		g.current = rotated
		return
	}

	kicked := rotated
	kicked.Move(core.VecRight)
	if !g.board.CheckCollision(kicked) {
		g.current = kicked
		return
	}

	kicked = rotated
	kicked.Move(core.VecLeft)
	kicked.Move(core.VecLeft)
	if !g.board.CheckCollision(kicked) {
		g.current = kicked
	}
}

// hardDrop slams the active piece to its resting position and forces the
// next gravity evaluation to lock it.
func (g *Game) hardDrop() {
	for !g.board.CheckCollision(g.current) {
		g.current.Move(core.VecDown)
	}
	g.current.Move(core.VecUp)
	g.sinceDropMs = forceLockMs
}

// applyGravity advances the gravity accumulator by one tick and, when the
// drop interval has elapsed, moves the piece down or locks it in place.
func (g *Game) applyGravity() {
	g.sinceDropMs += g.msPerTick
	if g.sinceDropMs <= g.dropIntervalMs {
		return
	}
	g.sinceDropMs = 0

	if g.tryMove(core.VecDown) {
		return
	}
	g.lockAndSpawn()
}

// lockAndSpawn commits the active piece, clears lines, updates score, level
// and speed, promotes the next piece, and ends the session if the fresh
// spawn immediately collides.
func (g *Game) lockAndSpawn() {
	g.board.Lock(g.current)

	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.score += g.tuning.Scoring.LineScore(cleared) * g.level
		g.lines += cleared
		g.level = g.tuning.Scoring.Level(g.lines)
		g.dropIntervalMs = g.tuning.Gravity.DropInterval(g.level)
		if g.score > g.highScore {
			g.highScore = g.score
		}
	}

	g.current = g.next
	g.next = g.spawnPiece()

	if g.board.CheckCollision(g.current) {
		g.gameOver = true
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
	}
}
