package tetrois

import (
	"github.com/vporoshin/tetrois/internal/core"
)

// Kind identifies one of the seven canonical tetromino shapes.
type Kind int

const (
	KindO Kind = iota
	KindI
	KindS
	KindZ
	KindT
	KindJ
	KindL
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// String returns the conventional one-letter name for the kind.
func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// spawnOffsets holds each kind's four blocks relative to the spawn base
// column, occupying the top two grid rows. The first block is the rotation
// pivot.
var spawnOffsets = [KindCount][4]core.Vec{
	KindO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindI: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	KindS: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindT: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
	KindJ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}},
	KindL: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}},
}

// kindColors maps each kind to its display color.
var kindColors = [KindCount]core.Color{
	KindO: core.ColorYellow,
	KindI: core.ColorCyan,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindT: core.ColorMagenta,
	KindJ: core.ColorBlue,
	KindL: core.ColorWhite,
}

// miniDisplays are the two-row previews shown in the NEXT box, per kind.
var miniDisplays = [KindCount][2]string{
	KindO: {"[#][#]", "[#][#]"},
	KindI: {"[#][#][#][#]", ""},
	KindS: {"   [#][#]", "[#][#]"},
	KindZ: {"[#][#]", "   [#][#]"},
	KindT: {"   [#]", "[#][#][#]"},
	KindJ: {"[#][#][#]", "[#]"},
	KindL: {"[#][#][#]", "      [#]"},
}

// Piece is a tetromino instance: a kind, its color, and four absolute grid
// positions. It is a value type; copying a Piece copies its blocks, so
// callers can probe moves on a scratch copy before committing.
type Piece struct {
	Kind   Kind
	Color  core.Color
	Blocks [4]core.Vec
}

// NewPiece creates a piece of the given kind at its spawn position for a
// board with the given column count (blocks land in the top two rows around
// the center).
func NewPiece(kind Kind, cols int) Piece {
	base := cols/2 - 1
	p := Piece{
		Kind:  kind,
		Color: kindColors[kind],
	}
	for i, off := range spawnOffsets[kind] {
		p.Blocks[i] = core.Vec{X: base + off.X, Y: off.Y}
	}
	return p
}

// Move translates every block by the given delta.
// No validity check is performed; callers must test collision before
// committing.
func (p *Piece) Move(delta core.Vec) {
	for i := range p.Blocks {
		p.Blocks[i] = p.Blocks[i].Add(delta)
	}
}

// Rotate turns the piece 90 degrees clockwise about its first block.
// The square piece does not rotate. No orientation index is stored: the new
// layout is derived from the current relative offsets via
// rel -> (-rel.Y, rel.X). Since the pivot's own offset is always zero, four
// consecutive rotations restore the original layout exactly.
// Callers are responsible for collision-checking the result.
func (p *Piece) Rotate() {
	if p.Kind == KindO {
		return
	}
	pivot := p.Blocks[0]
	for i := range p.Blocks {
		rel := p.Blocks[i].Sub(pivot)
		p.Blocks[i] = core.Vec{
			X: pivot.X - rel.Y,
			Y: pivot.Y + rel.X,
		}
	}
}

// MiniDisplay returns the two preview rows for the piece's kind.
func (p Piece) MiniDisplay() [2]string {
	return miniDisplays[p.Kind]
}
