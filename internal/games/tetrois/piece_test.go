package tetrois

import (
	"testing"

	"github.com/vporoshin/tetrois/internal/core"
)

func TestNewPieceSpawnLayouts(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected [4]core.Vec
	}{
		{KindO, [4]core.Vec{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}},
		{KindI, [4]core.Vec{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}}},
		{KindS, [4]core.Vec{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}},
		{KindZ, [4]core.Vec{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 1}, {X: 6, Y: 1}}},
		{KindT, [4]core.Vec{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1}}},
		{KindJ, [4]core.Vec{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 4, Y: 1}}},
		{KindL, [4]core.Vec{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := NewPiece(tc.kind, 10)
			if p.Blocks != tc.expected {
				t.Errorf("spawn blocks = %v, expected %v", p.Blocks, tc.expected)
			}
			if p.Kind != tc.kind {
				t.Errorf("kind = %v, expected %v", p.Kind, tc.kind)
			}
			if p.Color != kindColors[tc.kind] {
				t.Errorf("color = %v, expected %v", p.Color, kindColors[tc.kind])
			}
		})
	}
}

func TestPieceMove(t *testing.T) {
	p := NewPiece(KindT, 10)
	orig := p.Blocks

	p.Move(core.VecDown)
	for i := range p.Blocks {
		expected := orig[i].Add(core.VecDown)
		if p.Blocks[i] != expected {
			t.Errorf("block %d = %v, expected %v", i, p.Blocks[i], expected)
		}
	}

	p.Move(core.VecLeft)
	p.Move(core.VecRight)
	p.Move(core.VecUp)
	if p.Blocks != orig {
		t.Errorf("round trip moved blocks: %v vs %v", p.Blocks, orig)
	}
}

func TestRotateSquareIsIdentity(t *testing.T) {
	p := NewPiece(KindO, 10)
	orig := p.Blocks

	p.Rotate()
	if p.Blocks != orig {
		t.Errorf("O piece rotated: %v, expected %v", p.Blocks, orig)
	}
}

func TestRotatePivotsAroundFirstBlock(t *testing.T) {
	p := NewPiece(KindT, 10)
	// T spawns at (4,0)(5,0)(6,0)(5,1); pivot is (4,0).
	// rel -> (-rel.Y, rel.X) maps the row to a column below the pivot.
	expected := [4]core.Vec{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 3, Y: 1}}

	p.Rotate()
	if p.Blocks != expected {
		t.Errorf("rotated T = %v, expected %v", p.Blocks, expected)
	}

	if p.Blocks[0] != (core.Vec{X: 4, Y: 0}) {
		t.Error("pivot block must not move")
	}
}

func TestFourRotationsRestoreLayout(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			p := NewPiece(kind, 10)
			orig := p.Blocks

			for i := 0; i < 4; i++ {
				p.Rotate()
			}

			if p.Blocks != orig {
				t.Errorf("four rotations drifted: %v, expected %v", p.Blocks, orig)
			}
		})
	}
}

func TestPieceCopyIsIndependent(t *testing.T) {
	p := NewPiece(KindL, 10)
	scratch := p
	scratch.Move(core.VecDown)
	scratch.Rotate()

	if p.Blocks == scratch.Blocks {
		t.Error("mutating a copy must not affect the original")
	}
	if p.Blocks != NewPiece(KindL, 10).Blocks {
		t.Error("original piece changed")
	}
}

func TestMiniDisplays(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		mini := NewPiece(kind, 10).MiniDisplay()
		if mini[0] == "" {
			t.Errorf("%v preview has empty first row", kind)
		}
	}
}
