package tetrois

import (
	"github.com/vporoshin/tetrois/internal/core"
)

// Cell is a single board position, either empty or occupied with the color
// of the piece that locked there.
type Cell struct {
	Occupied bool
	Color    core.Color
}

// Board is the fixed-size playfield: a rows x cols occupancy grid.
// It is created empty at game start and mutated only by Lock and ClearLines.
type Board struct {
	rows  int
	cols  int
	cells []Cell // row-major, index y*cols + x
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the board height in cells.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width in cells.
func (b *Board) Cols() int {
	return b.cols
}

// Inside reports whether p lies within the board bounds.
func (b *Board) Inside(p core.Vec) bool {
	return p.X >= 0 && p.X < b.cols && p.Y >= 0 && p.Y < b.rows
}

// Occupied reports whether p is blocked: positions outside the board count
// as occupied (walls and floor), as do in-bounds cells holding a settled
// block.
func (b *Board) Occupied(p core.Vec) bool {
	if !b.Inside(p) {
		return true
	}
	return b.cells[p.Y*b.cols+p.X].Occupied
}

// At returns the cell at p. Out-of-bounds positions read as empty.
func (b *Board) At(p core.Vec) Cell {
	if !b.Inside(p) {
		return Cell{}
	}
	return b.cells[p.Y*b.cols+p.X]
}

// CheckCollision reports whether any of the piece's blocks is occupied,
// by a wall or a settled block. Pure query; no mutation.
func (b *Board) CheckCollision(p Piece) bool {
	for _, block := range p.Blocks {
		if b.Occupied(block) {
			return true
		}
	}
	return false
}

// Lock commits the piece's blocks into the board, stamping each in-bounds
// cell with the piece's color. Out-of-bounds blocks are silently ignored.
func (b *Board) Lock(p Piece) {
	for _, block := range p.Blocks {
		if !b.Inside(block) {
			continue
		}
		b.cells[block.Y*b.cols+block.X] = Cell{Occupied: true, Color: p.Color}
	}
}

// ClearLines removes every fully-occupied row and packs the remaining rows
// against the bottom, preserving their relative order; the vacated top rows
// become empty. Returns the number of rows removed. The grid is rebuilt
// atomically rather than shifted in place.
func (b *Board) ClearLines() int {
	full := make(map[int]bool)
	for y := 0; y < b.rows; y++ {
		isFull := true
		for x := 0; x < b.cols; x++ {
			if !b.cells[y*b.cols+x].Occupied {
				isFull = false
				break
			}
		}
		if isFull {
			full[y] = true
		}
	}

	if len(full) == 0 {
		return 0
	}

	newCells := make([]Cell, b.rows*b.cols)
	targetY := b.rows - 1
	for y := b.rows - 1; y >= 0; y-- {
		if full[y] {
			continue
		}
		copy(newCells[targetY*b.cols:(targetY+1)*b.cols], b.cells[y*b.cols:(y+1)*b.cols])
		targetY--
	}

	b.cells = newCells
	return len(full)
}

// Ghost returns a copy of the piece dropped straight down to its resting
// position: translated one row at a time until it would collide, then
// stepped back up one row. Neither the board nor the argument is mutated.
func (b *Board) Ghost(p Piece) Piece {
	for !b.CheckCollision(p) {
		p.Move(core.VecDown)
	}
	p.Move(core.VecUp)
	return p
}
