package tetris

import (
	"fmt"
	"strings"
)

const (
	// Width is the number of columns on the board
	Width = 10
	// Height is the number of rows on the board; row 0 is the floor
	Height = 24
)

type row [Width]Cell

// Board is the grid of locked cells. The zero value is an empty board and a
// Board copied by value is an independent snapshot.
type Board struct {
	rows [Height]row
}

// NewBoard returns an empty board
func NewBoard() Board {
	return Board{}
}

func inBounds(pos Vector) bool {
	return pos.X >= 0 && pos.X < Width && pos.Y >= 0 && pos.Y < Height
}

// Get returns the content at pos, or Blocked when pos is off the board
func (b *Board) Get(pos Vector) Cell {
	if !inBounds(pos) {
		return Blocked
	}
	return b.rows[pos.Y][pos.X]
}

// IsFree reports whether pos is on the board and empty
func (b *Board) IsFree(pos Vector) bool {
	return b.Get(pos) == Empty
}

// CanPlace reports whether every block of piece lands on a free cell
func (b *Board) CanPlace(piece Piece) bool {
	for _, block := range piece.Blocks() {
		if !b.IsFree(block) {
			return false
		}
	}
	return true
}

// Place locks piece into the grid. It does not check CanPlace; blocks outside
// the board are dropped.
func (b *Board) Place(piece Piece) {
	cell := Occupied(piece.Shape)
	for _, block := range piece.Blocks() {
		if inBounds(block) {
			b.set(block, cell)
		}
	}
}

// set writes a single cell. Callers must have validated pos.
func (b *Board) set(pos Vector, cell Cell) {
	if !inBounds(pos) {
		panic(fmt.Sprintf("tetris: cell %s outside the board", pos))
	}
	b.rows[pos.Y][pos.X] = cell
}

// IsRowFull reports whether row y has no empty cell. Rows off the board are
// never full.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for _, cell := range b.rows[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and returns how many were removed.
// Rows are scanned from the floor upwards; surviving rows keep their
// relative order and the vacated rows at the top are left empty.
func (b *Board) ClearFullRows() int {
	write := 0
	for read := 0; read < Height; read++ {
		if b.IsRowFull(read) {
			continue
		}
		if write != read {
			b.rows[write] = b.rows[read]
		}
		write++
	}

	cleared := Height - write
	for y := write; y < Height; y++ {
		b.rows[y] = row{}
	}
	return cleared
}

// StackHeight returns the index of the highest non-empty row plus one
func (b *Board) StackHeight() int {
	for y := Height - 1; y >= 0; y-- {
		if b.rows[y] != (row{}) {
			return y + 1
		}
	}
	return 0
}

// String renders the board as text, ceiling first
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := Height - 1; y >= 0; y-- {
		for _, cell := range b.rows[y] {
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
