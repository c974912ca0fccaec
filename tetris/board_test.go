package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int32, shape Shape) {
	for x := int32(0); x < Width; x++ {
		b.set(Vec(x, y), Occupied(shape))
	}
}

func TestBoardGetOutOfBounds(t *testing.T) {
	var b Board

	tests := []Vector{
		{-1, 0}, {0, -1}, {Width, 0}, {0, Height},
		{-1, -1}, {Width, Height}, {-100, 5}, {5, 100},
	}
	for _, pos := range tests {
		t.Run(pos.String(), func(t *testing.T) {
			assert.Equal(t, Blocked, b.Get(pos))
			assert.False(t, b.IsFree(pos))
		})
	}

	assert.True(t, b.IsFree(Vec(Width-1, 0)))
	assert.True(t, b.IsFree(Vec(0, Height-1)))
	assert.True(t, b.IsFree(Vec(3, 5)))
}

func TestBoardGetNeverPanicsAcrossRange(t *testing.T) {
	var b Board
	for x := int32(-3); x < Width+3; x++ {
		for y := int32(-3); y < Height+3; y++ {
			pos := Vec(x, y)
			want := Empty
			if x < 0 || x >= Width || y < 0 || y >= Height {
				want = Blocked
			}
			if got := b.Get(pos); got != want {
				t.Errorf("Get(%s) = %s, want %s", pos, got, want)
			}
		}
	}
}

func TestBoardCanPlace(t *testing.T) {
	var b Board
	b.set(Vec(5, 0), Occupied(O))

	t.Run("free cells", func(t *testing.T) {
		assert.True(t, b.CanPlace(NewPiece(I, Vec(4, 5))))
	})

	t.Run("overlapping a locked cell", func(t *testing.T) {
		assert.False(t, b.CanPlace(NewPiece(I, Vec(4, 0))))
	})

	t.Run("partly outside the board", func(t *testing.T) {
		assert.False(t, b.CanPlace(NewPiece(I, Vec(0, 5))))
		assert.False(t, b.CanPlace(NewPiece(I, Vec(8, 5))))
		assert.False(t, b.CanPlace(NewPiece(T, Vec(4, Height-1))))
		assert.False(t, b.CanPlace(NewPiece(T, Vec(4, -1))))
	})

	t.Run("matches per-block check", func(t *testing.T) {
		for _, shape := range Shapes() {
			for x := int32(-2); x < Width+2; x++ {
				for y := int32(-2); y < 3; y++ {
					piece := NewPiece(shape, Vec(x, y))
					anyObstructed := false
					for _, block := range piece.Blocks() {
						if b.Get(block) != Empty {
							anyObstructed = true
						}
					}
					assert.Equal(t, !anyObstructed, b.CanPlace(piece), piece.String())
				}
			}
		}
	})
}

func TestBoardPlace(t *testing.T) {
	var b Board
	piece := NewPiece(L, Vec(3, 0))
	require.True(t, b.CanPlace(piece))

	before := b
	b.Place(piece)

	covered := make(map[Vector]bool)
	for _, block := range piece.Blocks() {
		covered[block] = true
		assert.Equal(t, Occupied(L), b.Get(block))
	}

	for x := int32(0); x < Width; x++ {
		for y := int32(0); y < Height; y++ {
			pos := Vec(x, y)
			if !covered[pos] {
				assert.Equal(t, before.Get(pos), b.Get(pos), pos.String())
			}
		}
	}
}

func TestBoardPlaceOffBoardIsIgnored(t *testing.T) {
	var b Board
	assert.NotPanics(t, func() {
		b.Place(NewPiece(I, Vec(-1, 0)))
	})
	assert.Equal(t, Occupied(I), b.Get(Vec(0, 0)))
	assert.Equal(t, Occupied(I), b.Get(Vec(1, 0)))
}

func TestBoardSetOutOfRangePanics(t *testing.T) {
	var b Board
	assert.Panics(t, func() {
		b.set(Vec(Width, 0), Occupied(T))
	})
}

func TestClearFullRowsEmptyBoard(t *testing.T) {
	var b Board
	before := b

	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, before, b)
}

func TestClearFullRowsInterleaved(t *testing.T) {
	var b Board
	for _, y := range []int32{0, 2, 3, 6} {
		fillRow(&b, y, I)
	}

	partial := map[int32]Shape{1: J, 4: L, 5: S, 7: Z}
	for y, shape := range partial {
		b.set(Vec(y, y), Occupied(shape))
		b.set(Vec(0, y), Occupied(shape))
	}

	cleared := b.ClearFullRows()
	assert.Equal(t, 4, cleared)

	for y := 0; y < Height; y++ {
		assert.False(t, b.IsRowFull(y), "row %d is still full", y)
	}

	for newY, oldY := range []int32{1, 4, 5, 7} {
		shape := partial[oldY]
		y := int32(newY)
		for x := int32(0); x < Width; x++ {
			want := Empty
			if x == 0 || x == oldY {
				want = Occupied(shape)
			}
			assert.Equal(t, want, b.Get(Vec(x, y)), "cell %s (was row %d)", Vec(x, y), oldY)
		}
	}

	for y := int32(4); y < Height; y++ {
		for x := int32(0); x < Width; x++ {
			assert.Equal(t, Empty, b.Get(Vec(x, y)))
		}
	}
}

func TestClearFullRowsAllFull(t *testing.T) {
	var b Board
	for y := int32(0); y < Height; y++ {
		fillRow(&b, y, T)
	}

	assert.Equal(t, Height, b.ClearFullRows())
	assert.Equal(t, Board{}, b)
	assert.Equal(t, 0, b.StackHeight())
}

func TestClearFullRowsTopRow(t *testing.T) {
	var b Board
	fillRow(&b, Height-1, S)
	b.set(Vec(2, Height-2), Occupied(Z))

	assert.Equal(t, 1, b.ClearFullRows())
	assert.Equal(t, Occupied(Z), b.Get(Vec(2, Height-2)))
	assert.Equal(t, Height-1, b.StackHeight())
}

func TestBoardStackHeight(t *testing.T) {
	var b Board
	assert.Equal(t, 0, b.StackHeight())

	b.set(Vec(9, 6), Occupied(O))
	assert.Equal(t, 7, b.StackHeight())
}

func TestBoardString(t *testing.T) {
	var b Board
	b.Place(NewPiece(T, Vec(1, 0)))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, Height)
	assert.Equal(t, ".T........", lines[Height-2])
	assert.Equal(t, "TTT.......", lines[Height-1])
	assert.Equal(t, strings.Repeat(".", Width), lines[0])
}

func TestCellVariants(t *testing.T) {
	tests := []struct {
		cell  Cell
		kind  CellKind
		shape Shape
		ok    bool
		text  string
	}{
		{Empty, KindEmpty, 0, false, "."},
		{Blocked, KindBlocked, 0, false, "#"},
		{Occupied(I), KindOccupied, I, true, "I"},
		{Occupied(Z), KindOccupied, Z, true, "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.cell.Kind())
			shape, ok := tt.cell.Shape()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.shape, shape)
			assert.Equal(t, tt.text, tt.cell.String())
			assert.Equal(t, tt.kind == KindEmpty, tt.cell.IsEmpty())
		})
	}

	for _, shape := range Shapes() {
		assert.NotEqual(t, Empty, Occupied(shape))
		assert.NotEqual(t, Blocked, Occupied(shape))
	}
}
