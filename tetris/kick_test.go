package tetris

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKicksTableSizes(t *testing.T) {
	for _, shape := range Shapes() {
		want := 5
		if shape == O {
			want = 1
		}
		for _, o := range allOrientations {
			assert.Len(t, Kicks(shape, o, o.Clockwise()), want, "%s %s", shape, o)
			assert.Len(t, Kicks(shape, o, o.CounterClockwise()), want, "%s %s", shape, o)
		}
	}
}

func TestKicksIdentityIsZero(t *testing.T) {
	for _, shape := range Shapes() {
		for _, o := range allOrientations {
			for _, kick := range Kicks(shape, o, o) {
				assert.Equal(t, Vector{}, kick)
			}
		}
	}
}

func TestKicksINorthToEast(t *testing.T) {
	want := []Vector{{1, 0}, {-1, 0}, {2, 0}, {-1, -1}, {2, 2}}
	assert.Equal(t, want, Kicks(I, North, East))
}

func TestKicksJLSTZNorthToEast(t *testing.T) {
	want := []Vector{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}
	for _, shape := range []Shape{J, L, S, T, Z} {
		assert.Equal(t, want, Kicks(shape, North, East), shape.String())
	}
}

// Four clockwise steps must bring every kick candidate back to where it
// started, so an unobstructed full turn leaves the piece in place.
func TestKicksNetZeroOverFullTurn(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			n := len(Kicks(shape, North, East))
			for i := range n {
				var sum Vector
				o := North
				for range orientationCount {
					sum = sum.Add(Kicks(shape, o, o.Clockwise())[i])
					o = o.Clockwise()
				}
				assert.Equal(t, Vector{}, sum, "candidate %d", i)
			}
		})
	}
}

func TestCounterClockwiseKicksMirrorClockwise(t *testing.T) {
	for _, shape := range Shapes() {
		for _, o := range allOrientations {
			cw := Kicks(shape, o, o.Clockwise())
			ccw := Kicks(shape, o.Clockwise(), o)
			require.Len(t, ccw, len(cw))
			for i := range cw {
				assert.Equal(t, cw[i].Mul(-1), ccw[i], "%s %s candidate %d", shape, o, i)
			}
		}
	}
}

func TestRotateFullTurnInOpenSpace(t *testing.T) {
	var b Board
	for _, shape := range Shapes() {
		for _, dir := range []Direction{Clockwise, CounterClockwise} {
			t.Run(fmt.Sprintf("%s/%s", shape, dir), func(t *testing.T) {
				start := NewPiece(shape, Vec(4, 10))
				piece := start
				for step := range orientationCount {
					next, ok := Rotate(&b, piece, dir)
					require.True(t, ok, "step %d", step)
					assert.Equal(t, dir.Apply(piece.Orientation), next.Orientation)
					piece = next
				}
				assert.Equal(t, start, piece)
			})
		}
	}
}

func TestRotateCounterClockwiseTurnsLeft(t *testing.T) {
	var b Board
	start := NewPiece(T, Vec(4, 10))

	rotated, ok := Rotate(&b, start, CounterClockwise)
	require.True(t, ok)
	assert.Equal(t, West, rotated.Orientation)

	back, ok := Rotate(&b, rotated, Clockwise)
	require.True(t, ok)
	assert.Equal(t, start, back)
}

func TestRotateOKeepsItsCells(t *testing.T) {
	var b Board
	start := NewPiece(O, Vec(4, 10))

	rotated, ok := Rotate(&b, start, Clockwise)
	require.True(t, ok)
	assert.Equal(t, East, rotated.Orientation)

	startBlocks, rotatedBlocks := start.Blocks(), rotated.Blocks()
	assert.ElementsMatch(t, startBlocks[:], rotatedBlocks[:])
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	var b Board

	t.Run("I east to south", func(t *testing.T) {
		piece := Piece{Position: Vec(0, 10), Shape: I, Orientation: East}
		require.True(t, b.CanPlace(piece))

		rotated, ok := Rotate(&b, piece, Clockwise)
		require.True(t, ok)
		assert.Equal(t, Piece{Position: Vec(2, 9), Shape: I, Orientation: South}, rotated)
	})

	t.Run("T east to north", func(t *testing.T) {
		piece := Piece{Position: Vec(0, 10), Shape: T, Orientation: East}
		require.True(t, b.CanPlace(piece))

		rotated, ok := Rotate(&b, piece, CounterClockwise)
		require.True(t, ok)
		assert.Equal(t, Piece{Position: Vec(1, 10), Shape: T, Orientation: North}, rotated)
	})
}

func TestRotateRefusedLeavesPieceUnchanged(t *testing.T) {
	var b Board
	fillRow(&b, 1, Z)
	for _, x := range []int32{0, 1, 2, 7, 8, 9} {
		b.set(Vec(x, 0), Occupied(Z))
	}

	piece := NewPiece(I, Vec(4, 0))
	require.True(t, b.CanPlace(piece))

	for _, dir := range []Direction{Clockwise, CounterClockwise} {
		got, ok := Rotate(&b, piece, dir)
		assert.False(t, ok, dir.String())
		assert.Equal(t, piece, got, dir.String())
	}
}
