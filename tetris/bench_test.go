package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkCanPlace(b *testing.B) {
	board := tetris.NewBoard()
	piece := tetris.NewPiece(tetris.T, tetris.Vec(4, 10))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.CanPlace(piece)
	}
}

func BenchmarkRotate(b *testing.B) {
	board := tetris.NewBoard()
	piece := tetris.Piece{Position: tetris.Vec(0, 10), Shape: tetris.I, Orientation: tetris.East}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tetris.Rotate(&board, piece, tetris.Clockwise)
	}
}

func BenchmarkClearFullRows(b *testing.B) {
	var full tetris.Board
	for x := int32(0); x < tetris.Width; x++ {
		full.Place(tetris.Piece{Position: tetris.Vec(x, 1), Shape: tetris.I, Orientation: tetris.East})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := full
		_ = board.ClearFullRows()
	}
}

func BenchmarkBagNext(b *testing.B) {
	bag := tetris.NewBag(rand.New(rand.NewPCG(1, 2)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bag.Next()
	}
}
