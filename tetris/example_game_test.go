package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleGame plays the first piece of a session: it slides the I piece to
// the left wall, hard-drops it and lets the next tick lock it in place.
func ExampleGame() {
	game := tetris.NewGame(fixedOrder{})
	fmt.Println(game.Current())

	for game.MoveLeft() {
	}
	fmt.Println("dropped", game.HardDrop(), "rows")

	game.Tick()
	board := game.Board()
	fmt.Println(board.Get(tetris.Vec(0, 0)), board.Get(tetris.Vec(4, 0)))
	fmt.Println("now falling:", game.Current().Shape)

	// Output:
	// I North @ (4, 22)
	// dropped 22 rows
	// I .
	// now falling: O
}

// ExampleRotate shows a rotation next to the left wall being kicked two
// columns to the right instead of being refused.
func ExampleRotate() {
	board := tetris.NewBoard()
	piece := tetris.Piece{Position: tetris.Vec(0, 10), Shape: tetris.I, Orientation: tetris.East}

	rotated, ok := tetris.Rotate(&board, piece, tetris.Clockwise)
	fmt.Println(ok, rotated)

	// Output:
	// true I South @ (2, 9)
}

// ExampleBag previews and draws one full bag. With a source that never
// shuffles, the canonical order repeats.
func ExampleBag() {
	bag := tetris.NewBag(fixedOrder{})
	fmt.Println(bag.Preview(tetris.BagSize))

	for range tetris.BagSize {
		bag.Next()
	}
	fmt.Println(bag.Peek())

	// Output:
	// [I O J L S T Z]
	// I
}
