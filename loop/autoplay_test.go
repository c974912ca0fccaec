package loop_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		board := tetris.NewBoard()
		assert.Equal(t, loop.BoardFeatures{}, loop.Measure(&board))
	})

	t.Run("holes and bumpiness", func(t *testing.T) {
		board := tetris.NewBoard()
		// T pointing down leaves a hole under each arm: columns 0 and 2 at row 0
		board.Place(tetris.Piece{Position: tetris.Vec(1, 1), Shape: tetris.T, Orientation: tetris.South})

		f := loop.Measure(&board)

		assert.Equal(t, 2, f.Holes)
		assert.Equal(t, 6, f.AggregateHeight)
		// heights 2 2 2 0 ...
		assert.Equal(t, 2, f.Bumpiness)
	})
}

func TestBestPlacementFlatOnEmptyBoard(t *testing.T) {
	board := tetris.NewBoard()
	piece := tetris.NewPiece(tetris.I, tetris.SpawnPosition)

	plan := loop.BestPlacement(board, piece, loop.DefaultWeights)

	assert.Equal(t, []loop.Action{loop.MoveLeft, loop.MoveLeft, loop.MoveLeft, loop.HardDrop}, plan.Actions)
	assert.Equal(t, tetris.NewPiece(tetris.I, tetris.Vec(1, 0)), plan.Target)
}

func TestBestPlacementCompletesRow(t *testing.T) {
	board := tetris.NewBoard()
	for x := int32(0); x < tetris.Width-1; x++ {
		board.Place(tetris.Piece{Position: tetris.Vec(x, 2), Shape: tetris.I, Orientation: tetris.East})
	}
	// rows 0-3 are full apart from a well in column 9
	piece := tetris.NewPiece(tetris.I, tetris.SpawnPosition)

	plan := loop.BestPlacement(board, piece, loop.DefaultWeights)

	require.NotEmpty(t, plan.Actions)
	assert.Equal(t, loop.HardDrop, plan.Actions[len(plan.Actions)-1])
	blocks := plan.Target.Blocks()
	for _, b := range blocks {
		assert.Equal(t, int32(9), b.X)
	}

	after := board
	after.Place(plan.Target)
	assert.Equal(t, 4, after.ClearFullRows())
}

func TestPlanReplaysOnGame(t *testing.T) {
	game := tetris.NewGame(rand.New(rand.NewPCG(7, 11)))

	for range 30 {
		plan := loop.BestPlacement(game.Board(), game.Current(), loop.DefaultWeights)
		for _, a := range plan.Actions[:len(plan.Actions)-1] {
			require.True(t, loop.Apply(game, a), a.String())
		}
		game.HardDrop()
		require.Equal(t, plan.Target, game.Current())
		game.Tick()
	}
}

func TestAutoplaySurvives(t *testing.T) {
	game := tetris.NewGame(rand.New(rand.NewPCG(1, 2)))
	scheduler := loop.NewScheduler(game, loop.DefaultConfig())
	scheduler.Register(loop.NewGravitySystem(loop.DefaultGravity))
	bot := loop.NewAutoplaySystem(loop.DefaultWeights)
	scheduler.Register(bot)

	err := scheduler.RunUntil(context.Background(), func(g *tetris.Game) bool {
		return g.Pieces() >= 200
	})

	require.NoError(t, err)
	assert.Equal(t, tetris.Active, game.Status())
	assert.Greater(t, game.LinesCleared(), uint(50))
	assert.Equal(t, loop.HardDrop, bot.LastPlan().Actions[len(bot.LastPlan().Actions)-1])

	scheduler.Reset(tetris.NewGame(fixedOrder{}))
	assert.Empty(t, bot.LastPlan().Actions)
}
