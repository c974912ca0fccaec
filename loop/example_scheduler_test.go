package loop_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// ExampleScheduler runs a bot-driven session headlessly. Frames are executed
// back to back with a fixed step, so the session is reproducible for a given
// shape order.
func ExampleScheduler() {
	logger := zerolog.New(os.Stdout).Level(zerolog.InfoLevel)
	cfg := loop.Config{
		Gravity:       loop.DefaultGravity,
		FrameInterval: 10 * time.Millisecond,
		Logger:        &logger,
	}

	scheduler := loop.NewScheduler(tetris.NewGame(fixedOrder{}), cfg)
	scheduler.Register(loop.NewGravitySystem(cfg.Gravity))
	scheduler.Register(loop.NewAutoplaySystem(loop.DefaultWeights))

	err := scheduler.RunUntil(context.Background(), func(g *tetris.Game) bool {
		return g.Pieces() == 50
	})
	if errors.Is(err, loop.ErrGameOver) {
		fmt.Println("topped out")
		return
	}

	game := scheduler.Game()
	fmt.Println(game.Status(), game.Pieces())

	// Output:
	// active 50
}
