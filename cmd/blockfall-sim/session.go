package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

type sessionConfig struct {
	Index      int
	Seed       uint64
	MaxPieces  uint
	Gravity    time.Duration
	Accelerate bool
	Weights    loop.Weights
	Logger     zerolog.Logger
}

// Result is the outcome of one simulated session.
type Result struct {
	Index     int
	Seed      uint64
	Lines     uint
	Pieces    uint
	Tetrises  int
	Frames    int64
	ToppedOut bool
	Elapsed   time.Duration
	Shapes    [tetris.ShapeCount]int
}

func newShuffler(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>1))
}

// runSession plays one game with the autoplay bot until it has dealt
// MaxPieces pieces or topped out.
func runSession(ctx context.Context, cfg sessionConfig) (Result, error) {
	logger := cfg.Logger.With().Int("game", cfg.Index).Uint64("seed", cfg.Seed).Logger()

	game := tetris.NewGame(newShuffler(cfg.Seed))
	scheduler := loop.NewScheduler(game, loop.Config{
		Gravity: cfg.Gravity,
		Logger:  &logger,
	})

	gravity := loop.NewGravitySystem(scheduler.Config().Gravity)
	gravity.Accelerate = cfg.Accelerate
	stats := loop.NewStatsSystem()
	scheduler.Register(gravity)
	scheduler.Register(loop.NewAutoplaySystem(cfg.Weights))
	scheduler.Register(stats)

	start := time.Now()
	err := scheduler.RunUntil(ctx, func(g *tetris.Game) bool {
		return g.Pieces() >= cfg.MaxPieces
	})
	toppedOut := errors.Is(err, loop.ErrGameOver)
	if err != nil && !toppedOut {
		return Result{}, fmt.Errorf("game %d: %w", cfg.Index, err)
	}

	snap := stats.Snapshot()
	result := Result{
		Index:     cfg.Index,
		Seed:      cfg.Seed,
		Lines:     game.LinesCleared(),
		Pieces:    game.Pieces(),
		Tetrises:  snap.Tetrises(),
		Frames:    scheduler.GetStats().Frames,
		ToppedOut: toppedOut,
		Elapsed:   time.Since(start),
		Shapes:    snap.ShapeCounts,
	}

	logger.Debug().
		Uint("lines", result.Lines).
		Uint("pieces", result.Pieces).
		Bool("topped_out", result.ToppedOut).
		Dur("elapsed", result.Elapsed).
		Msg("session finished")
	return result, nil
}
