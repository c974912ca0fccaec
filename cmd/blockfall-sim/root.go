package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/loop"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	gamesFlag      int
	seedFlag       uint64
	maxPiecesFlag  uint
	parallelFlag   int
	timeoutFlag    time.Duration
	gravityFlag    time.Duration
	accelerateFlag bool
	logLevelFlag   string
	verboseFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "blockfall-sim",
	Short: "Run headless autoplay sessions and report how the bot fared",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		level, err := zerolog.ParseLevel(logLevelFlag)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevelFlag, err)
		}
		logger := log.Logger.Level(level)

		if gamesFlag <= 0 {
			return errors.New("--games must be positive")
		}
		if maxPiecesFlag == 0 {
			return errors.New("--max-pieces must be positive")
		}

		report := &Report{
			Games:     gamesFlag,
			Seed:      seedFlag,
			MaxPieces: maxPiecesFlag,
			Parallel:  parallelFlag,
			Verbose:   verboseFlag,
		}
		runtime.ReadMemStats(&report.MemStatsStart)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if timeoutFlag > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeoutFlag)
			defer cancel()
		}

		logger.Info().
			Int("games", gamesFlag).
			Uint("max_pieces", maxPiecesFlag).
			Int("parallel", parallelFlag).
			Msg("starting simulation")

		start := time.Now()
		results := make([]Result, gamesFlag)
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(max(parallelFlag, 1))
		for i := range gamesFlag {
			cfg := sessionConfig{
				Index:      i,
				Seed:       seedFlag + uint64(i),
				MaxPieces:  maxPiecesFlag,
				Gravity:    gravityFlag,
				Accelerate: accelerateFlag,
				Weights:    loop.DefaultWeights,
				Logger:     logger,
			}
			g.Go(func() error {
				result, err := runSession(ctx, cfg)
				if err != nil {
					return err
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("simulation did not finish within %s: %w", timeoutFlag, err)
			}
			return err
		}

		report.TotalTime = time.Since(start)
		report.Results = results
		report.Finalize()
		runtime.ReadMemStats(&report.MemStatsEnd)

		logger.Info().Dur("elapsed", report.TotalTime).Msg("simulation finished")

		if err := report.Generate(os.Stdout); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}

		summary := color.New(color.FgGreen, color.Bold).SprintfFunc()
		if report.ToppedOut > 0 {
			summary = color.New(color.FgYellow, color.Bold).SprintfFunc()
		}
		fmt.Fprintln(os.Stderr, summary("%d/%d games survived %d pieces", report.Games-report.ToppedOut, report.Games, report.MaxPieces))
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVarP(&gamesFlag, "games", "n", 10, "number of sessions to play")
	flags.Uint64Var(&seedFlag, "seed", 1, "seed of the first session; session i uses seed+i")
	flags.UintVar(&maxPiecesFlag, "max-pieces", 500, "stop a session once this many pieces were dealt")
	flags.IntVarP(&parallelFlag, "parallel", "p", runtime.GOMAXPROCS(0), "sessions played concurrently")
	flags.DurationVar(&timeoutFlag, "timeout", 0, "abort the whole simulation after this long (0 disables)")
	flags.DurationVar(&gravityFlag, "gravity", loop.DefaultGravity, "time between gravity ticks")
	flags.BoolVar(&accelerateFlag, "accelerate", false, "speed gravity up every 10 cleared lines")
	flags.StringVar(&logLevelFlag, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "include a row per session in the report")
}
