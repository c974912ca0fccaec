package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	seedFlag       uint64
	gravityFlag    time.Duration
	accelerateFlag bool
	logLevelFlag   string
	debugUIFlag    bool
	autoplayFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Play a falling-block game",
	Long: `Play a falling-block game.

Keys: left/right move, down soft drop, space hard drop, up or X rotate
clockwise, Z rotate counter-clockwise, R restart, Esc or Q quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		level, err := zerolog.ParseLevel(logLevelFlag)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevelFlag, err)
		}
		logger := log.Logger.Level(level)

		seed := seedFlag
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Info().Uint64("seed", seed).Dur("gravity", gravityFlag).Msg("starting blockfall")

		app := newApp(appOptions{
			rng:        rand.New(rand.NewPCG(seed, seed>>1)),
			gravity:    gravityFlag,
			accelerate: accelerateFlag,
			autoplay:   autoplayFlag,
			debugUI:    debugUIFlag,
			logger:     &logger,
		})

		if !debugUIFlag {
			ebiten.SetWindowSize(screenWidth, screenHeight)
			ebiten.SetWindowTitle("blockfall")
		}
		if err := ebiten.RunGame(app); err != nil {
			return fmt.Errorf("run game: %w", err)
		}

		game := app.scheduler.Game()
		logger.Info().
			Uint("lines", game.LinesCleared()).
			Uint("pieces", game.Pieces()).
			Stringer("status", game.Status()).
			Msg("bye")
		return nil
	},
}

type appOptions struct {
	rng        *rand.Rand
	gravity    time.Duration
	accelerate bool
	autoplay   bool
	debugUI    bool
	logger     *zerolog.Logger
}

func newApp(opts appOptions) *App {
	cfg := loop.Config{
		Gravity: opts.gravity,
		Logger:  opts.logger,
	}
	scheduler := loop.NewScheduler(tetris.NewGame(opts.rng), cfg)

	app := &App{
		scheduler: scheduler,
		rng:       opts.rng,
		keyboard:  &Keyboard{},
		stats:     loop.NewStatsSystem(),
		timer:     debugui.NewFrameTimer(),
	}

	gravity := loop.NewGravitySystem(scheduler.Config().Gravity)
	gravity.Accelerate = opts.accelerate

	scheduler.Register(&loop.InputSystem{Source: app.keyboard})
	if opts.autoplay {
		scheduler.Register(loop.NewAutoplaySystem(loop.DefaultWeights))
	}
	scheduler.Register(gravity)
	scheduler.Register(app.stats)

	if opts.debugUI {
		app.imgui = debugui_ebiten.NewImguiBackend("blockfall", 1280, 720)
		app.debug = debugui.NewSystem(
			debugui.NewBoardInspector(),
			debugui.NewSessionStats(scheduler, app.stats, 120),
		)
		scheduler.Register(app.debug)
	}
	return app
}

func init() {
	flags := rootCmd.Flags()
	flags.Uint64Var(&seedFlag, "seed", 0, "seed for the shape sequence (0 picks one from the clock)")
	flags.DurationVar(&gravityFlag, "gravity", loop.DefaultGravity, "time between gravity ticks")
	flags.BoolVar(&accelerateFlag, "accelerate", false, "speed gravity up every 10 cleared lines")
	flags.StringVar(&logLevelFlag, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&debugUIFlag, "debug-ui", "d", false, "show the Dear ImGui debug windows")
	flags.BoolVar(&autoplayFlag, "autoplay", false, "let the built-in bot play")
}
