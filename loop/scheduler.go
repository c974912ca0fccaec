package loop

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// ErrGameOver is returned by RunUntil when the session tops out.
var ErrGameOver = errors.New("loop: game over")

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives one game session: every frame it executes the registered
// systems in order and then flushes the frame's commands into the game.
type Scheduler struct {
	game        *tetris.Game
	cfg         Config
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	over        bool
	lastFlush   FlushResult
}

// NewScheduler creates a new scheduler for the given game.
// The scheduler takes over the game's lock handler.
func NewScheduler(game *tetris.Game, cfg Config) *Scheduler {
	s := &Scheduler{
		game:    game,
		cfg:     cfg.withDefaults(),
		systems: make([]System, 0),
	}
	game.OnLock(s.dispatchLock)
	return s
}

// dispatchLock forwards a lock to every system implementing LockObserver
func (s *Scheduler) dispatchLock(lock tetris.Lock) {
	for _, system := range s.systems {
		if o, ok := system.(LockObserver); ok {
			o.ObserveLock(lock)
		}
	}
}

// Register adds a system to the end of the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Game returns the session being driven
func (s *Scheduler) Game() *tetris.Game {
	return s.game
}

// Config returns the configuration with defaults filled in
func (s *Scheduler) Config() Config {
	return s.cfg
}

// Reset swaps in a new game, moves the lock handler to it and clears the state of every system that
// implements Resetter. Execution statistics are kept.
func (s *Scheduler) Reset(game *tetris.Game) {
	s.game.OnLock(nil)
	s.game = game
	s.game.OnLock(s.dispatchLock)
	s.over = false
	for _, system := range s.systems {
		if r, ok := system.(Resetter); ok {
			r.Reset()
		}
	}
	s.cfg.Logger.Info().Msg("new game")
}

// LastFlush returns how the previous frame's buffered actions fared
func (s *Scheduler) LastFlush() FlushResult {
	return s.lastFlush
}

// Once executes all registered systems once with the given delta time in
// seconds.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.game, s.cfg.Logger)
	linesBefore := s.game.LinesCleared()

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.lastFlush = frame.Commands.Flush(s.game)
	s.frames++
	s.observe(linesBefore)
}

func (s *Scheduler) observe(linesBefore uint) {
	log := s.cfg.Logger
	if lines := s.game.LinesCleared(); lines > linesBefore {
		log.Debug().
			Uint("rows", lines-linesBefore).
			Uint("total", lines).
			Msg("lines cleared")
	}

	if !s.over && s.game.Status() == tetris.Over {
		s.over = true
		log.Info().
			Uint("pieces", s.game.Pieces()).
			Uint("lines", s.game.LinesCleared()).
			Int64("frames", s.frames).
			Msg("game over")
	}
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// RunUntil executes frames back to back with the configured fixed frame
// step, without waiting in real time. It stops with ErrGameOver when the
// session tops out, with nil once done reports true, or with the context's
// error.
func (s *Scheduler) RunUntil(ctx context.Context, done func(*tetris.Game) bool) error {
	dt := s.cfg.FrameInterval.Seconds()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.game.Status() == tetris.Over {
			return ErrGameOver
		}
		if done != nil && done(s.game) {
			return nil
		}
		s.Once(dt)
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
