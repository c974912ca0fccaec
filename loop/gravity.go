package loop

import "time"

// LinesPerLevel is how many cleared rows raise the level by one
const LinesPerLevel = 10

// framesPerRow is the classic per-level gravity in 60 Hz frames
var framesPerRow = [...]int{48, 43, 38, 33, 28, 23, 18, 13, 8, 6, 5, 5, 5, 4, 4, 4, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1}

// Level returns the level reached after clearing lines
func Level(lines uint) int {
	return int(lines / LinesPerLevel)
}

// LevelGravity returns the time between gravity ticks at level. Levels past
// the end of the table fall one row per frame.
func LevelGravity(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	if level >= len(framesPerRow) {
		level = len(framesPerRow) - 1
	}
	return time.Duration(framesPerRow[level]) * time.Second / 60
}

// GravitySystem ticks the game once per Interval of accumulated frame time.
// Ticks are deferred to the end of the frame so that input pushed in the
// same frame lands first. With Accelerate set the interval follows
// LevelGravity once it is shorter than Interval. A zero or negative Interval
// means DefaultGravity.
type GravitySystem struct {
	Interval   time.Duration
	Accelerate bool

	elapsed float64
}

// NewGravitySystem returns a GravitySystem with a fixed interval
func NewGravitySystem(interval time.Duration) *GravitySystem {
	if interval <= 0 {
		interval = DefaultGravity
	}
	return &GravitySystem{Interval: interval}
}

func (s *GravitySystem) interval(lines uint) time.Duration {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultGravity
	}
	if !s.Accelerate {
		return interval
	}
	return min(interval, LevelGravity(Level(lines)))
}

// Execute adds the frame's time and defers one Tick per elapsed interval
func (s *GravitySystem) Execute(frame *UpdateFrame) {
	s.elapsed += frame.DeltaTime

	game := frame.Game
	step := s.interval(game.LinesCleared()).Seconds()
	for s.elapsed >= step {
		s.elapsed -= step
		frame.Commands.Defer(func() {
			game.Tick()
		})
	}
}

// Reset drops any accumulated time
func (s *GravitySystem) Reset() {
	s.elapsed = 0
}
