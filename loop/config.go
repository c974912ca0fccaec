package loop

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultGravity is the time between gravity ticks
	DefaultGravity = 480 * time.Millisecond
	// DefaultFrameInterval is the fixed frame step, 60 frames per second
	DefaultFrameInterval = time.Second / 60
)

// Config controls the pace of a session and where the scheduler logs.
type Config struct {
	Gravity       time.Duration
	FrameInterval time.Duration
	Logger        *zerolog.Logger
}

// DefaultConfig returns a Config with DefaultGravity, DefaultFrameInterval
// and a disabled logger.
func DefaultConfig() Config {
	nop := zerolog.Nop()
	return Config{
		Gravity:       DefaultGravity,
		FrameInterval: DefaultFrameInterval,
		Logger:        &nop,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Gravity <= 0 {
		c.Gravity = def.Gravity
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = def.FrameInterval
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	return c
}
