package loop

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// SessionStats summarises one session as seen by a StatsSystem.
type SessionStats struct {
	Pieces       uint
	LinesCleared uint
	Frames       int64
	// ShapeCounts is indexed by tetris.Shape
	ShapeCounts [tetris.ShapeCount]int
	// Clears[n] counts locks that removed n rows at once, n in 1..4
	Clears [5]int
}

// Tetrises returns the number of four-row clears
func (s SessionStats) Tetrises() int {
	return s.Clears[4]
}

// StatsSystem records which shapes were dealt and how many rows each lock
// cleared. Locks are counted one by one through ObserveLock, so several locks
// within one frame are all recorded.
type StatsSystem struct {
	shapes *intmap.Map[tetris.Shape, int]
	clears *intmap.Map[uint, int]

	started bool
	pieces  uint
	lines   uint
	frames  int64
}

// NewStatsSystem returns a StatsSystem with empty counters
func NewStatsSystem() *StatsSystem {
	return &StatsSystem{
		shapes: intmap.New[tetris.Shape, int](tetris.ShapeCount),
		clears: intmap.New[uint, int](4),
	}
}

// Execute counts the frame, and on the first frame of a session the piece
// that was already falling when the session started.
func (s *StatsSystem) Execute(frame *UpdateFrame) {
	s.frames++
	if !s.started {
		s.start(frame.Game.Current().Shape)
	}
}

func (s *StatsSystem) start(shape tetris.Shape) {
	s.started = true
	s.pieces = 1
	s.countShape(shape)
}

func (s *StatsSystem) countShape(shape tetris.Shape) {
	n, _ := s.shapes.Get(shape)
	s.shapes.Put(shape, n+1)
}

// ObserveLock records the rows a lock cleared and the piece spawned after it.
func (s *StatsSystem) ObserveLock(lock tetris.Lock) {
	if !s.started {
		s.start(lock.Piece.Shape)
	}
	s.pieces++
	s.countShape(lock.Spawned.Shape)

	if lock.Rows > 0 {
		rows := uint(lock.Rows)
		s.lines += rows
		n, _ := s.clears.Get(rows)
		s.clears.Put(rows, n+1)
	}
}

// Snapshot returns the statistics gathered so far
func (s *StatsSystem) Snapshot() SessionStats {
	stats := SessionStats{
		Pieces:       s.pieces,
		LinesCleared: s.lines,
		Frames:       s.frames,
	}
	for _, shape := range tetris.Shapes() {
		stats.ShapeCounts[shape], _ = s.shapes.Get(shape)
	}
	for rows := uint(1); rows < uint(len(stats.Clears)); rows++ {
		stats.Clears[rows], _ = s.clears.Get(rows)
	}
	return stats
}

// Reset forgets everything recorded for the previous session
func (s *StatsSystem) Reset() {
	s.shapes.Clear()
	s.clears.Clear()
	s.started = false
	s.pieces = 0
	s.lines = 0
	s.frames = 0
}
