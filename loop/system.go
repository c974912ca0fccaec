package loop

import "github.com/plus3/blockfall/tetris"

// System is a piece of per-frame behaviour driven by the Scheduler.
// Systems may keep state between frames; they read and mutate the game
// through the UpdateFrame they are handed.
type System interface {
	Execute(frame *UpdateFrame)
}

// Resetter is implemented by systems whose state must be cleared when the
// scheduler starts a new session.
type Resetter interface {
	Reset()
}

// LockObserver is implemented by systems that need every lock, including
// several locks applied within a single frame.
type LockObserver interface {
	ObserveLock(lock tetris.Lock)
}
