package loop

import "github.com/plus3/blockfall/tetris"

// Action is a player input routed to the game.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
)

var actionNames = [...]string{
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	SoftDrop:  "soft-drop",
	HardDrop:  "hard-drop",
	RotateCW:  "rotate-cw",
	RotateCCW: "rotate-ccw",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Apply performs a single action on game and reports whether it took effect.
// HardDrop drops the piece and locks it straight away with a Tick.
func Apply(game *tetris.Game, action Action) bool {
	switch action {
	case MoveLeft:
		return game.MoveLeft()
	case MoveRight:
		return game.MoveRight()
	case SoftDrop:
		return game.SoftDrop()
	case HardDrop:
		if game.Status() == tetris.Over {
			return false
		}
		game.HardDrop()
		game.Tick()
		return true
	case RotateCW:
		return game.RotateClockwise()
	case RotateCCW:
		return game.RotateCounterClockwise()
	default:
		return false
	}
}

// Commands buffers input and deferred work for the end of a frame, so that
// every system in a frame observes the same piece.
type Commands struct {
	actions []Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// FlushResult counts how the buffered actions fared.
type FlushResult struct {
	Applied  int
	Rejected int
}

// Push queues an action.
func (c *Commands) Push(action Action) {
	c.actions = append(c.actions, action)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued actions
func (c *Commands) Pending() int {
	return len(c.actions)
}

// Flush applies queued actions to game in order, then runs deferred
// functions, and resets the buffer.
func (c *Commands) Flush(game *tetris.Game) FlushResult {
	var result FlushResult
	for _, action := range c.actions {
		if Apply(game, action) {
			result.Applied++
		} else {
			result.Rejected++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
	return result
}
