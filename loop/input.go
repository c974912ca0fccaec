package loop

import "sync"

// InputSource yields the actions the player requested since the last call.
type InputSource interface {
	Actions() []Action
}

// InputSystem drains an InputSource into the frame's commands.
type InputSystem struct {
	Source InputSource
}

// Execute pushes every action the source has buffered since the last frame
func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, action := range s.Source.Actions() {
		frame.Commands.Push(action)
	}
}

// ActionQueue is an InputSource fed from another goroutine, such as a
// keyboard handler or a test.
type ActionQueue struct {
	mu      sync.Mutex
	pending []Action
}

// Enqueue appends actions to be returned by the next call to Actions
func (q *ActionQueue) Enqueue(actions ...Action) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, actions...)
}

// Actions drains the queue
func (q *ActionQueue) Actions() []Action {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Reset discards queued actions
func (q *ActionQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
}

// Reset discards input buffered for the previous session
func (s *InputSystem) Reset() {
	if r, ok := s.Source.(Resetter); ok {
		r.Reset()
	}
}
