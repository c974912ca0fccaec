// Package debugui provides Dear ImGui debug windows for a running session.
// Windows are rendered from a loop System so that they observe the game after
// the frame's input and gravity have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Window is a Dear ImGui window drawn once per frame.
type Window interface {
	Render(frame *loop.UpdateFrame)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front-ends should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System captures the ImGui input state and defers every window's render
// to the end of the frame.
type System struct {
	Windows []Window
	Input   InputState
}

// NewSystem creates a System drawing the given windows in order
func NewSystem(windows ...Window) *System {
	return &System{Windows: windows}
}

// Execute updates input state and queues all window renders for execution.
func (s *System) Execute(frame *loop.UpdateFrame) {
	s.Input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	s.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, w := range s.Windows {
		frame.Commands.Defer(func() {
			w.Render(frame)
		})
	}
}
