// Package debugui provides Dear ImGui inspection windows for a running puzzle.
// Windows are plain render functions collected by ImguiSystem, which defers
// them to the end of each scheduler frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fugufall/puzzle"
)

// ImguiItem holds a Dear ImGui render function drawn once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes the input capture state and defers every item's
// render function to the end of the frame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState

	// Hidden skips rendering while still tracking input capture.
	Hidden bool
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *puzzle.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Toggle flips visibility and reports whether the windows are now shown.
func (i *ImguiSystem) Toggle() bool {
	i.Hidden = !i.Hidden
	return !i.Hidden
}
