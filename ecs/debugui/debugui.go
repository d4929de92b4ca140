// Package debugui draws editor panels for a hades World with Dear ImGui. Panels
// are ordinary components on an entity; ImguiSystem collects their render
// functions and runs them once the frame's systems are done.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hades/ecs"
)

// ImguiItem attaches an ImGui render function to an entity. The function runs
// after every system of the frame, from the command flush, so it may change
// the World directly.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a World resource holding whether ImGui wants the mouse or
// keyboard this frame. The host reads it before handing input to the scene.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and queues the render function of
// every ImguiItem, in active entity order.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Update(frame *ecs.UpdateFrame) error {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if render := item.ImguiItem.Render; render != nil {
			frame.Commands.Defer(render)
		}
	}
	return nil
}
