package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hades/ecs"
)

// EditorEvent is a request raised by the editor UI for the host to act on.
type EditorEvent int

const (
	EditorQuit EditorEvent = iota + 1
)

func (e EditorEvent) String() string {
	switch e {
	case EditorQuit:
		return "quit"
	default:
		return fmt.Sprintf("EditorEvent(%d)", int(e))
	}
}

// EditorState is the editor's world resource. The menu pushes events; the
// host drains them once per frame.
type EditorState struct {
	Events        []EditorEvent
	ShowDebugInfo bool
}

func (s *EditorState) Push(event EditorEvent) {
	s.Events = append(s.Events, event)
}

// Drain returns the queued events in push order and clears the queue.
func (s *EditorState) Drain() []EditorEvent {
	events := s.Events
	s.Events = nil
	return events
}

// SpawnEditorMenu adds the main menu bar and the debug info window to w. Both
// read and write the EditorState resource, which is created if missing.
func SpawnEditorMenu(w *ecs.World) (ecs.EntityId, error) {
	state := ecs.NewSingleton[EditorState](w)

	entity, err := w.CreateEntity()
	if err != nil {
		return ecs.InvalidEntity, err
	}

	err = ecs.AddComponent(w, entity, ImguiItem{
		Render: func() {
			s := state.Get()
			renderMainMenu(s)
			if s.ShowDebugInfo {
				renderDebugInfo(w, s)
			}
		},
	})
	if err != nil {
		return ecs.InvalidEntity, err
	}
	return entity, nil
}

func renderMainMenu(state *EditorState) {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Exit") {
			state.Push(EditorQuit)
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Debug") {
		if imgui.MenuItemBoolV("Show Debug Window", "", state.ShowDebugInfo, true) {
			state.ShowDebugInfo = !state.ShowDebugInfo
		}
		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}

func renderDebugInfo(w *ecs.World, state *EditorState) {
	open := true
	if imgui.BeginV("Debug", &open, imgui.WindowFlagsAlwaysAutoResize) {
		io := imgui.CurrentIO()
		imgui.Text(fmt.Sprintf("FPS: %.1f", io.Framerate()))
		imgui.Text(fmt.Sprintf("Frame Time: %.3f ms", 1000.0/max(io.Framerate(), 1)))
		imgui.Text(fmt.Sprintf("Entities: %d", len(w.ActiveEntities())))
	}
	imgui.End()

	if !open {
		state.ShowDebugInfo = false
	}
}
