package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hades/ecs"
)

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		maxListed:              200,
	}
}

// MatchQuery builds the signature of the named component types and returns
// the live entities that carry all of them. Unknown names are ignored.
func MatchQuery(w *ecs.World, names map[string]bool) (ecs.Signature, []ecs.EntityId) {
	registry := w.Registry()
	var required ecs.Signature

	for i := 0; i < registry.Len(); i++ {
		ct := ecs.ComponentType(i)
		if names[registry.Name(ct)] {
			required.Set(ct)
		}
	}

	if required.IsEmpty() {
		return required, nil
	}
	return required, w.Query(required)
}

func componentNames(registry *ecs.ComponentRegistry) []string {
	names := make([]string, registry.Len())
	for i := range names {
		names[i] = registry.Name(ecs.ComponentType(i))
	}
	sort.Strings(names)
	return names
}

func (qd *QueryDebuggerComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, compType := range componentNames(w.Registry()) {
		selected := qd.selectedComponentTypes[compType]
		if imgui.Checkbox(compType, &selected) {
			if selected {
				qd.selectedComponentTypes[compType] = true
			} else {
				delete(qd.selectedComponentTypes, compType)
			}
		}
	}

	imgui.Separator()

	required, matches := MatchQuery(w, qd.selectedComponentTypes)
	if required.IsEmpty() {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Signature: %s", required))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Entities") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryEntityTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("Signature")
			imgui.TableHeadersRow()

			for i, id := range matches {
				if i >= qd.maxListed {
					break
				}
				sig, _ := w.Signature(id)

				imgui.TableNextRow()
				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", id))
				imgui.TableSetColumnIndex(1)
				imgui.Text(sig.String())
			}

			imgui.EndTable()
		}
		if len(matches) > qd.maxListed {
			imgui.Text(fmt.Sprintf("... and %d more", len(matches)-qd.maxListed))
		}
		imgui.TreePop()
	}

	imgui.End()
}
