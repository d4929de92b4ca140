package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/hierarchy"
)

const hierarchyIndent = 16

type HierarchyRow struct {
	Entity ecs.EntityId
	Depth  int
	Label  string
}

func NewHierarchyViewComponent() HierarchyViewComponent {
	return HierarchyViewComponent{selectedEntityId: ecs.InvalidEntity}
}

// CollectHierarchy flattens the transform trees of w into rows in walk order.
// Rows gathered before a walk error are returned with it.
func CollectHierarchy(w *ecs.World) ([]HierarchyRow, error) {
	var rows []HierarchyRow
	err := hierarchy.Walk(w, func(entity ecs.EntityId, depth int) bool {
		rows = append(rows, HierarchyRow{
			Entity: entity,
			Depth:  depth,
			Label:  entityLabel(w, entity),
		})
		return true
	})
	return rows, err
}

func entityLabel(w *ecs.World, entity ecs.EntityId) string {
	if name, err := ecs.GetComponentOf[components.Name](w, entity); err == nil && *name != "" {
		return fmt.Sprintf("%s (%d)", string(*name), entity)
	}
	return fmt.Sprintf("Entity %d", entity)
}

// Render draws the trees and returns the entity clicked this frame, or
// InvalidEntity.
func (hv *HierarchyViewComponent) Render(w *ecs.World) ecs.EntityId {
	clicked := ecs.InvalidEntity

	if !imgui.BeginV("Hierarchy", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return clicked
	}

	hv.rows, hv.lastErr = CollectHierarchy(w)
	if hv.lastErr != nil {
		imgui.TextWrapped(hv.lastErr.Error())
		imgui.Separator()
	}

	if len(hv.rows) == 0 {
		imgui.Text("No entities carry a TransformHierarchy")
	}

	for _, row := range hv.rows {
		if row.Depth > 0 {
			imgui.IndentV(float32(row.Depth * hierarchyIndent))
		}

		label := row.Label
		if row.Depth > 0 {
			label = "- " + label
		}
		selected := hv.selectedEntityId == row.Entity
		if imgui.SelectableBoolV(fmt.Sprintf("%s##%d", label, row.Entity), selected, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			hv.selectedEntityId = row.Entity
			clicked = row.Entity
		}

		if row.Depth > 0 {
			imgui.UnindentV(float32(row.Depth * hierarchyIndent))
		}
	}

	imgui.End()
	return clicked
}
