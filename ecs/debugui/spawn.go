package debugui

import (
	"errors"

	"github.com/plus3/hades/ecs"
)

// RegisterDebugUIComponents registers the component types the debug panels
// are stored in, plus ImguiItem.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) error {
	var errs []error
	register := func(_ ecs.ComponentType, err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	register(ecs.RegisterComponent[ImguiItem](registry))
	register(ecs.RegisterComponent[EntityBrowserComponent](registry))
	register(ecs.RegisterComponent[ComponentInspectorComponent](registry))
	register(ecs.RegisterComponent[HierarchyViewComponent](registry))
	register(ecs.RegisterComponent[PerformanceStatsComponent](registry))
	register(ecs.RegisterComponent[QueryDebuggerComponent](registry))
	register(ecs.RegisterComponent[FrameTimer](registry))
	return errors.Join(errs...)
}

// SpawnDebugUI creates one entity carrying every debug panel and an ImguiItem
// that draws them. The entity browser, hierarchy view and inspector share a
// selection.
func SpawnDebugUI(w *ecs.World) (ecs.EntityId, error) {
	entity, err := w.CreateEntity()
	if err != nil {
		return ecs.InvalidEntity, err
	}
	view := ecs.NewView[panels](w)

	err = errors.Join(
		ecs.AddComponent(w, entity, NewEntityBrowserComponent(100)),
		ecs.AddComponent(w, entity, NewComponentInspectorComponent()),
		ecs.AddComponent(w, entity, NewHierarchyViewComponent()),
		ecs.AddComponent(w, entity, NewPerformanceStatsComponent(120)),
		ecs.AddComponent(w, entity, NewQueryDebuggerComponent()),
		ecs.AddComponent(w, entity, *NewFrameTimer()),
		ecs.AddComponent(w, entity, ImguiItem{
			Render: func() { renderPanels(w, view, entity) },
		}),
	)
	if err != nil {
		return ecs.InvalidEntity, errors.Join(err, w.DestroyEntity(entity))
	}
	return entity, nil
}

type panels struct {
	Browser     *EntityBrowserComponent
	Inspector   *ComponentInspectorComponent
	Hierarchy   *HierarchyViewComponent
	Performance *PerformanceStatsComponent
	Query       *QueryDebuggerComponent
	Timer       *FrameTimer
}

func renderPanels(w *ecs.World, view *ecs.View[panels], entity ecs.EntityId) {
	var p panels
	if !view.Fill(entity, &p) {
		return
	}

	p.Browser.Render(w)
	if picked := p.Hierarchy.Render(w); picked.Valid() {
		p.Browser.Select(picked)
	}
	p.Inspector.Render(w, p.Browser.GetSelectedEntity())
	if !w.Alive(entity) {
		return
	}
	p.Query.Render(w)
	p.Performance.Render(w, p.Timer.GetDeltaTime())
}
