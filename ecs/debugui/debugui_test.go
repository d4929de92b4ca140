package debugui_test

import (
	"testing"

	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/ecs/debugui"
	"github.com/plus3/hades/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T) *ecs.World {
	t.Helper()
	registry := ecs.NewComponentRegistry()
	require.NoError(t, components.RegisterAll(registry))
	require.NoError(t, debugui.RegisterDebugUIComponents(registry))
	return ecs.NewWorld(registry)
}

func spawn(t *testing.T, w *ecs.World, values ...any) ecs.EntityId {
	t.Helper()
	id, err := w.CreateEntity()
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, w.AddComponentValue(id, v))
	}
	return id
}

func TestCollectEntityInfo(t *testing.T) {
	w := newWorld(t)
	a := spawn(t, w, components.Position3D{}, components.Name("player"))
	b := spawn(t, w)

	infos := debugui.CollectEntityInfo(w)
	require.Len(t, infos, 2)

	assert.Equal(t, a, infos[0].ID)
	assert.Equal(t, []string{"components.Position3D", "components.Name"}, infos[0].ComponentTypes)
	assert.Equal(t, 2, infos[0].ComponentCount)

	assert.Equal(t, b, infos[1].ID)
	assert.Empty(t, infos[1].ComponentTypes)
	assert.True(t, infos[1].Signature.IsEmpty())
}

func TestFilterEntities(t *testing.T) {
	entities := []debugui.EntityInfo{
		{ID: 1, ComponentTypes: []string{"components.Position3D"}},
		{ID: 12, ComponentTypes: []string{"components.Render"}},
		{ID: 3, ComponentTypes: []string{"components.Render", "components.Name"}},
	}

	assert.Len(t, debugui.FilterEntities(entities, ""), 3)

	byName := debugui.FilterEntities(entities, "RENDER")
	require.Len(t, byName, 2)
	assert.Equal(t, ecs.EntityId(12), byName[0].ID)
	assert.Equal(t, ecs.EntityId(3), byName[1].ID)

	byId := debugui.FilterEntities(entities, "1")
	require.Len(t, byId, 2)
	assert.Equal(t, ecs.EntityId(1), byId[0].ID)
	assert.Equal(t, ecs.EntityId(12), byId[1].ID)
}

func TestMatchQuery(t *testing.T) {
	w := newWorld(t)
	mover := spawn(t, w, components.Position3D{}, components.Velocity3D{})
	spawn(t, w, components.Position3D{})

	sig, matches := debugui.MatchQuery(w, map[string]bool{
		"components.Position3D": true,
		"components.Velocity3D": true,
		"missing.Type":          true,
	})
	assert.Equal(t, 2, sig.Count())
	assert.Equal(t, []ecs.EntityId{mover}, matches)

	sig, matches = debugui.MatchQuery(w, nil)
	assert.True(t, sig.IsEmpty())
	assert.Nil(t, matches)
}

func TestCollectHierarchy(t *testing.T) {
	w := newWorld(t)
	root := spawn(t, w, components.Name("root"))
	child := spawn(t, w)
	require.NoError(t, hierarchy.Attach(w, root, child))

	rows, err := debugui.CollectHierarchy(w)
	require.NoError(t, err)
	assert.Equal(t, []debugui.HierarchyRow{
		{Entity: root, Depth: 0, Label: "root (0)"},
		{Entity: child, Depth: 1, Label: "Entity 1"},
	}, rows)
}

func TestEditorStateEvents(t *testing.T) {
	var state debugui.EditorState
	assert.Empty(t, state.Drain())

	state.Push(debugui.EditorQuit)
	state.Push(debugui.EditorQuit)
	assert.Equal(t, []debugui.EditorEvent{debugui.EditorQuit, debugui.EditorQuit}, state.Drain())
	assert.Empty(t, state.Events)
	assert.Equal(t, "quit", debugui.EditorQuit.String())
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := debugui.NewPerformanceStatsComponent(4)
	assert.Zero(t, ps.AverageFrameTime())

	for range 4 {
		ps.Record(0.01)
	}
	assert.InDelta(t, 10.0, ps.AverageFrameTime(), 1e-4)

	// oldest sample is overwritten
	ps.Record(0.05)
	assert.InDelta(t, 20.0, ps.AverageFrameTime(), 1e-4)
}

func TestSpawnDebugUI(t *testing.T) {
	w := newWorld(t)

	entity, err := debugui.SpawnDebugUI(w)
	require.NoError(t, err)
	assert.True(t, ecs.HasComponentOf[debugui.ImguiItem](w, entity))
	assert.True(t, ecs.HasComponentOf[debugui.EntityBrowserComponent](w, entity))

	browser, err := ecs.GetComponentOf[debugui.EntityBrowserComponent](w, entity)
	require.NoError(t, err)
	assert.Equal(t, ecs.InvalidEntity, browser.GetSelectedEntity())

	menu, err := debugui.SpawnEditorMenu(w)
	require.NoError(t, err)
	assert.True(t, ecs.HasComponentOf[debugui.ImguiItem](w, menu))

	var state *debugui.EditorState
	assert.True(t, ecs.ReadSingleton(w, &state))
	assert.False(t, state.ShowDebugInfo)
}
