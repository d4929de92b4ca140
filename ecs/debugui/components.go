package debugui

import (
	"github.com/plus3/hades/ecs"
)

// Editor panel state. Each panel is a component on the debug UI entity and
// keeps what it needs between frames; selection is shared through
// renderPanels.

// EntityBrowserComponent lists live entities with their signatures.
type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspectorComponent edits the components of the selected entity.
type ComponentInspectorComponent struct {
	selectedEntityId ecs.EntityId
	lastErr          error
}

// HierarchyViewComponent shows TransformHierarchy trees as an indented list.
type HierarchyViewComponent struct {
	selectedEntityId ecs.EntityId
	rows             []HierarchyRow
	lastErr          error
}

// PerformanceStatsComponent keeps a ring of recent frame times.
type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// QueryDebuggerComponent matches live entities against a chosen set of
// component types.
type QueryDebuggerComponent struct {
	selectedComponentTypes map[string]bool
	maxListed              int
}
