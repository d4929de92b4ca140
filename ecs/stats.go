package ecs

import "sort"

// WorldStats is a snapshot of a World's size.
type WorldStats struct {
	EntityCount        int
	RecyclableIds      int
	ComponentTypeCount int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats describes one component store.
type ComponentStats struct {
	Type        ComponentType
	Name        string
	EntityCount int
}

// CollectStats gathers a WorldStats snapshot. Stores that were never touched
// are reported with a zero count.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		EntityCount:        w.entities.Len(),
		RecyclableIds:      w.entities.Recyclable(),
		ComponentTypeCount: w.registry.Len(),
		SingletonCount:     len(w.resources),
		ComponentBreakdown: make([]ComponentStats, 0, w.registry.Len()),
		SingletonTypes:     w.SingletonTypes(),
	}

	for i := 0; i < w.registry.Len(); i++ {
		ct := ComponentType(i)
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:        ct,
			Name:        w.registry.Name(ct),
			EntityCount: w.components.Count(ct),
		})
	}

	sort.Strings(stats.SingletonTypes)
	return stats
}
