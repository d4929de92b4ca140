package ecs

// UpdateFrame is what a system sees during one UpdateAll call.
type UpdateFrame struct {
	DeltaTime  float64
	Components *ComponentCatalog
	Entities   *EntityRegistry
	Commands   *Commands
	World      *World
}

func newUpdateFrame(dt float64, w *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime:  dt,
		Components: w.components,
		Entities:   w.entities,
		Commands:   newCommands(),
		World:      w,
	}
}
