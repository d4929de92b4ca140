// Package systems holds the systems the editor runs every frame.
package systems

import (
	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
)

// MovementSystem advances every entity with a position and a velocity.
type MovementSystem struct {
	Movers ecs.Query[struct {
		*components.Position3D
		*components.Velocity3D
	}]
}

func (s *MovementSystem) Update(frame *ecs.UpdateFrame) error {
	dt := float32(frame.DeltaTime)
	for m := range s.Movers.Values() {
		m.Position3D.X += m.Velocity3D.X * dt
		m.Position3D.Y += m.Velocity3D.Y * dt
		m.Position3D.Z += m.Velocity3D.Z * dt
	}
	return nil
}
