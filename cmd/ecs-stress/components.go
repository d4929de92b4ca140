package main

import (
	"errors"
	"math/rand/v2"

	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
)

// Lifetime counts down to the entity's destruction.
type Lifetime struct {
	Remaining float64
}

func registerStressComponents(registry *ecs.ComponentRegistry) error {
	_, err := ecs.RegisterComponent[Lifetime](registry)
	return errors.Join(components.RegisterAll(registry), err)
}

// populate gives entity a random mix of components. Every entity gets a
// position so that the movement and render paths see a realistic share.
func populate(w *ecs.World, entity ecs.EntityId, rng *rand.Rand) error {
	errs := []error{
		ecs.AddComponent(w, entity, components.Position3D{
			X: rng.Float32() * 1000,
			Y: rng.Float32() * 1000,
		}),
	}
	if rng.IntN(2) == 0 {
		errs = append(errs, ecs.AddComponent(w, entity, components.Velocity3D{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
		}))
	}
	if rng.IntN(3) == 0 {
		errs = append(errs, ecs.AddComponent(w, entity, components.Render{
			Mesh:    "quad",
			Scale:   1,
			Visible: rng.IntN(4) != 0,
		}))
	}
	if rng.IntN(2) == 0 {
		errs = append(errs, ecs.AddComponent(w, entity, Lifetime{Remaining: 0.5 + rng.Float64()*2}))
	}
	if rng.IntN(10) == 0 {
		errs = append(errs, ecs.AddComponent(w, entity, components.Name("named")))
	}
	return errors.Join(errs...)
}

func spawnRandomEntity(w *ecs.World, rng *rand.Rand) error {
	entity, err := w.CreateEntity()
	if err != nil {
		return err
	}
	return populate(w, entity, rng)
}
