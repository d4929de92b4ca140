package main

import (
	"math/rand/v2"

	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/systems"
)

// LifetimeSystem destroys expired entities and queues a replacement for each,
// keeping the population roughly stable.
type LifetimeSystem struct {
	Aging ecs.Query[struct {
		ecs.EntityId
		*Lifetime
	}]

	rng       *rand.Rand
	destroyed int64
}

func (s *LifetimeSystem) Update(frame *ecs.UpdateFrame) error {
	for item := range s.Aging.Values() {
		item.Lifetime.Remaining -= frame.DeltaTime
		if item.Lifetime.Remaining > 0 {
			continue
		}

		frame.Commands.Destroy(item.EntityId)
		frame.Commands.Create(func(w *ecs.World, entity ecs.EntityId) error {
			return populate(w, entity, s.rng)
		})
		s.destroyed++
	}
	return nil
}

// ToggleSystem adds or removes Velocity3D on a random share of positioned
// entities every frame.
type ToggleSystem struct {
	Positioned ecs.Query[struct {
		ecs.EntityId
		*components.Position3D
		Velocity *components.Velocity3D `ecs:"optional"`
	}]

	rng     *rand.Rand
	rate    float64
	toggled int64
}

func (s *ToggleSystem) Update(frame *ecs.UpdateFrame) error {
	if s.rate <= 0 {
		return nil
	}

	for item := range s.Positioned.Values() {
		if s.rng.Float64() >= s.rate {
			continue
		}
		if item.Velocity == nil {
			ecs.QueueAdd(frame.Commands, item.EntityId, components.Velocity3D{X: 1})
		} else {
			ecs.QueueRemove[components.Velocity3D](frame.Commands, item.EntityId)
		}
		s.toggled++
	}
	return nil
}

// countingRenderer discards draw calls, keeping only their number.
type countingRenderer struct {
	calls int64
}

func (r *countingRenderer) Submit(systems.DrawCall) {
	r.calls++
}

type stressSystems struct {
	lifetime *LifetimeSystem
	toggle   *ToggleSystem
	renderer *countingRenderer
}

func registerStressSystems(w *ecs.World, rng *rand.Rand, churn float64) (*stressSystems, error) {
	s := &stressSystems{
		lifetime: &LifetimeSystem{rng: rng},
		toggle:   &ToggleSystem{rng: rng, rate: churn},
		renderer: &countingRenderer{},
	}

	ecs.RegisterSystem[systems.MovementSystem](w.Systems())
	for _, system := range []ecs.System{s.lifetime, s.toggle, systems.NewRenderSystem(s.renderer)} {
		if err := w.Systems().Register(system); err != nil {
			return nil, err
		}
	}
	return s, nil
}
