package main

import (
	"errors"
	"math"

	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/ecs/debugui"
	"github.com/plus3/hades/hierarchy"
	"github.com/plus3/hades/internal/config"
	"github.com/plus3/hades/systems"
)

// Bounds is the area entities bounce inside, in screen pixels.
type Bounds struct {
	Width, Height float32
}

// BounceSystem reflects velocities of entities that leave Bounds.
type BounceSystem struct {
	Movers ecs.Query[struct {
		*components.Position3D
		*components.Velocity3D
	}]
	Bounds ecs.Singleton[Bounds]
}

func (s *BounceSystem) Update(frame *ecs.UpdateFrame) error {
	bounds := s.Bounds.Get()
	if bounds == nil {
		return nil
	}

	for m := range s.Movers.Values() {
		p, v := m.Position3D, m.Velocity3D
		if (p.X < 0 && v.X < 0) || (p.X > bounds.Width && v.X > 0) {
			v.X = -v.X
		}
		if (p.Y < 0 && v.Y < 0) || (p.Y > bounds.Height && v.Y > 0) {
			v.Y = -v.Y
		}
	}
	return nil
}

type editor struct {
	world *ecs.World
	draws *systems.DrawList
	state *ecs.Singleton[debugui.EditorState]
}

// buildEditor creates the world, its systems and the demo scene. ImGui
// systems are added by the game once a backend exists.
func buildEditor(cfg *config.Config) (*editor, error) {
	registry := ecs.NewComponentRegistry()
	if err := errors.Join(
		components.RegisterAll(registry),
		debugui.RegisterDebugUIComponents(registry),
	); err != nil {
		return nil, err
	}

	w := ecs.NewWorld(registry, ecs.WithMaxEntities(cfg.ECS.MaxEntities))
	hierarchy.Install(w)

	ecs.NewSingleton(w, Bounds{Width: float32(cfg.Window.Width), Height: float32(cfg.Window.Height)})
	state := ecs.NewSingleton(w, debugui.EditorState{ShowDebugInfo: cfg.Debug.ShowUI})

	draws := &systems.DrawList{}
	ecs.RegisterSystem[systems.MovementSystem](w.Systems())
	ecs.RegisterSystem[BounceSystem](w.Systems())
	if err := w.Systems().Register(systems.NewRenderSystem(draws)); err != nil {
		return nil, err
	}

	if err := spawnScene(w, float32(cfg.Window.Width), float32(cfg.Window.Height)); err != nil {
		return nil, err
	}

	return &editor{world: w, draws: draws, state: state}, nil
}

func spawn(w *ecs.World, values ...any) (ecs.EntityId, error) {
	id, err := w.CreateEntity()
	if err != nil {
		return ecs.InvalidEntity, err
	}
	for _, v := range values {
		if err := w.AddComponentValue(id, v); err != nil {
			return ecs.InvalidEntity, errors.Join(err, w.DestroyEntity(id))
		}
	}
	return id, nil
}

// spawnScene adds a sun with two planets attached to it and a ring of drifting
// particles.
func spawnScene(w *ecs.World, width, height float32) error {
	cx, cy := width/2, height/2

	sun, err := spawn(w,
		components.Name("sun"),
		components.Position3D{X: cx, Y: cy},
		components.Render{Mesh: "circle", Color: [3]uint8{250, 200, 60}, Scale: 3, Visible: true},
	)
	if err != nil {
		return err
	}

	planets := []struct {
		name   string
		offset float32
		color  [3]uint8
	}{
		{"planet-a", 120, [3]uint8{90, 160, 240}},
		{"planet-b", -180, [3]uint8{200, 90, 90}},
	}
	for _, p := range planets {
		planet, err := spawn(w,
			components.Name(p.name),
			components.Position3D{X: cx + p.offset, Y: cy},
			components.Velocity3D{Y: p.offset / 4},
			components.Render{Mesh: "circle", Color: p.color, Scale: 1.5, Visible: true},
		)
		if err != nil {
			return err
		}
		if err := hierarchy.Attach(w, sun, planet); err != nil {
			return err
		}
	}

	const particles = 24
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / particles
		dx, dy := float32(math.Cos(angle)), float32(math.Sin(angle))
		_, err := spawn(w,
			components.Position3D{X: cx + dx*60, Y: cy + dy*60},
			components.Velocity3D{X: dx * 40, Y: dy * 40},
			components.Render{Mesh: "square", Color: [3]uint8{180, 180, 180}, Scale: 0.5, Visible: i%6 != 0},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
