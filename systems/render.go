package systems

import (
	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
)

// DrawCall is one visible entity ready to be drawn.
type DrawCall struct {
	Entity   ecs.EntityId
	Position components.Position3D
	Render   components.Render
}

// Renderer receives draw calls from RenderSystem. The host owns the actual
// graphics backend.
type Renderer interface {
	Submit(call DrawCall)
}

// RenderSystem submits a DrawCall for every visible entity that has both a
// Render and a Position3D component, in active order.
type RenderSystem struct {
	Renderer Renderer

	submitted int
}

// NewRenderSystem creates a RenderSystem that submits to r.
func NewRenderSystem(r Renderer) *RenderSystem {
	return &RenderSystem{Renderer: r}
}

func (s *RenderSystem) Update(frame *ecs.UpdateFrame) error {
	s.submitted = 0
	if s.Renderer == nil {
		return nil
	}

	for _, entity := range frame.Entities.Active() {
		if !ecs.HasComponent[components.Render](frame.Components, entity) {
			continue
		}
		render, err := ecs.GetComponent[components.Render](frame.Components, entity)
		if err != nil {
			return err
		}
		if !render.Visible {
			continue
		}
		pos, err := ecs.GetComponent[components.Position3D](frame.Components, entity)
		if err != nil {
			continue
		}

		s.Renderer.Submit(DrawCall{Entity: entity, Position: *pos, Render: *render})
		s.submitted++
	}
	return nil
}

// Submitted returns the number of draw calls made by the last Update.
func (s *RenderSystem) Submitted() int {
	return s.submitted
}

// DrawList is a Renderer that keeps the calls of the current frame.
type DrawList struct {
	Calls []DrawCall
}

func (d *DrawList) Submit(call DrawCall) {
	d.Calls = append(d.Calls, call)
}

// Reset drops the calls but keeps the backing array.
func (d *DrawList) Reset() {
	d.Calls = d.Calls[:0]
}
