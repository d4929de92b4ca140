// Package components holds the editor's domain components.
package components

import (
	"errors"
	"slices"

	"github.com/plus3/hades/ecs"
)

type Position2D struct {
	X, Y float32
}

type Position3D struct {
	X, Y, Z float32
}

type Velocity3D struct {
	X, Y, Z float32
}

// Render marks an entity for draw submission.
type Render struct {
	Mesh    string
	Color   [3]uint8
	Scale   float32
	Visible bool
}

type Name string

// TransformHierarchy links an entity to its parent and children by id. It
// never owns the entities it names. Use the hierarchy package to change links
// so that both sides stay consistent.
type TransformHierarchy struct {
	Parent   ecs.EntityId
	Children []ecs.EntityId
}

// NewTransformHierarchy returns a hierarchy component with no parent.
func NewTransformHierarchy() TransformHierarchy {
	return TransformHierarchy{Parent: ecs.InvalidEntity}
}

func (h *TransformHierarchy) AddChild(child ecs.EntityId) {
	h.Children = append(h.Children, child)
}

// RemoveChild drops every occurrence of child, keeping the order of the rest.
func (h *TransformHierarchy) RemoveChild(child ecs.EntityId) {
	h.Children = slices.DeleteFunc(h.Children, func(c ecs.EntityId) bool {
		return c == child
	})
}

func (h *TransformHierarchy) SetParent(parent ecs.EntityId) {
	h.Parent = parent
}

func (h *TransformHierarchy) ClearParent() {
	h.Parent = ecs.InvalidEntity
}

func (h *TransformHierarchy) HasParent() bool {
	return h.Parent.Valid()
}

// RegisterAll registers every component in this package with registry.
func RegisterAll(registry *ecs.ComponentRegistry) error {
	var errs []error
	register := func(_ ecs.ComponentType, err error) {
		errs = append(errs, err)
	}
	register(ecs.RegisterComponent[Position2D](registry))
	register(ecs.RegisterComponent[Position3D](registry))
	register(ecs.RegisterComponent[Velocity3D](registry))
	register(ecs.RegisterComponent[Render](registry))
	register(ecs.RegisterComponent[Name](registry))
	register(ecs.RegisterComponent[TransformHierarchy](registry))
	return errors.Join(errs...)
}
